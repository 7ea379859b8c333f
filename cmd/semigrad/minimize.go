package main

import (
	"fmt"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/semigrad-ml/semigrad/expr"
	"github.com/semigrad-ml/semigrad/optim"
	"github.com/semigrad-ml/semigrad/scalar"
)

func newMinimizeCmd() *cobra.Command {
	var (
		varFlags []string
		rate     float64
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "minimize EXPR",
		Short: "Minimize an expression by gradient descent over its variables",
		Example: `  semigrad minimize "(x - 3) * (x - 3)" --var x=0
  semigrad minimize "pow(x, p=2) + pow(y, p=2)" --var x=5 --var y=-4 --rate 0.1 --steps 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			vars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			if len(vars) == 0 {
				return fmt.Errorf("minimize needs at least one --var to descend over")
			}
			// Validate the expression once; re-parses inside the descent
			// loop see the same source and cannot fail differently.
			if _, err := expr.Parse(scalar.New(), src, vars); err != nil {
				return err
			}

			bar := progressbar.NewOptions(steps,
				progressbar.OptionSetDescription("minimizing"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionClearOnFinish(),
			)

			res, err := optim.Minimize(func(g *scalar.Graph, leaves map[string]*scalar.Scalar) *scalar.Scalar {
				parsed, err := expr.ParseBound(g, src, leaves)
				if err != nil {
					panic(err) // unreachable: source validated above
				}
				return parsed.Root
			}, vars, optim.Config{
				Rate:  rate,
				Steps: steps,
				OnStep: func(step int, loss float64, _ map[string]float64) {
					bar.Describe(fmt.Sprintf("minimizing (loss=%.6g)", loss))
					_ = bar.Add(1)
				},
			})
			if err != nil {
				return err
			}
			_ = bar.Finish()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "loss  = %s\n", formatFloat(res.Loss))

			names := make([]string, 0, len(res.Params))
			for name := range res.Params {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%-5s = %s\n", name, formatFloat(res.Params[name]))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "initial value NAME=VALUE (repeatable)")
	cmd.Flags().Float64Var(&rate, "rate", 0.01, "learning rate")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of descent steps")
	return cmd
}
