package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/semigrad-ml/semigrad/expr"
	"github.com/semigrad-ml/semigrad/scalar"
)

func newEvalCmd() *cobra.Command {
	var varFlags []string

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression",
		Example: `  semigrad eval "2 + 3 * 4"
  semigrad eval "sin(x)*x" --var x=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			res, err := expr.Parse(scalar.New(), args[0], vars)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res.Root.Value()))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "variable binding NAME=VALUE (repeatable)")
	return cmd
}

func newGradCmd() *cobra.Command {
	var varFlags []string

	cmd := &cobra.Command{
		Use:   "grad EXPR",
		Short: "Evaluate an expression and differentiate it with respect to every variable",
		Example: `  semigrad grad "(a + b) * a" --var a=2 --var b=3
  semigrad grad "pow(x, p=3)" --var x=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			res, err := expr.Parse(scalar.New(), args[0], vars)
			if err != nil {
				return err
			}
			scalar.Backward(res.Root)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value = %s\n", formatFloat(res.Root.Value()))

			names := make([]string, 0, len(res.Vars))
			for name := range res.Vars {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				grad, ok := res.Vars[name].Grad()
				if !ok {
					continue // variable bound but not mentioned
				}
				fmt.Fprintf(out, "d/d%s  = %s\n", name, formatFloat(grad))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "variable binding NAME=VALUE (repeatable)")
	return cmd
}
