// Package main provides the semigrad command line interface: evaluate an
// expression, differentiate it with respect to its variables, or minimize
// it by gradient descent.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:   "semigrad",
		Short: "Reverse-mode automatic differentiation over scalar expressions",
		Long: `semigrad builds a computation graph from an arithmetic expression and
differentiates it with respect to every bound variable in one backward pass.

Expressions support + - * / % ^, parentheses, and the standard catalog
(sin, cos, exp, log, abs, pow, mod, sum, plus, times). Bind variables with
repeated --var flags:

  semigrad grad "sin(x)*x" --var x=2`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newEvalCmd(), newGradCmd(), newMinimizeCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "semigrad %s\n", version)
		},
	}
}

// parseVarFlags turns repeated NAME=VALUE flags into variable bindings.
func parseVarFlags(flags []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want NAME=VALUE", f)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", f, err)
		}
		vars[name] = v
	}
	return vars, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
