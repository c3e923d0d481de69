package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/riemann/internal/calc"
)

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <z> <op> [w]",
		Short: "Applies an operation to one or two complex numbers",
		Example: `  riemann eval "3 + 4i" sqrt
  riemann eval "1 + 2i" pow "3 + 4i"
  riemann eval "2.345 + i" round 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[1]
			operands := append([]string{args[0]}, args[2:]...)
			a.logger.Debug("evaluating", "op", op, "operands", operands)
			z, err := calc.Eval(op, operands...)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), a.styles.err.Render("error: "+err.Error()))
				return err
			}
			a.print(cmd.OutOrStdout(), z)
			return nil
		},
	}
}

func (a *app) newGammaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gamma <z>",
		Short: "Computes the gamma function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := calc.Eval("gamma", args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), a.styles.err.Render("error: "+err.Error()))
				return err
			}
			a.print(cmd.OutOrStdout(), z)
			return nil
		},
	}
}

func (a *app) newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Lists available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, a.styles.header.Render("Operations"))
			for _, op := range calc.Names() {
				arity, err := calc.Arity(op)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  %-10s %v\n", op, arity)
			}
			return nil
		},
	}
}
