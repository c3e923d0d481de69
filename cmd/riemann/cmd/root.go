// Package cmd implements the riemann command line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/riemann"
	"github.com/govalues/riemann/internal/config"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool
	places  int

	cfg    config.Config
	logger *slog.Logger
	styles styles
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "riemann",
		Short: "Complex number calculator",
		Long: `riemann evaluates operations on complex numbers of the extended
complex plane, including the point at infinity and NaN.

Operands use the notation "3 + 4i", "-2.5i", "i", or "1e-3 - 2i".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().IntVarP(&a.places, "places", "p", -1, "round results to this many decimal places")

	rootCmd.AddCommand(a.newEvalCmd(), a.newGammaCmd(), a.newOpsCmd(), newVersionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger.Debug("loaded config", "path", a.cfgFile, "places", cfg.Places, "color", cfg.Color, "polar", cfg.Polar)
	}
	if cmd.Flags().Changed("places") {
		a.cfg.Places = a.places
	}
	if a.noColor {
		a.cfg.Color = false
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.styles = newStyles(cmd.OutOrStdout(), a.cfg.Color)
	return nil
}

// print writes z, rounded and annotated according to the settings.
func (a *app) print(w io.Writer, z riemann.Complex) {
	abs := riemann.NewFromFloat64(z.Abs())
	arg := riemann.NewFromFloat64(z.Arg())
	if a.cfg.Places >= 0 {
		z = z.Round(a.cfg.Places)
		abs = abs.Round(a.cfg.Places)
		arg = arg.Round(a.cfg.Places)
	}
	fmt.Fprintln(w, a.styles.result.Render(z.String()))
	if a.cfg.Polar {
		fmt.Fprintf(w, "%s %v\n", a.styles.label.Render("|z| ="), abs)
		fmt.Fprintf(w, "%s %v\n", a.styles.label.Render("arg ="), arg)
	}
}
