// Package main provides the CLI entrypoint for the primitive obsession demo.
// It loads configuration, initializes logging and wires the run and inspect
// subcommands. Running the binary without a subcommand runs the demo.
package main

import (
	"context"
	"fmt"
	"os"
	"primobs/internal/config"
	"primobs/internal/demo"
	"primobs/pkg/logger"
	"primobs/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	cfg *config.Config
}

// demonstrator builds a Demonstrator from the loaded config and the
// --tenant/--pack/--format overrides.
func (a *app) demonstrator(cmd *cobra.Command) (*demo.Demonstrator, error) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("tenant"); v != "" {
		a.cfg.Demo.TenantID = v
	}
	if v, _ := flags.GetString("pack"); v != "" {
		a.cfg.Demo.PackID = v
	}
	if v, _ := flags.GetString("format"); v != "" {
		a.cfg.Output.Format = v
	}

	opts, err := demo.NewOptions(a.cfg)
	if err != nil {
		return nil, err
	}
	if opts.Format != config.FormatText && opts.Format != config.FormatJSON {
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported output format %q", opts.Format)
	}

	registry := demo.NewMemoryRegistry()

	return demo.New(cmd.OutOrStdout(), registry, registry, opts), nil
}

func rootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "primobs",
		Short:         "Shows how nominal identifier types turn swapped arguments into compile errors",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			logger.Setup(cfg.Environment)
			a.cfg = cfg

			logger.Debug(cmd.Context(), "config loaded",
				zap.String("environment", cfg.Environment),
				zap.String("format", cfg.Output.Format))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, a)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().String("tenant", "", "Tenant UUID used by the demo")
	rootCmd.PersistentFlags().String("pack", "", "Pack UUID used by the demo")
	rootCmd.PersistentFlags().String("format", "", "Output format (text or json)")

	rootCmd.AddCommand(
		runCommand(a),
		inspectCommand(a),
	)

	return rootCmd
}

// reportError logs a failed command together with its semantic kind.
func reportError(ctx context.Context, err error) {
	logger.Error(ctx, "command failed", zap.Error(err), zap.String("kind", serrors.KindOf(err).Error()))
}

// main sets up the root Cobra command and executes the CLI. A production
// logger is installed before config is loaded so that config errors are not
// swallowed; the configured environment replaces it afterwards.
func main() {
	ctx := context.Background()
	logger.Setup(logger.ProductionEnvironment)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCommand(&app{}).ExecuteContext(ctx)
	if err != nil {
		reportError(ctx, err)
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
