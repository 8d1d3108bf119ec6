// Command qcwire validates, inspects, and archives quantum chemistry
// interchange payloads.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qcwire/config"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Resolved at startup
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qcwire",
	Short: "qcwire works with validated quantum chemistry interchange payloads",
	Long: `qcwire decodes, validates, and stores quantum chemistry interchange
payloads: molecules, basis sets, single-point results, and optimizations.

Every subcommand routes payloads through the same strict decoders the
library exposes, so a file qcwire accepts is a file the library accepts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}

		zcfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(archiveCmd)
}

// cmdContext returns the command's context. Commands invoked outside
// Execute carry no context; those fall back to Background.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
