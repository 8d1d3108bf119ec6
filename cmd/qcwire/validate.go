package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qcwire/schema"
)

var watchMode bool

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate interchange payload files",
	Long: `Validate decodes each file through the strict schema decoders and
stops at the first failure. Files are read as JSON unless they end in
.yaml or .yml, which go through the YAML bridge.

With --watch, validate reports every file once and then keeps running,
revalidating a file whenever it changes on disk. Interrupt to stop.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&watchMode, "watch", false, "Keep running and revalidate files on change")
}

// decodeFile reads and strictly decodes one payload file.
func decodeFile(path string) (*schema.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return schema.DecodeYAML(data)
	default:
		return schema.DecodeJSON(data)
	}
}

// validateFile decodes one file and logs the verdict.
func validateFile(path string) error {
	p, err := decodeFile(path)
	if err != nil {
		logger.Error("invalid payload", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("validate %s: %w", path, err)
	}
	logger.Info("valid payload", zap.String("file", path), zap.String("kind", string(p.Kind)))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	if !watchMode {
		for _, path := range args {
			if err := validateFile(path); err != nil {
				return err
			}
		}
		return nil
	}

	// Watch mode reports failures instead of aborting on them.
	for _, path := range args {
		_ = validateFile(path)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := newWatcher(args, cfg.WatchDebounce, func(path string) {
		_ = validateFile(path)
	})
	if err != nil {
		return err
	}
	w.start(ctx)
	defer w.stop()

	logger.Info("watching for changes",
		zap.Int("files", len(args)),
		zap.Duration("debounce", cfg.WatchDebounce))
	<-ctx.Done()
	return nil
}
