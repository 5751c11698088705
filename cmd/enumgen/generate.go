package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/suparena/enumb/processor"
)

var generateCmd = &cobra.Command{
	Use:   "generate FILE...",
	Short: "Generate Go enums from definition files",
	Long: `Generate Go enums from definition files.

Each FILE is a YAML or TOML enum definition, or an OpenAPI document whose
component schemas declare enum lists. The output is written next to the
input as <name>_enum.go unless --output is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("package", "", "Go package of the generated files (required for OpenAPI input)")
	generateCmd.Flags().StringP("output", "o", "", "output file (single input only)")
	generateCmd.Flags().Bool("watch", false, "regenerate when a definition file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := LoadConfig()
	if cfg.Output != "" && len(args) > 1 {
		return fmt.Errorf("--output needs exactly one definition file, got %d", len(args))
	}
	log := newLogger(cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := generateAll(ctx, args, cfg, log)
	if !cfg.Watch {
		return err
	}
	if err != nil {
		log.Error("initial generation failed", "error", err)
	}
	return watch(ctx, args, cfg, log)
}

func generateAll(ctx context.Context, files []string, cfg Config, log *slog.Logger) error {
	var errs []error
	for _, file := range files {
		if _, err := generateOne(ctx, file, cfg, log); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func generateOne(ctx context.Context, file string, cfg Config, log *slog.Logger) (string, error) {
	opts := []processor.Option{processor.WithLogger(log)}
	if cfg.Package != "" {
		opts = append(opts, processor.WithPackage(cfg.Package))
	}
	if cfg.Output != "" {
		opts = append(opts, processor.WithOutput(cfg.Output))
	}
	return processor.Run(ctx, file, opts...)
}

// watch regenerates changed definitions until ctx is cancelled.
func watch(ctx context.Context, files []string, cfg Config, log *slog.Logger) error {
	w, err := NewWatcher(files, cfg.Debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	log.Info("watching definitions", "files", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case file, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if _, err := generateOne(ctx, file, cfg, log); err != nil {
				log.Error("regeneration failed", "definition", file, "error", err)
			}
		}
	}
}
