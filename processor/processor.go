/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/enumb/errors"
)

// OutputSuffix is appended to the definition's base name to form the default
// output path: access.yaml generates access_enum.go.
const OutputSuffix = "_enum.go"

// Options configures a Run
type Options struct {
	Package string          // overrides the definition's package
	Output  string          // output file; defaults to <base>_enum.go next to the input
	Logger  *slog.Logger    // defaults to a discarding logger
	Formats strfmt.Registry // format registry for validation; defaults to strfmt.Default
}

// Option is a functional option for configuring a Run
type Option func(*Options)

// WithPackage sets the Go package of the generated file
func WithPackage(pkg string) Option {
	return func(opts *Options) {
		opts.Package = pkg
	}
}

// WithOutput sets the output file path
func WithOutput(path string) Option {
	return func(opts *Options) {
		opts.Output = path
	}
}

// WithLogger sets the logger used to report progress
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithFormats sets the strfmt registry used to validate string formats
func WithFormats(formats strfmt.Registry) Option {
	return func(opts *Options) {
		opts.Formats = formats
	}
}

// DefaultOptions returns default options
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Formats: strfmt.Default,
	}
}

// OutputPath returns the default output path for a definition file.
func OutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + OutputSuffix
}

// Run loads the definition at path, validates it, generates the Go source
// and writes it. It returns the path of the written file.
func Run(ctx context.Context, path string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Output == "" {
		o.Output = OutputPath(path)
	}
	log := o.Logger.With("definition", path)

	def, err := Load(path)
	if err != nil {
		return "", err
	}
	if o.Package != "" {
		def.Package = o.Package
	}
	if def.Package == "" {
		return "", errors.NewValidationError("package", "no package in definition; pass one explicitly")
	}

	if err := def.Validate(o.Formats); err != nil {
		return "", fmt.Errorf("validate %s: %w", path, err)
	}
	for _, e := range def.Enums {
		log.Debug("enum validated", "type", e.Type, "kind", e.Kind, "values", len(e.Values))
	}

	src, err := Generate(def)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.WriteFile(o.Output, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", o.Output, err)
	}

	log.Info("generated enums", "output", o.Output, "package", def.Package, "enums", len(def.Enums))
	return o.Output, nil
}
