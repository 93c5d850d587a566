package handlers

import (
	"context"
	"os"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// WithLogger returns ctx carrying a structured logger that writes to stderr.
func WithLogger(ctx context.Context, verbose bool) context.Context {
	logger := newLogger(verbose)
	log.SetLogger(logger)
	return log.IntoContext(ctx, logger)
}

// newLogger builds the zap-backed logger. verbose switches to development
// output at debug level.
func newLogger(verbose bool) logr.Logger {
	opts := zap.Options{
		Development: verbose,
		DestWriter:  os.Stderr,
	}
	if !verbose {
		opts.Level = zapcore.InfoLevel
	}
	return zap.New(zap.UseFlagOptions(&opts))
}
