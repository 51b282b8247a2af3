// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the warpplot commands and
// carries it through a context.
package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// EnvDebug switches the logger to the development config when set to "true".
const EnvDebug = "WARP_DEBUG"

// NewLogger returns a new zap.SugaredLogger writing to stderr. The
// development config is used when debug is true or EnvDebug is "true".
func NewLogger(debug bool) *zap.SugaredLogger {
	var config zap.Config
	if v, ok := os.LookupEnv(EnvDebug); debug || (ok && v == "true") {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	// stdout carries command results
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger.Named("warp").Sugar()
}

type loggerKey struct{}

// WithLogger returns a copy of parent in which the logger key holds logger.
func WithLogger(parent context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

// FromContext returns the logger in ctx, or a fresh production logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
			return logger
		}
	}

	return NewLogger(false)
}
