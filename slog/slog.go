//go:build go1.21

// Package slog provides command line options for configuring the default
// log/slog logger.
package slog

import (
	"io"
	"log/slog"
	"os"
)

// Options can be bound to a checkarg.Parser:
//
//	var logOpts slog.Options
//	p.Bind(&logOpts)
type Options struct {
	LogLevel slog.Level `checkarg:"label=LEVEL,help='minimum log level (debug, info, warn, error)'"`
	LogJSON  bool       `checkarg:"name=log-json,help=log in JSON format"`
}

// ConfigureWithHandlerOptions installs a default logger writing to w.
// handlerOpts may be nil; its Level is overridden by the parsed level.
func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) *slog.Logger {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	var handler slog.Handler
	if opts.LogJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Configure installs a default logger writing to stderr.
func (opts *Options) Configure() *slog.Logger {
	return opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
