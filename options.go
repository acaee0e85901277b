package envio

import (
	"context"
	"log/slog"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"go.hackfix.me/envio/env"
	"go.hackfix.me/envio/streams"
)

// Option is a function that allows configuring a Context.
type Option func(*Context)

// WithContext sets the main context.
func WithContext(ctx context.Context) Option {
	return func(c *Context) {
		c.Ctx = ctx
	}
}

// WithEnv sets the process environment.
func WithEnv(e env.Env) Option {
	return func(c *Context) {
		c.Env = e
	}
}

// WithFS sets the filesystem.
func WithFS(fs vfs.FileSystem) Option {
	return func(c *Context) {
		c.FS = fs
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		c.Logger = logger
	}
}

// WithStreams sets the standard stream provider.
func WithStreams(s streams.Provider) Option {
	return func(c *Context) {
		c.Streams = s
	}
}

// WithTimeSource sets the source used to retrieve the current time.
func WithTimeSource(ts TimeSource) Option {
	return func(c *Context) {
		c.TimeSource = ts
	}
}
