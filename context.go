// Package envio provides injectable access to ambient process state. Code
// that depends on the process environment, the standard streams, the
// filesystem or the current time is written against the capability interfaces
// in this module instead of package os globals; production wires the native
// backends, tests wire fully in-memory simulated ones they can seed and
// inspect.
package envio

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/mattn/go-isatty"

	"go.hackfix.me/envio/env"
	"go.hackfix.me/envio/streams"
)

const logTimeFormat = "2006-01-02 15:04:05.000"

// Context bundles the ambient capabilities an application depends on. It is
// passed around the application to avoid direct dependencies on external
// systems, and make testing easier.
type Context struct {
	Ctx        context.Context  // global context
	FS         vfs.FileSystem   // filesystem
	Env        env.Env          // process environment
	Streams    streams.Provider // standard streams
	Logger     *slog.Logger     // global logger
	TimeSource TimeSource
}

// Native creates a Context wired to the real process state: the OS
// filesystem, the process environment, the standard streams, the system
// clock, and a logger writing to the error stream with color enabled when
// it's a terminal.
func Native(opts ...Option) *Context {
	c := &Context{
		Ctx:        context.Background(),
		FS:         osfs.New(),
		Env:        env.NewNative(),
		Streams:    streams.NewStd(),
		TimeSource: SystemTime{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = slog.New(tint.NewHandler(c.Streams.Error(), &tint.Options{
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: logTimeFormat,
		}))
	}
	return c
}

// Simulated creates a Context wired entirely to in-memory state: a memory
// filesystem, a simulated environment and simulated streams, with the logger
// writing uncolored output to the simulated error stream. Nothing is
// inherited from the real process, so two Simulated contexts never share
// state.
func Simulated(opts ...Option) *Context {
	c := &Context{
		Ctx:        context.Background(),
		FS:         memoryfs.New(),
		Env:        env.NewSimulated(),
		Streams:    streams.NewSimulated(),
		TimeSource: SystemTime{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = slog.New(tint.NewHandler(c.Streams.Error(), &tint.Options{
			NoColor:    true,
			TimeFormat: logTimeFormat,
		}))
	}
	return c
}
