// Package streams defines the interface for access to the process's standard
// input, output and error streams, and two implementations of it: Std, which
// wraps the real standard streams, and Simulated, which operates over
// in-memory buffers that tests can seed and inspect.
package streams

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
)

// Provider provides access to input, output and error streams.
type Provider interface {
	// Input returns the input stream.
	Input() io.Reader

	// Output returns the output stream.
	Output() io.Writer

	// Error returns the error stream.
	Error() io.Writer
}

// Std provides the process's real standard streams. The output and error
// writers are wrapped to handle ANSI color sequences on platforms whose
// consoles don't interpret them natively.
type Std struct {
	in       io.Reader
	out, err io.Writer
}

var _ Provider = (*Std)(nil)

// NewStd creates a Std provider over os.Stdin, os.Stdout and os.Stderr.
func NewStd() *Std {
	return &Std{
		in:  os.Stdin,
		out: colorable.NewColorable(os.Stdout),
		err: colorable.NewColorable(os.Stderr),
	}
}

// Input returns the process's standard input.
func (s *Std) Input() io.Reader { return s.in }

// Output returns the process's standard output.
func (s *Std) Output() io.Writer { return s.out }

// Error returns the process's standard error.
func (s *Std) Error() io.Writer { return s.err }
