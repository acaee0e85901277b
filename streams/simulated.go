package streams

import (
	"bytes"
	"io"
)

// Simulated provides in-memory standard streams. Tests seed the input stream
// with WriteInput before running the code under test, and inspect what it
// wrote with OutputBytes and ErrorBytes afterwards.
//
// Like the simulated environment, a Simulated provider is meant to be owned
// by a single test at a time and provides no internal synchronization.
type Simulated struct {
	in, out, err bytes.Buffer
}

var _ Provider = (*Simulated)(nil)

// NewSimulated creates a Simulated provider with empty streams.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Input returns the simulated input stream.
func (s *Simulated) Input() io.Reader { return &s.in }

// Output returns the simulated output stream.
func (s *Simulated) Output() io.Writer { return &s.out }

// Error returns the simulated error stream.
func (s *Simulated) Error() io.Writer { return &s.err }

// WriteInput appends data to the input stream, making it available to
// subsequent reads from Input.
func (s *Simulated) WriteInput(data []byte) {
	s.in.Write(data)
}

// OutputBytes returns everything written to the output stream and not yet
// cleared with Reset.
func (s *Simulated) OutputBytes() []byte {
	return bytes.Clone(s.out.Bytes())
}

// ErrorBytes returns everything written to the error stream and not yet
// cleared with Reset.
func (s *Simulated) ErrorBytes() []byte {
	return bytes.Clone(s.err.Bytes())
}

// Reset clears all three streams, including any unread input.
func (s *Simulated) Reset() {
	s.in.Reset()
	s.out.Reset()
	s.err.Reset()
}
