package env

import (
	"database/sql"
	"iter"
	"maps"
	"slices"

	serrors "go.hackfix.me/envio/errors"
)

// DefaultTempDir is the temporary directory reported by Simulated when none
// was seeded. It is a platform-agnostic placeholder, not a real location.
const DefaultTempDir = "/tmp"

// Simulated reproduces the Env contract over an in-memory snapshot, with no
// interaction with the real process environment. A new instance starts empty,
// inheriting nothing from the process, and shares no state with any other
// instance.
//
// Enumeration operations iterate over a copy taken at call time, so mutating
// the environment during iteration cannot corrupt an in-progress enumeration.
// Variable enumeration is sorted by name, so repeated reads of an unchanged
// snapshot observe the same order.
//
// Unlike Native, SetCurrentDir accepts any path without checking that it
// exists anywhere; simulated tests should not depend on a real filesystem.
//
// A Simulated instance provides no internal synchronization; sharing one
// across goroutines requires external locking by the owner.
type Simulated struct {
	curDir     sql.Null[string]
	executable sql.Null[string]
	homeDir    sql.Null[string]
	tempDir    sql.Null[string]
	vars       map[string]string
	args       []string
}

var _ Env = (*Simulated)(nil)

// NewSimulated creates a Simulated environment with an empty default
// snapshot.
func NewSimulated() *Simulated {
	return &Simulated{vars: make(map[string]string)}
}

// Args returns the seeded arguments.
func (s *Simulated) Args() iter.Seq[string] {
	return slices.Values(slices.Clone(s.args))
}

// ArgsRaw returns the seeded arguments as raw bytes.
func (s *Simulated) ArgsRaw() iter.Seq[[]byte] {
	args := slices.Clone(s.args)
	return func(yield func([]byte) bool) {
		for _, arg := range args {
			if !yield([]byte(arg)) {
				return
			}
		}
	}
}

// CurrentDir returns the simulated working directory. It fails with
// ErrPathUnresolved if none was set.
func (s *Simulated) CurrentDir() (string, error) {
	if !s.curDir.Valid {
		return "", serrors.With(ErrPathUnresolved, "attr", "current directory")
	}
	return s.curDir.V, nil
}

// Executable returns the seeded executable path. It fails with
// ErrPathUnresolved if none was set.
func (s *Simulated) Executable() (string, error) {
	if !s.executable.Valid {
		return "", serrors.With(ErrPathUnresolved, "attr", "executable")
	}
	return s.executable.V, nil
}

// HomeDir returns the seeded home directory, if one was set.
func (s *Simulated) HomeDir() (string, bool) {
	return s.homeDir.V, s.homeDir.Valid
}

// RemoveVar removes the given variable from the snapshot, leaving it
// indistinguishable from one never set. Removing an unset variable is a
// no-op. It never fails.
func (s *Simulated) RemoveVar(name string) error {
	delete(s.vars, name)
	return nil
}

// SetCurrentDir sets the simulated working directory. It accepts any path
// and never fails.
func (s *Simulated) SetCurrentDir(path string) error {
	s.curDir = sql.Null[string]{V: path, Valid: true}
	return nil
}

// SetVar sets the given variable in the snapshot, overwriting any previous
// value. It never fails.
func (s *Simulated) SetVar(name, value string) error {
	s.vars[name] = value
	return nil
}

// TempDir returns the seeded temporary directory, or DefaultTempDir if none
// was set.
func (s *Simulated) TempDir() string {
	if !s.tempDir.Valid {
		return DefaultTempDir
	}
	return s.tempDir.V
}

// Var returns the value of the given variable. Simulated values are always
// valid text, so the only possible failure is ErrVarNotPresent.
func (s *Simulated) Var(name string) (string, error) {
	val, ok := s.vars[name]
	if !ok {
		return "", serrors.With(ErrVarNotPresent, "name", name)
	}
	return val, nil
}

// VarRaw returns the raw value of the given variable, or false if it isn't
// set.
func (s *Simulated) VarRaw(name string) ([]byte, bool) {
	val, ok := s.vars[name]
	if !ok {
		return nil, false
	}
	return []byte(val), true
}

// Vars returns all variables in the snapshot at the moment of the call,
// sorted by name.
func (s *Simulated) Vars() iter.Seq2[string, string] {
	snapshot := maps.Clone(s.vars)
	names := slices.Sorted(maps.Keys(snapshot))
	return func(yield func(string, string) bool) {
		for _, name := range names {
			if !yield(name, snapshot[name]) {
				return
			}
		}
	}
}

// VarsRaw returns all variables in the snapshot at the moment of the call,
// sorted by name, with raw values.
func (s *Simulated) VarsRaw() iter.Seq2[string, []byte] {
	snapshot := maps.Clone(s.vars)
	names := slices.Sorted(maps.Keys(snapshot))
	return func(yield func(string, []byte) bool) {
		for _, name := range names {
			if !yield(name, []byte(snapshot[name])) {
				return
			}
		}
	}
}

// SetArgs seeds the simulated program arguments, the first conventionally
// being the program name. Like the other seeding methods, it is not part of
// the Env contract: the real environment offers no way to change these
// attributes at runtime, so configuring them is a backend-specific concern.
func (s *Simulated) SetArgs(args ...string) {
	s.args = slices.Clone(args)
}

// SetExecutable seeds the path reported by Executable.
func (s *Simulated) SetExecutable(path string) {
	s.executable = sql.Null[string]{V: path, Valid: true}
}

// SetHomeDir seeds the path reported by HomeDir.
func (s *Simulated) SetHomeDir(path string) {
	s.homeDir = sql.Null[string]{V: path, Valid: true}
}

// SetTempDir seeds the path reported by TempDir.
func (s *Simulated) SetTempDir(path string) {
	s.tempDir = sql.Null[string]{V: path, Valid: true}
}
