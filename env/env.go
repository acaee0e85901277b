// Package env defines the interface for inspection and manipulation of the
// process environment, and two implementations of it: Native, which operates
// on the real environment of the current process, and Simulated, which
// operates on an in-memory snapshot that tests can seed and inspect.
//
// Code written against Env can be exercised in tests with deterministic,
// isolated state, and run in production against the real process environment,
// without changes.
package env

import "iter"

// Env provides inspection and manipulation of the process environment.
//
// Sequence-valued operations return finite, rewindable iterators over a
// point-in-time snapshot taken when the method is called; each call produces
// a fresh snapshot.
//
// Variable lookup and enumeration come in two forms. The text forms
// guarantee valid UTF-8 and fail (or omit entries) when a value isn't; the
// raw forms expose values as byte slices, which round-trip any value the
// platform can hold losslessly and never fail on malformed text.
type Env interface {
	// Args returns the arguments the program was started with, the first
	// conventionally being the program name.
	Args() iter.Seq[string]

	// ArgsRaw returns the arguments the program was started with, as raw
	// platform-native byte strings.
	ArgsRaw() iter.Seq[[]byte]

	// CurrentDir returns the current working directory. It fails with
	// ErrPathUnresolved if the directory cannot be determined.
	CurrentDir() (string, error)

	// Executable returns the path of the running executable. It fails with
	// ErrPathUnresolved if the path cannot be determined.
	Executable() (string, error)

	// HomeDir returns the current user's home directory, if known. A false
	// result means "unknown", not an error.
	//
	// The meaning of "home directory" varies across platforms, and the
	// fallbacks applied when it isn't explicitly configured are
	// OS-specific. Callers that need precise semantics should resolve the
	// path themselves from the variables they care about.
	HomeDir() (string, bool)

	// RemoveVar removes the given variable from the environment. Removing a
	// variable that isn't set is a no-op.
	RemoveVar(name string) error

	// SetCurrentDir changes the current working directory.
	SetCurrentDir(path string) error

	// SetVar sets the given variable, overwriting any previous value.
	SetVar(name, value string) error

	// TempDir returns the directory to use for temporary files. It never
	// fails, falling back to a platform default.
	TempDir() string

	// Var returns the value of the given variable. It fails with
	// ErrVarNotPresent if the variable isn't set, and ErrVarNotUnicode if
	// its value is not valid UTF-8.
	Var(name string) (string, error)

	// VarRaw returns the raw value of the given variable, or false if it
	// isn't set.
	VarRaw(name string) ([]byte, bool)

	// Vars returns all (name, value) variable pairs. Entries whose name or
	// value is not valid UTF-8 are omitted; use VarsRaw to observe them.
	Vars() iter.Seq2[string, string]

	// VarsRaw returns all (name, raw value) variable pairs.
	VarsRaw() iter.Seq2[string, []byte]
}
