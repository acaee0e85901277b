package env

import (
	"iter"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"

	serrors "go.hackfix.me/envio/errors"
)

// Native provides access to the environment of the current process. It holds
// no state of its own: every operation delegates directly to the operating
// system, with no caching or validation, so results always reflect the live
// process state, and mutations are real and irreversible. Tests that need
// isolation should use Simulated instead.
type Native struct{}

var _ Env = Native{}

// NewNative creates a Native environment.
func NewNative() Native {
	return Native{}
}

// Args returns the arguments the process was started with.
func (Native) Args() iter.Seq[string] {
	return slices.Values(os.Args)
}

// ArgsRaw returns the arguments the process was started with, as raw bytes.
func (Native) ArgsRaw() iter.Seq[[]byte] {
	args := os.Args
	return func(yield func([]byte) bool) {
		for _, arg := range args {
			if !yield([]byte(arg)) {
				return
			}
		}
	}
}

// CurrentDir returns the working directory of the process.
func (Native) CurrentDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", serrors.WithCause(ErrPathUnresolved, err, "attr", "current directory")
	}
	return dir, nil
}

// Executable returns the path of the running executable.
func (Native) Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", serrors.WithCause(ErrPathUnresolved, err, "attr", "executable")
	}
	return exe, nil
}

// HomeDir returns the current user's home directory, if known. The home
// path is re-resolved on every call, so changes to the process environment
// are reflected immediately.
func (Native) HomeDir() (string, bool) {
	xdg.Reload()
	if xdg.Home == "" {
		return "", false
	}
	return xdg.Home, true
}

// RemoveVar removes the given variable from the process environment.
func (Native) RemoveVar(name string) error {
	return os.Unsetenv(name)
}

// SetCurrentDir changes the working directory of the process. It fails with
// ErrPathUnresolved if the path does not reference an accessible directory.
func (Native) SetCurrentDir(path string) error {
	if err := os.Chdir(path); err != nil {
		return serrors.WithCause(ErrPathUnresolved, err, "path", path)
	}
	return nil
}

// SetVar sets the given variable in the process environment.
func (Native) SetVar(name, value string) error {
	return os.Setenv(name, value)
}

// TempDir returns the platform's directory for temporary files.
func (Native) TempDir() string {
	return os.TempDir()
}

// Var returns the value of the given process environment variable.
func (Native) Var(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "", serrors.With(ErrVarNotPresent, "name", name)
	}
	if !utf8.ValidString(val) {
		return "", serrors.With(ErrVarNotUnicode, "name", name)
	}
	return val, nil
}

// VarRaw returns the raw value of the given process environment variable, or
// false if it isn't set.
func (Native) VarRaw(name string) ([]byte, bool) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return nil, false
	}
	return []byte(val), true
}

// Vars returns all process environment variables that are valid UTF-8.
func (Native) Vars() iter.Seq2[string, string] {
	environ := os.Environ()
	return func(yield func(string, string) bool) {
		for _, kv := range environ {
			name, val, ok := strings.Cut(kv, "=")
			if !ok || !utf8.ValidString(name) || !utf8.ValidString(val) {
				continue
			}
			if !yield(name, val) {
				return
			}
		}
	}
}

// VarsRaw returns all process environment variables, with raw values.
func (Native) VarsRaw() iter.Seq2[string, []byte] {
	environ := os.Environ()
	return func(yield func(string, []byte) bool) {
		for _, kv := range environ {
			name, val, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			if !yield(name, []byte(val)) {
				return
			}
		}
	}
}
