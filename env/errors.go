package env

import "errors"

// Error kinds returned by Env operations. They are wrapped with structured
// metadata naming the variable or path attribute involved, and should be
// matched with errors.Is.
var (
	// ErrPathUnresolved means a path-valued attribute of the environment
	// could not be determined.
	ErrPathUnresolved = errors.New("path could not be resolved")

	// ErrVarNotPresent means the environment variable is not set.
	ErrVarNotPresent = errors.New("environment variable not present")

	// ErrVarNotUnicode means the value of the environment variable is not
	// valid UTF-8. VarRaw is the escape hatch for reading such values.
	ErrVarNotUnicode = errors.New("environment variable value is not valid UTF-8")
)
