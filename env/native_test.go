package env_test

import (
	"maps"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/envio/env"
)

func TestNativeVar(t *testing.T) {
	nenv := env.NewNative()

	t.Run("ok/present", func(t *testing.T) {
		t.Setenv("ENVIO_TEST_VAR", "some value")

		val, err := nenv.Var("ENVIO_TEST_VAR")
		require.NoError(t, err)
		assert.Equal(t, "some value", val)

		raw, ok := nenv.VarRaw("ENVIO_TEST_VAR")
		assert.True(t, ok)
		assert.Equal(t, []byte("some value"), raw)
	})

	t.Run("err/not_present", func(t *testing.T) {
		_, err := nenv.Var("ENVIO_TEST_VAR_THAT_IS_NEVER_SET")
		assert.ErrorIs(t, err, env.ErrVarNotPresent)

		raw, ok := nenv.VarRaw("ENVIO_TEST_VAR_THAT_IS_NEVER_SET")
		assert.False(t, ok)
		assert.Nil(t, raw)
	})

	t.Run("err/not_unicode", func(t *testing.T) {
		t.Setenv("ENVIO_TEST_RAW", "\xff\xfe")

		_, err := nenv.Var("ENVIO_TEST_RAW")
		assert.ErrorIs(t, err, env.ErrVarNotUnicode)

		// The raw form is the escape hatch, and round-trips the value.
		raw, ok := nenv.VarRaw("ENVIO_TEST_RAW")
		assert.True(t, ok)
		assert.Equal(t, []byte{0xff, 0xfe}, raw)
	})
}

func TestNativeSetVar(t *testing.T) {
	// Seed through the testing package so the previous state is restored.
	t.Setenv("ENVIO_TEST_VAR", "initial")

	nenv := env.NewNative()
	require.NoError(t, nenv.SetVar("ENVIO_TEST_VAR", "changed"))
	assert.Equal(t, "changed", os.Getenv("ENVIO_TEST_VAR"))

	require.NoError(t, nenv.RemoveVar("ENVIO_TEST_VAR"))
	_, ok := os.LookupEnv("ENVIO_TEST_VAR")
	assert.False(t, ok)

	// Removing an unset variable is a no-op.
	require.NoError(t, nenv.RemoveVar("ENVIO_TEST_VAR"))
}

func TestNativeVars(t *testing.T) {
	t.Setenv("ENVIO_TEST_VAR", "some value")
	t.Setenv("ENVIO_TEST_RAW", "\xff\xfe")

	nenv := env.NewNative()

	// The text form omits entries whose value is not valid UTF-8.
	vars := maps.Collect(nenv.Vars())
	assert.Equal(t, "some value", vars["ENVIO_TEST_VAR"])
	_, ok := vars["ENVIO_TEST_RAW"]
	assert.False(t, ok)

	// The raw form includes them, with the bytes intact.
	varsRaw := maps.Collect(nenv.VarsRaw())
	assert.Equal(t, []byte("some value"), varsRaw["ENVIO_TEST_VAR"])
	assert.Equal(t, []byte{0xff, 0xfe}, varsRaw["ENVIO_TEST_RAW"])
}

func TestNativeHomeDir(t *testing.T) {
	t.Setenv("HOME", "/first/home")

	nenv := env.NewNative()

	home, ok := nenv.HomeDir()
	require.True(t, ok)
	assert.Equal(t, "/first/home", home)

	// Changes to the live process environment are observed on the next
	// call, with nothing cached from startup.
	t.Setenv("HOME", "/second/home")
	home, ok = nenv.HomeDir()
	require.True(t, ok)
	assert.Equal(t, "/second/home", home)
}

func TestNativeArgs(t *testing.T) {
	t.Parallel()

	nenv := env.NewNative()

	args := slices.Collect(nenv.Args())
	assert.Equal(t, os.Args, args)

	argsRaw := slices.Collect(nenv.ArgsRaw())
	require.Len(t, argsRaw, len(os.Args))
	for i, arg := range os.Args {
		assert.Equal(t, []byte(arg), argsRaw[i])
	}
}

func TestNativeCurrentDir(t *testing.T) {
	t.Parallel()

	nenv := env.NewNative()

	dir, err := nenv.CurrentDir()
	require.NoError(t, err)

	osDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, osDir, dir)
}

func TestNativeSetCurrentDir(t *testing.T) {
	nenv := env.NewNative()

	t.Run("ok/existing_dir", func(t *testing.T) {
		// Restores the working directory when the subtest finishes.
		t.Chdir(t.TempDir())

		target := t.TempDir()
		require.NoError(t, nenv.SetCurrentDir(target))

		osDir, err := os.Getwd()
		require.NoError(t, err)

		dir, err := nenv.CurrentDir()
		require.NoError(t, err)
		assert.Equal(t, osDir, dir)
	})

	t.Run("err/nonexistent_dir", func(t *testing.T) {
		err := nenv.SetCurrentDir("/definitely/not/a/real/dir")
		assert.ErrorIs(t, err, env.ErrPathUnresolved)
	})
}

func TestNativePaths(t *testing.T) {
	t.Parallel()

	nenv := env.NewNative()

	exe, err := nenv.Executable()
	require.NoError(t, err)
	assert.NotEmpty(t, exe)

	assert.NotEmpty(t, nenv.TempDir())
	assert.Equal(t, os.TempDir(), nenv.TempDir())

	if home, ok := nenv.HomeDir(); ok {
		assert.NotEmpty(t, home)
	}
}
