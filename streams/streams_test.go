package streams_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/envio/streams"
)

// echoLine is a stand-in consumer: it reads all input and writes it to the
// output stream, reporting problems on the error stream.
func echoLine(p streams.Provider) {
	data, err := io.ReadAll(p.Input())
	if err != nil {
		fmt.Fprintf(p.Error(), "read failed: %v\n", err)
		return
	}
	fmt.Fprintf(p.Output(), "%s", data)
}

func TestSimulated(t *testing.T) {
	t.Parallel()

	sim := streams.NewSimulated()
	sim.WriteInput([]byte("hello\n"))

	echoLine(sim)

	assert.Equal(t, []byte("hello\n"), sim.OutputBytes())
	assert.Empty(t, sim.ErrorBytes())
}

func TestSimulatedReset(t *testing.T) {
	t.Parallel()

	sim := streams.NewSimulated()
	sim.WriteInput([]byte("unread input"))
	fmt.Fprint(sim.Output(), "out")
	fmt.Fprint(sim.Error(), "err")

	sim.Reset()

	assert.Empty(t, sim.OutputBytes())
	assert.Empty(t, sim.ErrorBytes())
	data, err := io.ReadAll(sim.Input())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSimulatedIsolation(t *testing.T) {
	t.Parallel()

	first := streams.NewSimulated()
	second := streams.NewSimulated()

	fmt.Fprint(first.Output(), "only on first")

	assert.Equal(t, []byte("only on first"), first.OutputBytes())
	assert.Empty(t, second.OutputBytes())
}

func TestStd(t *testing.T) {
	t.Parallel()

	std := streams.NewStd()
	assert.NotNil(t, std.Input())
	assert.NotNil(t, std.Output())
	assert.NotNil(t, std.Error())
}
