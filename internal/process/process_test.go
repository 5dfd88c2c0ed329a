package process

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCapturesOutputAndExitCode(t *testing.T) {
	m := NewManager()
	cmd := exec.Command("sh", "-c", "echo out; echo err 1>&2; exit 3")
	exit, err := m.Exec(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, exit.ExitCode)
	assert.Equal(t, "out\n", string(exit.Stdout))
	assert.Equal(t, "err\n", string(exit.Stderr))
}

func TestExecSuccess(t *testing.T) {
	m := NewManager()
	cmd := exec.Command("sh", "-c", "exit 0")
	exit, err := m.Exec(cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, exit.ExitCode)
}

func TestExecAfterCloseReturnsErrClosing(t *testing.T) {
	m := NewManager()
	m.Close()
	_, err := m.Exec(exec.Command("sh", "-c", "exit 0"))
	assert.ErrorIs(t, err, ErrClosing)
}
