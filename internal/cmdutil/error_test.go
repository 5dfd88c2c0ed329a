package cmdutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWrapsError(t *testing.T) {
	base := errors.New("boom")
	err := New(base, ExitBindingError)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, ExitBindingError, err.ExitCode)
	assert.False(t, err.Silent)
	assert.ErrorIs(t, err, base)
}

func TestNewfFormats(t *testing.T) {
	err := Newf(ExitPlanningError, "task %q missing", "build")
	assert.Equal(t, `task "build" missing`, err.Error())
	assert.Equal(t, ExitPlanningError, err.ExitCode)
}

func TestSilentExit(t *testing.T) {
	err := SilentExit(ExitOK)
	assert.True(t, err.Silent)
	assert.Equal(t, ExitOK, err.ExitCode)
}

func TestErrorsAsUnwraps(t *testing.T) {
	var err error = New(errors.New("bad"), ExitLayoutError)
	var cmdErr *Error
	assert.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, ExitLayoutError, cmdErr.ExitCode)
}
