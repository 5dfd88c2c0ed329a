package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAnsi(t *testing.T) {
	colored := "\x1b[31merror\x1b[0m: something broke"
	assert.Equal(t, "error: something broke", StripAnsi(colored))
}

func TestStripAnsiNoEscapes(t *testing.T) {
	plain := "plain text"
	assert.Equal(t, plain, StripAnsi(plain))
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "task build", Sprintf("task %s", "build"))
}
