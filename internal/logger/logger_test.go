package logger

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, hclog.Warn, LevelForVerbosity("0"))
	assert.Equal(t, hclog.Info, LevelForVerbosity("1"))
	assert.Equal(t, hclog.Debug, LevelForVerbosity("2"))
	assert.Equal(t, hclog.Trace, LevelForVerbosity("3"))
	assert.Equal(t, hclog.Trace, LevelForVerbosity("9"))
}

func TestLevelForVerbosityNonNumericDefaultsToInfo(t *testing.T) {
	assert.Equal(t, hclog.Info, LevelForVerbosity("garbage"))
}

func TestNewBuildsLogger(t *testing.T) {
	l := New("2")
	assert.Equal(t, hclog.Debug, l.GetLevel())
}
