package cfg

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, "1", s.API)
	assert.Equal(t, "1", s.Verbosity)
	assert.Equal(t, DefaultHome, s.Home)
	assert.Equal(t, []string{"*"}, s.Tasks)
	assert.Equal(t, runtime.NumCPU(), s.Jobs)
}

func TestSettingsUnmarshalYAMLAppliesDefaultsThenOverrides(t *testing.T) {
	var s Settings
	raw := []byte(`
name: demo
jobs: 4
`)
	require.NoError(t, yaml.Unmarshal(raw, &s))
	assert.Equal(t, "demo", s.Name)
	assert.Equal(t, 4, s.Jobs)
	// untouched fields keep their defaults
	assert.Equal(t, "1", s.API)
	assert.Equal(t, []string{"*"}, s.Tasks)
}
