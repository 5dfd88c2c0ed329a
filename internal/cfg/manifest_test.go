package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
otto:
  name: demo
tasks:
  build:
    help: builds the thing
    action: echo building
  test:
    help: tests the thing
    after: [build]
    action: echo testing
  deploy:
    help: deploys the thing
    before: [test]
    action: echo deploying
`

func TestParseOrderAndSettings(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Settings.Name)
	assert.Equal(t, DefaultAPI, m.Settings.API)
	assert.Equal(t, []string{"build", "test", "deploy"}, m.Tasks.Order)
}

func TestNormalizeFoldsBeforeIntoAfter(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	// deploy declares "before: [test]", which should fold into test.After.
	assert.Contains(t, m.Tasks.ByName["test"].After, "deploy")
	assert.Contains(t, m.Tasks.ByName["test"].After, "build")
}

func TestNormalizeContradictionIsError(t *testing.T) {
	raw := `
tasks:
  a:
    action: echo a
    before: [b]
  b:
    action: echo b
    before: [a]
`
	_, err := Parse([]byte(raw))
	assert.Error(t, err)
}

func TestNormalizeUnknownBeforeTargetIsError(t *testing.T) {
	raw := `
tasks:
  a:
    action: echo a
    before: [missing]
`
	_, err := Parse([]byte(raw))
	assert.Error(t, err)
}

func TestDefaultManifest(t *testing.T) {
	m := Default()
	assert.Equal(t, DefaultSettings(), m.Settings)
	assert.Empty(t, m.Tasks.Order)
}

func TestHashBytesStable(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	c := HashBytes([]byte("world"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
