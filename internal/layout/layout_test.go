package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareCreatesLayout(t *testing.T) {
	home := t.TempDir()
	l, err := Prepare(home, "abcdef0123456789", 1700000000)
	require.NoError(t, err)

	assert.DirExists(t, l.HashDir)
	assert.DirExists(t, l.RunDir)

	link := filepath.Join(l.RunDir, "abcdef012345")
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, l.HashDir, target)

	latestTarget, err := os.Readlink(l.LatestDir)
	require.NoError(t, err)
	assert.Equal(t, l.RunDir, latestTarget)
}

func TestPrepareIsIdempotentOnHashDir(t *testing.T) {
	home := t.TempDir()
	_, err := Prepare(home, "samehash0000", 1700000001)
	require.NoError(t, err)
	_, err = Prepare(home, "samehash0000", 1700000002)
	require.NoError(t, err)
}

func TestPrepareFailsOnDuplicateTimestamp(t *testing.T) {
	home := t.TempDir()
	_, err := Prepare(home, "hash", 42)
	require.NoError(t, err)
	_, err = Prepare(home, "hash", 42)
	assert.Error(t, err)
}

func TestMaterializeScript(t *testing.T) {
	home := t.TempDir()
	l, err := Prepare(home, "hash", 99)
	require.NoError(t, err)

	path, err := l.MaterializeScript("build", "echo hi")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "echo hi", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
