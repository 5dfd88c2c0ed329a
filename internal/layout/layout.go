// Package layout materializes the per-run directory structure on disk:
// a content-addressed hidden directory per manifest, a timestamped run
// directory, a short-hash symlink, and a "latest" pointer (spec.md §4.5).
// It is new code (the teacher has no equivalent), built in the teacher's
// idiom: mitchellh/go-homedir for `~` expansion, nightlyone/lockfile to
// guard against concurrent writers, and plain os/path calls otherwise
// (see DESIGN.md).
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nightlyone/lockfile"
)

// Layout is the resolved set of directories and files for one run.
type Layout struct {
	Home      string // Settings.home, expanded and absolute
	HashDir   string // home/.{manifest_hash}
	RunDir    string // home/{timestamp}
	LatestDir string // home/latest (symlink to RunDir)
}

// Prepare performs the directory discipline in spec.md §4.5: expand and
// create home, create the hidden hash directory idempotently, create a
// fresh timestamp directory (fatal on collision, since the timestamp is
// the layout's only uniqueness source), link the short hash inside it,
// and repoint home/latest.
func Prepare(home, manifestHash string, timestamp int64) (*Layout, error) {
	expanded, err := homedir.Expand(home)
	if err != nil {
		return nil, fmt.Errorf("layout: expanding home %q: %w", home, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("layout: resolving home %q: %w", home, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("layout: creating home %q: %w", abs, err)
	}

	lock, err := acquireLock(abs)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	hashDir := filepath.Join(abs, "."+manifestHash)
	if err := os.Mkdir(hashDir, 0o755); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("layout: creating hash directory %q: %w", hashDir, err)
	}

	runDir := filepath.Join(abs, fmt.Sprintf("%d", timestamp))
	if err := os.Mkdir(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("layout: creating run directory %q: %w", runDir, err)
	}

	shortHash := manifestHash
	if len(shortHash) > 12 {
		shortHash = shortHash[:12]
	}
	linkPath := filepath.Join(runDir, shortHash)
	if err := os.Symlink(hashDir, linkPath); err != nil {
		return nil, fmt.Errorf("layout: linking %q: %w", linkPath, err)
	}

	latestPath := filepath.Join(abs, "latest")
	_ = os.Remove(latestPath)
	if err := os.Symlink(runDir, latestPath); err != nil {
		return nil, fmt.Errorf("layout: linking %q: %w", latestPath, err)
	}

	return &Layout{Home: abs, HashDir: hashDir, RunDir: runDir, LatestDir: latestPath}, nil
}

// acquireLock guards the mkdir/symlink sequence above against a second
// otto process racing on the same home directory (spec.md §5's "single
// concurrent writer per home directory" assumption).
func acquireLock(home string) (lockfile.Lockfile, error) {
	lock, err := lockfile.New(filepath.Join(home, ".otto.lock"))
	if err != nil {
		return "", fmt.Errorf("layout: building lock: %w", err)
	}
	if err := lock.TryLock(); err != nil {
		return "", fmt.Errorf("layout: acquiring lock on %q: %w", home, err)
	}
	return lock, nil
}

// MaterializeScript writes a task's action bytes to runDir/taskName so the
// scheduler can hand the path to `sh` (spec.md §4.5, §4.6 step 4).
func (l *Layout) MaterializeScript(taskName, action string) (string, error) {
	path := filepath.Join(l.RunDir, taskName)
	if err := os.WriteFile(path, []byte(action), 0o755); err != nil {
		return "", fmt.Errorf("layout: materializing script for %q: %w", taskName, err)
	}
	return path, nil
}
