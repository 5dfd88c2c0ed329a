// Package process runs the materialized task scripts as child shells and
// reports their outcome, grounded on the teacher's internal/process
// package as referenced from internal/run/run.go (e.g. e.processes.Exec,
// process.ErrClosing, process.ChildExit) — that package's body was not
// present in the retrieved slice, so its shape here is reconstructed from
// those call sites.
package process

import (
	"bytes"
	"errors"
	"os/exec"
	"sync"
)

// ErrClosing is returned by Exec once the Manager has been closed, so
// in-flight workers stop launching new children during shutdown.
var ErrClosing = errors.New("process: manager is closing")

// ChildExit is the outcome of one child process invocation.
type ChildExit struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Manager tracks whether new children may still be launched. The scheduler
// holds one Manager for the whole run and closes it once a task fails, so
// workers that haven't started their child yet bail out instead of racing
// further work onto a failing run.
type Manager struct {
	mu      sync.Mutex
	closing bool
}

// NewManager returns a Manager accepting new work.
func NewManager() *Manager {
	return &Manager{}
}

// Close marks the manager as shutting down; subsequent Exec calls fail
// fast with ErrClosing.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closing = true
	m.mu.Unlock()
}

// Exec runs cmd to completion, capturing stdout/stderr, and reports its
// exit code rather than treating a non-zero exit as a Go error — that
// judgment belongs to the caller (spec.md §4.6 step 5).
func (m *Manager) Exec(cmd *exec.Cmd) (*ChildExit, error) {
	m.mu.Lock()
	closing := m.closing
	m.mu.Unlock()
	if closing {
		return nil, ErrClosing
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	exit := &ChildExit{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr == nil {
		exit.ExitCode = 0
		return exit, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exit.ExitCode = exitErr.ExitCode()
		return exit, nil
	}
	return nil, runErr
}
