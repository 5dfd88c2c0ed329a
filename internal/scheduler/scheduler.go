// Package scheduler executes a Plan with bounded parallelism, grounded on
// the Rust original's cmd/scheduler.rs::Scheduler::run (Mutex+Condvar
// readiness loop) and the teacher's internal/run.go execution loop
// (per-task prefixed output via mitchellh/cli, process.Manager for the
// child process boundary).
package scheduler

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	mapset "github.com/deckarep/golang-set"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/scottidler/otto/internal/binder"
	"github.com/scottidler/otto/internal/cfg"
	"github.com/scottidler/otto/internal/core"
	"github.com/scottidler/otto/internal/layout"
	"github.com/scottidler/otto/internal/process"
	"github.com/scottidler/otto/internal/ui"
)

// Scheduler runs every task in a Plan with Jobs workers, honoring the
// dependency graph (spec.md §4.6).
type Scheduler struct {
	Plan      *core.Plan
	Layout    *layout.Layout
	Jobs      int
	Processes *process.Manager
	UI        cli.Ui
	colors    *ColorCache
}

// New builds a Scheduler for the given plan.
func New(plan *core.Plan, l *layout.Layout, jobs int, ui cli.Ui) *Scheduler {
	if jobs < 1 {
		jobs = 1
	}
	return &Scheduler{Plan: plan, Layout: l, Jobs: jobs, Processes: process.NewManager(), UI: ui, colors: NewColorCache()}
}

// state is the queue/completion-set shared across workers, protected by mu
// and signaled by cond, mirroring the Rust original's
// Arc<Mutex<HashSet>>/Condvar pair. The completion and queued sets use
// mapset.Set (the same library the teacher uses for its package-selection
// sets) rather than a plain map, since membership is all either side ever
// needs.
type state struct {
	mu        sync.Mutex
	cond      *sync.Cond
	queue     []string
	queued    mapset.Set
	completed mapset.Set
	failed    bool
	firstErr  error
	total     int
}

// Run executes every task in the plan's execution set, returning an error
// naming the first task that failed, or a count-mismatch error if the run
// terminates without every task completing (spec.md §4.6 "Final check").
// Workers run under an errgroup.Group sized to Jobs, the bounded worker
// pool spec.md §4.6 calls for.
func (s *Scheduler) Run() error {
	names := s.Plan.Graph.TaskNames()
	st := &state{
		queued:    mapset.NewSet(),
		completed: mapset.NewSet(),
		total:     len(names),
	}
	st.cond = sync.NewCond(&st.mu)

	st.mu.Lock()
	for _, name := range names {
		if s.ready(name, st.completed) {
			st.queue = append(st.queue, name)
			st.queued.Add(name)
		}
	}
	st.mu.Unlock()

	var g errgroup.Group
	for i := 0; i < s.Jobs; i++ {
		g.Go(func() error {
			s.work(st)
			return nil
		})
	}
	_ = g.Wait()

	if st.failed {
		return st.firstErr
	}
	if st.completed.Cardinality() != st.total {
		return fmt.Errorf("scheduler: not all tasks completed: completed %d, expected %d", st.completed.Cardinality(), st.total)
	}
	return nil
}

// ready reports whether every dependency of name is already complete.
func (s *Scheduler) ready(name string, completed mapset.Set) bool {
	for _, dep := range s.Plan.Graph.Dependencies(name) {
		if !completed.Contains(dep) {
			return false
		}
	}
	return true
}

// work is one worker's loop: pull a ready task, release the lock, execute
// the child process, then reacquire the lock to record completion and
// enqueue newly-ready tasks. The lock is never held across the child wait.
func (s *Scheduler) work(st *state) {
	for {
		st.mu.Lock()
		for len(st.queue) == 0 && !st.failed && st.completed.Cardinality() < st.total {
			st.cond.Wait()
		}
		if st.failed || st.completed.Cardinality() >= st.total {
			st.mu.Unlock()
			return
		}
		name := st.queue[0]
		st.queue = st.queue[1:]
		st.mu.Unlock()

		err := s.execute(name)

		st.mu.Lock()
		if err != nil {
			if !st.failed {
				st.failed = true
				st.firstErr = err
				s.Processes.Close()
			}
			st.cond.Broadcast()
			st.mu.Unlock()
			continue
		}
		st.completed.Add(name)
		for _, candidate := range s.Plan.Graph.TaskNames() {
			if st.queued.Contains(candidate) || st.completed.Contains(candidate) {
				continue
			}
			if s.ready(candidate, st.completed) {
				st.queue = append(st.queue, candidate)
				st.queued.Add(candidate)
			}
		}
		st.cond.Broadcast()
		st.mu.Unlock()
	}
}

// execute materializes and runs one task's action script, per spec.md
// §4.6 steps 3-5.
func (s *Scheduler) execute(name string) error {
	spec, ok := s.Plan.Specs[name]
	if !ok {
		return fmt.Errorf("scheduler: no bound spec for task %q", name)
	}

	scriptPath, err := s.Layout.MaterializeScript(name, spec.Task.Action)
	if err != nil {
		return err
	}

	cmd := exec.Command("sh", scriptPath)
	cmd.Env = append(os.Environ(), taskEnv(spec)...)

	prefix := s.colors.Prefix(name)
	taskUI := &cli.PrefixedUi{
		OutputPrefix: prefix,
		InfoPrefix:   prefix,
		ErrorPrefix:  prefix,
		WarnPrefix:   prefix,
		Ui:           s.UI,
	}

	taskUI.Output(ui.Dim("running"))

	exit, err := s.Processes.Exec(cmd)
	if err != nil {
		if errors.Is(err, process.ErrClosing) {
			return nil
		}
		return errors.Wrapf(err, "task %q", name)
	}
	if len(exit.Stdout) > 0 {
		taskUI.Output(ui.StripAnsi(string(exit.Stdout)))
	}
	if exit.ExitCode != 0 {
		if len(exit.Stderr) > 0 {
			taskUI.Error(ui.StripAnsi(string(exit.Stderr)))
		}
		return fmt.Errorf("task %q failed with exit code %d", name, exit.ExitCode)
	}
	return nil
}

// taskEnv composes KEY=VALUE pairs from a TaskSpec's scalar Item values,
// skipping lists, dicts, and empty values (spec.md §4.6 step 3).
func taskEnv(spec binder.TaskSpec) []string {
	var env []string
	for name, v := range spec.Values {
		if v.Kind == cfg.KindItem {
			env = append(env, fmt.Sprintf("%s=%s", name, v.Item))
		}
	}
	return env
}
