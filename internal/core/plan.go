package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	mapset "github.com/deckarep/golang-set"

	"github.com/scottidler/otto/internal/binder"
	"github.com/scottidler/otto/internal/cfg"
)

// Plan is the transitive closure of requested tasks, laid out as a
// dependency graph with each vertex bound to a concrete TaskSpec
// (spec.md §3, §4.4).
type Plan struct {
	Graph *Graph
	Specs map[string]binder.TaskSpec
}

// Build selects the transitive closure of `selected` (after expanding a
// literal "*" to every manifest task in declaration order), walks each
// selected task's `after` dependencies depth-first exactly as the Rust
// original's get_tasks_to_execute/add_dependencies does, and assembles the
// resulting Graph plus per-task TaskSpecs.
//
// specs must already contain a bound TaskSpec for every task named on the
// command line; tasks pulled in only as dependencies get their TaskSpec
// synthesized here from declared defaults.
func Build(manifest *cfg.Manifest, specs map[string]binder.TaskSpec, selected []string) (*Plan, error) {
	expanded := expandSelection(selected, manifest.Tasks.Order)

	plan := &Plan{Graph: NewGraph(), Specs: map[string]binder.TaskSpec{}}
	visited := mapset.NewSet()

	for _, name := range expanded {
		if visited.Contains(name) {
			continue
		}
		path := mapset.NewSet()
		path.Add(name)
		if err := addDependencies(manifest, plan, name, visited, path); err != nil {
			return nil, err
		}
	}

	for name, spec := range specs {
		if _, ok := plan.Specs[name]; ok {
			plan.Specs[name] = spec
		}
	}

	if err := plan.Graph.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// expandSelection resolves a literal "*" entry to every declared task name
// in manifest order, and otherwise returns selected verbatim.
func expandSelection(selected []string, allNames []string) []string {
	for _, s := range selected {
		if s == "*" {
			out := make([]string, 0, len(allNames))
			out = append(out, allNames...)
			return out
		}
	}
	return selected
}

// addDependencies performs the depth-first walk used by the Rust
// original's add_dependencies: path tracks the current recursion stack so
// a cycle is reported by naming both the task and the dependency that
// closes the loop, and visited prevents redundant re-walks of tasks
// already fully resolved. Both sets are mapset.Set, the teacher's own
// set library, used here exactly as it is at the package-selection call
// sites in run.go: Contains for membership, Add/Remove for mutation.
func addDependencies(manifest *cfg.Manifest, plan *Plan, name string, visited, path mapset.Set) error {
	task, ok := manifest.Tasks.ByName[name]
	if !ok {
		return fmt.Errorf("core: task %q is not defined in the manifest", name)
	}

	for _, dep := range task.After {
		if path.Contains(dep) {
			return fmt.Errorf("core: circular dependency detected between tasks %q and %q", name, dep)
		}
		if visited.Contains(dep) {
			continue
		}
		path.Add(dep)
		if err := addDependencies(manifest, plan, dep, visited, path); err != nil {
			return err
		}
		path.Remove(dep)
	}

	visited.Add(name)
	plan.Graph.AddTask(name)
	for _, dep := range task.After {
		plan.Graph.AddDependency(name, dep)
	}
	if _, ok := plan.Specs[name]; !ok {
		plan.Specs[name] = defaultSpec(task)
	}
	return nil
}

// defaultSpec builds a TaskSpec from declared defaults alone, used for
// tasks pulled in transitively that were never bound against a command-line
// partition.
func defaultSpec(task *cfg.TaskDef) binder.TaskSpec {
	spec := binder.TaskSpec{Task: task, Values: map[string]cfg.Value{}}
	for _, p := range task.Params.Defs() {
		if p.Default != nil {
			spec.Values[p.Name] = cfg.ItemValue(*p.Default)
		} else {
			spec.Values[p.Name] = cfg.EmptyValue
		}
	}
	return spec
}

// ActionHash returns the hex-encoded sha256 digest of a task's action
// script. It depends only on the action text, so two tasks with identical
// actions share a hash. The run layout names materialized scripts by task
// name, not by this hash.
func ActionHash(task *cfg.TaskDef) string {
	sum := sha256.Sum256([]byte(task.Action))
	return hex.EncodeToString(sum[:])
}
