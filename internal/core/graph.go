// Package core builds the task dependency graph and the concrete Plan that
// the scheduler executes, grounded on the teacher's internal/run.go
// (buildTaskGraph, completeGraph) and the Rust original's
// cmd/scheduler.rs::{get_tasks_to_execute, add_dependencies}.
package core

import (
	"fmt"

	"github.com/pyr-sh/dag"
)

// Graph wraps dag.AcyclicGraph with string-keyed task vertices, the same
// shape the teacher builds as completeGraph.TopologicalGraph in run.go.
type Graph struct {
	underlying dag.AcyclicGraph
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddTask adds a task name as a vertex, a no-op if already present.
func (g *Graph) AddTask(name string) {
	g.underlying.Add(name)
}

// AddDependency records that "name" runs after "dep": an edge from dep to
// name, so dep sorts before name in the graph's topological order.
func (g *Graph) AddDependency(name, dep string) {
	g.underlying.Connect(dag.BasicEdge(dep, name))
}

// TaskNames returns every vertex currently in the graph.
func (g *Graph) TaskNames() []string {
	vs := g.underlying.Vertices()
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.(string))
	}
	return names
}

// Dependencies returns the set of task names that must complete before
// "name" may run, derived from incoming edges.
func (g *Graph) Dependencies(name string) []string {
	var deps []string
	for _, e := range g.underlying.Edges() {
		if e.Target().(string) == name {
			deps = append(deps, e.Source().(string))
		}
	}
	return deps
}

// Dot renders the graph in Graphviz format for diagnostics, mirroring the
// teacher's generateDotGraph.
func (g *Graph) Dot() []byte {
	return g.underlying.Dot(&dag.DotOpts{Verbose: true, DrawCycles: true})
}

// Validate checks the underlying graph is acyclic, surfacing pyr-sh/dag's
// own cycle error if Connect introduced one the DFS below might have
// missed (defense in depth; the DFS in plan.go is the primary check since
// it can name both endpoints the way spec.md §7 requires).
func (g *Graph) Validate() error {
	if err := g.underlying.Validate(); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	return nil
}
