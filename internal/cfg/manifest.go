package cfg

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tasks preserves manifest declaration order, used to expand the "*"
// selection in declaration order and to recognize task names on the
// command line.
type Tasks struct {
	Order  []string
	ByName map[string]*TaskDef
}

// NewTasks returns an empty, initialized Tasks.
func NewTasks() Tasks {
	return Tasks{ByName: map[string]*TaskDef{}}
}

// UnmarshalYAML decodes a mapping of task name -> task body, preserving
// source order, mirroring the Rust original's deserialize_task_map
// (cfg/task.rs).
func (t *Tasks) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("tasks: expected a mapping, got %v", node.Kind)
	}
	*t = NewTasks()
	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("tasks: decoding name: %w", err)
		}

		var task TaskDef
		if err := valNode.Decode(&task); err != nil {
			return fmt.Errorf("tasks[%s]: %w", name, err)
		}
		task.Name = name

		t.Order = append(t.Order, name)
		t.ByName[name] = &task
	}
	return nil
}

// Manifest is the fully-parsed manifest document (spec.md §3): an `otto:`
// settings block plus a `tasks:` map. Decoding through UnmarshalYAML
// normalizes it.
type Manifest struct {
	Settings Settings `yaml:"otto"`
	Tasks    Tasks    `yaml:"tasks"`
}

type manifestYAML struct {
	Settings Settings `yaml:"otto"`
	Tasks    Tasks    `yaml:"tasks"`
}

// UnmarshalYAML decodes the manifest and then normalizes it: folding
// `before` declarations into the referenced task's `after` list and
// validating against direct contradictions (SPEC_FULL.md §14).
func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	raw := manifestYAML{Settings: DefaultSettings(), Tasks: NewTasks()}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*m = Manifest{Settings: raw.Settings, Tasks: raw.Tasks}
	return m.normalize()
}

// normalize folds `before` into `after` in place. For every task A that
// declares `before: [B]`, this adds A to B's `after` list — sugar for "A
// must run before B" expressed as "B runs after A". Folding is idempotent
// when the edge is already present via an explicit `after`, and is a
// validation error when it would contradict an explicit `after` running
// the opposite direction between the same two tasks.
func (m *Manifest) normalize() error {
	for _, fromName := range m.Tasks.Order {
		from := m.Tasks.ByName[fromName]
		for _, toName := range from.Before {
			to, ok := m.Tasks.ByName[toName]
			if !ok {
				return fmt.Errorf("task %q declares before %q, which does not exist", fromName, toName)
			}
			if containsString(to.After, fromName) {
				continue
			}
			if from.dependsOn(toName, m.Tasks.ByName) {
				return fmt.Errorf("task %q declares before %q, which contradicts an existing after relationship between them", fromName, toName)
			}
			to.After = append(to.After, fromName)
		}
	}
	return nil
}

// dependsOn reports whether t (transitively, via `after`) already depends
// on name, used to detect before/after contradictions before they are
// folded into edges.
func (t *TaskDef) dependsOn(name string, byName map[string]*TaskDef) bool {
	visited := map[string]bool{}
	var walk func(string) bool
	walk = func(cur string) bool {
		if cur == name {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
		task, ok := byName[cur]
		if !ok {
			return false
		}
		for _, dep := range task.After {
			if walk(dep) {
				return true
			}
		}
		return false
	}
	for _, dep := range t.After {
		if walk(dep) {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

// HashBytes returns the hex-encoded sha256 digest of the manifest's raw
// source bytes, used as the content-address for the run layout (spec.md
// §4.5). crypto/sha256 and encoding/hex are used directly: none of the
// retrieved examples import a third-party SHA256 implementation, and the
// standard library's is the idiomatic choice here (see DESIGN.md).
func HashBytes(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Parse decodes raw manifest bytes into a normalized Manifest.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Default returns the manifest used when no manifest file is found on disk:
// default settings and no declared tasks.
func Default() *Manifest {
	return &Manifest{Settings: DefaultSettings(), Tasks: NewTasks()}
}
