package cfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Params preserves manifest insertion order for help rendering (spec.md §3),
// which a plain Go map cannot: map iteration order is randomized, but YAML
// mapping nodes carry their source order in node.Content.
type Params struct {
	Order   []string
	ByTitle map[string]*ParamDef
}

// NewParams returns an empty, initialized Params.
func NewParams() Params {
	return Params{ByTitle: map[string]*ParamDef{}}
}

// Names returns the canonical (post-divine) parameter names in declared order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p.Order))
	for _, title := range p.Order {
		names = append(names, p.ByTitle[title].Name)
	}
	return names
}

// Defs returns the ParamDefs in declared order.
func (p Params) Defs() []*ParamDef {
	defs := make([]*ParamDef, 0, len(p.Order))
	for _, title := range p.Order {
		defs = append(defs, p.ByTitle[title])
	}
	return defs
}

// UnmarshalYAML decodes a mapping of title -> ParamDef fields while
// preserving declaration order and running title parsing (divine) on each
// key, mirroring the Rust original's deserialize_param_map visitor
// (cfg/spec.rs).
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("params: expected a mapping, got %v", node.Kind)
	}
	*p = NewParams()
	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var title string
		if err := keyNode.Decode(&title); err != nil {
			return fmt.Errorf("params: decoding title: %w", err)
		}

		var raw paramDefYAML
		if err := valNode.Decode(&raw); err != nil {
			return fmt.Errorf("params[%s]: %w", title, err)
		}
		def := newParamDefFromYAML(raw)
		def.Title = title
		def.applyTitle()

		p.Order = append(p.Order, title)
		p.ByTitle[title] = &def
	}
	return nil
}

// TaskDef is the in-memory representation of one manifest task (spec.md §3).
type TaskDef struct {
	Name   string
	Help   string   `yaml:"help"`
	After  []string `yaml:"after"`
	Before []string `yaml:"before"`
	Params Params   `yaml:"params"`
	Action string   `yaml:"action"`
}
