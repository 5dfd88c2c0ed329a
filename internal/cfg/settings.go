package cfg

import (
	"runtime"

	"gopkg.in/yaml.v3"
)

// Settings holds the manifest-level defaults that seed a run before
// command-line binding overrides them (spec.md §3), grounded on the Rust
// original's cfg/otto.rs Otto struct and its default_otto/default_jobs.
type Settings struct {
	Name      string   `yaml:"name"`
	About     string   `yaml:"about"`
	API       string   `yaml:"api"`
	Verbosity string   `yaml:"verbosity"`
	Jobs      int      `yaml:"jobs"`
	Home      string   `yaml:"home"`
	Tasks     []string `yaml:"tasks"`
}

// DefaultName is used when the manifest omits `name`.
const DefaultName = "otto"

// DefaultAPI is used when the manifest omits `api`.
const DefaultAPI = "1"

// DefaultHome is used when the manifest omits `home`.
const DefaultHome = "~/.otto"

// DefaultVerbosity is used when the manifest omits `verbosity`.
const DefaultVerbosity = "1"

// DefaultSettings returns the manifest-level defaults, with Jobs bound to
// runtime.NumCPU() per SPEC_FULL.md §12 item 3 (the Rust original shells out
// to num_cpus::get(); Go's runtime package exposes the same count directly),
// and Tasks defaulting to ["*"] meaning every manifest task in declaration
// order (spec.md §3).
func DefaultSettings() Settings {
	return Settings{
		Name:      DefaultName,
		API:       DefaultAPI,
		Verbosity: DefaultVerbosity,
		Jobs:      runtime.NumCPU(),
		Home:      DefaultHome,
		Tasks:     []string{"*"},
	}
}

// UnmarshalYAML decodes a partial settings mapping over the defaults, so a
// manifest only needs to declare the fields it wants to override.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	type alias Settings
	a := alias(DefaultSettings())
	if err := node.Decode(&a); err != nil {
		return err
	}
	*s = Settings(a)
	return nil
}
