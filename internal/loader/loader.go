// Package loader resolves and reads the manifest file, mirroring the Rust
// original's cli/parse.rs::{load_config, find_ottofile, divine_ottofile}.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/scottidler/otto/internal/cfg"
)

// OTTOFILES is the ordered list of filenames searched for when the
// resolved path is a directory (spec.md §4.2).
var OTTOFILES = []string{
	"otto.yml",
	".otto.yml",
	"otto.yaml",
	".otto.yaml",
	"Ottofile",
	"OTTOFILE",
}

// DefaultHash is the manifest-hash sentinel used when no manifest is found,
// exposed so callers (and tests) can recognize a result that has no
// manifest behind it (SPEC_FULL.md §12 item 4).
const DefaultHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Result is what loading a manifest produces.
type Result struct {
	Manifest *cfg.Manifest
	Hash     string
	Path     string // empty if no manifest was found
}

// Load extracts --ottofile/-o from args (removing the flag and its value),
// falls back to the OTTOFILE environment variable and then "./", resolves
// that value to a manifest file, and parses it. If no manifest is found it
// returns the default Manifest and DefaultHash rather than an error,
// matching the Rust original's "warn and fall back to defaults" behavior.
func Load(args *[]string) (*Result, error) {
	value := extractOttofileFlag(args)
	if value == "" {
		if v, ok := os.LookupEnv("OTTOFILE"); ok {
			value = v
		} else {
			value = "./"
		}
	}

	path, err := divineOttofile(value)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return &Result{Manifest: cfg.Default(), Hash: DefaultHash}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loader: resolved ottofile %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("loader: resolved ottofile %q is not a valid file", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %q: %w", path, err)
	}
	hash := cfg.HashBytes(raw)
	m, err := cfg.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("loader: parsing %q: %w", path, err)
	}
	return &Result{Manifest: m, Hash: hash, Path: path}, nil
}

// extractOttofileFlag removes the first --ottofile/-o flag-plus-value pair
// from args (in place) and returns its value, or "" if absent.
func extractOttofileFlag(args *[]string) string {
	a := *args
	for i, tok := range a {
		if tok == "--ottofile" || tok == "-o" {
			if i+1 >= len(a) {
				break
			}
			value := a[i+1]
			*args = append(append([]string{}, a[:i]...), a[i+2:]...)
			return value
		}
	}
	return ""
}

// divineOttofile expands `~`, resolves to an absolute path, and either
// returns the path directly (if it names a file) or searches it (if it
// names a directory). It returns "" with no error if the value names
// neither a file nor a directory.
func divineOttofile(value string) (string, error) {
	expanded, err := homedir.Expand(value)
	if err != nil {
		return "", fmt.Errorf("loader: expanding %q: %w", value, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("loader: resolving %q: %w", value, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("loader: canonicalizing %q: %w", abs, err)
	}

	info, err := os.Stat(real)
	if err != nil {
		return "", nil
	}
	if !info.IsDir() {
		return real, nil
	}
	return findOttofile(real)
}

// findOttofile searches dir and then successively its parents for one of
// the OTTOFILES names, stopping at the filesystem root.
func findOttofile(dir string) (string, error) {
	for {
		for _, name := range OTTOFILES {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
