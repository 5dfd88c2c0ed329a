// Package binder builds per-partition command-line schemas from manifest
// definitions and binds a partition's tokens against them, mirroring the
// Rust original's cli/parse.rs::{otto_to_command, task_to_command,
// param_to_arg} (built there on clap; here on spf13/pflag, the library the
// rest of the retrieved corpus's CLIs use alongside cobra).
package binder

import (
	"github.com/spf13/pflag"

	"github.com/scottidler/otto/internal/cfg"
)

// RootFlags holds the parsed values of otto's global flags (spec.md §6).
type RootFlags struct {
	Ottofile  string
	API       string
	Verbosity string
	Jobs      int
	Home      string
	Tasks     []string
}

// NewRootFlagSet builds the flag set for partition 0, seeded from the
// manifest's Settings defaults.
func NewRootFlagSet(name string, s cfg.Settings) (*pflag.FlagSet, *RootFlags) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags := &RootFlags{}
	fs.StringVarP(&flags.Ottofile, "ottofile", "o", "./", "path to the ottofile")
	fs.StringVarP(&flags.API, "api", "a", s.API, "api url")
	fs.StringVarP(&flags.Verbosity, "verbosity", "v", s.Verbosity, "verbosity level")
	fs.IntVarP(&flags.Jobs, "jobs", "j", s.Jobs, "number of jobs to run in parallel")
	fs.StringVarP(&flags.Home, "home", "H", s.Home, "path to the otto home directory")
	fs.StringSliceVarP(&flags.Tasks, "tasks", "t", s.Tasks, "comma separated list of tasks to run")
	return fs, flags
}

// TaskFlagSet is a task's bound flag set plus bookkeeping needed to collect
// positional values in declaration order after Parse.
type TaskFlagSet struct {
	FlagSet     *pflag.FlagSet
	options     map[string]*string       // kind = Option
	flags       map[string]*bool         // kind = Flag
	flagDefs    map[string]*cfg.ParamDef // name -> def, for Flag-kind params only
	positionals []*cfg.ParamDef
}

// NewTaskFlagSet builds the flag set for one task's partition. Flag-kind
// params are bound as real pflag bool flags so a bare `--flag` toggles
// presence without consuming a following token (spec.md §4.3's "kind =
// Flag arguments take no value"); Option-kind params are bound as string
// flags taking exactly one value.
func NewTaskFlagSet(task *cfg.TaskDef) *TaskFlagSet {
	fs := pflag.NewFlagSet(task.Name, pflag.ContinueOnError)
	tfs := &TaskFlagSet{
		FlagSet:  fs,
		options:  map[string]*string{},
		flags:    map[string]*bool{},
		flagDefs: map[string]*cfg.ParamDef{},
	}
	for _, p := range task.Params.Defs() {
		switch p.Kind {
		case cfg.Flag:
			v := new(bool)
			def := false
			if p.Default != nil {
				def = *p.Default == "true"
			}
			*v = def
			registerBoolFlag(fs, p, v, def)
			tfs.flags[p.Name] = v
			tfs.flagDefs[p.Name] = p
		case cfg.Option:
			v := new(string)
			def := ""
			if p.Default != nil {
				def = *p.Default
			}
			*v = def
			registerFlag(fs, p, v, def)
			tfs.options[p.Name] = v
		default:
			tfs.positionals = append(tfs.positionals, p)
		}
	}
	return tfs
}

func registerFlag(fs *pflag.FlagSet, p *cfg.ParamDef, v *string, def string) {
	switch {
	case p.Short != "" && p.Long != "":
		fs.StringVarP(v, p.Long, p.Short, def, p.Help)
	case p.Long != "":
		fs.StringVar(v, p.Long, def, p.Help)
	case p.Short != "":
		fs.StringVarP(v, p.Name, p.Short, def, p.Help)
	}
}

func registerBoolFlag(fs *pflag.FlagSet, p *cfg.ParamDef, v *bool, def bool) {
	switch {
	case p.Short != "" && p.Long != "":
		fs.BoolVarP(v, p.Long, p.Short, def, p.Help)
	case p.Long != "":
		fs.BoolVar(v, p.Long, def, p.Help)
	case p.Short != "":
		fs.BoolVarP(v, p.Name, p.Short, def, p.Help)
	}
}
