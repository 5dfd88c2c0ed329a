package binder

import (
	"fmt"

	"github.com/scottidler/otto/internal/cfg"
	"github.com/scottidler/otto/internal/cmdutil"
)

// TaskSpec is one concrete, bound invocation of a task: the task
// definition plus the parameter values resolved for this run (spec.md §3).
type TaskSpec struct {
	Task   *cfg.TaskDef
	Values map[string]cfg.Value
}

// BindRoot parses partition 0 against the root flag set, producing the
// effective Settings for this run. An explicit, non-empty --tasks/-t
// override or explicit task-name partitions replace Settings.Tasks
// wholesale, never merge with it (SPEC_FULL.md §12 item 5).
//
// manifestTaskCount is the number of tasks actually declared in the
// manifest (not Settings.Tasks, which defaults to ["*"] and is essentially
// never empty): per spec.md §4.1/§4.3, a manifest with zero tasks renders
// root help and exits non-zero via a silent error, regardless of what
// Settings.Tasks resolves to.
func BindRoot(progName string, partition []string, settings cfg.Settings, manifestTaskCount int) (cfg.Settings, error) {
	fs, flags := NewRootFlagSet(progName, settings)
	if containsHelp(partition) {
		fmt.Print(fs.FlagUsages())
		return settings, cmdutil.SilentExit(cmdutil.ExitGeneral)
	}
	if err := fs.Parse(partition); err != nil {
		return settings, cmdutil.Newf(cmdutil.ExitBindingError, "binding root flags: %w", err)
	}

	bound := settings
	bound.API = flags.API
	bound.Verbosity = flags.Verbosity
	bound.Jobs = flags.Jobs
	bound.Home = flags.Home
	if fs.Changed("tasks") {
		bound.Tasks = flags.Tasks
	}

	if manifestTaskCount == 0 {
		fmt.Print(fs.FlagUsages())
		return bound, cmdutil.SilentExit(cmdutil.ExitGeneral)
	}
	return bound, nil
}

// BindTask parses one task partition (partition[0] is the task name
// itself) against the task's schema, producing a TaskSpec. Declared
// defaults seed every value first; command-line tokens then override them.
func BindTask(task *cfg.TaskDef, partition []string) (TaskSpec, error) {
	spec := TaskSpec{Task: task, Values: map[string]cfg.Value{}}
	for _, p := range task.Params.Defs() {
		if p.Default != nil {
			spec.Values[p.Name] = cfg.ItemValue(*p.Default)
		} else {
			spec.Values[p.Name] = cfg.EmptyValue
		}
	}

	args := partition
	if len(args) > 0 {
		args = args[1:]
	}
	if containsHelp(args) {
		tfs := NewTaskFlagSet(task)
		fmt.Printf("%s\n\n%s\n", task.Help, tfs.FlagSet.FlagUsages())
		return spec, cmdutil.SilentExit(cmdutil.ExitGeneral)
	}

	tfs := NewTaskFlagSet(task)
	if err := tfs.FlagSet.Parse(args); err != nil {
		return spec, cmdutil.Newf(cmdutil.ExitBindingError, "binding task %q: %w", task.Name, err)
	}

	for name, v := range tfs.options {
		if !tfs.FlagSet.Changed(name) {
			continue
		}
		spec.Values[name] = cfg.ItemValue(*v)
	}
	for name, set := range tfs.flags {
		spec.Values[name] = flagValue(tfs.flagDefs[name], *set)
	}

	if err := bindPositionals(tfs, tfs.FlagSet.Args(), &spec); err != nil {
		return spec, cmdutil.Newf(cmdutil.ExitBindingError, "binding task %q: %w", task.Name, err)
	}

	if err := validateChoices(task, &spec); err != nil {
		return spec, cmdutil.Newf(cmdutil.ExitBindingError, "binding task %q: %w", task.Name, err)
	}

	return spec, nil
}

// flagValue produces the Value for a Flag-kind parameter from its final
// bound boolean state: when the flag is set, its declared Constant is used
// if present (spec.md §3: "constant ... used when flag is present without
// argument" — a bare boolean flag is always present without an argument),
// falling back to Item("true"); when unset, the declared default (or
// "false") is used.
func flagValue(p *cfg.ParamDef, set bool) cfg.Value {
	if set {
		if !p.Constant.IsEmpty() {
			return p.Constant
		}
		return cfg.ItemValue("true")
	}
	if p.Default != nil {
		return cfg.ItemValue(*p.Default)
	}
	return cfg.ItemValue("false")
}

// bindPositionals consumes leftover positional tokens in declaration order,
// honoring each parameter's Nargs (spec.md §6).
func bindPositionals(tfs *TaskFlagSet, args []string, spec *TaskSpec) error {
	i := 0
	for _, p := range tfs.positionals {
		lo, hi, unbounded := p.Nargs.Lo, p.Nargs.Hi, false
		switch p.Nargs.Kind {
		case cfg.NargsOne:
			lo, hi = 1, 1
		case cfg.NargsZero:
			lo, hi = 0, 0
		case cfg.NargsOneOrZero:
			lo, hi = 0, 1
		case cfg.NargsOneOrMore:
			lo, unbounded = 1, true
		case cfg.NargsZeroOrMore:
			lo, unbounded = 0, true
		case cfg.NargsRange:
			lo, hi = p.Nargs.Lo, p.Nargs.Hi
		}

		remaining := len(args) - i
		take := hi
		if unbounded {
			take = remaining
		}
		if take > remaining {
			take = remaining
		}
		if take < lo {
			return fmt.Errorf("parameter %q expects at least %d argument(s), got %d", p.Name, lo, take)
		}

		switch {
		case take == 0:
			if p.Default != nil {
				spec.Values[p.Name] = cfg.ItemValue(*p.Default)
			}
		case take == 1 && !unbounded && hi == 1:
			spec.Values[p.Name] = cfg.ItemValue(args[i])
		default:
			spec.Values[p.Name] = cfg.ListValue(append([]string{}, args[i:i+take]...))
		}
		i += take
	}
	return nil
}

func validateChoices(task *cfg.TaskDef, spec *TaskSpec) error {
	for _, p := range task.Params.Defs() {
		if len(p.Choices) == 0 {
			continue
		}
		v := spec.Values[p.Name]
		if v.IsEmpty() {
			continue
		}
		candidates := v.List
		if v.Kind == cfg.KindItem {
			candidates = []string{v.Item}
		}
		for _, c := range candidates {
			if !choiceAllowed(p.Choices, c) {
				return fmt.Errorf("parameter %q: %q is not one of %v", p.Name, c, p.Choices)
			}
		}
	}
	return nil
}

func choiceAllowed(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}

func containsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}
