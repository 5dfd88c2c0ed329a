// Package cmd wires otto's pipeline — load, partition, bind, plan,
// schedule — behind the same Execute(version) int entry point shape the
// teacher's cmd/root.go exposes, adapted from cobra-driven subcommand
// dispatch to otto's own partitioned argument model (spec.md §4.3).
package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/mitchellh/cli"
	"github.com/spf13/cobra"

	"github.com/scottidler/otto/internal/binder"
	"github.com/scottidler/otto/internal/cfg"
	"github.com/scottidler/otto/internal/cmdutil"
	"github.com/scottidler/otto/internal/core"
	"github.com/scottidler/otto/internal/layout"
	"github.com/scottidler/otto/internal/loader"
	"github.com/scottidler/otto/internal/logger"
	"github.com/scottidler/otto/internal/partition"
	"github.com/scottidler/otto/internal/scheduler"
	"github.com/scottidler/otto/internal/ui"
)

// Execute runs otto end to end and returns the process exit code, mirroring
// the teacher's cmd.Execute(version, processes) shape. otto's own
// partitioner/binder (spec.md §4.3-§4.4) owns argument parsing, so the
// cobra command here carries DisableFlagParsing — it supplies only the
// Use/Short strings and RunE dispatch. With flag parsing disabled cobra
// handles no flags itself (--version included), and SilenceUsage and
// SilenceErrors leave all error reporting to Execute.
//
// The manifest is loaded up front, before the cobra.Command is built, so
// that otto.name can drive the command's displayed Use/bin-name the way
// the Rust original's Command::new(&otto.name).bin_name(&otto.name) does
// (SPEC_FULL.md §12 item 2) — rather than a name hardcoded to "otto".
func Execute(version string, args []string) int {
	log := logger.New("1")
	var runErr error

	argv := append([]string{}, args...)
	loaded, loadErr := loader.Load(&argv)

	name := cfg.DefaultName
	if loadErr == nil {
		name = loaded.Manifest.Settings.Name
	}

	rootCmd := &cobra.Command{
		Use:                name + " <task> [args...]",
		Short:              name + " runs manifest-declared tasks with bounded parallelism",
		Version:            version,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if loadErr != nil {
				runErr = cmdutil.New(loadErr, cmdutil.ExitManifestNotFound)
				return runErr
			}
			runErr = run(log, argv, loaded)
			return runErr
		},
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr == nil {
		return cmdutil.ExitOK
	}

	var cmdErr *cmdutil.Error
	if errors.As(runErr, &cmdErr) {
		if !cmdErr.Silent {
			log.Errorf(cmdErr.Error())
		}
		return cmdErr.ExitCode
	}

	log.Errorf(runErr.Error())
	return cmdutil.ExitGeneral
}

func run(log *logger.Logger, argv []string, loaded *loader.Result) error {
	manifest := loaded.Manifest

	partitions := partition.Split(argv, manifest.Tasks.Order)

	hasExplicitTasks := len(partitions) > 1
	settings, err := binder.BindRoot(manifest.Settings.Name, partitions[0], manifest.Settings, len(manifest.Tasks.Order))
	if err != nil {
		return err
	}
	*log = *logger.New(settings.Verbosity)

	out := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	specs := map[string]binder.TaskSpec{}
	selected := settings.Tasks
	if hasExplicitTasks {
		selected = nil
		for _, p := range partitions[1:] {
			taskName := p[0]
			task, ok := manifest.Tasks.ByName[taskName]
			if !ok {
				return cmdutil.Newf(cmdutil.ExitBindingError, "unknown task %q", taskName)
			}
			spec, err := binder.BindTask(task, p)
			if err != nil {
				return err
			}
			specs[taskName] = spec
			selected = append(selected, taskName)
		}
	}

	plan, err := core.Build(manifest, specs, selected)
	if err != nil {
		return cmdutil.New(err, cmdutil.ExitPlanningError)
	}

	l, err := layout.Prepare(settings.Home, loaded.Hash, time.Now().Unix())
	if err != nil {
		return cmdutil.New(err, cmdutil.ExitLayoutError)
	}

	sched := scheduler.New(plan, l, settings.Jobs, out)
	if err := sched.Run(); err != nil {
		return cmdutil.New(err, cmdutil.ExitExecutionError)
	}

	out.Output(ui.Bold("done"))
	return nil
}
