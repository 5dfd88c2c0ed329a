package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottidler/otto/internal/cfg"
	"github.com/scottidler/otto/internal/cmdutil"
)

func buildTask(t *testing.T, yamlBody string) *cfg.TaskDef {
	t.Helper()
	m, err := cfg.Parse([]byte("tasks:\n  sample:\n" + indent(yamlBody)))
	require.NoError(t, err)
	return m.Tasks.ByName["sample"]
}

func indent(s string) string {
	out := ""
	for _, line := range splitLines(s) {
		if line == "" {
			continue
		}
		out += "    " + line + "\n"
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func TestBindTaskPositional(t *testing.T) {
	task := buildTask(t, `
action: echo $name
params:
  name:
    nargs: "1"
`)
	spec, err := BindTask(task, []string{"sample", "world"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("world"), spec.Values["name"])
}

func TestBindTaskOptionDefault(t *testing.T) {
	task := buildTask(t, `
action: echo $greeting
params:
  -g|--greeting:
    default: hello
`)
	spec, err := BindTask(task, []string{"sample"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("hello"), spec.Values["greeting"])
}

func TestBindTaskOptionOverride(t *testing.T) {
	task := buildTask(t, `
action: echo $greeting
params:
  -g|--greeting:
    default: hello
`)
	spec, err := BindTask(task, []string{"sample", "--greeting", "hi"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("hi"), spec.Values["greeting"])
}

func TestBindTaskFlagBareTogglesTrueWithoutConsumingArgument(t *testing.T) {
	task := buildTask(t, `
action: echo $verbose $name
params:
  -v|--verbose:
    default: "false"
  name:
    nargs: "1"
`)
	spec, err := BindTask(task, []string{"sample", "--verbose", "alice"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("true"), spec.Values["verbose"])
	assert.Equal(t, cfg.ItemValue("alice"), spec.Values["name"])
}

func TestBindTaskFlagAbsentUsesDefault(t *testing.T) {
	task := buildTask(t, `
action: echo $verbose
params:
  -v|--verbose:
    default: "false"
`)
	spec, err := BindTask(task, []string{"sample"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("false"), spec.Values["verbose"])
}

func TestBindTaskFlagPresentUsesConstant(t *testing.T) {
	task := buildTask(t, `
action: echo $loud
params:
  -l|--loud:
    default: "false"
    constant: shout
`)
	spec, err := BindTask(task, []string{"sample", "--loud"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ItemValue("shout"), spec.Values["loud"])
}

func TestBindTaskChoiceRejectsUnknownValue(t *testing.T) {
	task := buildTask(t, `
action: echo $env
params:
  env:
    nargs: "1"
    choices: [dev, prod]
`)
	_, err := BindTask(task, []string{"sample", "staging"})
	assert.Error(t, err)
}

func TestBindTaskPositionalTooFew(t *testing.T) {
	task := buildTask(t, `
action: echo $a $b
params:
  a:
    nargs: "1"
  b:
    nargs: "1"
`)
	_, err := BindTask(task, []string{"sample", "only-one"})
	assert.Error(t, err)
}

func TestBindRootDefaultsWithoutOverride(t *testing.T) {
	settings := cfg.DefaultSettings()
	bound, err := BindRoot("otto", []string{}, settings, 1)
	require.NoError(t, err)
	assert.Equal(t, settings.API, bound.API)
	assert.Equal(t, []string{"*"}, bound.Tasks)
}

func TestBindRootTasksOverride(t *testing.T) {
	settings := cfg.DefaultSettings()
	bound, err := BindRoot("otto", []string{"--tasks", "build,test"}, settings, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "test"}, bound.Tasks)
}

func TestBindRootZeroManifestTasksIsSilentError(t *testing.T) {
	settings := cfg.DefaultSettings()
	_, err := BindRoot("otto", []string{}, settings, 0)
	require.Error(t, err)
	var cmdErr *cmdutil.Error
	require.ErrorAs(t, err, &cmdErr)
	assert.True(t, cmdErr.Silent)
	assert.NotEqual(t, cmdutil.ExitOK, cmdErr.ExitCode)
}
