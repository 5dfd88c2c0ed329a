// Package ui provides the terminal-formatting helpers used across otto's
// output, reconstructed from their call sites in the teacher's
// internal/run/run.go (ui.Bold, ui.Dim, ui.IsTTY, ui.IsCI, ui.ERROR_PREFIX,
// ui.WARNING_PREFIX, ui.StripAnsi) — that package's body was not present
// in the retrieved slice.
package ui

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ERROR_PREFIX and WARNING_PREFIX mark otto's own diagnostic lines.
var (
	ERROR_PREFIX   = color.RedString(" ERROR ")
	WARNING_PREFIX = color.YellowString(" WARNING ")
)

// IsTTY reports whether stdout is attached to a terminal.
var IsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// IsCI reports whether otto appears to be running in a CI environment,
// where color and interactive formatting should be suppressed.
var IsCI = os.Getenv("CI") != "" || os.Getenv("BUILD_NUMBER") != "" || os.Getenv("TEAMCITY_VERSION") != ""

// Bold renders s in bold.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Dim renders s dimmed.
func Dim(s string) string {
	return color.New(color.Faint).Sprint(s)
}

// Sprintf is a thin alias kept for call-site parity with the teacher's ui
// package; otto doesn't use turborepo's `${COLOR}` template substitution,
// so this is just fmt.Sprintf.
func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripAnsi removes ANSI color escapes from s, used before echoing a
// child's captured stdout/stderr through its task's prefixed UI.
func StripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
