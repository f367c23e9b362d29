// Package output provides utilities for formatted terminal output,
// including colored text for CLI summaries.
package output

import "github.com/fatih/color"

// Color helpers for CLI chrome (summaries, headers). Status lines
// themselves are rendered by the notify package.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// SetEnabled turns colored CLI output on or off.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

// Green wraps the given text in green.
func Green(text string) string {
	return green(text)
}

// Red wraps the given text in red.
func Red(text string) string {
	return red(text)
}

// Yellow wraps the given text in yellow.
func Yellow(text string) string {
	return yellow(text)
}

// Cyan wraps the given text in cyan.
func Cyan(text string) string {
	return cyan(text)
}

// Bold wraps the given text in bold.
func Bold(text string) string {
	return bold(text)
}
