package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5fafff"))
)

// reportError prints err to stderr styled as a failure, with a label such
// as "parse error" or "runtime error".
func reportError(label string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(label+":"), err)
}

// printHeader prints a styled section header to stdout, used by the `ast`
// subcommand for the one line it prints above a file's expression dump.
func printHeader(s string) {
	fmt.Println(headerStyle.Render(s))
}
