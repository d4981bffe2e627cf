package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#2E86C1")
	okColor      = lipgloss.Color("#00AA00")
	failColor    = lipgloss.Color("#A40000")
	mutedColor   = lipgloss.Color("#888888")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(okColor)

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failColor)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render(key+":"), valueStyle.Render(fmt.Sprint(value)))
}

func printError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", failStyle.Render("Error:"), message)
}
