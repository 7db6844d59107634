package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Results go to stdout and progress animation to stderr. Tests swap both.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorYellow = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

// Exported styles are shared with the inspector.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorOK)
	StyleError     = lipgloss.NewStyle().Foreground(colorFail)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleHeader      = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const (
	iconSuccess = "✓"
	iconFailure = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

func emit(line string) { fmt.Fprintln(stdout, line) }

func printSuccess(format string, args ...any) {
	emit(StyleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printFailure(format string, args ...any) {
	emit(StyleError.Render(iconFailure) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	emit(lipgloss.NewStyle().Foreground(colorMuted).Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under the previous message.
func printDetail(format string, args ...any) {
	emit("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	emit("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	emit(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	emit(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// statsLine summarizes a built tree: box count, nesting levels below the
// root when there are any, and whether the result came from the cache.
func statsLine(boxCount, depth int, cached bool) string {
	parts := []string{StyleDim.Render(fmt.Sprintf("%d boxes", boxCount))}
	if depth > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d levels", depth+1)))
	}
	if cached {
		parts = append(parts, StyleSuccess.Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorMuted).Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func printStats(boxCount, depth int, cached bool) {
	emit(statsLine(boxCount, depth, cached))
}
