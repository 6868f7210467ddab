package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/acc/acc"
	ms "pfeifer.dev/acc/settings"
)

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	reduceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cautionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	holdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func advisoryStyle(a acc.Advisory) lipgloss.Style {
	switch a {
	case acc.AdviseReduce:
		return reduceStyle
	case acc.AdviseHold:
		return holdStyle
	default:
		return cautionStyle
	}
}

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out, titleStyle.Render(title))
}

// printStatus writes the same report as Controller.FormatStatus with the
// advisory line colored for the terminal.
func printStatus(out io.Writer, c *acc.Controller) {
	status := c.Snapshot()
	fmt.Fprint(out, status.Fields())
	fmt.Fprintln(out, advisoryStyle(status.Advisory).Render(status.AdvisoryLine()))
	fmt.Fprintln(out, ms.RECORD_SEPARATOR)
}

// saveStatus persists a snapshot. A failure is reported and the session
// carries on.
func saveStatus(out io.Writer, c *acc.Controller) {
	err := c.SaveStatus()
	if err != nil {
		slog.Warn("could not save status", "error", err, "path", c.LogFile())
		fmt.Fprintln(out, errorStyle.Render("Error: Could not open log file for writing!"))
		return
	}
	fmt.Fprintf(out, "Status saved to log file: %s\n", c.LogFile())
}

func showAndSave(out io.Writer, c *acc.Controller) {
	printStatus(out, c)
	saveStatus(out, c)
}
