package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"pfeifer.dev/acc/acc"
	"pfeifer.dev/acc/utils"
)

const emptyLogMessage = "No log file found or file is empty."

func readLog(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read log file"))
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// viewLog dumps the log file verbatim under a header.
func viewLog(out io.Writer, path string) {
	fmt.Fprintf(out, "=== Viewing Log File: %s ===\n", path)
	fmt.Fprintln(out, "----------------------------------------")

	content, ok := readLog(path)
	if !ok {
		fmt.Fprintln(out, emptyLogMessage)
		return
	}
	fmt.Fprint(out, content)
}

// printLastRecords renders the newest n parsed records as a table.
func printLastRecords(out io.Writer, path string, n int) error {
	records, err := acc.ReadRecordsFile(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, emptyLogMessage)
		return nil
	}
	if n > 0 && n < len(records) {
		records = records[len(records)-n:]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Timestamp", "Speed (km/h)", "Ahead (km/h)", "Gap (m)", "Safe (m)", "Status")
	for _, r := range records {
		t.Row(
			r.Timestamp.Format(time.ANSIC),
			fmt.Sprintf("%.1f", r.EgoSpeed),
			fmt.Sprintf("%.1f", r.AheadSpeed),
			fmt.Sprintf("%.1f", r.Distance),
			fmt.Sprintf("%.1f", r.SafeDistance),
			r.Status,
		)
	}
	fmt.Fprintln(out, t.String())
	return nil
}

var (
	pagerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	pagerInfoStyle  = lipgloss.NewStyle().Faint(true)
)

type pagerModel struct {
	path     string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(path string) pagerModel {
	content, ok := readLog(path)
	if !ok {
		content = emptyLogMessage
	}
	return pagerModel{path: path, content: content}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) header() string {
	return pagerTitleStyle.Render("Viewing Log File: " + m.path)
}

func (m pagerModel) footer() string {
	return pagerInfoStyle.Render(fmt.Sprintf("%3.f%%  (q to quit)", m.viewport.ScrollPercent()*100))
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.header())
		footerHeight := lipgloss.Height(m.footer())
		height := max(1, msg.Height-headerHeight-footerHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return strings.Join([]string{m.header(), m.viewport.View(), m.footer()}, "\n")
}

func pageLog(path string) error {
	p := tea.NewProgram(newPagerModel(path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "could not run log pager")
	}
	return nil
}
