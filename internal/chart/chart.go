package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Renderer draws a labeled bar chart. The ledger knows nothing about
// rendering; swapping backends only requires this interface.
type Renderer interface {
	Render(labels []string, values []float64) error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Terminal renders the chart on the terminal and blocks until any key
// is pressed.
type Terminal struct {
	Title string
	Width int // maximum bar width in cells
}

func (t Terminal) Render(labels []string, values []float64) error {
	if len(labels) == 0 {
		return errors.New("no data to chart")
	}
	if len(labels) != len(values) {
		return fmt.Errorf("chart has %d labels but %d values", len(labels), len(values))
	}

	p := tea.NewProgram(model{
		title: t.Title,
		rows:  buildRows(labels, values, t.Width),
	})
	_, err := p.Run()
	return err
}

type row struct {
	label string
	bar   string
	value string
}

// buildRows scales each value against the maximum so the longest bar
// spans width cells. Nonzero values always get at least one cell.
func buildRows(labels []string, values []float64, width int) []row {
	var max float64
	labelWidth := 0
	for i, v := range values {
		if v > max {
			max = v
		}
		if len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	rows := make([]row, len(labels))
	for i := range labels {
		rows[i] = row{
			label: fmt.Sprintf("%-*s", labelWidth, labels[i]),
			bar:   strings.Repeat("█", barLen(values[i], max, width)),
			value: fmt.Sprintf("%.2f h", values[i]),
		}
	}
	return rows
}

func barLen(v, max float64, width int) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / max * float64(width)))
	if n == 0 {
		n = 1
	}
	return n
}

type model struct {
	title string
	rows  []row
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for _, r := range m.rows {
		fmt.Fprintf(&b, "%s  %s %s\n",
			labelStyle.Render(r.label),
			barStyle.Render(r.bar),
			valueStyle.Render(r.value))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("press any key to close"))
	b.WriteString("\n")
	return b.String()
}
