package pomodoro

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the timer is quit before finishing.
var ErrInterrupted = errors.New("pomodoro interrupted")

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	timeStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Run blocks for the given duration, showing a countdown with a
// progress bar. Pressing q or ctrl+c interrupts the timer.
func Run(d time.Duration) error {
	p := tea.NewProgram(newModel(d))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running pomodoro timer: %w", err)
	}
	if m, ok := final.(model); ok && !m.done {
		return ErrInterrupted
	}
	return nil
}

type tickMsg time.Time

type model struct {
	total     time.Duration
	remaining time.Duration
	bar       progress.Model
	done      bool
}

func newModel(d time.Duration) model {
	return model{
		total:     d,
		remaining: d,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		return m, tick()

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	elapsed := m.total - m.remaining
	pct := float64(elapsed) / float64(m.total)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pomodoro"))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")
	b.WriteString(timeStyle.Render(formatRemaining(m.remaining)))
	b.WriteString(" remaining\n\n")
	b.WriteString(helpStyle.Render("q to cancel"))
	b.WriteString("\n")
	return b.String()
}

// formatRemaining renders a duration as mm:ss.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
