package feedwatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	feeddto "studytrack/internal/modules/feed/dto"
	"studytrack/internal/ui/theme"
)

// feedPort is the slice of the feed usecase this view needs.
type feedPort interface {
	Active(ctx context.Context) ([]feeddto.ActiveStudierOutput, error)
}

type rosterMsg struct {
	roster []feeddto.ActiveStudierOutput
	err    error
}

type tickMsg time.Time

type Model struct {
	feed     feedPort
	interval time.Duration
	roster   []feeddto.ActiveStudierOutput
	err      error
	now      time.Time
}

func NewModel(feed feedPort, interval time.Duration) Model {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return Model{feed: feed, interval: interval, now: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.tick())
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		roster, err := m.feed.Active(context.Background())
		return rosterMsg{roster: roster, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(m.fetch(), m.tick())
	case rosterMsg:
		m.roster = msg.roster
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Studying now"))
	b.WriteString("\n\n")
	switch {
	case m.err != nil:
		b.WriteString(theme.Muted.Render("feed error: " + m.err.Error()))
	case len(m.roster) == 0:
		b.WriteString(theme.Muted.Render("nobody is studying right now"))
	default:
		for _, s := range m.roster {
			line := fmt.Sprintf("%s  %s", s.Name, s.TaskName)
			if s.StartedAt != nil {
				line += theme.Muted.Render(fmt.Sprintf("  (%s)", elapsed(*s.StartedAt, m.now)))
			}
			b.WriteString(theme.SubjectStyle(s.Subject).Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("q to quit"))
	return theme.Pane.Render(b.String())
}

func elapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
