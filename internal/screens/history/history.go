// Package history shows the recent activity log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/layout"
	"github.com/abhisek/cracked/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.Event
	Err    error
}

// HistoryScreen displays recent evaluations, completions and awards.
type HistoryScreen struct {
	events   *store.EventRepo
	entries  []store.Event
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events *store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.events.Recent(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Events: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing yet. Open a mission and submit an output!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		dateStr := e.Timestamp.Format("Jan 02 15:04")

		desc := describe(e)

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s", prefix, dateStr, desc)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// describe renders one event as a human-readable line.
func describe(e store.Event) string {
	switch e.Kind {
	case store.EventEvaluation:
		return fmt.Sprintf("⚙ evaluated %s (%s)", e.Mission, e.Detail)
	case store.EventCompletion:
		return fmt.Sprintf("✓ completed mission %s", e.Mission)
	case store.EventBadge:
		return fmt.Sprintf("🏅 earned %s on the %s path", e.Detail, e.Path)
	case store.EventCertificate:
		return fmt.Sprintf("★ certificate issued for the %s path", e.Path)
	case store.EventPathSelect:
		return fmt.Sprintf("→ chose the %s path", e.Path)
	case store.EventPathSwitch:
		return fmt.Sprintf("⇄ switched to the %s path", e.Path)
	case store.EventReset:
		return "⟲ progress reset"
	default:
		return e.Kind
	}
}
