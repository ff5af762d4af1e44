// Package missions renders the level-grouped mission map.
package missions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/router"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/screens/mission"
	"github.com/abhisek/cracked/internal/screens/paths"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/layout"
	"github.com/abhisek/cracked/internal/ui/theme"
)

// MissionsScreen lists every mission slot grouped by level. Path-specific
// slots show the active path's variant, or a "choose your path" placeholder
// until one is selected.
type MissionsScreen struct {
	tracker  *progress.Tracker
	events   *store.EventRepo
	ids      []curriculum.MissionID
	selected int
}

var _ screen.Screen = (*MissionsScreen)(nil)
var _ screen.KeyHintProvider = (*MissionsScreen)(nil)

// New creates a new MissionsScreen.
func New(tracker *progress.Tracker, events *store.EventRepo) *MissionsScreen {
	var ids []curriculum.MissionID
	for level := 1; level <= curriculum.MaxLevel; level++ {
		ids = append(ids, curriculum.LevelIDs(level)...)
	}

	s := &MissionsScreen{tracker: tracker, events: events, ids: ids}

	// Start the cursor on the last open mission when possible.
	if id, err := curriculum.ParseMissionID(tracker.State().LastMission); err == nil {
		for i, candidate := range ids {
			if candidate == id {
				s.selected = i
				break
			}
		}
	}
	return s
}

func (s *MissionsScreen) Init() tea.Cmd {
	return nil
}

func (s *MissionsScreen) Title() string {
	return "Mission Map"
}

func (s *MissionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MissionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.ids)-1 {
			s.selected++
		}
	case "enter":
		id := s.ids[s.selected]
		resolved, ok := curriculum.Resolve(id, s.tracker.State().SelectedPath)
		if !ok {
			return s, nil
		}
		if resolved.Placeholder {
			// Path-specific slot with no path chosen yet.
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: paths.New(s.tracker, s.events)}
			}
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: mission.New(s.tracker, s.events, id)}
		}
	}
	return s, nil
}

func (s *MissionsScreen) View(width, height int) string {
	state := s.tracker.State()
	path := state.SelectedPath

	var b strings.Builder
	b.WriteString("\n")

	level := 0
	for i, id := range s.ids {
		if id.Level != level {
			level = id.Level
			header := fmt.Sprintf("Level %d · %s", level, curriculum.LevelName(level))
			if level >= 3 && path.IsSelected() {
				header += "  " + path.Icon() + " " + path.DisplayName()
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header)))
			b.WriteString("\n")
		}

		resolved, _ := curriculum.Resolve(id, path)
		title := resolved.Title
		if resolved.Placeholder {
			title = theme.Hint.Render("Choose your path to unlock")
		}

		mark := "  "
		if state.CompletedMissions[id] {
			mark = theme.Pass.Render("✓ ")
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s %s  %s", prefix, mark, id, title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i+1 < len(s.ids) && s.ids[i+1].Level != level {
			b.WriteString("\n")
		}
	}

	return b.String()
}
