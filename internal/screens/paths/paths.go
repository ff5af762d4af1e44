// Package paths handles choosing and switching the specialization path.
package paths

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/router"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/layout"
	"github.com/abhisek/cracked/internal/ui/theme"
)

var pathBlurbs = map[curriculum.Path]string{
	curriculum.PathBusiness:  "Marketing, sales and operations workflows. Campaigns, research, customer intelligence.",
	curriculum.PathTechnical: "Data pipelines, code generation and API integrations. Build production-grade systems.",
	curriculum.PathHybrid:    "Analysis meets communication. Reports, dashboards and decision support.",
}

// PathsScreen lets the learner pick a specialization, or switch after an
// explicit confirmation step. Switching never erases progress on any path.
type PathsScreen struct {
	tracker  *progress.Tracker
	events   *store.EventRepo
	selected int
	// confirming is set while a switch away from an already selected path
	// awaits a yes/no answer.
	confirming bool
	confirmYes bool
}

var _ screen.Screen = (*PathsScreen)(nil)
var _ screen.KeyHintProvider = (*PathsScreen)(nil)

// New creates a new PathsScreen.
func New(tracker *progress.Tracker, events *store.EventRepo) *PathsScreen {
	s := &PathsScreen{tracker: tracker, events: events}

	// Preselect the current path, or the recommendation for new learners.
	target := tracker.State().SelectedPath
	if !target.IsSelected() {
		target = tracker.State().RecommendedPath()
	}
	for i, p := range curriculum.AllPaths() {
		if p == target {
			s.selected = i
		}
	}
	return s
}

func (s *PathsScreen) Init() tea.Cmd {
	return nil
}

func (s *PathsScreen) Title() string {
	return "Specialization Path"
}

func (s *PathsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PathsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "left", "h", "right", "l":
			s.confirmYes = !s.confirmYes
		case "y":
			return s, s.applySwitch()
		case "n":
			s.cancelSwitch()
		case "enter":
			if s.confirmYes {
				return s, s.applySwitch()
			}
			s.cancelSwitch()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(curriculum.AllPaths())-1 {
			s.selected++
		}
	case "enter":
		return s, s.choose(curriculum.AllPaths()[s.selected])
	}
	return s, nil
}

// choose applies a first-time selection immediately; switching an existing
// path stages the change and asks for confirmation.
func (s *PathsScreen) choose(path curriculum.Path) tea.Cmd {
	current := s.tracker.State().SelectedPath
	if path == current {
		return popCmd()
	}
	if !current.IsSelected() {
		s.tracker.SelectPath(path)
		s.events.TryAppend(store.EventPathSelect, "", string(path), "")
		return popCmd()
	}

	s.tracker.RequestSwitch(path)
	s.confirming = true
	s.confirmYes = false
	return nil
}

func (s *PathsScreen) applySwitch() tea.Cmd {
	target := s.tracker.State().PendingSwitch
	s.tracker.ConfirmSwitch()
	s.events.TryAppend(store.EventPathSwitch, "", string(target), "")
	s.confirming = false
	return popCmd()
}

func (s *PathsScreen) cancelSwitch() {
	s.tracker.CancelSwitch()
	s.confirming = false
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *PathsScreen) View(width, height int) string {
	if s.confirming {
		return s.renderConfirm(width, height)
	}

	state := s.tracker.State()
	recommended := state.RecommendedPath()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose your specialization") + "\n\n")

	for i, p := range curriculum.AllPaths() {
		name := fmt.Sprintf("%s %s", p.Icon(), p.DisplayName())
		var tags []string
		if p == state.SelectedPath {
			tags = append(tags, theme.Pass.Render("current"))
		}
		if p == recommended {
			tags = append(tags, lipgloss.NewStyle().Foreground(theme.Accent).Render("recommended"))
		}
		counts := state.CountsFor(p)
		if counts.Total > 0 {
			tags = append(tags, theme.Hint.Render(fmt.Sprintf("%d/%d done", counts.Total, progress.PathMissionTotal)))
		}

		nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		cursor := "   "
		if i == s.selected {
			cursor = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" ▸ ")
			nameStyle = nameStyle.Foreground(theme.Primary)
		}

		line := cursor + nameStyle.Render(name)
		if len(tags) > 0 {
			line += "  " + strings.Join(tags, " ")
		}
		b.WriteString(line + "\n")
		b.WriteString("     " + theme.Hint.Render(pathBlurbs[p]) + "\n\n")
	}

	note := theme.Hint.Render("Paths change which level 3 and 4 missions you get.\nProgress on other paths is never lost.")
	b.WriteString(note)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *PathsScreen) renderConfirm(width, height int) string {
	target := s.tracker.State().PendingSwitch

	yes := theme.ButtonInactive.Render(" Switch ")
	no := theme.ButtonActive.Render(" Stay ")
	if s.confirmYes {
		yes = theme.ButtonActive.Render(" Switch ")
		no = theme.ButtonInactive.Render(" Stay ")
	}

	body := theme.Title.Render("Switch path?") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Switch to the %s %s path? You will restart at mission 3.1.\n"+
			"Your progress on every path is kept.", target.Icon(), target.DisplayName())) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Center, no, "   ", yes)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}
