// Package home is the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/router"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/screens/certificates"
	"github.com/abhisek/cracked/internal/screens/history"
	"github.com/abhisek/cracked/internal/screens/mission"
	"github.com/abhisek/cracked/internal/screens/missions"
	"github.com/abhisek/cracked/internal/screens/paths"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/components"
	"github.com/abhisek/cracked/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	tracker *progress.Tracker
	events  *store.EventRepo
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *progress.Tracker, events *store.EventRepo) *HomeScreen {
	h := &HomeScreen{tracker: tracker, events: events}

	state := tracker.State()

	continueLabel := "START TRAINING"
	continueHint := ""
	if state.LastMission != progress.LastMissionIntro {
		continueLabel = "CONTINUE"
		continueHint = "mission " + state.LastMission
	}

	pathLabel := "CHOOSE PATH"
	pathHint := "recommended: " + state.RecommendedPath().DisplayName()
	if state.SelectedPath.IsSelected() {
		pathLabel = "SWITCH PATH"
		pathHint = "current: " + state.SelectedPath.DisplayName()
	}

	items := []components.MenuItem{
		{Label: continueLabel, Hint: continueHint, Action: func() tea.Cmd {
			return h.continueCmd()
		}},
		{Label: "MISSION MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: missions.New(tracker, events)}
			}
		}},
		{Label: pathLabel, Hint: pathHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: paths.New(tracker, events)}
			}
		}},
		{Label: "CERTIFICATES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: certificates.New(tracker)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// continueCmd resumes the last open mission, or opens the mission map when
// there is nothing to resume.
func (h *HomeScreen) continueCmd() tea.Cmd {
	last := h.tracker.State().LastMission
	if id, err := curriculum.ParseMissionID(last); err == nil {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: mission.New(h.tracker, h.events, id)}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: missions.New(h.tracker, h.events)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	state := h.tracker.State()

	var sections []string

	title := theme.Title.Render("CRACKED")
	subtitle := theme.Subtitle.Render("prompt engineering self-assessment")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats(state))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(state *progress.State) string {
	completed := len(state.CompletedMissions)
	total := curriculum.TotalMissions()

	parts := []string{
		fmt.Sprintf("Missions %d/%d", completed, total),
	}
	if state.SelectedPath.IsSelected() {
		counts := state.CountsFor(state.SelectedPath)
		parts = append(parts, fmt.Sprintf("%s %s %d/%d",
			state.SelectedPath.Icon(), state.SelectedPath.DisplayName(),
			counts.Total, progress.PathMissionTotal))
	}
	badges := 0
	for _, p := range curriculum.AllPaths() {
		badges += len(state.PathBadges[p])
	}
	if badges > 0 {
		parts = append(parts, fmt.Sprintf("Badges %d", badges))
	}
	if len(state.CertificatePaths) > 0 {
		parts = append(parts, fmt.Sprintf("Certificates %d", len(state.CertificatePaths)))
	}

	line := strings.Join(parts, "   ·   ")
	return theme.Card.Render(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
