// Package app wires the tracker, store and screens into the root Bubble
// Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/router"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/screens/home"
	"github.com/abhisek/cracked/internal/screens/welcome"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Tracker *progress.Tracker
	Events  *store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	notice string
}

// newAppModel creates the root model. First-time learners land on the
// welcome screen; everyone else goes straight home.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Tracker, opts.Events)
	}

	var initial screen.Screen
	if opts.Tracker.State().LastMission == progress.LastMissionIntro {
		initial = welcome.New(homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)

	// Persistence failures surface exactly once per session.
	if notice, ok := m.opts.Tracker.TakeSaveNotice(); ok {
		m.notice = notice.Message()
	}

	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.opts.Tracker.State()
	pathLabel := ""
	if state.SelectedPath.IsSelected() {
		pathLabel = state.SelectedPath.Icon() + " " + state.SelectedPath.DisplayName()
	}
	header := layout.RenderHeader(title, len(state.CompletedMissions),
		curriculum.TotalMissions(), pathLabel, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	noticeLine := ""
	if m.notice != "" {
		noticeLine = layout.RenderNotice(m.notice, m.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	noticeHeight := 0
	if noticeLine != "" {
		noticeHeight = lipgloss.Height(noticeLine)
	}

	contentHeight := m.height - headerHeight - footerHeight - noticeHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(m.router.View(m.width, contentHeight))

	frame := header + "\n" + content + "\n"
	if noticeLine != "" {
		frame += noticeLine + "\n"
	}
	frame += footer

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its hints, with a sensible default.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
