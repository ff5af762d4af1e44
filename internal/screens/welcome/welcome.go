// Package welcome shows the first-run intro before the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/router"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	hintDelay    = 800 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen greets a new learner and explains the loop: write a prompt
// elsewhere, paste the AI's output here, get it graded.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory on the first key press.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < hintDelay {
			w.elapsed += tickInterval
			return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}
		return w, nil

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Prove your prompt engineering skills.")
	sections = append(sections, tagline)
	sections = append(sections, "")

	howItWorks := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Each mission gives you a task. Write your prompt in any AI\n" +
			"assistant, paste the output back here, and get it graded\n" +
			"against the mission's criteria. Finish a specialization path\n" +
			"to earn badges and a certificate.")
	sections = append(sections, howItWorks)

	if w.elapsed >= hintDelay {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
