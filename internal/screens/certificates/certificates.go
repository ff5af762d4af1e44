// Package certificates shows badges and certificates earned per path.
package certificates

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/ui/components"
	"github.com/abhisek/cracked/internal/ui/layout"
	"github.com/abhisek/cracked/internal/ui/theme"
)

var badgeLabels = []struct {
	id    string
	label string
}{
	{progress.BadgeLevel3Complete, "Level 3 Complete"},
	{progress.BadgeLevel4Complete, "Level 4 Complete"},
	{progress.BadgePathMaster, "Path Master"},
}

// CertificatesScreen summarizes earned badges and certificates.
type CertificatesScreen struct {
	tracker *progress.Tracker
}

var _ screen.Screen = (*CertificatesScreen)(nil)
var _ screen.KeyHintProvider = (*CertificatesScreen)(nil)

// New creates a new CertificatesScreen.
func New(tracker *progress.Tracker) *CertificatesScreen {
	return &CertificatesScreen{tracker: tracker}
}

func (s *CertificatesScreen) Init() tea.Cmd {
	return nil
}

func (s *CertificatesScreen) Title() string {
	return "Certificates"
}

func (s *CertificatesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *CertificatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *CertificatesScreen) View(width, height int) string {
	state := s.tracker.State()

	cards := make([]string, 0, len(curriculum.AllPaths()))
	for _, p := range curriculum.AllPaths() {
		cards = append(cards, s.renderPathCard(state, p))
	}

	content := strings.Join(cards, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *CertificatesScreen) renderPathCard(state *progress.State, p curriculum.Path) string {
	counts := state.CountsFor(p)

	var b strings.Builder
	name := fmt.Sprintf("%s %s", p.Icon(), p.DisplayName())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name) + "\n")

	bar := components.NewProgressBar("", float64(counts.Total)/float64(progress.PathMissionTotal), true, 44)
	b.WriteString(bar.View() + "\n")

	for _, badge := range badgeLabels {
		if state.HasBadge(p, badge.id) {
			b.WriteString(theme.Pass.Render("  ✓ "+badge.label) + "\n")
		} else {
			b.WriteString(theme.Hint.Render("  · "+badge.label) + "\n")
		}
	}

	if state.HasCertificate(p) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("  ★ Certificate of Completion"))
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Complete all %d missions for the certificate",
			progress.PathMissionTotal)))
	}

	return theme.Card.Render(b.String())
}
