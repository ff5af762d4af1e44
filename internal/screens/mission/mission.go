// Package mission is the submission workspace for a single mission: the
// briefing, the output paste area, and the criteria checklist.
package mission

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/evaluate"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/screen"
	"github.com/abhisek/cracked/internal/store"
	"github.com/abhisek/cracked/internal/ui/components"
	"github.com/abhisek/cracked/internal/ui/layout"
	"github.com/abhisek/cracked/internal/ui/theme"
)

// MissionScreen drives one mission from briefing to graded submission.
type MissionScreen struct {
	tracker *progress.Tracker
	events  *store.EventRepo
	id      curriculum.MissionID
	m       curriculum.Mission

	editor    components.TextArea
	checklist components.Checklist

	editing      bool
	briefingOpen bool
	showIntro    bool
	outcome      *progress.Outcome
}

var _ screen.Screen = (*MissionScreen)(nil)
var _ screen.KeyHintProvider = (*MissionScreen)(nil)

// New creates the workspace for the given mission slot, resolved against
// the learner's active path.
func New(tracker *progress.Tracker, events *store.EventRepo, id curriculum.MissionID) *MissionScreen {
	m, _ := curriculum.Resolve(id, tracker.State().SelectedPath)

	items := make([]components.ChecklistItem, 0, len(m.Criteria))
	for _, c := range m.Criteria {
		items = append(items, components.ChecklistItem{
			ID:    c.ID,
			Label: c.Label,
			Auto:  c.Auto,
		})
	}

	s := &MissionScreen{
		tracker:   tracker,
		events:    events,
		id:        id,
		m:         m,
		editor:    components.NewTextArea("Paste the AI assistant's output here..."),
		checklist: components.NewChecklist(items),
		editing:   true,
		showIntro: id.Level == curriculum.MaxLevel && tracker.State().ShowCapstoneIntro,
	}

	if !m.Placeholder {
		tracker.SetLastMission(id.String())
	}
	return s
}

func (s *MissionScreen) Init() tea.Cmd {
	return tea.Batch(s.editor.Init(), s.editor.Focus())
}

func (s *MissionScreen) Title() string {
	return fmt.Sprintf("Mission %s", s.id)
}

func (s *MissionScreen) KeyHints() []layout.KeyHint {
	if s.showIntro {
		return []layout.KeyHint{{Key: "Any key", Description: "Continue"}}
	}
	hints := []layout.KeyHint{
		{Key: "Ctrl+E", Description: "Evaluate"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Tab", Description: "Checklist"},
		{Key: "Ctrl+B", Description: "Briefing"},
	}
	if !s.editing {
		hints[2] = layout.KeyHint{Key: "Tab", Description: "Editor"}
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *MissionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.m.Placeholder {
		return s, nil
	}

	if s.showIntro {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			s.showIntro = false
			s.tracker.DismissCapstoneIntro()
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			if s.editing {
				s.editing = false
				s.editor.Blur()
				s.checklist.Focused = true
				return s, nil
			}
			s.editing = true
			s.checklist.Focused = false
			return s, s.editor.Focus()

		case "ctrl+b":
			s.briefingOpen = !s.briefingOpen
			return s, nil

		case "ctrl+e":
			s.runEvaluation()
			return s, nil

		case "ctrl+s":
			s.submit()
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.editing {
		s.editor, cmd = s.editor.Update(msg)
	} else {
		s.checklist, cmd = s.checklist.Update(msg)
	}
	return s, cmd
}

// runEvaluation grades the pasted output and updates the checklist without
// committing anything to progress.
func (s *MissionScreen) runEvaluation() {
	results := evaluate.Evaluate(s.id, s.tracker.State().SelectedPath, s.editor.Value())
	s.checklist.SetGraded(results)

	passed := 0
	for _, v := range results {
		if v {
			passed++
		}
	}
	s.events.TryAppend(store.EventEvaluation, s.id.String(),
		string(s.tracker.State().SelectedPath),
		fmt.Sprintf("%d/%d auto criteria passed", passed, len(results)))
}

// submit commits the merged auto and manual results to progress.
func (s *MissionScreen) submit() {
	s.runEvaluation()
	out := s.tracker.SubmitEvaluation(s.id, s.checklist.GradedResults(), s.checklist.ManualOverrides())
	s.outcome = &out

	path := string(s.tracker.State().SelectedPath)
	if out.FirstCompletion {
		s.events.TryAppend(store.EventCompletion, s.id.String(), path,
			fmt.Sprintf("%d/%d criteria", out.Passed, len(out.Results)))
	}
	for _, badge := range out.NewBadges {
		s.events.TryAppend(store.EventBadge, "", path, badge)
	}
	if out.NewCertificate {
		s.events.TryAppend(store.EventCertificate, "", path, "")
	}
}

func (s *MissionScreen) View(width, height int) string {
	if s.m.Placeholder {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Choose a specialization path to unlock this mission."))
	}

	if s.showIntro {
		return s.renderCapstoneIntro(width, height)
	}

	if s.briefingOpen {
		return s.renderBriefing(width, height)
	}

	var sections []string

	header := theme.Selected.Render(s.m.Title)
	if s.tracker.State().CompletedMissions[s.id] {
		header += "  " + theme.Pass.Render("✓ completed")
	}
	sections = append(sections, header)

	goal := s.m.Instructions.Goal
	if goal == "" {
		goal = s.m.Instructions.Scenario
	}
	if goal != "" {
		sections = append(sections, theme.Body.Render(truncate(goal, 3, width-4))+
			"\n"+theme.Hint.Render("ctrl+b for the full briefing"))
	}

	editorHeight := height - lipgloss.Height(strings.Join(sections, "\n")) - len(s.m.Criteria) - 6
	if editorHeight < 3 {
		editorHeight = 3
	}
	if editorHeight > 10 {
		editorHeight = 10
	}
	s.editor.Resize(width-4, editorHeight)
	sections = append(sections, s.editor.View())

	sections = append(sections, s.checklist.View())

	if line := s.renderOutcome(); line != "" {
		sections = append(sections, line)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n"))
}

// renderOutcome summarizes the last submission.
func (s *MissionScreen) renderOutcome() string {
	if s.outcome == nil {
		return ""
	}
	out := s.outcome

	status := theme.Fail.Render(fmt.Sprintf("%d of %d required criteria", out.Passed, out.Required))
	if out.Satisfied {
		status = theme.Pass.Render(fmt.Sprintf("Mission complete · %d/%d", out.Passed, out.Required))
	}

	var extras []string
	for _, b := range out.NewBadges {
		extras = append(extras, "badge earned: "+b)
	}
	if out.NewCertificate {
		extras = append(extras, "certificate issued!")
	}
	if len(extras) > 0 {
		status += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(strings.Join(extras, " · "))
	}
	return status
}

// renderBriefing shows the full instruction payload.
func (s *MissionScreen) renderBriefing(width, height int) string {
	ins := s.m.Instructions

	var b strings.Builder
	b.WriteString(theme.Selected.Render(s.m.Title) + "\n\n")

	section := func(label, text string) {
		if text == "" {
			return
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label) + "\n")
		b.WriteString(theme.Body.Render(text) + "\n\n")
	}

	section("Scenario", ins.Scenario)
	section("Context", ins.Context)
	section("Sample data", ins.SampleData)
	section("Example", ins.Example)
	if len(ins.Requirements) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Requirements") + "\n")
		for _, r := range ins.Requirements {
			b.WriteString(theme.Body.Render("  • "+r) + "\n")
		}
		b.WriteString("\n")
	}
	section("Goal", ins.Goal)
	section("Portfolio", ins.Portfolio)

	b.WriteString(theme.Hint.Render("ctrl+b to return to the editor"))

	return lipgloss.NewStyle().Padding(0, 2).Width(width).MaxHeight(height).Render(b.String())
}

// renderCapstoneIntro is shown once before the first level-4 mission.
func (s *MissionScreen) renderCapstoneIntro(width, height int) string {
	body := theme.Title.Render("Capstone Missions") + "\n\n" +
		theme.Body.Render("Level 4 is where everything comes together. Each capstone\n"+
			"is a large, open-ended build: multi-agent systems, domain\n"+
			"expert assistants, and an original innovation of your own.\n\n"+
			"Expect several iterations per mission. Some criteria are\n"+
			"self-assessed; be honest, it is your portfolio.") + "\n\n" +
		theme.Hint.Render("press any key to continue")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}

// truncate limits text to maxLines lines of roughly lineWidth characters.
func truncate(text string, maxLines, lineWidth int) string {
	if lineWidth < 20 {
		lineWidth = 20
	}
	wrapped := lipgloss.NewStyle().Width(lineWidth).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}
	return strings.Join(lines[:maxLines], "\n") + "…"
}
