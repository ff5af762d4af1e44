package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/ui/theme"
)

// ChecklistItem is one criterion row. Auto rows are graded by the evaluator;
// any row can additionally be ticked by hand, and the effective state is the
// OR of the two.
type ChecklistItem struct {
	ID     string
	Label  string
	Auto   bool
	Graded bool
	Manual bool
}

// Effective reports whether the row currently counts as passed.
func (i ChecklistItem) Effective() bool {
	return i.Graded || i.Manual
}

// Checklist is a navigable list of criteria with manual toggles.
type Checklist struct {
	Items    []ChecklistItem
	Selected int
	Focused  bool
}

// NewChecklist creates a checklist for the given rows.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// SetGraded applies evaluator verdicts by criterion id. Rows without a
// verdict keep their previous graded state.
func (c *Checklist) SetGraded(results map[string]bool) {
	for i := range c.Items {
		if v, ok := results[c.Items[i].ID]; ok {
			c.Items[i].Graded = v
		}
	}
}

// ManualOverrides returns the hand-ticked rows keyed by criterion id.
func (c Checklist) ManualOverrides() map[string]bool {
	out := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Manual {
			out[it.ID] = true
		}
	}
	return out
}

// GradedResults returns the evaluator verdicts keyed by criterion id.
func (c Checklist) GradedResults() map[string]bool {
	out := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Auto {
			out[it.ID] = it.Graded
		}
	}
	return out
}

// PassedCount returns how many rows are effectively passed.
func (c Checklist) PassedCount() int {
	n := 0
	for _, it := range c.Items {
		if it.Effective() {
			n++
		}
	}
	return n
}

// Update handles navigation and manual toggling while focused.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Items)-1 {
			c.Selected++
		}
	case "space", " ":
		if c.Selected >= 0 && c.Selected < len(c.Items) {
			c.Items[c.Selected].Manual = !c.Items[c.Selected].Manual
		}
	}
	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, it := range c.Items {
		mark := theme.Fail.Render("✗")
		if it.Effective() {
			mark = theme.Pass.Render("✓")
		}

		tag := ""
		if it.Auto {
			tag = theme.Hint.Render(" (auto)")
		} else if it.Manual {
			tag = theme.Hint.Render(" (checked)")
		}

		cursor := "  "
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if c.Focused && i == c.Selected {
			cursor = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		}

		s += cursor + mark + " " + labelStyle.Render(it.Label) + tag + "\n"
	}
	return s
}
