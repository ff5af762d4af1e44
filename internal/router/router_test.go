package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cracked/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != s2 {
		t.Error("expected second screen to be active")
	}
	if !s2.initRan {
		t.Error("expected Init to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Push(&stubScreen{title: "second"})

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != s1 {
		t.Error("expected first screen to be active after pop")
	}
}

func TestPopLastScreenIsNoop(t *testing.T) {
	s1 := &stubScreen{title: "only"}
	r := New(s1)

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth to stay 1, got %d", r.Depth())
	}
	if r.Active() != s1 {
		t.Error("expected the only screen to remain active")
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Push(&stubScreen{title: "second"})

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != s3 {
		t.Error("expected replacement screen to be active")
	}
	if !s3.initRan {
		t.Error("expected Init to run on replacement screen")
	}

	r.Pop()
	if r.Active() != s1 {
		t.Error("expected pop after replace to land on the original bottom screen")
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Depth() != 2 || r.Active() != s2 {
		t.Error("PushScreenMsg did not push")
	}

	s3 := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 || r.Active() != s3 {
		t.Error("ReplaceScreenMsg did not replace")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Error("PopScreenMsg did not pop")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	if got := r.View(80, 24); got != "second" {
		t.Errorf("View() = %q, want %q", got, "second")
	}
}
