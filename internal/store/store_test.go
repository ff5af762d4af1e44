package store

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Named in-memory database so each test gets its own instance while
	// the pooled connections still see the same data.
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func putRecord(t *testing.T, s *Store, raw string) {
	t.Helper()
	_, err := s.DB().Exec(
		`INSERT INTO progress (id, record) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET record = excluded.record`, raw)
	if err != nil {
		t.Fatalf("put record: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	state, info := s.ProgressRepo().Load(context.Background())

	if info.Recovered {
		t.Errorf("empty store marked recovered: %s", info.Reason)
	}
	if len(state.CompletedMissions) != 0 {
		t.Errorf("completed missions = %d, want 0", len(state.CompletedMissions))
	}
	if state.SelectedPath != curriculum.PathNone {
		t.Errorf("selected path = %q, want none", state.SelectedPath)
	}
	if state.LastMission != progress.LastMissionIntro {
		t.Errorf("last mission = %q, want %q", state.LastMission, progress.LastMissionIntro)
	}
	if !state.ShowCapstoneIntro {
		t.Error("show capstone intro = false, want true")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	state := progress.DefaultState()
	state.CompletedMissions[curriculum.MustMissionID("1.1")] = true
	state.CompletedMissions[curriculum.MustMissionID("1.2")] = true
	state.CompletedMissions[curriculum.MustMissionID("3.1")] = true
	state.SelectedPath = curriculum.PathTechnical
	state.PathProgress[curriculum.PathTechnical][curriculum.MustMissionID("3.1")] = true
	state.PathBadges[curriculum.PathTechnical] = []string{progress.BadgeLevel3Complete}
	state.CertificatePaths = []curriculum.Path{curriculum.PathTechnical}
	state.LastMission = "3.2"
	state.ShowCapstoneIntro = false

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, info := repo.Load(ctx)
	if info.Recovered {
		t.Fatalf("clean record marked recovered: %s", info.Reason)
	}
	if len(loaded.CompletedMissions) != 3 {
		t.Errorf("completed missions = %d, want 3", len(loaded.CompletedMissions))
	}
	if !loaded.CompletedMissions[curriculum.MustMissionID("3.1")] {
		t.Error("mission 3.1 lost in round trip")
	}
	if loaded.SelectedPath != curriculum.PathTechnical {
		t.Errorf("selected path = %q, want technical", loaded.SelectedPath)
	}
	if !loaded.PathProgress[curriculum.PathTechnical][curriculum.MustMissionID("3.1")] {
		t.Error("path progress lost in round trip")
	}
	if !loaded.HasBadge(curriculum.PathTechnical, progress.BadgeLevel3Complete) {
		t.Error("badge lost in round trip")
	}
	if !loaded.HasCertificate(curriculum.PathTechnical) {
		t.Error("certificate lost in round trip")
	}
	if loaded.LastMission != "3.2" {
		t.Errorf("last mission = %q, want 3.2", loaded.LastMission)
	}
	if loaded.ShowCapstoneIntro {
		t.Error("show capstone intro = true, want false")
	}
}

func TestProgressSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := progress.DefaultState()
	first.LastMission = "1.3"
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := progress.DefaultState()
	second.LastMission = "2.1"
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _ := repo.Load(ctx)
	if loaded.LastMission != "2.1" {
		t.Errorf("last mission = %q, want 2.1", loaded.LastMission)
	}
}

func TestProgressCorruptRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unparseable", `{"completedMissions": [`},
		{"top-level string", `"not an object"`},
		{"top-level number", `42`},
		{"top-level array", `["1.1", "1.2"]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			putRecord(t, s, tt.raw)

			state, info := s.ProgressRepo().Load(context.Background())
			if !info.Recovered {
				t.Error("corrupt record not marked recovered")
			}
			if len(state.CompletedMissions) != 0 {
				t.Errorf("completed missions = %d, want 0", len(state.CompletedMissions))
			}
			if state.LastMission != progress.LastMissionIntro {
				t.Errorf("last mission = %q, want %q", state.LastMission, progress.LastMissionIntro)
			}
			if !state.ShowCapstoneIntro {
				t.Error("show capstone intro = false, want true")
			}
		})
	}
}

func TestProgressDamagedFieldsCoerced(t *testing.T) {
	s := openTestStore(t)
	putRecord(t, s, `{"completedMissions": 7, "lastMission": "2.3", "selectedPath": "business"}`)

	state, info := s.ProgressRepo().Load(context.Background())
	if !info.Recovered {
		t.Error("damaged field not marked recovered")
	}
	if len(state.CompletedMissions) != 0 {
		t.Errorf("completed missions = %d, want 0", len(state.CompletedMissions))
	}
	// Well-formed fields survive recovery.
	if state.LastMission != "2.3" {
		t.Errorf("last mission = %q, want 2.3", state.LastMission)
	}
	if state.SelectedPath != curriculum.PathBusiness {
		t.Errorf("selected path = %q, want business", state.SelectedPath)
	}
}

func TestProgressMissingFieldsDefaulted(t *testing.T) {
	s := openTestStore(t)
	putRecord(t, s, `{"completedMissions": ["1.1", "bogus"]}`)

	state, info := s.ProgressRepo().Load(context.Background())
	if info.Recovered {
		t.Errorf("record with only missing fields marked recovered: %s", info.Reason)
	}
	if !state.CompletedMissions[curriculum.MustMissionID("1.1")] {
		t.Error("mission 1.1 not loaded")
	}
	if len(state.CompletedMissions) != 1 {
		t.Errorf("completed missions = %d, want 1 (unparseable id skipped)", len(state.CompletedMissions))
	}
	if state.LastMission != progress.LastMissionIntro {
		t.Errorf("last mission = %q, want %q", state.LastMission, progress.LastMissionIntro)
	}
	if !state.ShowCapstoneIntro {
		t.Error("show capstone intro = false, want true")
	}
	if state.SelectedPath != curriculum.PathNone {
		t.Errorf("selected path = %q, want none", state.SelectedPath)
	}
}

func TestProgressUnknownPathIgnored(t *testing.T) {
	s := openTestStore(t)
	putRecord(t, s, `{"selectedPath": "wizard", "certificatePaths": ["wizard", "hybrid", "hybrid"]}`)

	state, _ := s.ProgressRepo().Load(context.Background())
	if state.SelectedPath != curriculum.PathNone {
		t.Errorf("selected path = %q, want none", state.SelectedPath)
	}
	if len(state.CertificatePaths) != 1 || state.CertificatePaths[0] != curriculum.PathHybrid {
		t.Errorf("certificate paths = %v, want [hybrid]", state.CertificatePaths)
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	state := progress.DefaultState()
	state.LastMission = "1.5"
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	// Idempotent.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	loaded, info := repo.Load(ctx)
	if info.Recovered {
		t.Errorf("cleared store marked recovered: %s", info.Reason)
	}
	if loaded.LastMission != progress.LastMissionIntro {
		t.Errorf("last mission = %q, want %q", loaded.LastMission, progress.LastMissionIntro)
	}
}

func TestGatewayPersistsThroughTracker(t *testing.T) {
	s := openTestStore(t)
	gw := s.ProgressRepo().Gateway()

	state := progress.DefaultState()
	state.SelectedPath = curriculum.PathHybrid
	if err := gw.Save(state); err != nil {
		t.Fatalf("gateway save: %v", err)
	}

	loaded, _ := s.ProgressRepo().Load(context.Background())
	if loaded.SelectedPath != curriculum.PathHybrid {
		t.Errorf("selected path = %q, want hybrid", loaded.SelectedPath)
	}

	if err := gw.Clear(); err != nil {
		t.Fatalf("gateway clear: %v", err)
	}
	loaded, _ = s.ProgressRepo().Load(context.Background())
	if loaded.SelectedPath != curriculum.PathNone {
		t.Errorf("selected path after clear = %q, want none", loaded.SelectedPath)
	}
}

func TestEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []struct{ kind, mission, path, detail string }{
		{EventEvaluation, "1.1", "", "3/5"},
		{EventCompletion, "1.1", "", ""},
		{EventPathSelect, "", "technical", ""},
		{EventBadge, "", "technical", progress.BadgeLevel3Complete},
	}
	for _, a := range appends {
		if err := repo.Append(ctx, a.kind, a.mission, a.path, a.detail); err != nil {
			t.Fatalf("append %s: %v", a.kind, err)
		}
	}

	events, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	// Newest first.
	if events[0].Kind != EventBadge || events[3].Kind != EventEvaluation {
		t.Errorf("unexpected order: first %q, last %q", events[0].Kind, events[3].Kind)
	}
	for i := 0; i < len(events)-1; i++ {
		if events[i].Sequence <= events[i+1].Sequence {
			t.Errorf("sequence not descending at %d: %d <= %d", i, events[i].Sequence, events[i+1].Sequence)
		}
	}
	for _, e := range events {
		if strings.TrimSpace(e.ID) == "" {
			t.Error("event missing id")
		}
		if e.Timestamp.IsZero() {
			t.Error("event missing timestamp")
		}
	}

	limited, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2, want 2", len(limited))
	}
}

func TestEventCountByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, EventEvaluation, "1.1", "", ""); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.Append(ctx, EventCompletion, "1.1", "", ""); err != nil {
		t.Fatalf("append: %v", err)
	}

	counts, err := repo.CountByKind(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[EventEvaluation] != 3 {
		t.Errorf("evaluation count = %d, want 3", counts[EventEvaluation])
	}
	if counts[EventCompletion] != 1 {
		t.Errorf("completion count = %d, want 1", counts[EventCompletion])
	}
}
