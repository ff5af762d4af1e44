package curriculum

import (
	"testing"
)

func TestAllMissions_Count(t *testing.T) {
	all := AllMissions()
	if len(all) != 19 {
		t.Errorf("got %d missions, want 19", len(all))
	}
	if TotalMissions() != 19 {
		t.Errorf("TotalMissions() = %d, want 19", TotalMissions())
	}
}

func TestByLevel_Counts(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 7},
		{2, 5},
		{3, 4},
		{4, 3},
	}
	for _, tt := range tests {
		ms := ByLevel(tt.level)
		if len(ms) != tt.want {
			t.Errorf("ByLevel(%d): got %d missions, want %d", tt.level, len(ms), tt.want)
		}
	}
}

func TestByLevel_SortedBySequence(t *testing.T) {
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		ms := ByLevel(lvl)
		for i := 1; i < len(ms); i++ {
			if ms[i].ID.Sequence < ms[i-1].ID.Sequence {
				t.Errorf("level %d not sorted: %q before %q", lvl, ms[i-1].ID, ms[i].ID)
			}
		}
	}
}

func TestLookup_Exists(t *testing.T) {
	m, ok := Lookup(MissionID{1, 1})
	if !ok {
		t.Fatal("Lookup(1.1) not found")
	}
	if m.Title != "Precision Control" {
		t.Errorf("got title %q, want %q", m.Title, "Precision Control")
	}
	if len(m.Criteria) != 5 {
		t.Errorf("got %d criteria, want 5", len(m.Criteria))
	}
}

func TestLookup_NotFound(t *testing.T) {
	if _, ok := Lookup(MissionID{5, 1}); ok {
		t.Fatal("expected Lookup(5.1) to miss")
	}
}

func TestResolve_DefaultForInvariantSlot(t *testing.T) {
	m, ok := Resolve(MissionID{3, 1}, PathBusiness)
	if !ok {
		t.Fatal("Resolve(3.1, business) not found")
	}
	if m.Title != "Content Pipeline" {
		t.Errorf("got %q, want the path-invariant default", m.Title)
	}
}

func TestResolve_OverridePerPath(t *testing.T) {
	tests := []struct {
		id    MissionID
		path  Path
		title string
	}{
		{MissionID{3, 2}, PathBusiness, "Market Research Automation"},
		{MissionID{3, 2}, PathTechnical, "Data Analysis & Visualization"},
		{MissionID{3, 2}, PathHybrid, "Automated Report Generation"},
		{MissionID{3, 4}, PathBusiness, "Multi-Channel Campaign Generator"},
		{MissionID{3, 4}, PathTechnical, "AI-Powered Code Generation"},
		{MissionID{3, 4}, PathHybrid, "Workflow Automation Builder"},
		{MissionID{4, 1}, PathBusiness, "Product Launch Campaign Orchestrator"},
		{MissionID{4, 1}, PathTechnical, "Production-Grade API Integration System"},
		{MissionID{4, 1}, PathHybrid, "Business Intelligence Dashboard Builder"},
		{MissionID{4, 2}, PathBusiness, "Customer Journey Intelligence System"},
		{MissionID{4, 2}, PathTechnical, "Machine Learning Pipeline Builder"},
		{MissionID{4, 2}, PathHybrid, "Regulatory Compliance Analyzer"},
		{MissionID{4, 3}, PathBusiness, "Competitive Intelligence Monitoring System"},
		{MissionID{4, 3}, PathTechnical, "Infrastructure-as-Code Deployment System"},
		{MissionID{4, 3}, PathHybrid, "Strategic Decision Analyzer"},
	}
	for _, tt := range tests {
		m, ok := Resolve(tt.id, tt.path)
		if !ok {
			t.Errorf("Resolve(%q, %q) not found", tt.id, tt.path)
			continue
		}
		if m.Title != tt.title {
			t.Errorf("Resolve(%q, %q): got title %q, want %q", tt.id, tt.path, m.Title, tt.title)
		}
		if m.Placeholder {
			t.Errorf("Resolve(%q, %q): unexpected placeholder", tt.id, tt.path)
		}
	}
}

func TestResolve_PlaceholderWithoutPath(t *testing.T) {
	for _, id := range []MissionID{{3, 2}, {3, 4}, {4, 1}, {4, 2}, {4, 3}} {
		m, ok := Resolve(id, PathNone)
		if !ok {
			t.Fatalf("Resolve(%q, none) not found", id)
		}
		if !m.Placeholder {
			t.Errorf("Resolve(%q, none): want placeholder", id)
		}
		if len(m.Criteria) != 0 {
			t.Errorf("Resolve(%q, none): placeholder has %d criteria, want 0", id, len(m.Criteria))
		}
	}
}

func TestResolve_UnknownMission(t *testing.T) {
	if _, ok := Resolve(MissionID{1, 9}, PathBusiness); ok {
		t.Fatal("expected Resolve(1.9) to miss")
	}
}

func TestPathSlotIDs(t *testing.T) {
	ids := PathSlotIDs()
	if len(ids) != 7 {
		t.Fatalf("got %d path slot ids, want 7", len(ids))
	}
	want := []MissionID{{3, 1}, {3, 2}, {3, 3}, {3, 4}, {4, 1}, {4, 2}, {4, 3}}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("slot %d: got %q, want %q", i, ids[i], id)
		}
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Atomic Prompts"},
		{2, "Compound Workflows"},
		{3, "Real-World Applications"},
		{4, "Impressive Capstones"},
		{9, "Unknown"},
	}
	for _, tt := range tests {
		if got := LevelName(tt.level); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestValidate_Catalog(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}
