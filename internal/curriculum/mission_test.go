package curriculum

import (
	"testing"
)

func TestParseMissionID(t *testing.T) {
	tests := []struct {
		in      string
		want    MissionID
		wantErr bool
	}{
		{"1.1", MissionID{1, 1}, false},
		{"4.3", MissionID{4, 3}, false},
		{"2.10", MissionID{2, 10}, false},
		{"intro", MissionID{}, true},
		{"", MissionID{}, true},
		{"5.1", MissionID{}, true},
		{"0.1", MissionID{}, true},
		{"1.0", MissionID{}, true},
		{"1.x", MissionID{}, true},
		{"x.1", MissionID{}, true},
	}
	for _, tt := range tests {
		got, err := ParseMissionID(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMissionID(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMissionID(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMissionID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMissionID_String_RoundTrip(t *testing.T) {
	for _, m := range AllMissions() {
		parsed, err := ParseMissionID(m.ID.String())
		if err != nil {
			t.Fatalf("round trip %q: %v", m.ID, err)
		}
		if parsed != m.ID {
			t.Errorf("round trip %q: got %v", m.ID, parsed)
		}
	}
}

func TestMissionID_PathSpecific(t *testing.T) {
	specific := map[MissionID]bool{
		{3, 2}: true, {3, 4}: true, {4, 1}: true, {4, 2}: true, {4, 3}: true,
	}
	for _, m := range AllMissions() {
		if got := m.ID.PathSpecific(); got != specific[m.ID] {
			t.Errorf("%q.PathSpecific() = %v, want %v", m.ID, got, specific[m.ID])
		}
	}
}

func TestCriterion_Bonus(t *testing.T) {
	if !(Criterion{ID: "bonus"}).Bonus() {
		t.Error("criterion id \"bonus\" should be bonus")
	}
	if (Criterion{ID: "wordcount"}).Bonus() {
		t.Error("criterion id \"wordcount\" should not be bonus")
	}
}

func TestMission_RequiredCount_ExcludesBonus(t *testing.T) {
	m, ok := Lookup(MissionID{1, 3})
	if !ok {
		t.Fatal("Lookup(1.3) not found")
	}
	if len(m.Criteria) != 5 {
		t.Fatalf("got %d criteria, want 5", len(m.Criteria))
	}
	if m.RequiredCount() != 4 {
		t.Errorf("RequiredCount() = %d, want 4 (bonus excluded)", m.RequiredCount())
	}
}

func TestMission_AutoCriteria(t *testing.T) {
	m, ok := Lookup(MissionID{3, 2})
	if !ok {
		t.Fatal("Lookup(3.2) not found")
	}
	auto := m.AutoCriteria()
	if len(auto) != 1 {
		t.Fatalf("got %d auto criteria, want 1", len(auto))
	}
	if auto[0].ID != "summary" {
		t.Errorf("auto criterion = %q, want %q", auto[0].ID, "summary")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"business", PathBusiness},
		{"technical", PathTechnical},
		{"hybrid", PathHybrid},
		{"", PathNone},
		{"bogus", PathNone},
	}
	for _, tt := range tests {
		if got := ParsePath(tt.in); got != tt.want {
			t.Errorf("ParsePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
