package curriculum

import (
	"slices"
	"sort"
)

// MaxLevel is the highest curriculum level.
const MaxLevel = 4

// LevelName returns the display name for a curriculum level.
func LevelName(level int) string {
	switch level {
	case 1:
		return "Atomic Prompts"
	case 2:
		return "Compound Workflows"
	case 3:
		return "Real-World Applications"
	case 4:
		return "Impressive Capstones"
	default:
		return "Unknown"
	}
}

// registry holds the default catalog and the path override table with
// precomputed indices.
type registry struct {
	missions  []Mission
	byID      map[MissionID]*Mission
	byLevel   map[int][]Mission
	overrides map[pathSlot]*Mission
}

// pathSlot keys the override table: one entry per (path, slot id) pair.
// A single table replaces the original's three parallel literals.
type pathSlot struct {
	Path Path
	ID   MissionID
}

// reg is the package-level registry singleton, built by init() in seed.go.
var reg *registry

func buildRegistry(missions []Mission, overrides map[pathSlot]Mission) *registry {
	r := &registry{
		missions:  missions,
		byID:      make(map[MissionID]*Mission, len(missions)),
		byLevel:   make(map[int][]Mission),
		overrides: make(map[pathSlot]*Mission, len(overrides)),
	}
	for i := range r.missions {
		r.byID[r.missions[i].ID] = &r.missions[i]
	}
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		var group []Mission
		for _, m := range missions {
			if m.ID.Level == lvl {
				group = append(group, m)
			}
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].ID.Sequence < group[j].ID.Sequence
		})
		r.byLevel[lvl] = group
	}
	for k, m := range overrides {
		ov := m
		r.overrides[k] = &ov
	}
	return r
}

// Resolve returns the concrete mission definition for a slot id given the
// active path. Path-specific slots consult the override table first and fall
// back to the default definition. A path-specific slot with no path selected
// resolves to a placeholder that explains a path must be chosen; it has no
// gradable criteria and is never completable.
func Resolve(id MissionID, path Path) (Mission, bool) {
	m, ok := reg.byID[id]
	if !ok {
		return Mission{}, false
	}
	if !id.PathSpecific() {
		return *m, true
	}
	if !path.IsSelected() {
		return placeholderMission(id), true
	}
	if ov, ok := reg.overrides[pathSlot{Path: path, ID: id}]; ok {
		return *ov, true
	}
	return *m, true
}

// Lookup returns the path-invariant default definition for an id.
func Lookup(id MissionID) (Mission, bool) {
	m, ok := reg.byID[id]
	if !ok {
		return Mission{}, false
	}
	return *m, true
}

// AllMissions returns the default catalog in level/sequence order.
func AllMissions() []Mission {
	var out []Mission
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		out = append(out, reg.byLevel[lvl]...)
	}
	return out
}

// ByLevel returns the default missions for one level, ordered by sequence.
func ByLevel(level int) []Mission {
	return slices.Clone(reg.byLevel[level])
}

// LevelIDs returns the mission ids for a level in sequence order.
func LevelIDs(level int) []MissionID {
	ms := reg.byLevel[level]
	ids := make([]MissionID, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

// PathSlotIDs returns the seven ids that count toward a path's progress:
// the four level-3 slots and the three level-4 slots.
func PathSlotIDs() []MissionID {
	var out []MissionID
	out = append(out, LevelIDs(3)...)
	out = append(out, LevelIDs(4)...)
	return out
}

// TotalMissions returns the number of missions in the default catalog.
func TotalMissions() int {
	return len(reg.missions)
}

// placeholderMission builds the stand-in shown for a path-specific slot when
// no path has been selected. It carries no criteria, so evaluation of it
// legitimately produces nothing.
func placeholderMission(id MissionID) Mission {
	return Mission{
		ID:          id,
		Title:       "Choose Your Path",
		Placeholder: true,
		Instructions: Instructions{
			Scenario: "This mission slot depends on your specialization path. " +
				"Pick the Business, Technical, or Hybrid path to unlock its concrete mission.",
			Goal: "Select a path from the Paths screen to continue.",
		},
	}
}
