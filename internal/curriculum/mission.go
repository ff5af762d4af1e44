package curriculum

import (
	"fmt"
	"strconv"
	"strings"
)

// MissionID identifies a mission as level.sequence, e.g. "2.3".
type MissionID struct {
	Level    int
	Sequence int
}

// ParseMissionID parses a "level.sequence" string into a MissionID.
func ParseMissionID(s string) (MissionID, error) {
	lvl, seq, ok := strings.Cut(s, ".")
	if !ok {
		return MissionID{}, fmt.Errorf("mission id %q: missing separator", s)
	}
	l, err := strconv.Atoi(lvl)
	if err != nil {
		return MissionID{}, fmt.Errorf("mission id %q: bad level: %w", s, err)
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return MissionID{}, fmt.Errorf("mission id %q: bad sequence: %w", s, err)
	}
	if l < 1 || l > MaxLevel {
		return MissionID{}, fmt.Errorf("mission id %q: level out of range", s)
	}
	if n < 1 {
		return MissionID{}, fmt.Errorf("mission id %q: sequence out of range", s)
	}
	return MissionID{Level: l, Sequence: n}, nil
}

// MustMissionID parses an id string and panics on failure. For static catalog
// definitions only.
func MustMissionID(s string) MissionID {
	id, err := ParseMissionID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical "level.sequence" form.
func (id MissionID) String() string {
	return fmt.Sprintf("%d.%d", id.Level, id.Sequence)
}

// IsZero reports whether the id is the zero value.
func (id MissionID) IsZero() bool {
	return id.Level == 0 && id.Sequence == 0
}

// PathSpecific reports whether this slot can be overridden by a path.
// Slots 3.2, 3.4, 4.1, 4.2 and 4.3 vary per path; everything else is
// path-invariant.
func (id MissionID) PathSpecific() bool {
	switch id {
	case MissionID{3, 2}, MissionID{3, 4}, MissionID{4, 1}, MissionID{4, 2}, MissionID{4, 3}:
		return true
	}
	return false
}

// Criterion is one pass/fail rubric line within a mission. Auto criteria are
// graded by the evaluator; the rest are self-attested by the learner.
type Criterion struct {
	ID    string
	Label string
	Auto  bool
}

// Bonus reports whether the criterion is informational only. Bonus criteria
// never count toward the required total.
func (c Criterion) Bonus() bool {
	return strings.Contains(c.ID, "bonus")
}

// Instructions is the instructional payload shown for a mission. The core
// treats it as opaque content.
type Instructions struct {
	Scenario     string
	Context      string // optional explainer block (what is XML, what are tokens, ...)
	SampleData   string // optional embedded data the learner works against
	Example      string // optional worked example
	Requirements []string
	Goal         string
	Portfolio    string // level 3-4 only: why this matters professionally
}

// Mission is one gradable unit of the curriculum. Missions are immutable
// after catalog load.
type Mission struct {
	ID           MissionID
	Title        string
	Instructions Instructions
	Criteria     []Criterion
	Placeholder  bool // true for the "choose a path first" stand-in
}

// RequiredCount returns the number of non-bonus criteria, the denominator
// for mission completion.
func (m Mission) RequiredCount() int {
	n := 0
	for _, c := range m.Criteria {
		if !c.Bonus() {
			n++
		}
	}
	return n
}

// AutoCriteria returns the criteria graded by the evaluator, in order.
func (m Mission) AutoCriteria() []Criterion {
	var out []Criterion
	for _, c := range m.Criteria {
		if c.Auto {
			out = append(out, c)
		}
	}
	return out
}
