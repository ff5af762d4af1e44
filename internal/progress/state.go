// Package progress owns the learner's progress aggregate and the session
// controller that mutates it. All mutations flow through the Tracker so that
// every state change is persisted and badge/certificate thresholds are
// checked in one place.
package progress

import (
	"github.com/abhisek/cracked/internal/curriculum"
)

// Badge identifiers, in award order.
const (
	BadgeLevel3Complete = "level3-complete"
	BadgeLevel4Complete = "level4-complete"
	BadgePathMaster     = "path-master"
)

// PathMissionTotal is the number of missions that count toward one path:
// the four level-3 slots plus the three level-4 slots.
const PathMissionTotal = 7

// LastMissionIntro marks the welcome screen as the resume point.
const LastMissionIntro = "intro"

// State is the full persistent progress aggregate. The Tracker owns the
// canonical copy; screens read through Tracker accessors.
type State struct {
	CompletedMissions map[curriculum.MissionID]bool
	SelectedPath      curriculum.Path
	PathProgress      map[curriculum.Path]map[curriculum.MissionID]bool
	PathBadges        map[curriculum.Path][]string
	CertificatePaths  []curriculum.Path
	LastMission       string // mission id string, or "intro"
	ShowCapstoneIntro bool

	// PendingSwitch holds the target of an unconfirmed path switch.
	// Session-only; never persisted.
	PendingSwitch curriculum.Path
}

// DefaultState returns the documented defaults for a fresh learner.
func DefaultState() *State {
	return &State{
		CompletedMissions: make(map[curriculum.MissionID]bool),
		SelectedPath:      curriculum.PathNone,
		PathProgress: map[curriculum.Path]map[curriculum.MissionID]bool{
			curriculum.PathBusiness:  make(map[curriculum.MissionID]bool),
			curriculum.PathTechnical: make(map[curriculum.MissionID]bool),
			curriculum.PathHybrid:    make(map[curriculum.MissionID]bool),
		},
		PathBadges: map[curriculum.Path][]string{
			curriculum.PathBusiness:  {},
			curriculum.PathTechnical: {},
			curriculum.PathHybrid:    {},
		},
		CertificatePaths:  []curriculum.Path{},
		LastMission:       LastMissionIntro,
		ShowCapstoneIntro: true,
	}
}

// PathCounts summarizes one path's progress through its seven missions.
type PathCounts struct {
	Level3     int
	Level4     int
	Total      int
	Percentage int
}

// CountsFor computes the per-level completion counts for a path.
func (s *State) CountsFor(path curriculum.Path) PathCounts {
	var c PathCounts
	for id := range s.PathProgress[path] {
		switch id.Level {
		case 3:
			c.Level3++
		case 4:
			c.Level4++
		}
	}
	c.Total = len(s.PathProgress[path])
	c.Percentage = c.Total * 100 / PathMissionTotal
	return c
}

// LevelComplete reports whether every mission of a level is completed.
func (s *State) LevelComplete(level int) bool {
	ids := curriculum.LevelIDs(level)
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.CompletedMissions[id] {
			return false
		}
	}
	return true
}

// HasBadge reports whether the badge has been awarded for the path.
func (s *State) HasBadge(path curriculum.Path, badge string) bool {
	for _, b := range s.PathBadges[path] {
		if b == badge {
			return true
		}
	}
	return false
}

// HasCertificate reports whether a certificate has been issued for the path.
func (s *State) HasCertificate(path curriculum.Path) bool {
	for _, p := range s.CertificatePaths {
		if p == path {
			return true
		}
	}
	return false
}

// RecommendedPath suggests a specialization from level-1 performance. The
// content-flavored missions point at business, the structured-data ones at
// technical, anything mixed lands on hybrid.
func (s *State) RecommendedPath() curriculum.Path {
	content := s.CompletedMissions[curriculum.MissionID{Level: 1, Sequence: 1}] &&
		s.CompletedMissions[curriculum.MissionID{Level: 1, Sequence: 4}]
	technical := s.CompletedMissions[curriculum.MissionID{Level: 1, Sequence: 2}] &&
		s.CompletedMissions[curriculum.MissionID{Level: 1, Sequence: 7}]

	switch {
	case content && !technical:
		return curriculum.PathBusiness
	case technical && !content:
		return curriculum.PathTechnical
	default:
		return curriculum.PathHybrid
	}
}
