package progress

import (
	"strings"

	"github.com/abhisek/cracked/internal/curriculum"
)

// Gateway is the persistence seam the tracker writes through. Implemented
// by store.ProgressRepo; tests substitute an in-memory fake.
type Gateway interface {
	Save(s *State) error
	Clear() error
}

// SaveNotice classifies a persistence failure for the one-time user notice.
type SaveNotice int

const (
	SaveNoticeNone SaveNotice = iota
	SaveNoticeStorageFull
	SaveNoticeStorageUnavailable
)

// Message returns the user-facing text for the notice.
func (n SaveNotice) Message() string {
	switch n {
	case SaveNoticeStorageFull:
		return "Unable to save progress: storage is full. Free some disk space and try again."
	case SaveNoticeStorageUnavailable:
		return "Unable to save progress: storage is unavailable. Progress will be lost when you quit."
	default:
		return ""
	}
}

// Outcome reports what a submission changed.
type Outcome struct {
	Mission         curriculum.Mission
	Results         map[string]bool
	Passed          int
	Required        int
	Satisfied       bool
	FirstCompletion bool
	NewBadges       []string
	NewCertificate  bool
}

// Tracker is the session controller. It owns the canonical State, applies
// every mutation, persists through the gateway, and holds the
// once-per-session save notice.
type Tracker struct {
	state  *State
	gw     Gateway
	policy completionPolicy

	notice      SaveNotice
	noticeShown bool
}

// NewTracker wraps a loaded state and its persistence gateway.
func NewTracker(state *State, gw Gateway) *Tracker {
	if state == nil {
		state = DefaultState()
	}
	return &Tracker{state: state, gw: gw, policy: meetsRequiredCount}
}

// State exposes the aggregate for read access by screens.
func (t *Tracker) State() *State {
	return t.state
}

// SubmitEvaluation merges automatic verdicts with the learner's manual
// checkbox state and applies the completion policy. First completions feed
// path progress, badges, and certificates. Resubmitting a completed mission
// never un-completes it and never re-awards anything.
func (t *Tracker) SubmitEvaluation(id curriculum.MissionID, auto, manual map[string]bool) Outcome {
	m, ok := curriculum.Resolve(id, t.state.SelectedPath)
	if !ok || m.Placeholder {
		return Outcome{Results: map[string]bool{}}
	}

	results := make(map[string]bool, len(m.Criteria))
	passed := 0
	for _, c := range m.Criteria {
		pass := auto[c.ID] || manual[c.ID]
		results[c.ID] = pass
		if pass {
			passed++
		}
	}
	required := m.RequiredCount()

	out := Outcome{
		Mission:  m,
		Results:  results,
		Passed:   passed,
		Required: required,
	}

	if !t.policy(passed, required) {
		t.persist()
		return out
	}
	out.Satisfied = true

	if !t.state.CompletedMissions[id] {
		t.state.CompletedMissions[id] = true
		out.FirstCompletion = true
	}

	path := t.state.SelectedPath
	if path.IsSelected() && (id.Level == 3 || id.Level == 4) {
		t.state.PathProgress[path][id] = true
		out.NewBadges = t.awardBadges(path)
		out.NewCertificate = t.issueCertificate(path)
	}

	t.persist()
	return out
}

// awardBadges appends any newly earned badges for the path and returns them.
func (t *Tracker) awardBadges(path curriculum.Path) []string {
	counts := t.state.CountsFor(path)
	var earned []string

	if counts.Level3 >= 4 && !t.state.HasBadge(path, BadgeLevel3Complete) {
		earned = append(earned, BadgeLevel3Complete)
	}
	if counts.Level4 >= 3 && !t.state.HasBadge(path, BadgeLevel4Complete) {
		earned = append(earned, BadgeLevel4Complete)
	}
	if counts.Total >= PathMissionTotal && !t.state.HasBadge(path, BadgePathMaster) {
		earned = append(earned, BadgePathMaster)
	}

	if len(earned) > 0 {
		t.state.PathBadges[path] = append(t.state.PathBadges[path], earned...)
	}
	return earned
}

// issueCertificate appends the path to the certificate list the first time
// its seven missions are all complete.
func (t *Tracker) issueCertificate(path curriculum.Path) bool {
	if t.state.CountsFor(path).Total < PathMissionTotal || t.state.HasCertificate(path) {
		return false
	}
	t.state.CertificatePaths = append(t.state.CertificatePaths, path)
	return true
}

// SelectPath sets the specialization. Used for the initial choice; switching
// an already selected path goes through the request/confirm pair.
func (t *Tracker) SelectPath(path curriculum.Path) {
	if !path.IsSelected() {
		return
	}
	t.state.SelectedPath = path
	t.persist()
}

// RequestSwitch stages a path change awaiting confirmation.
func (t *Tracker) RequestSwitch(path curriculum.Path) {
	if !path.IsSelected() || path == t.state.SelectedPath {
		return
	}
	t.state.PendingSwitch = path
}

// ConfirmSwitch applies a staged path change and repositions the learner at
// the first level-3 mission, since the path-specific slots now hold
// different missions.
func (t *Tracker) ConfirmSwitch() {
	if !t.state.PendingSwitch.IsSelected() {
		return
	}
	t.state.SelectedPath = t.state.PendingSwitch
	t.state.PendingSwitch = curriculum.PathNone
	t.state.LastMission = curriculum.MissionID{Level: 3, Sequence: 1}.String()
	t.persist()
}

// CancelSwitch discards a staged path change.
func (t *Tracker) CancelSwitch() {
	t.state.PendingSwitch = curriculum.PathNone
}

// SetLastMission records the resume point.
func (t *Tracker) SetLastMission(id string) {
	if id == t.state.LastMission {
		return
	}
	t.state.LastMission = id
	t.persist()
}

// DismissCapstoneIntro hides the capstone intro permanently.
func (t *Tracker) DismissCapstoneIntro() {
	if !t.state.ShowCapstoneIntro {
		return
	}
	t.state.ShowCapstoneIntro = false
	t.persist()
}

// ResetAll clears the persisted record and reinitializes defaults. The
// in-memory reset happens regardless of whether the clear succeeded.
func (t *Tracker) ResetAll() {
	err := t.gw.Clear()
	t.state = DefaultState()
	if err != nil {
		t.noteSaveError(err)
	}
}

// TakeSaveNotice returns the pending persistence-failure notice, at most
// once per session. Later failures never re-raise it.
func (t *Tracker) TakeSaveNotice() (SaveNotice, bool) {
	if t.notice == SaveNoticeNone || t.noticeShown {
		return SaveNoticeNone, false
	}
	t.noticeShown = true
	return t.notice, true
}

// persist writes the current state through the gateway. Failures do not
// roll back in-memory state; the session keeps working without durability.
func (t *Tracker) persist() {
	if t.gw == nil {
		return
	}
	if err := t.gw.Save(t.state); err != nil {
		t.noteSaveError(err)
	}
}

func (t *Tracker) noteSaveError(err error) {
	if t.notice != SaveNoticeNone {
		return
	}
	if strings.Contains(err.Error(), "disk is full") || strings.Contains(err.Error(), "database or disk is full") {
		t.notice = SaveNoticeStorageFull
	} else {
		t.notice = SaveNoticeStorageUnavailable
	}
}
