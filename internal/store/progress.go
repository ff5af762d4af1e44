package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
)

// progressRecord is the serialized form of the progress aggregate. Field
// names are part of the stored format and must stay stable across versions.
type progressRecord struct {
	CompletedMissions []string            `json:"completedMissions"`
	SelectedPath      string              `json:"selectedPath"`
	PathProgress      map[string][]string `json:"pathProgress"`
	PathBadges        map[string][]string `json:"pathBadges"`
	CertificatePaths  []string            `json:"certificatePaths"`
	LastMission       string              `json:"lastMission"`
	ShowCapstoneIntro *bool               `json:"showCapstoneIntro"`
}

// LoadInfo describes how a load resolved. Recovered means the stored record
// was missing fields or structurally invalid and defaults were substituted
// for the damaged parts.
type LoadInfo struct {
	Recovered bool
	Reason    string
}

// ProgressRepo reads and writes the single persisted progress record.
type ProgressRepo struct {
	db *sql.DB
}

// Load reads the stored record and rebuilds the progress aggregate. A
// missing, unparseable, or structurally invalid record never fails the load;
// damaged parts fall back to defaults and LoadInfo reports the recovery.
func (r *ProgressRepo) Load(ctx context.Context) (*progress.State, LoadInfo) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT record FROM progress WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.DefaultState(), LoadInfo{}
	}
	if err != nil {
		return progress.DefaultState(), LoadInfo{Recovered: true, Reason: fmt.Sprintf("read record: %v", err)}
	}
	return decodeRecord([]byte(raw))
}

// decodeRecord turns stored JSON into a State. The top-level value must be a
// JSON object; anything else discards the record entirely. Within a valid
// object, wrong-typed fields are dropped individually and replaced with
// their defaults.
func decodeRecord(raw []byte) (*progress.State, LoadInfo) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return progress.DefaultState(), LoadInfo{Recovered: true, Reason: fmt.Sprintf("parse record: %v", err)}
	}
	if _, ok := doc.(map[string]any); !ok {
		return progress.DefaultState(), LoadInfo{Recovered: true, Reason: "record is not an object"}
	}

	info := LoadInfo{}
	if err := validateRecord(doc); err != nil {
		info = LoadInfo{Recovered: true, Reason: fmt.Sprintf("invalid record: %v", err)}
	}

	var rec progressRecord
	if info.Recovered {
		// Lenient field-by-field decode: keep whatever fields still have
		// the right shape, leave the rest at their zero values.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err == nil {
			decodeField(fields["completedMissions"], &rec.CompletedMissions)
			decodeField(fields["selectedPath"], &rec.SelectedPath)
			decodeField(fields["pathProgress"], &rec.PathProgress)
			decodeField(fields["pathBadges"], &rec.PathBadges)
			decodeField(fields["certificatePaths"], &rec.CertificatePaths)
			decodeField(fields["lastMission"], &rec.LastMission)
			decodeField(fields["showCapstoneIntro"], &rec.ShowCapstoneIntro)
		}
	} else if err := json.Unmarshal(raw, &rec); err != nil {
		return progress.DefaultState(), LoadInfo{Recovered: true, Reason: fmt.Sprintf("decode record: %v", err)}
	}

	return recordToState(rec), info
}

// decodeField unmarshals one field, leaving dst untouched on mismatch.
func decodeField(raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// recordToState maps the DTO onto the aggregate, applying the documented
// defaults for absent fields and skipping ids that no longer parse.
func recordToState(rec progressRecord) *progress.State {
	s := progress.DefaultState()

	for _, raw := range rec.CompletedMissions {
		id, err := curriculum.ParseMissionID(raw)
		if err != nil {
			continue
		}
		s.CompletedMissions[id] = true
	}

	s.SelectedPath = curriculum.ParsePath(rec.SelectedPath)

	for _, path := range curriculum.AllPaths() {
		for _, raw := range rec.PathProgress[string(path)] {
			id, err := curriculum.ParseMissionID(raw)
			if err != nil {
				continue
			}
			s.PathProgress[path][id] = true
		}
		if badges := rec.PathBadges[string(path)]; len(badges) > 0 {
			s.PathBadges[path] = append(s.PathBadges[path], badges...)
		}
	}

	for _, raw := range rec.CertificatePaths {
		if p := curriculum.ParsePath(raw); p.IsSelected() && !s.HasCertificate(p) {
			s.CertificatePaths = append(s.CertificatePaths, p)
		}
	}

	if rec.LastMission != "" {
		s.LastMission = rec.LastMission
	}
	if rec.ShowCapstoneIntro != nil {
		s.ShowCapstoneIntro = *rec.ShowCapstoneIntro
	}
	return s
}

// stateToRecord maps the aggregate back onto the DTO with stable ordering.
func stateToRecord(s *progress.State) progressRecord {
	show := s.ShowCapstoneIntro
	rec := progressRecord{
		CompletedMissions: sortedIDs(s.CompletedMissions),
		SelectedPath:      string(s.SelectedPath),
		PathProgress:      make(map[string][]string, len(curriculum.AllPaths())),
		PathBadges:        make(map[string][]string, len(curriculum.AllPaths())),
		CertificatePaths:  make([]string, 0, len(s.CertificatePaths)),
		LastMission:       s.LastMission,
		ShowCapstoneIntro: &show,
	}
	for _, path := range curriculum.AllPaths() {
		rec.PathProgress[string(path)] = sortedIDs(s.PathProgress[path])
		badges := s.PathBadges[path]
		if badges == nil {
			badges = []string{}
		}
		rec.PathBadges[string(path)] = badges
	}
	for _, p := range s.CertificatePaths {
		rec.CertificatePaths = append(rec.CertificatePaths, string(p))
	}
	return rec
}

func sortedIDs(set map[curriculum.MissionID]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return ids
}

// Save serializes the aggregate and upserts the single record row.
func (r *ProgressRepo) Save(ctx context.Context, s *progress.State) error {
	raw, err := json.Marshal(stateToRecord(s))
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (id, record) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET record = excluded.record`, string(raw))
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Clear deletes the persisted record. Idempotent.
func (r *ProgressRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("clear record: %w", err)
	}
	return nil
}

// Gateway adapts the repo to the tracker's context-free persistence seam.
func (r *ProgressRepo) Gateway() progress.Gateway {
	return gateway{repo: r}
}

type gateway struct {
	repo *ProgressRepo
}

func (g gateway) Save(s *progress.State) error {
	return g.repo.Save(context.Background(), s)
}

func (g gateway) Clear() error {
	return g.repo.Clear(context.Background())
}
