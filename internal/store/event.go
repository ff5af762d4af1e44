package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event kinds recorded in the activity log.
const (
	EventEvaluation  = "evaluation"
	EventCompletion  = "completion"
	EventBadge       = "badge"
	EventCertificate = "certificate"
	EventPathSelect  = "path-select"
	EventPathSwitch  = "path-switch"
	EventReset       = "reset"
)

// Event is one entry in the append-only activity log. Sequence is assigned
// by the database and establishes total order; events are never reordered
// or rewritten.
type Event struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	Kind      string
	Mission   string
	Path      string
	Detail    string
}

// EventRepo appends to and queries the activity log.
type EventRepo struct {
	db *sql.DB
}

// Append records one event, assigning it an id and timestamp.
func (r *EventRepo) Append(ctx context.Context, kind, mission, path, detail string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, timestamp, kind, mission, path, detail) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339), kind, mission, path, detail)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// TryAppend records an event and swallows the error. The activity log is
// best-effort; a failed append must never interrupt the session.
func (r *EventRepo) TryAppend(kind, mission, path, detail string) {
	_ = r.Append(context.Background(), kind, mission, path, detail)
}

// Recent returns up to limit events, newest first.
func (r *EventRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, id, timestamp, kind, mission, path, detail
		 FROM events ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var ts string
		if err := rows.Scan(&e.Sequence, &e.ID, &ts, &e.Kind, &e.Mission, &e.Path, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountByKind returns how many events of each kind have been recorded.
func (r *EventRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM events GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}
