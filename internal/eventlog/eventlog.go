// Package eventlog journals committed engine events to SQLite so they can be
// listed after the process that produced them has exited.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultLimit bounds List when no limit is given
const DefaultLimit = 100

// ErrClosed is returned after Close
var ErrClosed = errors.New("event log is closed")

// Record is one journaled event
type Record struct {
	ID         int64             `json:"id"`
	Height     int64             `json:"height"`
	Kind       string            `json:"kind"`
	Attributes map[string]string `json:"attributes"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// Filter narrows List. Zero values match everything.
type Filter struct {
	Kind       string
	FromHeight int64
	Limit      int
}

// Journal is a SQLite-backed event store
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal at path. Use ":memory:" for a
// process-local journal.
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and writes serialized
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping event log: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			height      INTEGER NOT NULL,
			kind        TEXT    NOT NULL,
			attributes  TEXT    NOT NULL,
			recorded_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_kind_height ON events (kind, height);
	`
	_, err := j.db.ExecContext(ctx, schema)
	return err
}

// HandleEvents appends a committed block's events in one transaction
func (j *Journal) HandleEvents(ctx context.Context, height int64, events sdk.Events) error {
	if j.db == nil {
		return ErrClosed
	}
	if len(events) == 0 {
		return nil
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO events (height, kind, attributes, recorded_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().UnixMilli()
	for _, ev := range events {
		attrs := make(map[string]string, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		bz, err := json.Marshal(attrs)
		if err != nil {
			return fmt.Errorf("failed to encode attributes: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, height, ev.Type, string(bz), now); err != nil {
			return fmt.Errorf("failed to insert %s event: %w", ev.Type, err)
		}
	}

	return tx.Commit()
}

// List returns the most recent events matching f, newest first
func (j *Journal) List(ctx context.Context, f Filter) ([]Record, error) {
	if j.db == nil {
		return nil, ErrClosed
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `SELECT id, height, kind, attributes, recorded_at FROM events WHERE height >= ?`
	args := []interface{}{f.FromHeight}
	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, f.Kind)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec   Record
			attrs string
			at    int64
		)
		if err := rows.Scan(&rec.ID, &rec.Height, &rec.Kind, &attrs, &at); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(attrs), &rec.Attributes); err != nil {
			return nil, fmt.Errorf("failed to decode event %d: %w", rec.ID, err)
		}
		rec.RecordedAt = time.UnixMilli(at).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of journaled events of kind, or of all kinds if empty
func (j *Journal) Count(ctx context.Context, kind string) (int64, error) {
	if j.db == nil {
		return 0, ErrClosed
	}
	var n int64
	var err error
	if kind == "" {
		err = j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	} else {
		err = j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE kind = ?`, kind).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// Close closes the database
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
