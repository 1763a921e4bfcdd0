// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// SQLite implements event.Store using SQLite.
// Dates are stored as YYYY-MM-DD so they sort and range-filter as text.
type SQLite struct {
	db *sql.DB
}

var _ event.Store = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
// The parent directory of path is created if missing.
func New(path string) (*SQLite, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const insertEvent = `
	INSERT INTO events (title, event_date, created_at, updated_at)
	VALUES (?, ?, ?, ?)
`

const selectEvents = `
	SELECT id, title, event_date, created_at, updated_at
	FROM events
`

// CreateEvent adds a new event to the repository and sets its ID.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	iso, err := toISO(e.Date)
	if err != nil {
		return err
	}
	stampNew(e)

	result, err := s.db.ExecContext(ctx, insertEvent,
		strings.TrimSpace(e.Title),
		iso,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// CreateEvents adds multiple events in a batch using a transaction.
// Either all events are stored or none are.
func (s *SQLite) CreateEvents(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	isos := make([]string, len(events))
	for i, e := range events {
		iso, err := toISO(e.Date)
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Title, err)
		}
		isos[i] = iso
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertEvent)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	ids := make([]int64, len(events))
	for i, e := range events {
		stampNew(e)
		result, err := stmt.ExecContext(ctx,
			strings.TrimSpace(e.Title),
			isos[i],
			e.CreatedAt.Format(time.RFC3339),
			e.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	for i, e := range events {
		e.ID = ids[i]
	}
	return nil
}

// GetEvent retrieves an event by ID.
// Returns event.ErrNotFound if no event has that ID.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	row := s.db.QueryRowContext(ctx, selectEvents+` WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, event.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// UpdateEvent replaces the title and date of an existing event.
func (s *SQLite) UpdateEvent(ctx context.Context, e *event.Event) error {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return event.ErrEmptyTitle
	}
	iso, err := toISO(e.Date)
	if err != nil {
		return err
	}

	now := time.Now()
	query := `UPDATE events SET title = ?, event_date = ?, updated_at = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, title, iso, now.Format(time.RFC3339), e.ID)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %d: %w", e.ID, event.ErrNotFound)
	}
	e.Title = title
	e.UpdatedAt = now
	return nil
}

// DeleteEvent removes an event.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %d: %w", id, event.ErrNotFound)
	}
	return nil
}

// ListEvents returns all events in insertion order.
func (s *SQLite) ListEvents(ctx context.Context) ([]*event.Event, error) {
	return s.queryEvents(ctx, selectEvents+` ORDER BY id`)
}

// ListEventsByDateRange returns all events dated within the range (inclusive),
// ordered by date.
func (s *SQLite) ListEventsByDateRange(ctx context.Context, start, end dateutil.Date) ([]*event.Event, error) {
	query := selectEvents + `
		WHERE event_date >= ? AND event_date <= ?
		ORDER BY event_date, id
	`
	return s.queryEvents(ctx, query, dateutil.FormatISO(start), dateutil.FormatISO(end))
}

func (s *SQLite) queryEvents(ctx context.Context, query string, args ...any) ([]*event.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// Preference returns a stored setting.
func (s *SQLite) Preference(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference stores a setting, replacing any previous value.
func (s *SQLite) SetPreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

// ClearPreference removes a setting. Clearing a missing key is not an error.
func (s *SQLite) ClearPreference(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clearing setting %q: %w", key, err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e         event.Event
		eventDate string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&e.ID, &e.Title, &eventDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	d, err := parseDate(eventDate)
	if err != nil {
		return nil, fmt.Errorf("parsing event date: %w", err)
	}
	e.Date = dateutil.Format(d)

	if e.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if e.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	return &e, nil
}

func stampNew(e *event.Event) {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
}

// toISO converts a display date to the storage form.
func toISO(display string) (string, error) {
	d, err := dateutil.ParseStrict(display)
	if err != nil {
		return "", fmt.Errorf("event date %q: %w", display, err)
	}
	return dateutil.FormatISO(d), nil
}

// parseDate parses a stored date. SQLite may hand back a date-only value
// as "2006-01-02T00:00:00Z", so the date part is taken from either form.
func parseDate(s string) (dateutil.Date, error) {
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		s = s[:10]
	}
	d, err := dateutil.ParseISO(s)
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("unrecognized date format: %s", s)
	}
	return d, nil
}

// parseTimestamp parses the timestamp formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
