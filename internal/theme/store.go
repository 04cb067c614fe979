// Package theme persists each visitor's light/dark preference.
package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Zachkp/portfolio/internal/db"
)

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	Default = Dark
)

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Retention is how long an untouched preference is kept.
const Retention = 365 * 24 * time.Hour

// CleanupInterval is how often a running server purges expired preferences.
const CleanupInterval = 24 * time.Hour

type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Get returns the visitor's theme, or Default if none is stored.
func (s *Store) Get(ctx context.Context, visitorID string) (Theme, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT theme FROM preferences WHERE visitor_id = ?`, visitorID).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return Default, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}
	return Parse(v)
}

func (s *Store) Set(ctx context.Context, visitorID string, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, theme, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at
	`, visitorID, string(t), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips the stored theme and returns the new value.
func (s *Store) Toggle(ctx context.Context, visitorID string) (Theme, error) {
	cur, err := s.Get(ctx, visitorID)
	if err != nil {
		return "", err
	}
	next := cur.Toggle()
	if err := s.Set(ctx, visitorID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Purge removes preferences not updated since before.
func (s *Store) Purge(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE updated_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("purging preferences: %w", err)
	}
	return res.RowsAffected()
}

// Cleanup drops preferences older than Retention and logs the result.
func (s *Store) Cleanup(ctx context.Context) {
	n, err := s.Purge(ctx, time.Now().Add(-Retention))
	if err != nil {
		log.Printf("theme: cleanup: %v", err)
		return
	}
	if n > 0 {
		log.Printf("theme: removed %d preferences older than 12 months", n)
	}
}

// RunCleanup calls Cleanup immediately and then every interval until ctx is
// done.
func (s *Store) RunCleanup(ctx context.Context, interval time.Duration) {
	s.Cleanup(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup(ctx)
		}
	}
}
