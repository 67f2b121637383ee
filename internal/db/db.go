package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LavenderBridge/multidrill/internal/models"
	"github.com/mattn/go-sqlite3"
)

// ErrCorruptProfile marks saved state that cannot be decoded. Callers
// may treat it as "start fresh" rather than a fatal condition.
var ErrCorruptProfile = errors.New("db: corrupt profile data")

// Status tags as stored. Unseen cards are never persisted.
const (
	statusLearning = "learning"
	statusLearned  = "learned"
)

// Store persists one profile's practice history in a SQLite database.
// The caller decides where the database lives; the store never consults
// the environment or the home directory.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the profile database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		// A garbage file surfaces here, on the first statement, not in
		// sql.Open (which is lazy). Classify it so callers can fall
		// back to a fresh universe instead of dying.
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && (sqlErr.Code == sqlite3.ErrNotADB || sqlErr.Code == sqlite3.ErrCorrupt) {
			return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
		}
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS cards (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		interval INTEGER NOT NULL,
		status TEXT NOT NULL,
		due INTEGER NOT NULL,
		last_result TEXT,
		last_seen INTEGER,
		PRIMARY KEY (x, y)
	);
	`
	_, err := db.Exec(query)
	return err
}

// LoadCards reads every saved card for the profile. A freshly created
// database yields an empty slice. Undecodable rows surface as
// ErrCorruptProfile.
func (s *Store) LoadCards() ([]models.Card, error) {
	rows, err := s.db.Query(`
		SELECT x, y, interval, status, due, last_result, last_seen
		FROM cards ORDER BY x, y`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var (
			x, y, interval, due int
			status              string
			lastResult          sql.NullString
			lastSeen            sql.NullInt64
		)
		if err := rows.Scan(&x, &y, &interval, &status, &due, &lastResult, &lastSeen); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
		}

		card := models.Card{
			Factors:  models.Factors{X: uint8(x), Y: uint8(y)},
			Interval: interval,
		}

		switch status {
		case statusLearning:
			card.Status = models.Learning{Due: due}
		case statusLearned:
			card.Status = models.Learned{Due: due}
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrCorruptProfile, status)
		}

		if lastResult.Valid {
			var r models.Rating
			if err := r.UnmarshalText([]byte(lastResult.String)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
			}
			card.LastResult = &r
		}
		if lastSeen.Valid {
			v := lastSeen.Int64
			card.LastSeen = &v
		}

		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// SaveCards replaces the profile's saved state with cards, in a single
// transaction. Unseen cards carry no history and are skipped.
func (s *Store) SaveCards(cards []models.Card) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM cards`); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cards (x, y, interval, status, due, last_result, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, c := range cards {
		var (
			status string
			due    int
		)
		switch st := c.Status.(type) {
		case models.Learning:
			status, due = statusLearning, st.Due
		case models.Learned:
			status, due = statusLearned, st.Due
		default:
			continue
		}

		var lastResult any
		if c.LastResult != nil {
			lastResult = c.LastResult.String()
		}
		var lastSeen any
		if c.LastSeen != nil {
			lastSeen = *c.LastSeen
		}

		if _, err := stmt.Exec(int(c.Factors.X), int(c.Factors.Y), c.Interval, status, due, lastResult, lastSeen); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
