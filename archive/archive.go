// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/qcwire/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound reports a Get or Delete against an id the archive does not hold.
var ErrNotFound = errors.New("archive: record not found")

// cacheSize bounds the decoded-payload read cache.
const cacheSize = 256

// Entry describes one stored record without its payload.
type Entry struct {
	ID        string
	Kind      schema.Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a SQLite-backed archive of canonical interchange payloads.
// Methods are safe for concurrent use.
type Store struct {
	db    *sql.DB
	cache *lru.Cache[string, *schema.Payload]
}

// Open opens the archive at path, creating the database file and applying
// the embedded migrations as needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive: path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	// modernc's driver serializes writes per connection; a single connection
	// avoids SQLITE_BUSY between concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("archive: %s: %w", pragma, err)
		}
	}
	if err := applyMigrations(db, migrationsFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: migrate %s: %w", path, err)
	}
	cache, err := lru.New[string, *schema.Payload](cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: init cache: %w", err)
	}
	return &Store{db: db, cache: cache}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores p under id, assigning a fresh UUID when id is empty, and
// returns the id the record was stored under. Storing over an existing id
// replaces the payload and keeps the original creation time.
func (s *Store) Put(ctx context.Context, id string, p *schema.Payload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.db == nil {
		return "", fmt.Errorf("archive: store is not open")
	}
	payload, err := schema.Encode(p)
	if err != nil {
		return "", err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC().UnixMilli()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, kind, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   kind = excluded.kind,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		id, string(p.Kind), payload, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("archive: put %s: %w", id, err)
	}
	s.cache.Remove(id)
	return id, nil
}

// Get loads the record stored under id. Repeat reads of the same id are
// served from the cache without touching the database.
//
// Errors: ErrNotFound when the id is absent.
func (s *Store) Get(ctx context.Context, id string) (*schema.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("archive: store is not open")
	}
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM records WHERE id = ?", id,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("archive: get %s: %w", id, err)
	}

	p, err := schema.DecodeJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("archive: decode record %s: %w", id, err)
	}
	s.cache.Add(id, p)
	return p, nil
}

// List enumerates stored records oldest first, restricted to one payload
// family when kind is non-empty.
func (s *Store) List(ctx context.Context, kind schema.Kind) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("archive: store is not open")
	}

	query := "SELECT id, kind, created_at, updated_at FROM records"
	args := []any{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			k       string
			created int64
			updated int64
		)
		if err := rows.Scan(&e.ID, &k, &created, &updated); err != nil {
			return nil, fmt.Errorf("archive: list: %w", err)
		}
		e.Kind = schema.Kind(k)
		e.CreatedAt = time.UnixMilli(created).UTC()
		e.UpdatedAt = time.UnixMilli(updated).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return entries, nil
}

// Delete removes the record stored under id.
//
// Errors: ErrNotFound when the id is absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("archive: store is not open")
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.cache.Remove(id)
	return nil
}
