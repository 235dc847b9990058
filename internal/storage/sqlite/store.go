// Package sqlite provides a SQLite-backed flag store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/veilstar/forcealignment/internal/platform/storage/sqlitemigrate"
	"github.com/veilstar/forcealignment/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for character flag fields.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens and migrates a flag store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get fetches the raw payload for a character field.
func (s *Store) Get(ctx context.Context, characterID, field string) ([]byte, bool, error) {
	if s == nil || s.sqlDB == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return nil, false, fmt.Errorf("character id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT payload_json FROM character_flags WHERE character_id = ? AND field = ?`,
		characterID,
		field,
	)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get flag: %w", err)
	}
	return payload, true, nil
}

// Set persists the raw payload for a character field.
func (s *Store) Set(ctx context.Context, characterID, field string, payload []byte) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return fmt.Errorf("character id is required")
	}
	field = strings.TrimSpace(field)
	if field == "" {
		return fmt.Errorf("field name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO character_flags (character_id, field, payload_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (character_id, field) DO UPDATE SET
		     payload_json = excluded.payload_json,
		     updated_at = excluded.updated_at`,
		characterID,
		field,
		payload,
		s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("set flag: %w", err)
	}
	return nil
}

// ListCharacterIDs returns every character with at least one stored field.
func (s *Store) ListCharacterIDs(ctx context.Context) ([]string, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT DISTINCT character_id FROM character_flags ORDER BY character_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list character ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan character id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate character ids: %w", err)
	}
	return ids, nil
}

func (s *Store) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}
