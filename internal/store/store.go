// Package store handles SQLite persistence: UI settings, the login
// session, the local user table and the export history.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/modepsa/hornotui/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Setting keys.
const (
	KeyTheme            = "theme"
	KeySidebarCollapsed = "sidebar_collapsed"
)

// Store wraps SQLite access for local client state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			usuario TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			profile_json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_json TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS export_log (
			id INTEGER PRIMARY KEY,
			filename TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_export_log_created_at ON export_log(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveSetting upserts one settings key.
func (s *Store) SaveSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// LoadSettings reads the persisted UI preferences, applying defaults
// for anything unset.
func (s *Store) LoadSettings(ctx context.Context) (model.Settings, error) {
	settings := model.Settings{Theme: "light"}
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return settings, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, err
		}
		switch key {
		case KeyTheme:
			if value == "dark" || value == "light" {
				settings.Theme = value
			}
		case KeySidebarCollapsed:
			settings.SidebarCollapsed = value == "true"
		}
	}
	return settings, rows.Err()
}

// UpsertUser stores a local user with its password hash and profile.
func (s *Store) UpsertUser(ctx context.Context, usuario, passwordHash string, profile model.User) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (usuario, password_hash, profile_json) VALUES (?, ?, ?)
		 ON CONFLICT(usuario) DO UPDATE SET password_hash = excluded.password_hash, profile_json = excluded.profile_json`,
		usuario, passwordHash, string(blob))
	return err
}

// GetUser returns the stored hash and profile for a usuario, or
// sql.ErrNoRows when unknown.
func (s *Store) GetUser(ctx context.Context, usuario string) (string, model.User, error) {
	var hash, blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash, profile_json FROM users WHERE usuario = ?`, usuario).
		Scan(&hash, &blob)
	if err != nil {
		return "", model.User{}, err
	}
	var profile model.User
	if err := json.Unmarshal([]byte(blob), &profile); err != nil {
		return "", model.User{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return hash, profile, nil
}

// CountUsers returns the number of local users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// SaveSession replaces the stored session; the client keeps at most
// one.
func (s *Store) SaveSession(ctx context.Context, session model.Session) error {
	blob, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (token, user_json, created_at) VALUES (?, ?, ?)`,
		session.Token, string(blob), session.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadSession restores the stored session, or nil when logged out.
func (s *Store) LoadSession(ctx context.Context) (*model.Session, error) {
	var token, blob, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_json, created_at FROM sessions ORDER BY created_at DESC LIMIT 1`).
		Scan(&token, &blob, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session := model.Session{Token: token}
	if err := json.Unmarshal([]byte(blob), &session.User); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}
	session.CreatedAt = parsed
	return &session, nil
}

// DeleteSession logs out.
func (s *Store) DeleteSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}

// LogExport records one saved spreadsheet.
func (s *Store) LogExport(ctx context.Context, filename string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO export_log (filename, created_at) VALUES (?, ?)`,
		filename, at.Format(time.RFC3339Nano))
	return err
}

// ListExports returns the most recent export records, newest first.
func (s *Store) ListExports(ctx context.Context, limit int) ([]model.ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT filename, created_at FROM export_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ExportRecord
	for rows.Next() {
		var rec model.ExportRecord
		var createdAt string
		if err := rows.Scan(&rec.Filename, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	return records, rows.Err()
}
