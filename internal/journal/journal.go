package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"sortd/internal/config"
)

// Entry is one completed move.
type Entry struct {
	ID         int64
	SourcePath string
	FinalPath  string
	Folder     string
	Pattern    string
	Phase      string
	MovedAt    time.Time
}

// Recorder receives the outcome of each successful move.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Nop discards every entry. Used when the journal is disabled.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

// Store manages move-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.Journal.Path)
}

// OpenPath initializes or connects to a journal database at path.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the location of the database file.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// Record appends a completed move to the journal.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	ctx = ensureContext(ctx)
	movedAt := entry.MovedAt
	if movedAt.IsZero() {
		movedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO moves (source_path, final_path, folder, pattern, phase, moved_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SourcePath,
		entry.FinalPath,
		entry.Folder,
		nullableString(entry.Pattern),
		nullableString(entry.Phase),
		movedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	return nil
}

const entryColumns = "id, source_path, final_path, folder, pattern, phase, moved_at"

// List returns the most recent moves, newest first. A limit of zero or less
// returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	query := fmt.Sprintf("SELECT %s FROM moves ORDER BY id DESC", entryColumns)
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return entries, nil
}

// Stats returns the number of recorded moves per destination folder.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT folder, COUNT(1) FROM moves GROUP BY folder")
	if err != nil {
		return nil, fmt.Errorf("count moves: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var folder string
		var count int
		if err := rows.Scan(&folder, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[folder] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// Clear removes every journal entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.db.ExecContext(ctx, "DELETE FROM moves")
	if err != nil {
		return 0, fmt.Errorf("clear moves: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted moves: %w", err)
	}
	return deleted, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry    Entry
		pattern  sql.NullString
		phase    sql.NullString
		movedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.SourcePath,
		&entry.FinalPath,
		&entry.Folder,
		&pattern,
		&phase,
		&movedRaw,
	); err != nil {
		return Entry{}, err
	}
	entry.Pattern = pattern.String
	entry.Phase = phase.String
	if moved, err := parseTimeString(movedRaw); err == nil {
		entry.MovedAt = moved
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
