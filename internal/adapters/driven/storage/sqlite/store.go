package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/satya-labs/satya-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// DBFile is the database file name inside the data directory.
const DBFile = "history.db"

// timeLayout is fixed width: text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store is a SQLite-backed history database.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDataDir returns ~/.satya/data.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".satya", "data"), nil
}

// NewStore opens (creating if needed) the database in dataDir.
// If dataDir is empty, DefaultDataDir is used.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RunStore returns the driven.AnalysisRunStore backed by this store.
func (s *Store) RunStore() driven.AnalysisRunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// version returns the highest applied migration.
func (s *Store) version() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== Run Store ====================

// runStore implements driven.AnalysisRunStore.
type runStore struct {
	store *Store
}

var _ driven.AnalysisRunStore = (*runStore)(nil)

// Save stores or replaces a run and its records in one transaction.
func (s *runStore) Save(ctx context.Context, run *domain.AnalysisRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	counts := run.Counts()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, video_id, created_at, comment_count, positive, neutral, negative)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			video_id = excluded.video_id,
			created_at = excluded.created_at,
			comment_count = excluded.comment_count,
			positive = excluded.positive,
			neutral = excluded.neutral,
			negative = excluded.negative
	`, run.ID, run.VideoID, formatTime(run.CreatedAt), len(run.Records),
		counts.Positive, counts.Neutral, counts.Negative)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, original_comment, processed_comment,
			confidence, sentiment, published_at, author_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range run.Records {
		if _, err := stmt.ExecContext(ctx, run.ID, i, rec.OriginalComment, rec.ProcessedComment,
			rec.Confidence, int(rec.Sentiment), rec.Timestamp, rec.AuthorID); err != nil {
			return fmt.Errorf("saving record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run and its records.
func (s *runStore) Get(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT id, video_id, created_at FROM runs WHERE id = ?", id)
	return s.loadRun(ctx, row)
}

// LatestForVideo returns the newest run for a video.
func (s *runStore) LatestForVideo(ctx context.Context, videoID string) (*domain.AnalysisRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, video_id, created_at FROM runs
		WHERE video_id = ?
		ORDER BY created_at DESC, id ASC
		LIMIT 1
	`, videoID)
	return s.loadRun(ctx, row)
}

// List returns run summaries, newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	query := `
		SELECT id, video_id, created_at, comment_count, positive, neutral, negative
		FROM runs ORDER BY created_at DESC, id ASC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RunSummary, 0)
	for rows.Next() {
		var sum domain.RunSummary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.VideoID, &createdAt, &sum.CommentCount,
			&sum.Counts.Positive, &sum.Counts.Neutral, &sum.Counts.Negative); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if sum.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, sum)
	}
	return result, rows.Err()
}

// Delete removes a run; its records cascade.
func (s *runStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *runStore) loadRun(ctx context.Context, row *sql.Row) (*domain.AnalysisRun, error) {
	var run domain.AnalysisRun
	var createdAt string
	if err := row.Scan(&run.ID, &run.VideoID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	run.CreatedAt = t

	records, err := s.records(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Records = records
	return &run, nil
}

func (s *runStore) records(ctx context.Context, runID string) ([]domain.AnalysisRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT original_comment, processed_comment, confidence, sentiment, published_at, author_id
		FROM records WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AnalysisRecord, 0)
	for rows.Next() {
		var rec domain.AnalysisRecord
		var sentiment int
		if err := rows.Scan(&rec.OriginalComment, &rec.ProcessedComment, &rec.Confidence,
			&sentiment, &rec.Timestamp, &rec.AuthorID); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec.Sentiment = domain.Label(sentiment)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at %q: %w", s, err)
	}
	return t, nil
}
