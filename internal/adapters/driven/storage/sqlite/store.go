package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/clearpath-labs/semcore-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
)

// ledgerRowID pins the usage ledger to a single row.
const ledgerRowID = 1

// Store is the SQLite-backed storage providing access to the usage
// and run store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.semcore/data/semcore.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".semcore", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "semcore.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// UsageStore returns a UsageStore interface backed by this store.
func (s *Store) UsageStore() driven.UsageStore {
	return &usageStore{store: s}
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
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
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Usage Store ====================

// usageStore implements driven.UsageStore.
type usageStore struct {
	store *Store
}

var _ driven.UsageStore = (*usageStore)(nil)

// LoadUsage returns the persisted ledger.
func (s *usageStore) LoadUsage(ctx context.Context) (domain.UsageLedger, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT today_cost, month_cost, total_requests
		FROM usage_ledger WHERE id = ?
	`, ledgerRowID)

	var ledger domain.UsageLedger
	if err := row.Scan(&ledger.TodayCost, &ledger.MonthCost, &ledger.TotalRequests); err != nil {
		if err == sql.ErrNoRows {
			return domain.UsageLedger{}, domain.ErrNotFound
		}
		return domain.UsageLedger{}, fmt.Errorf("scanning usage ledger: %w", err)
	}

	return ledger, nil
}

// SaveUsage overwrites the persisted ledger.
func (s *usageStore) SaveUsage(ctx context.Context, ledger domain.UsageLedger) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO usage_ledger (id, today_cost, month_cost, total_requests, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			today_cost = excluded.today_cost,
			month_cost = excluded.month_cost,
			total_requests = excluded.total_requests,
			updated_at = excluded.updated_at
	`, ledgerRowID, ledger.TodayCost, ledger.MonthCost, ledger.TotalRequests, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving usage ledger: %w", err)
	}
	return nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores one completed run record.
func (s *runStore) SaveRun(ctx context.Context, run domain.RunRecord) error {
	seedsJSON, err := json.Marshal(run.Seeds)
	if err != nil {
		return fmt.Errorf("marshalling seeds: %w", err)
	}

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs
			(id, seeds, language_code, location_code, target_size,
			 total_found, keyword_count, cluster_count, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, string(seedsJSON), run.LanguageCode, run.LocationCode, run.TargetSize,
		run.TotalFound, run.KeywordCount, run.ClusterCount, run.Elapsed.Milliseconds(), run.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, seeds, language_code, location_code, target_size,
		       total_found, keyword_count, cluster_count, elapsed_ms, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.RunRecord
		var seedsJSON string
		var elapsedMS int64
		if err := rows.Scan(&run.ID, &seedsJSON, &run.LanguageCode, &run.LocationCode,
			&run.TargetSize, &run.TotalFound, &run.KeywordCount, &run.ClusterCount,
			&elapsedMS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		if err := json.Unmarshal([]byte(seedsJSON), &run.Seeds); err != nil {
			return nil, fmt.Errorf("unmarshaling seeds: %w", err)
		}
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}
