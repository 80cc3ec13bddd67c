package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"svw.info/mutant/internal/domain"
)

const (
	// DriverModernc is the pure-Go driver registered by modernc.org/sqlite.
	DriverModernc = "sqlite"
	// DriverCGO is the cgo driver registered by mattn/go-sqlite3.
	DriverCGO = "sqlite3"
)

// SQLite persists records in a single table keyed by canonical DNA.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

// NewSQLite opens or creates the database at path using driver.
func NewSQLite(path, driver string) (*SQLite, error) {
	if driver == "" {
		driver = DriverModernc
	}
	if driver != DriverModernc && driver != DriverCGO {
		return nil, fmt.Errorf("unknown sqlite driver %q", driver)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers and keeps PRAGMAs in effect.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db, dbPath: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) initSchema() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`CREATE TABLE IF NOT EXISTS dna (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			mutant INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dna_mutant ON dna(mutant)`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the database file path.
func (s *SQLite) Path() string { return s.dbPath }

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Find(ctx context.Context, key string) (*domain.Record, error) {
	var r domain.Record
	var mutant int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, key, mutant, created_at FROM dna WHERE key = ?`, key,
	).Scan(&r.ID, &r.DNA, &mutant, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query dna: %w", err)
	}
	r.Mutant = mutant != 0
	return &r, nil
}

func (s *SQLite) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || r.DNA == "" {
		return errors.New("invalid record: missing dna")
	}
	mutant := 0
	if r.Mutant {
		mutant = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO dna (id, key, mutant, created_at) VALUES (?, ?, ?, ?)`,
		r.ID, r.DNA, mutant, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert dna: %w", err)
	}
	return nil
}

func (s *SQLite) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(mutant), 0), COALESCE(SUM(1 - mutant), 0) FROM dna`,
	).Scan(&st.CountMutant, &st.CountHuman)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return st.WithRatio(), nil
}
