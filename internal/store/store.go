package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	sql *entsql.DialectBuilder
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection; a single connection keeps them applied
	// and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv, sql: entsql.Dialect(dialect.SQLite)}, nil
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// ProfileRepo returns a ProfileRepo backed by this store.
func (s *Store) ProfileRepo() ProfileRepo {
	return &profileRepo{scope{store: s}}
}

// IconHistoryRepo returns an IconHistoryRepo backed by this store.
func (s *Store) IconHistoryRepo() IconHistoryRepo {
	return &iconHistoryRepo{scope{store: s}}
}

// SessionRepo returns a SessionRepo backed by this store.
func (s *Store) SessionRepo() SessionRepo {
	return &sessionRepo{scope{store: s}}
}

// Repos groups repositories that share one connection.
type Repos struct {
	Profile  ProfileRepo
	Icons    IconHistoryRepo
	Sessions SessionRepo
}

// WithTx runs fn with repositories bound to a single transaction. Their
// writes commit together when fn returns nil and are rolled back
// otherwise. fn must not use repos obtained outside of it.
func (s *Store) WithTx(ctx context.Context, fn func(Repos) error) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		sc := scope{store: s, tx: tx}
		return fn(Repos{
			Profile:  &profileRepo{sc},
			Icons:    &iconHistoryRepo{sc},
			Sessions: &sessionRepo{sc},
		})
	})
}

// Reset deletes every stored row: stars, unlocked sets, icon history and
// sessions.
func (s *Store) Reset(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, t := range tables {
			query, args := s.sql.Delete(t.Name).Query()
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("clear %s: %w", t.Name, err)
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction, rolling back when it fails.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// conn is satisfied by both *sql.DB and *sql.Tx.
type conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scope binds a repository to the store's handle or to one open
// transaction.
type scope struct {
	store *Store
	tx    *sql.Tx
}

func (sc scope) conn() conn {
	if sc.tx != nil {
		return sc.tx
	}
	return sc.store.db
}

// inTx joins the open transaction if there is one.
func (sc scope) inTx(ctx context.Context, fn func(c conn) error) error {
	if sc.tx != nil {
		return fn(sc.tx)
	}
	return sc.store.inTx(ctx, func(tx *sql.Tx) error { return fn(tx) })
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MAMCHOI_DB environment variable
// 2. $XDG_DATA_HOME/mamchoi/mamchoi.db
// 3. ~/.local/share/mamchoi/mamchoi.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MAMCHOI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mamchoi", "mamchoi.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
