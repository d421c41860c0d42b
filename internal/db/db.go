// internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/codr1/pagecraft/internal/config"
	dbgen "github.com/codr1/pagecraft/internal/db/generated"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	*sql.DB
	Queries *dbgen.Queries
}

// New opens the SQLite database at dataSourceName with foreign keys enforced and
// applies the embedded migrations.
func New(dataSourceName string) (*DB, error) {
	dataSourceName = sqliteDSN(dataSourceName)
	sqlDB, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Run migrations
	if err := runMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	// Create queries
	queries := dbgen.New(sqlDB)

	return &DB{
		DB:      sqlDB,
		Queries: queries,
	}, nil
}

// NewFromConfig opens the database named by cfg, creating its directory first.
func NewFromConfig(cfg *config.Config) (*DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Filename), 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
		return New(cfg.Database.Filename)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// sqliteDSN adds the connection options the repository relies on unless the caller
// set them: foreign keys (sections cascade with their project), WAL so the scheduler can
// read while the editor writes, and a busy timeout instead of immediate SQLITE_BUSY.
func sqliteDSN(dataSourceName string) string {
	path, query, _ := strings.Cut(dataSourceName, "?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return dataSourceName
	}
	for key, value := range map[string]string{
		"_fk":           "1",
		"_journal_mode": "WAL",
		"_busy_timeout": "5000",
	} {
		if !params.Has(key) {
			params.Set(key, value)
		}
	}
	return path + "?" + params.Encode()
}

// runMigrations applies the embedded migrations. ErrNoChange is not an error.
func runMigrations(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not create source: %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs", source,
		"sqlite3", driver,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrationCommand runs up, down or version against the database at
// dataSourceName and describes the outcome.
func RunMigrationCommand(dataSourceName, command string) (string, error) {
	sqlDB, err := sql.Open("sqlite3", sqliteDSN(dataSourceName))
	if err != nil {
		return "", fmt.Errorf("error opening database: %w", err)
	}
	m, err := newMigrator(sqlDB)
	if err != nil {
		sqlDB.Close()
		return "", err
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return "No change", nil
			}
			return "", fmt.Errorf("migration up failed: %w", err)
		}
	case "down":
		if err := m.Down(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return "No change", nil
			}
			return "", fmt.Errorf("migration down failed: %w", err)
		}
	case "version":
	default:
		return "", fmt.Errorf("unknown migration command %q", command)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return "No migrations applied", nil
	}
	if err != nil {
		return "", fmt.Errorf("get version failed: %w", err)
	}
	return fmt.Sprintf("Version: %d, Dirty: %v", version, dirty), nil
}

// RunInTx runs fn with queries bound to one transaction, committing when fn returns nil
// and rolling back on an error or a panic.
func (db *DB) RunInTx(ctx context.Context, fn func(q *dbgen.Queries) error) (err error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err := fn(db.Queries.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
