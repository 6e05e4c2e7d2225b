// Package sqldb opens the relational database behind the profile and
// artifact stores and exposes the matching ent SQL builder dialect.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory SQLite database.
const MemoryPath = ":memory:"

// Handle pairs an open pool with the dialect its queries are built for.
type Handle struct {
	DB      *sql.DB
	Dialect string
}

// OpenPostgres connects through the pgx stdlib driver.
func OpenPostgres(ctx context.Context, dsn string) (*Handle, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database url is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	if err := ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Handle{DB: db, Dialect: dialect.Postgres}, nil
}

// OpenSQLite opens (and creates) a SQLite file with WAL, busy_timeout and
// foreign_keys applied to every pooled connection.
func OpenSQLite(ctx context.Context, path string) (*Handle, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", sqliteDSN(path, memory))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if memory {
		// each connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Handle{DB: db, Dialect: dialect.SQLite}, nil
}

func sqliteDSN(path string, memory bool) string {
	pragmas := []string{"_pragma=foreign_keys(1)", "_pragma=busy_timeout(10000)"}
	if !memory {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)", "_pragma=synchronous(NORMAL)")
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}

// Builder returns an ent SQL builder for the handle's dialect.
func (h *Handle) Builder() *entsql.DialectBuilder {
	return entsql.Dialect(h.Dialect)
}

// Postgres reports whether the handle talks to Postgres.
func (h *Handle) Postgres() bool {
	return h != nil && h.Dialect == dialect.Postgres
}

func (h *Handle) Close() error {
	if h == nil || h.DB == nil {
		return nil
	}
	return h.DB.Close()
}
