package artifact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"astroguide/internal/gateway/repository/sqldb"
)

const artifactTable = "artifact_files"

// SQLStore keeps artifacts in the relational database when no object
// storage is configured.
type SQLStore struct {
	h          *sqldb.Handle
	schemaOnce sync.Once
	schemaErr  error
}

func NewSQLStore(h *sqldb.Handle) *SQLStore {
	return &SQLStore{h: h}
}

func (s *SQLStore) ensureSchema(ctx context.Context) error {
	if s == nil || s.h == nil || s.h.DB == nil {
		return fmt.Errorf("db is nil")
	}
	s.schemaOnce.Do(func() {
		ddl := sqliteArtifactSchema
		if s.h.Postgres() {
			ddl = postgresArtifactSchema
		}
		for _, stmt := range ddl {
			if _, err := s.h.DB.ExecContext(ctx, stmt); err != nil {
				s.schemaErr = fmt.Errorf("ensure artifact schema: %w", err)
				return
			}
		}
	})
	return s.schemaErr
}

var postgresArtifactSchema = []string{
	`CREATE TABLE IF NOT EXISTS artifact_files (
    id BIGSERIAL PRIMARY KEY,
    namespace TEXT NOT NULL,
    path TEXT NOT NULL,
    content BYTEA NOT NULL DEFAULT ''::bytea,
    size BIGINT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    UNIQUE(namespace, path)
)`,
	`CREATE INDEX IF NOT EXISTS idx_artifact_files_namespace ON artifact_files(namespace)`,
}

var sqliteArtifactSchema = []string{
	`CREATE TABLE IF NOT EXISTS artifact_files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    namespace TEXT NOT NULL,
    path TEXT NOT NULL,
    content BLOB NOT NULL,
    size INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(namespace, path)
)`,
	`CREATE INDEX IF NOT EXISTS idx_artifact_files_namespace ON artifact_files(namespace)`,
}

func (s *SQLStore) Put(ctx context.Context, namespace, path string, content []byte) error {
	key, err := Key(namespace, path)
	if err != nil {
		return err
	}
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	if content == nil {
		content = []byte{}
	}
	ns, rel := splitKey(key)
	query, args, err := s.h.Builder().
		Insert(artifactTable).
		Columns("namespace", "path", "content", "size", "updated_at").
		Values(ns, rel, content, int64(len(content)), time.Now().UTC()).
		OnConflict(entsql.ConflictColumns("namespace", "path"), entsql.ResolveWithNewValues()).
		QueryErr()
	if err != nil {
		return fmt.Errorf("build artifact insert: %w", err)
	}
	_, err = s.h.DB.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) Get(ctx context.Context, namespace, path string) ([]byte, error) {
	key, err := Key(namespace, path)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	ns, rel := splitKey(key)
	b := s.h.Builder()
	query, args := b.Select("content").
		From(b.Table(artifactTable)).
		Where(entsql.And(entsql.EQ("namespace", ns), entsql.EQ("path", rel))).
		Query()
	var content []byte
	if err := s.h.DB.QueryRowContext(ctx, query, args...).Scan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *SQLStore) List(ctx context.Context, namespace string) ([]string, error) {
	namespace, err := normalizeNamespace(namespace)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	b := s.h.Builder()
	query, args := b.Select("path").
		From(b.Table(artifactTable)).
		Where(entsql.EQ("namespace", namespace)).
		OrderBy("path").
		Query()
	rows, err := s.h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0, 16)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetURL returns "": database artifacts are served by the gateway.
func (s *SQLStore) GetURL(_ context.Context, namespace, path string) (string, error) {
	if _, err := Key(namespace, path); err != nil {
		return "", err
	}
	return "", nil
}

func splitKey(key string) (string, string) {
	ns, rel, _ := strings.Cut(key, "/")
	return ns, rel
}
