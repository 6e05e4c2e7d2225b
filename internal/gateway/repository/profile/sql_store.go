package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"astroguide/internal/gateway/entity"
	"astroguide/internal/gateway/repository/sqldb"
)

const (
	usersTable = "users"
	chatTable  = "chat_messages"
)

var userColumns = []string{
	"id", "name", "birthday", "birthtime", "birthplace", "lat", "lng", "job_title",
	"astro_data", "hd_data", "resonance", "archetype", "chart_url", "created_at",
}

var chatColumns = []string{"id", "user_id", "message", "topic", "response", "created_at"}

// SQLStore keeps profiles in Postgres or SQLite. Timestamps are stored as
// unix milliseconds so both dialects scan them identically.
type SQLStore struct {
	h          *sqldb.Handle
	schemaOnce sync.Once
	schemaErr  error
}

func NewSQLStore(h *sqldb.Handle) *SQLStore {
	return &SQLStore{h: h}
}

var postgresProfileSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    birthday TEXT NOT NULL,
    birthtime TEXT NOT NULL,
    birthplace TEXT NOT NULL,
    lat DOUBLE PRECISION NOT NULL DEFAULT 0,
    lng DOUBLE PRECISION NOT NULL DEFAULT 0,
    job_title TEXT NOT NULL,
    astro_data JSONB,
    hd_data JSONB,
    resonance TEXT NOT NULL DEFAULT '',
    archetype TEXT NOT NULL DEFAULT '',
    chart_url TEXT NOT NULL DEFAULT '',
    created_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    message TEXT NOT NULL,
    topic TEXT NOT NULL DEFAULT '',
    response TEXT NOT NULL,
    created_at BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user_id ON chat_messages(user_id)`,
}

var sqliteProfileSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    birthday TEXT NOT NULL,
    birthtime TEXT NOT NULL,
    birthplace TEXT NOT NULL,
    lat REAL NOT NULL DEFAULT 0,
    lng REAL NOT NULL DEFAULT 0,
    job_title TEXT NOT NULL,
    astro_data TEXT,
    hd_data TEXT,
    resonance TEXT NOT NULL DEFAULT '',
    archetype TEXT NOT NULL DEFAULT '',
    chart_url TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    message TEXT NOT NULL,
    topic TEXT NOT NULL DEFAULT '',
    response TEXT NOT NULL,
    created_at INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user_id ON chat_messages(user_id)`,
}

func (s *SQLStore) ensureSchema(ctx context.Context) error {
	if s == nil || s.h == nil || s.h.DB == nil {
		return fmt.Errorf("db is nil")
	}
	s.schemaOnce.Do(func() {
		ddl := sqliteProfileSchema
		if s.h.Postgres() {
			ddl = postgresProfileSchema
		}
		for _, stmt := range ddl {
			if _, err := s.h.DB.ExecContext(ctx, stmt); err != nil {
				s.schemaErr = fmt.Errorf("ensure profile schema: %w", err)
				return
			}
		}
	})
	return s.schemaErr
}

func (s *SQLStore) CreateProfile(ctx context.Context, p entity.Profile) (entity.Profile, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Profile{}, err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	astroJSON, err := json.Marshal(p.Astro)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("encode astro data: %w", err)
	}
	hdJSON, err := json.Marshal(p.Design)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("encode hd data: %w", err)
	}
	query, args, err := s.h.Builder().
		Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			p.Name, p.Birth.Birthday, p.Birth.Birthtime, p.Birth.Birthplace, p.Birth.Lat, p.Birth.Lng, p.JobTitle,
			string(astroJSON), string(hdJSON), p.Resonance, p.Archetype, p.ChartURL, p.CreatedAt.UnixMilli(),
		).
		Returning("id").
		QueryErr()
	if err != nil {
		return entity.Profile{}, fmt.Errorf("build profile insert: %w", err)
	}
	var id int64
	if err := s.h.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return entity.Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	p.ID = entity.UserID(id)
	p.CreatedAt = time.UnixMilli(p.CreatedAt.UnixMilli()).UTC()
	return p, nil
}

func (s *SQLStore) GetProfile(ctx context.Context, id entity.UserID) (entity.Profile, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.Profile{}, err
	}
	b := s.h.Builder()
	query, args := b.Select(userColumns...).
		From(b.Table(usersTable)).
		Where(entsql.EQ("id", int64(id))).
		Query()

	var (
		p                entity.Profile
		rawID, createdAt int64
		astroRaw, hdRaw  sql.NullString
	)
	err := s.h.DB.QueryRowContext(ctx, query, args...).Scan(
		&rawID, &p.Name, &p.Birth.Birthday, &p.Birth.Birthtime, &p.Birth.Birthplace, &p.Birth.Lat, &p.Birth.Lng,
		&p.JobTitle, &astroRaw, &hdRaw, &p.Resonance, &p.Archetype, &p.ChartURL, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Profile{}, ErrNotFound
		}
		return entity.Profile{}, fmt.Errorf("select profile: %w", err)
	}
	p.ID = entity.UserID(rawID)
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	if astroRaw.Valid && astroRaw.String != "" {
		if err := json.Unmarshal([]byte(astroRaw.String), &p.Astro); err != nil {
			return entity.Profile{}, fmt.Errorf("decode astro data: %w", err)
		}
	}
	if hdRaw.Valid && hdRaw.String != "" {
		if err := json.Unmarshal([]byte(hdRaw.String), &p.Design); err != nil {
			return entity.Profile{}, fmt.Errorf("decode hd data: %w", err)
		}
	}
	return p, nil
}

func (s *SQLStore) AppendChat(ctx context.Context, m entity.ChatMessage) (entity.ChatMessage, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return entity.ChatMessage{}, err
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query, args, err := s.h.Builder().
		Insert(chatTable).
		Columns(chatColumns[1:]...).
		Values(int64(m.UserID), m.Message, m.Topic, m.Response, m.CreatedAt.UnixMilli()).
		Returning("id").
		QueryErr()
	if err != nil {
		return entity.ChatMessage{}, fmt.Errorf("build chat insert: %w", err)
	}
	if err := s.h.DB.QueryRowContext(ctx, query, args...).Scan(&m.ID); err != nil {
		return entity.ChatMessage{}, fmt.Errorf("insert chat message: %w", err)
	}
	m.CreatedAt = time.UnixMilli(m.CreatedAt.UnixMilli()).UTC()
	return m, nil
}

func (s *SQLStore) ListChat(ctx context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	b := s.h.Builder()
	sel := b.Select(chatColumns...).
		From(b.Table(chatTable)).
		Where(entsql.EQ("user_id", int64(userID))).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()
	rows, err := s.h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select chat messages: %w", err)
	}
	defer rows.Close()

	out := make([]entity.ChatMessage, 0, 16)
	for rows.Next() {
		var (
			m         entity.ChatMessage
			uid       int64
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &uid, &m.Message, &m.Topic, &m.Response, &createdAt); err != nil {
			return nil, err
		}
		m.UserID = entity.UserID(uid)
		m.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
