// Package profile caches profile reads. Profiles never change after intake,
// so cached entries are only dropped by TTL or LRU pressure.
package profile

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"astroguide/internal/gateway/entity"
	profilerepo "astroguide/internal/gateway/repository/profile"
)

type Store = profilerepo.Store

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:        10 * time.Minute,
		MaxEntries: 2048,
	}
}

type MetricsSnapshot struct {
	Hits          uint64
	Misses        uint64
	OriginReadErr uint64
}

type CachedStore struct {
	origin   Store
	profiles *expirable.LRU[entity.UserID, entity.Profile]

	hits          atomic.Uint64
	misses        atomic.Uint64
	originReadErr atomic.Uint64
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	return &CachedStore{
		origin:   origin,
		profiles: expirable.NewLRU[entity.UserID, entity.Profile](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *CachedStore) CreateProfile(ctx context.Context, p entity.Profile) (entity.Profile, error) {
	created, err := s.origin.CreateProfile(ctx, p)
	if err != nil {
		return entity.Profile{}, err
	}
	s.profiles.Add(created.ID, created)
	return created, nil
}

func (s *CachedStore) GetProfile(ctx context.Context, id entity.UserID) (entity.Profile, error) {
	if p, ok := s.profiles.Get(id); ok {
		s.hits.Add(1)
		return p, nil
	}
	s.misses.Add(1)
	p, err := s.origin.GetProfile(ctx, id)
	if err != nil {
		s.originReadErr.Add(1)
		return entity.Profile{}, err
	}
	s.profiles.Add(id, p)
	return p, nil
}

func (s *CachedStore) AppendChat(ctx context.Context, m entity.ChatMessage) (entity.ChatMessage, error) {
	return s.origin.AppendChat(ctx, m)
}

func (s *CachedStore) ListChat(ctx context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error) {
	return s.origin.ListChat(ctx, userID, limit)
}

func (s *CachedStore) Metrics() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Hits:          s.hits.Load(),
		Misses:        s.misses.Load(),
		OriginReadErr: s.originReadErr.Load(),
	}
}
