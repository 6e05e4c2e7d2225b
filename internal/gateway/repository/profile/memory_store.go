package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"astroguide/internal/gateway/entity"
)

type MemoryStore struct {
	mu       sync.RWMutex
	nextUser int64
	nextChat int64
	profiles map[entity.UserID]entity.Profile
	chats    map[entity.UserID][]entity.ChatMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[entity.UserID]entity.Profile),
		chats:    make(map[entity.UserID][]entity.ChatMessage),
	}
}

func (s *MemoryStore) CreateProfile(_ context.Context, p entity.Profile) (entity.Profile, error) {
	if s == nil {
		return entity.Profile{}, fmt.Errorf("store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUser++
	p.ID = entity.UserID(s.nextUser)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.profiles[p.ID] = p
	return p, nil
}

func (s *MemoryStore) GetProfile(_ context.Context, id entity.UserID) (entity.Profile, error) {
	if s == nil {
		return entity.Profile{}, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return entity.Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) AppendChat(_ context.Context, m entity.ChatMessage) (entity.ChatMessage, error) {
	if s == nil {
		return entity.ChatMessage{}, fmt.Errorf("store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[m.UserID]; !ok {
		return entity.ChatMessage{}, ErrNotFound
	}
	s.nextChat++
	m.ID = s.nextChat
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.chats[m.UserID] = append(s.chats[m.UserID], m)
	return m, nil
}

func (s *MemoryStore) ListChat(_ context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.profiles[userID]; !ok {
		return nil, ErrNotFound
	}
	all := s.chats[userID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return append([]entity.ChatMessage(nil), all...), nil
}
