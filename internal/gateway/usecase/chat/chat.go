// Package chat answers questions against a stored profile and keeps the
// conversation history.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"astroguide/internal/gateway/entity"
	profilerepo "astroguide/internal/gateway/repository/profile"
	"astroguide/internal/guide"
	"astroguide/internal/observability"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type Deps struct {
	Profiles profilerepo.Store
	Metrics  *observability.Metrics
	Logger   *zap.Logger
}

// Reply is one answered message.
type Reply struct {
	Response string      `json:"response"`
	Topic    guide.Topic `json:"topic"`
}

type Service struct {
	deps Deps
	now  func() time.Time
}

func New(deps Deps, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	deps.Logger = deps.Logger.With(zap.String("component", "chat"))
	return &Service{deps: deps, now: now}
}

// Ask classifies the message, composes the answer from the user's profile
// and records the turn exactly as sent. Only an empty message is rejected; a
// whitespace-only one gets the general answer. A failure to record is logged,
// not returned.
func (s *Service) Ask(ctx context.Context, userID entity.UserID, message string) (Reply, error) {
	if userID.IsZero() || message == "" {
		return Reply{}, entity.InvalidInput("User ID and message are required")
	}
	p, err := s.profile(ctx, userID)
	if err != nil {
		return Reply{}, err
	}

	topic, response := guide.Answer(p.AstroProfile(), p.DesignProfile(), message)
	s.deps.Metrics.RecordChatTurn(string(topic))

	if _, err := s.deps.Profiles.AppendChat(ctx, entity.ChatMessage{
		UserID:    userID,
		Message:   message,
		Topic:     string(topic),
		Response:  response,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		s.deps.Logger.Error("failed to save chat message", zap.Int64("user_id", int64(userID)), zap.Error(err))
	}
	return Reply{Response: response, Topic: topic}, nil
}

// History returns the most recent turns, oldest first. limit <= 0 selects
// DefaultHistoryLimit; larger values are capped at MaxHistoryLimit.
func (s *Service) History(ctx context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error) {
	if userID.IsZero() {
		return nil, entity.InvalidInput("User ID is required")
	}
	msgs, err := s.deps.Profiles.ListChat(ctx, userID, ClampLimit(limit))
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("list chat: %w", err)
	}
	return msgs, nil
}

// Profile loads the profile a conversation is about.
func (s *Service) Profile(ctx context.Context, userID entity.UserID) (entity.Profile, error) {
	if userID.IsZero() {
		return entity.Profile{}, entity.InvalidInput("User ID is required")
	}
	return s.profile(ctx, userID)
}

func (s *Service) profile(ctx context.Context, userID entity.UserID) (entity.Profile, error) {
	p, err := s.deps.Profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return entity.Profile{}, entity.ErrUserNotFound
		}
		return entity.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}
