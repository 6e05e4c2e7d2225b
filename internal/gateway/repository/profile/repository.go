// Package profile persists intake profiles and their chat history.
package profile

import (
	"context"
	"errors"

	"astroguide/internal/gateway/entity"
)

// Store defines operations for persisting profiles and chat turns.
type Store interface {
	// CreateProfile assigns ID and CreatedAt (when zero) and returns the stored profile.
	CreateProfile(ctx context.Context, p entity.Profile) (entity.Profile, error)
	GetProfile(ctx context.Context, id entity.UserID) (entity.Profile, error)
	AppendChat(ctx context.Context, m entity.ChatMessage) (entity.ChatMessage, error)
	// ListChat returns up to limit most recent turns, oldest first.
	ListChat(ctx context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error)
}

var ErrNotFound = errors.New("profile not found")
