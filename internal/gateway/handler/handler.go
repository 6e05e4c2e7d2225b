// Package handler serves the JSON and websocket API.
package handler

import (
	"context"

	"go.uber.org/zap"

	"astroguide/internal/gateway/entity"
	artifactrepo "astroguide/internal/gateway/repository/artifact"
	"astroguide/internal/gateway/usecase/chat"
	"astroguide/internal/gateway/usecase/intake"
)

type IntakeService interface {
	Submit(ctx context.Context, req intake.Request) (intake.Result, error)
}

type ChatService interface {
	Ask(ctx context.Context, userID entity.UserID, message string) (chat.Reply, error)
	History(ctx context.Context, userID entity.UserID, limit int) ([]entity.ChatMessage, error)
	Profile(ctx context.Context, userID entity.UserID) (entity.Profile, error)
}

// Handler groups the HTTP endpoints. Charts is read for GET /charts/{file}.
type Handler struct {
	intake IntakeService
	chat   ChatService
	charts artifactrepo.Store
	logger *zap.Logger
}

func New(intakeSvc IntakeService, chatSvc ChatService, charts artifactrepo.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		intake: intakeSvc,
		chat:   chatSvc,
		charts: charts,
		logger: logger.With(zap.String("component", "handler")),
	}
}
