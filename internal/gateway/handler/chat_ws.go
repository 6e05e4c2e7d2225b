package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"astroguide/internal/gateway/entity"
	"astroguide/internal/gateway/usecase/chat"
)

const (
	chatWSWriteWait = 10 * time.Second
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = (chatWSPongWait * 9) / 10
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type chatWSOutbound struct {
	Type     string               `json:"type"`
	UserID   entity.UserID        `json:"userId,omitempty"`
	Name     string               `json:"name,omitempty"`
	Response string               `json:"response,omitempty"`
	Topic    string               `json:"topic,omitempty"`
	Messages []entity.ChatMessage `json:"messages,omitempty"`
	Code     string               `json:"code,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// ChatWS holds a chat session for one user over a websocket. The profile is
// resolved before the upgrade so an unknown user gets a plain 404.
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	userID, err := entity.ParseUserID(r.URL.Query().Get("user_id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "user_id is required")
		return
	}
	profile, err := h.chat.Profile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	conn, err := chatWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	logger := h.logger.With(zap.Int64("user_id", int64(userID)))
	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		logger.Warn("chat ws set read deadline failed", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	writeCh := make(chan chatWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	pushChatWS(writeCh, chatWSOutbound{
		Type:   "subscribed",
		UserID: userID,
		Name:   profile.Name,
	})
	logger.Debug("chat ws subscribed")

	for {
		var in chatWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		switch msgType := strings.ToLower(strings.TrimSpace(in.Type)); msgType {
		case "":
			pushChatWS(writeCh, chatWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "type is required",
			})
		case "ping":
			pushChatWS(writeCh, chatWSOutbound{Type: "pong"})
		case "send":
			reply, askErr := h.chat.Ask(ctx, userID, in.Message)
			if askErr != nil {
				pushChatWS(writeCh, wsError(askErr))
				continue
			}
			pushChatWS(writeCh, chatWSOutbound{
				Type:     "response",
				UserID:   userID,
				Response: reply.Response,
				Topic:    reply.Topic.String(),
			})
		case "history":
			msgs, histErr := h.chat.History(ctx, userID, chat.ClampLimit(in.Limit))
			if histErr != nil {
				pushChatWS(writeCh, wsError(histErr))
				continue
			}
			pushChatWS(writeCh, chatWSOutbound{
				Type:     "history",
				UserID:   userID,
				Messages: msgs,
			})
		default:
			pushChatWS(writeCh, chatWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "unsupported type: " + msgType,
			})
		}
	}
}

func wsError(err error) chatWSOutbound {
	var inputErr *entity.InputError
	switch {
	case errors.As(err, &inputErr):
		return chatWSOutbound{Type: "error", Code: "invalid_argument", Message: inputErr.Message}
	case errors.Is(err, entity.ErrUserNotFound):
		return chatWSOutbound{Type: "error", Code: "not_found", Message: err.Error()}
	}
	return chatWSOutbound{Type: "error", Code: "internal", Message: err.Error()}
}

// pushChatWS never blocks: when the buffer is full the oldest message is
// dropped.
func pushChatWS(writeCh chan chatWSOutbound, out chatWSOutbound) {
	if writeCh == nil {
		return
	}
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
