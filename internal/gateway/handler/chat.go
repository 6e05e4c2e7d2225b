package handler

import (
	"net/http"

	"astroguide/internal/gateway/entity"
)

type chatRequest struct {
	UserID  entity.UserID `json:"userId"`
	Message string        `json:"message"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	reply, err := h.chat.Ask(r.Context(), req.UserID, req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
