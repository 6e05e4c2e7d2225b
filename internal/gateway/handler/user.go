package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"astroguide/internal/gateway/entity"
	"astroguide/internal/gateway/usecase/intake"
	"astroguide/internal/geo"
	"astroguide/internal/humandesign"
)

type createUserResponse struct {
	UserID       entity.UserID      `json:"userId"`
	Name         string             `json:"name"`
	AstroData    entity.AstroData   `json:"astroData"`
	HDData       entity.HumanDesign `json:"hdData"`
	Resonance    string             `json:"resonance"`
	Archetype    string             `json:"archetype"`
	ChartURL     string             `json:"chartUrl"`
	ChatResponse string             `json:"chatResponse"`
}

type userResponse struct {
	entity.Profile
	Coordinates string              `json:"coordinates"`
	Reading     humandesign.Reading `json:"reading"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Server is running!")
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req intake.Request
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.intake.Submit(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p := res.Profile
	writeJSON(w, http.StatusCreated, createUserResponse{
		UserID:       p.ID,
		Name:         p.Name,
		AstroData:    p.Astro,
		HDData:       p.Design,
		Resonance:    p.Resonance,
		Archetype:    p.Archetype,
		ChartURL:     p.ChartURL,
		ChatResponse: res.ChatResponse,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.chat.Profile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		Profile:     p,
		Coordinates: geo.FormatCoordinates(p.Birth.Lat, p.Birth.Lng),
		Reading:     humandesign.Describe(p.Design),
	})
}

func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	// Zero or negative limits fall back to the default page size.
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	msgs, err := h.chat.History(r.Context(), id, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if msgs == nil {
		msgs = []entity.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"userId": id, "messages": msgs})
}

func (h *Handler) userIDParam(w http.ResponseWriter, r *http.Request) (entity.UserID, bool) {
	id, err := entity.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}
