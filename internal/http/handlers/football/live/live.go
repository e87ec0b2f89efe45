// Package live implements the HTTP handler for the live fixtures feed.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
)

// Service describes the aggregation business logic.
type Service interface {
	LiveMatches(ctx context.Context) (json.RawMessage, error)
}

// Handler handles GET /api/matches/live.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a live matches Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.live"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := h.service.LiveMatches(r.Context())
	if err != nil {
		log.Error("live feed failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los partidos en vivo"))
		return
	}

	render.JSON(w, r, body)
}
