// Package matchevents implements the HTTP handler for fixture events.
package matchevents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
)

// Service describes the aggregation business logic.
type Service interface {
	MatchEvents(ctx context.Context, fixtureID string) (json.RawMessage, error)
}

// Handler handles GET /api/matches/{fixtureId}/events.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a match events Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.matchevents"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	fixtureID := chi.URLParam(r, "fixtureId")

	body, err := h.service.MatchEvents(r.Context(), fixtureID)
	if err != nil {
		log.Error("events lookup failed", slog.String("fixture_id", fixtureID), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los eventos del partido"))
		return
	}

	render.JSON(w, r, body)
}
