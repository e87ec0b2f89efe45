// Package matchstats implements the HTTP handler for fixture statistics.
package matchstats

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
	MatchStatistics(ctx context.Context, fixtureID string) (json.RawMessage, error)
}

// Handler handles GET /api/matches/{fixtureId}/statistics.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a match statistics Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.matchstats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	fixtureID := chi.URLParam(r, "fixtureId")

	body, err := h.service.MatchStatistics(r.Context(), fixtureID)
	if err != nil {
		log.Error("statistics lookup failed", slog.String("fixture_id", fixtureID), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener las estadísticas del partido"))
		return
	}

	render.JSON(w, r, body)
}
