// Package scorers implements the HTTP handler for the scorer aggregate over
// the five football-data.org competitions.
package scorers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// Service describes the aggregation business logic.
type Service interface {
	ScorersAll(ctx context.Context) ([]models.CompetitionScorers, error)
}

// Handler handles GET /api/scorers.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a scorers Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.scorers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	data, err := h.service.ScorersAll(r.Context())
	if err != nil {
		log.Error("scorers aggregate failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los goleadores"))
		return
	}

	render.JSON(w, r, map[string]any{
		"success": true,
		"data":    data,
	})
}
