// Package topscorers implements the HTTP handler for the scorers of a single
// football-data.org competition.
package topscorers

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
	TopScorers(ctx context.Context, code string) (json.RawMessage, error)
}

// Handler handles GET /api/topscorers/{leagueId}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a top scorers Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.topscorers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	code := chi.URLParam(r, "leagueId")

	body, err := h.service.TopScorers(r.Context(), code)
	if err != nil {
		log.Error("top scorers lookup failed", slog.String("league", code), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los goleadores"))
		return
	}

	render.JSON(w, r, body)
}
