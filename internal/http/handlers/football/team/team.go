// Package team implements the HTTP handler for a single football-data.org
// team lookup, squad included.
package team

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
	Team(ctx context.Context, id string) (json.RawMessage, error)
}

// Handler handles GET /api/equipo/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a team Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.team"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	body, err := h.service.Team(r.Context(), id)
	if err != nil {
		log.Error("team lookup failed", slog.String("team_id", id), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los datos del equipo"))
		return
	}

	render.JSON(w, r, body)
}
