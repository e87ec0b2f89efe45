// Package standings implements the HTTP handler for a competition table.
package standings

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
	Standings(ctx context.Context, code string) (json.RawMessage, error)
}

// Handler handles GET /api/standings/{leagueId}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a standings Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.standings"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	code := chi.URLParam(r, "leagueId")

	body, err := h.service.Standings(r.Context(), code)
	if err != nil {
		log.Error("standings lookup failed", slog.String("league", code), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener la clasificación"))
		return
	}

	render.JSON(w, r, body)
}
