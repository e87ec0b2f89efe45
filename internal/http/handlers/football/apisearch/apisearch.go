// Package apisearch implements the HTTP handler for team search across the
// five api-sports.io leagues. It mirrors the football-data.org search but
// runs against the other provider's catalogue, so the entry shape differs.
package apisearch

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
	SearchTeamsAPISports(ctx context.Context, query string) ([]json.RawMessage, error)
}

// Handler handles GET /api/apisports/equipos.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates an api-sports search Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.apisearch"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")
	if query == "" {
		log.Info("missing query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("El parámetro query es obligatorio"))
		return
	}

	teams, err := h.service.SearchTeamsAPISports(r.Context(), query)
	if err != nil {
		log.Error("team search failed", slog.String("query", query), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al buscar equipos"))
		return
	}

	log.Info("team search done", slog.String("query", query), slog.Int("matches", len(teams)))
	render.JSON(w, r, map[string]any{
		"equipos": teams,
	})
}
