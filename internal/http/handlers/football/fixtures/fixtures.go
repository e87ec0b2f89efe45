// Package fixtures implements the HTTP handler for upcoming fixtures.
package fixtures

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
)

const defaultCount = 10

// Service describes the aggregation business logic.
type Service interface {
	NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error)
}

// Handler handles GET /api/fixtures/next/{count}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a fixtures Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.fixtures"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	count, err := strconv.Atoi(chi.URLParam(r, "count"))
	if err != nil || count <= 0 {
		count = defaultCount
	}

	fixtures, err := h.service.NextFixtures(r.Context(), count)
	if err != nil {
		log.Error("fixtures lookup failed", slog.Int("count", count), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los próximos partidos"))
		return
	}

	render.JSON(w, r, map[string]any{
		"fixtures": fixtures,
	})
}
