// Package topscorersall implements the HTTP handler for the top-scorer
// aggregate over the five api-sports.io leagues.
package topscorersall

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
	TopScorersAll(ctx context.Context) ([]models.LeagueTopScorers, error)
}

// Handler handles GET /api/topscorers/all.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a Handler for the league-wide top scorer aggregate.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.topscorersall"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	data, err := h.service.TopScorersAll(r.Context())
	if err != nil {
		log.Error("top scorers aggregate failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los goleadores"))
		return
	}

	render.JSON(w, r, data)
}
