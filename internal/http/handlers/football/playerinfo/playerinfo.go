// Package playerinfo implements the HTTP handler for a single api-sports.io
// player lookup.
package playerinfo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
)

// Service describes the aggregation business logic.
type Service interface {
	PlayerByID(ctx context.Context, id string) (json.RawMessage, error)
}

// Handler handles GET /api/player/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a player info Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.playerinfo"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	player, err := h.service.PlayerByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrPlayerNotFound) {
			log.Info("player not found", slog.String("player_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Jugador no encontrado"))
			return
		}
		log.Error("player lookup failed", slog.String("player_id", id), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los datos del jugador"))
		return
	}

	render.JSON(w, r, player)
}
