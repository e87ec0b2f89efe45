// Package squadplayer implements the HTTP handler that picks one player out
// of a football-data.org team squad.
package squadplayer

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
	SquadPlayer(ctx context.Context, teamID, playerID string) (json.RawMessage, error)
}

// Handler handles GET /api/player/{teamId}/{playerId}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a squad player Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.football.squadplayer"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teamID := chi.URLParam(r, "teamId")
	playerID := chi.URLParam(r, "playerId")

	player, err := h.service.SquadPlayer(r.Context(), teamID, playerID)
	if err != nil {
		if errors.Is(err, apperr.ErrPlayerNotFound) {
			log.Info("player not in squad",
				slog.String("team_id", teamID), slog.String("player_id", playerID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Jugador no encontrado"))
			return
		}
		log.Error("squad lookup failed", slog.String("team_id", teamID), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al obtener los datos del jugador"))
		return
	}

	render.JSON(w, r, player)
}
