// Package reset implements the HTTP handler that completes the password-reset
// flow: a valid unexpired token buys one password change.
package reset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/http/response"
	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
)

// Request carries the reset form.
type Request struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// Service describes the password-reset business logic.
type Service interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Handler handles POST /restablecer-contrasena.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a reset Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.reset"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, apperr.ErrTokenInvalid) {
			log.Info("invalid or expired reset token")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Token inválido o expirado"))
			return
		}
		log.Error("password reset failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error al restablecer la contraseña"))
		return
	}

	log.Info("password reset completed")
	render.JSON(w, r, map[string]any{
		"message": "Contraseña actualizada correctamente",
	})
}
