// Package recover implements the HTTP handler that starts the password-reset
// flow: it issues a reset token for the account and emails the reset link.
package recover

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

// Request carries the recovery form.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Service describes the password-reset business logic.
type Service interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// Handler handles POST /recuperar-contrasena.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a recovery Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.recover"

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

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, apperr.ErrUserNotFound):
			log.Info("email not registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("No existe una cuenta con ese correo"))
		case errors.Is(err, apperr.ErrMailDelivery):
			// the token is already persisted; a retry reissues it
			log.Error("reset email dispatch failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error al enviar el correo de recuperación"))
		default:
			log.Error("password reset request failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error al procesar la solicitud"))
		}
		return
	}

	log.Info("reset email sent", slog.String("email", req.Email))
	render.JSON(w, r, map[string]any{
		"message": "Correo de recuperación enviado",
	})
}
