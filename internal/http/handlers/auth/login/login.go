// Package login implements the HTTP handler for user authentication.
//
// The username field matches either the email or the full name of the
// account; the first match wins. On success the response carries a JWT and
// the public user fields, never the password hash.
package login

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
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// Request carries the login form.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service describes the authentication business logic.
type Service interface {
	Login(ctx context.Context, login, password string) (*models.User, string, error)
}

// Handler handles POST /login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a login Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Log a user in
// @Description Authenticates by email or full name plus password. Returns a JWT and the public user fields.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "User credentials"
// @Success 200 {object} map[string]any "Authenticated"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON or missing fields"
// @Failure 401 {object} response.ErrorResponse "Unknown user or wrong password"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrUserNotFound):
			log.Info("user not found", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Usuario no encontrado"))
		case errors.Is(err, apperr.ErrInvalidCredentials):
			log.Info("invalid credentials", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Contraseña incorrecta"))
		default:
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error al iniciar sesión"))
		}
		return
	}

	log.Info("login success", slog.String("uid", user.UID))
	render.JSON(w, r, map[string]any{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user": map[string]any{
			"id":          user.UID,
			"name":        user.FullName,
			"email":       user.Email,
			"role":        user.Role,
			"preferences": user.Preferences,
		},
	})
}
