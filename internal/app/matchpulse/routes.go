package matchpulse

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/matchpulse/matchpulse-backend/internal/config"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/auth/login"
	authrecover "github.com/matchpulse/matchpulse-backend/internal/http/handlers/auth/recover"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/auth/register"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/auth/reset"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/apisearch"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/fixtures"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/live"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/matchevents"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/matchlineups"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/matchstats"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/playerinfo"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/scorers"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/search"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/squadplayer"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/standings"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/team"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/topscorers"
	"github.com/matchpulse/matchpulse-backend/internal/http/handlers/football/topscorersall"
	"github.com/matchpulse/matchpulse-backend/internal/http/middlewarectx"
	authservice "github.com/matchpulse/matchpulse-backend/internal/services/auth"
	footballservice "github.com/matchpulse/matchpulse-backend/internal/services/football"
)

// RegisterRoutes registers every route of the backend. The Spanish account
// paths come from the client this service was built for.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, authService *authservice.AuthService, footballService *footballservice.Service) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Account endpoints, throttled as a group.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/registro", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/recuperar-contrasena", authrecover.New(logger, authService).ServeHTTP)
		r.Post("/restablecer-contrasena", reset.New(logger, authService).ServeHTTP)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/equipo/{id}", team.New(logger, footballService).ServeHTTP)
		r.Get("/equipos", search.New(logger, footballService).ServeHTTP)
		r.Get("/apisports/equipos", apisearch.New(logger, footballService).ServeHTTP)
		r.Get("/player/{teamId}/{playerId}", squadplayer.New(logger, footballService).ServeHTTP)
		r.Get("/player/{id}", playerinfo.New(logger, footballService).ServeHTTP)
		r.Get("/standings/{leagueId}", standings.New(logger, footballService).ServeHTTP)
		r.Get("/scorers", scorers.New(logger, footballService).ServeHTTP)
		r.Get("/topscorers/all", topscorersall.New(logger, footballService).ServeHTTP)
		r.Get("/topscorers/{leagueId}", topscorers.New(logger, footballService).ServeHTTP)
		r.Get("/fixtures/next/{count}", fixtures.New(logger, footballService).ServeHTTP)
		r.Get("/matches/live", live.New(logger, footballService).ServeHTTP)
		r.Get("/matches/{fixtureId}/statistics", matchstats.New(logger, footballService).ServeHTTP)
		r.Get("/matches/{fixtureId}/events", matchevents.New(logger, footballService).ServeHTTP)
		r.Get("/matches/{fixtureId}/lineups", matchlineups.New(logger, footballService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
