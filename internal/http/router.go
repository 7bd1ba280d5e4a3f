// Package httpapi assembles the HTTP surface: public registration wizard
// routes, the admin API behind the JWT gate, and the ops endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "promohub/internal/auth/handler"
	"promohub/internal/platform/middleware"
	registrationhandler "promohub/internal/registration/handler"
	talenthandler "promohub/internal/talent/handler"
	"promohub/pkg/platform/httputil"
)

// HealthChecker reports readiness of one backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts.
type Deps struct {
	Auth         *authhandler.Handler
	Registration *registrationhandler.Handler
	Talent       *talenthandler.Handler
	Validator    middleware.JWTValidator
	Logger       *slog.Logger
	// Health checks run on /healthz, keyed by dependency name.
	Health map[string]HealthChecker
}

// NewRouter wires middleware and mounts all endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))

	r.Route("/api", func(api chi.Router) {
		d.Registration.Register(api)
		d.Auth.Register(api)

		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAuth(d.Validator, d.Logger))
			d.Talent.Register(admin)
		})
	})

	r.Get("/healthz", handleHealth(d.Health))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check.Health(r.Context()); err != nil {
				deps[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "up"
		}
		httputil.WriteJSON(w, status, map[string]any{
			"status":       statusWord(status),
			"dependencies": deps,
		})
	}
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
