package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kknudson15/ai-portfolio-starter/internal/api"
	"github.com/kknudson15/ai-portfolio-starter/internal/api/handlers"
	"github.com/kknudson15/ai-portfolio-starter/internal/api/middleware"
)

type RouterConfig struct {
	AskHandler     *handlers.AskHandler
	ContentHandler *handlers.ContentHandler
	Throttle       *middleware.Throttle
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.Throttle != nil {
				r.Use(cfg.Throttle.Handler)
			}
			r.Post("/ask", cfg.AskHandler.Ask)
		})

		r.Get("/projects", cfg.ContentHandler.ListProjects)
		r.Get("/projects/{slug}", cfg.ContentHandler.GetProject)
		r.Get("/apps", cfg.ContentHandler.ListApps)
	})

	return r
}
