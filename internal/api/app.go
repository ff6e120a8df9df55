// Package api exposes the analysis engine and the language-model relay as
// a JSON HTTP surface.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datalens/internal/config"
	"datalens/ports"
)

// App wires the router, configuration and the optional assistant
type App struct {
	router    *chi.Mux
	cfg       *config.Config
	assistant ports.Assistant
}

// NewApp creates the HTTP application. assistant may be nil; the chat
// endpoint then answers with its fixed fallback.
func NewApp(cfg *config.Config, assistant ports.Assistant) *App {
	app := &App{
		router:    chi.NewRouter(),
		cfg:       cfg,
		assistant: assistant,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealthz)
	a.router.Post("/api/insights", a.handleInsights)
	a.router.Post("/api/chat", a.handleChat)
	a.router.Post("/api/forecast", a.handleForecast)
	a.router.Post("/api/anomaly", a.handleAnomaly)
}

// Handler exposes the router for serving and tests
func (a *App) Handler() http.Handler {
	return a.router
}
