package api

import (
	"freight-dispatch-service/internal/api/handlers"
	"freight-dispatch-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, cache ports.ScheduleCache) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{Repo: repo, Cache: cache}

	r.Get("/health", handlers.Health)
	r.Get("/scenarios", scenarioHandler.List)
	r.Get("/scenarios/{name}/schedule", scheduleHandler.Scenario)
	r.Post("/schedules", scheduleHandler.Plan)

	return r
}
