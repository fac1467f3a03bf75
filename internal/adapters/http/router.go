// Package http is the inbound HTTP adapter: the chi route table for the form
// API and health probes, and the server that runs it.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// NewRouter mounts the form API under /api/v1/form and the probes under
// /health. Middleware wraps every route, outermost first. Unknown paths and
// methods answer with problem details like every other error.
func NewRouter(
	form *handlers.FormHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.NewProblem(req, http.StatusMethodNotAllowed,
			fmt.Sprintf("%s is not supported on %s", req.Method, req.URL.Path)))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1/form", func(r chi.Router) {
		r.Get("/", form.Snapshot)
		r.Delete("/", form.ResetAll)
		r.Delete("/project", form.ResetProjectFields)
		r.Post("/submit", form.Submit)

		r.Route("/fields/{field}", func(r chi.Router) {
			r.Put("/", form.SetField)
			r.Post("/blur", form.BlurField)
		})

		r.Post("/resources", form.AddResource)
		r.Route("/resources/{id}", func(r chi.Router) {
			r.Patch("/", form.UpdateResource)
			r.Delete("/", form.RemoveResource)
			r.Post("/blur", form.BlurResource)
			r.Post("/move", form.MoveResource)
		})
	})

	return r
}
