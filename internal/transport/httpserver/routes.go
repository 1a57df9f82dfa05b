package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"progym-go/internal/config"
	"progym-go/internal/transport/httpserver/handler"
	authmw "progym-go/internal/transport/httpserver/middleware"
	"progym-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins, cfg.Auth.UserHeader))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/options/muscle-groups", handlers.ListMuscleGroups)
		r.Get("/options/restriction-rules", handlers.ListRestrictionRules)
		r.Get("/options/muscle-focuses", handlers.ListMuscleFocuses)
		r.Get("/exercises", handlers.ListExercises)

		auth := authmw.NewHeaderAuth(cfg.Auth, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/users/me", handlers.GetMe)
			r.Put("/users/me", handlers.UpdateMe)
			r.Get("/preferences/me", handlers.GetPreferences)
			r.Put("/preferences/me", handlers.UpdatePreferences)

			r.Post("/workouts/generate", handlers.GeneratePlan)
			r.Get("/workouts", handlers.GetPlan)
			r.Delete("/workouts", handlers.DeletePlan)

			r.Post("/sessions/start", handlers.StartSession)
			r.Get("/sessions/active", handlers.GetActiveSession)
			r.Get("/sessions/{id}", handlers.GetSession)
			r.Post("/sessions/{id}/finish", handlers.FinishSession)
			r.Post("/sessions/{id}/cancel", handlers.CancelSession)
			r.Post("/sessions/sets/{set_id}/complete", handlers.CompleteSet)
			r.Post("/sessions/sets/{set_id}/skip", handlers.SkipSet)
		})
	})

	return r
}
