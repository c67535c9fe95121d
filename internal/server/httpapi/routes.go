package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the chi router. Everything under /api except the account
// endpoints requires a bearer token.
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)
		r.Post("/refresh", s.refresh)

		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuth)

			r.Get("/records", s.listRecords)
			r.Post("/records", s.addRecord)
			r.Delete("/records/{id}", s.deleteRecord)
			r.Get("/trends", s.trends)

			r.Get("/recommendations", s.listRecommendations)
			r.Post("/recommendations", s.generateRecommendation)
			r.Delete("/recommendations/{id}", s.acceptRecommendation)

			r.Get("/reminders", s.listReminders)
			r.Post("/reminders", s.addReminder)
			r.Delete("/reminders/{id}", s.deleteReminder)

			r.Post("/export", s.export)
		})
	})

	return r
}
