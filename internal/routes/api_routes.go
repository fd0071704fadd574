package routes

import (
	"pyc-official/secretariat/internal/api"
	"pyc-official/secretariat/internal/middleware"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public: consumed by the static site and the volunteer form
		v1.Get("/time", handlers.GetServerTime())
		v1.Get("/news", handlers.ListNews())
		v1.Get("/content", handlers.ListContent())
		v1.Get("/feed", handlers.GetFeed())

		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware(rate.Limit(0.2), 3))
			public.Post("/registrations", handlers.CreateRegistration())
		})

		v1.Post("/auth/login", handlers.Login())
		v1.Post("/auth/logout", handlers.Logout())

		// Authenticated: JWT, session cookie, or API key
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Session, deps.Repo.Keys, deps.JWTSecret))

			// Personal identity required (no API-key callers)
			authed.Group(func(member chi.Router) {
				member.Use(middleware.IsMemberIdentityMiddleware())

				member.Get("/profile", handlers.GetProfile())
				member.Put("/profile", handlers.SaveProfile())
				member.Get("/card.png", handlers.DownloadCardPNG())
				member.Get("/card.pdf", handlers.DownloadCardPDF())

				member.Group(func(limited chi.Router) {
					limited.Use(middleware.RateLimitMiddleware(rate.Limit(1), 5))
					limited.Post("/checkin", handlers.CheckIn())
				})
			})

			// Dashboard admin group
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/admin/registrations", handlers.ListRegistrations())
				admin.Patch("/admin/registrations/{id}/status", handlers.UpdateRegistrationStatus())
				admin.Post("/admin/registrations/{id}/promote", handlers.PromoteRegistration())
				admin.Get("/admin/stats", handlers.GetRegistrationStats())

				admin.Post("/admin/news", handlers.CreateNews())
				admin.Delete("/admin/news/{id}", handlers.DeleteNews())
				admin.Post("/admin/content", handlers.CreateContent())
				admin.Delete("/admin/content/{id}", handlers.DeleteContent())
			})
		})
	})
}
