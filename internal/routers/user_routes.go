package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/handlers"
	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
)

func UserRoutes(r *chi.Mux, userHandler *handlers.UserHandler, jwtSecret string) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/search/{prefix}", userHandler.SearchHandler)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth(jwtSecret))
			r.Get("/profile", userHandler.ProfileHandler)
			r.Put("/profile", userHandler.UpdateProfileHandler)
		})
	})
}
