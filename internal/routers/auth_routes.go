package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/handlers"
	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler, jwtSecret string) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", authHandler.LoginHandler)       // User login
		r.Post("/register", authHandler.RegisterHandler) // User registration
		r.With(middlewares.RequireAuth(jwtSecret)).Get("/me", authHandler.MeHandler)
	})
}
