package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/handlers"
	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
)

func SolutionRoutes(r *chi.Mux, h *handlers.SolutionHandler, jwtSecret string) {
	r.Route("/api/v1/solutions", func(r chi.Router) {
		r.Get("/detail/{id}", h.DetailHandler)
		r.Get("/{problemSlug}", h.ListHandler)
		r.Post("/vote", h.VoteHandler)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth(jwtSecret))
			r.Post("/submit", h.SubmitHandler)
			r.Delete("/{id}", h.DeleteHandler)
		})
	})
}

func BookmarkRoutes(r *chi.Mux, h *handlers.BookmarkHandler, jwtSecret string) {
	r.Route("/api/v1/bookmarks", func(r chi.Router) {
		r.Use(middlewares.RequireAuth(jwtSecret))
		r.Get("/", h.ListHandler)
		r.Post("/toggle", h.ToggleHandler)
	})
}

func DiscussionRoutes(r *chi.Mux, h *handlers.DiscussionHandler, jwtSecret string) {
	r.Route("/api/v1/discussions", func(r chi.Router) {
		r.Get("/{problemId}", h.ListHandler)
		r.With(middlewares.RequireAuth(jwtSecret)).Post("/{problemId}", h.AddHandler)
	})
}

func ScholarshipRoutes(r *chi.Mux, h *handlers.ScholarshipHandler) {
	r.Get("/api/v1/scholarships", h.ListHandler)
}

func AIRoutes(r *chi.Mux, h *handlers.AIHandler) {
	r.Post("/api/v1/ai/ask", h.AskHandler)
}
