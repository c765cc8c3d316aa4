package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/api"
)

func RoomRoutes(r *chi.Mux, h *api.Handlers) {
	r.Get("/ws/room", h.RoomWS)
}
