package router

import (
	"foodiespot/internal/handlers/chat"
	"foodiespot/internal/handlers/reservation"
	"foodiespot/internal/handlers/restaurant"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Chat        chat.Handler
	Restaurant  restaurant.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
