package router

import (
	"luxedrive/internal/handlers/auth"
	"luxedrive/internal/handlers/booking"
	"luxedrive/internal/handlers/car"
	"luxedrive/internal/handlers/pricing"
	"luxedrive/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Car     car.Handler
	Pricing pricing.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router, auth middleware.AuthRole) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(auth.APIKey)
		routerGroup.Use(auth.Auth)
		routerGroup.Use(auth.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Car.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
