package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/auth"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/booking"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/notification"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/payment"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/room"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/servicerequest"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/middleware"
)

type DomainHandlers struct {
	Auth           auth.Handler
	Room           room.Handler
	Booking        booking.Handler
	Payment        payment.Handler
	ServiceRequest servicerequest.Handler
	Notification   notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.ServiceRequest.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
