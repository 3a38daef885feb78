package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"atria/internal/handlers/appointment"
	"atria/internal/handlers/catalog"
	"atria/internal/handlers/chat"
	"atria/internal/handlers/company"
	"atria/internal/handlers/patient"
	"atria/internal/handlers/project"
	"atria/internal/handlers/provider"
	"atria/internal/handlers/social"
	"atria/transport/http/middleware"
)

type DomainHandlers struct {
	Patient     patient.Handler
	Provider    provider.Handler
	Appointment appointment.Handler
	Catalog     catalog.Handler
	Company     company.Handler
	Project     project.Handler
	Social      social.Handler
	Chat        chat.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.CORS())
		routerGroup.Use(r.App.Tracing)
		routerGroup.Use(r.App.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Patient.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Company.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Social.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
