// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Users   *UserHandler
	Adverts *AdvertHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:   NewUserHandler(s, services.Users),
		Adverts: NewAdvertHandler(s, services.Adverts),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
