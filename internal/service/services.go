// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/go-adverts/internal/repository"
	"github.com/deppfellow/go-adverts/internal/server"
)

type Services struct {
	Users   *UserService
	Adverts *AdvertService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:   NewUserService(s, repos.Users),
		Adverts: NewAdvertService(s, repos.Adverts),
	}
}
