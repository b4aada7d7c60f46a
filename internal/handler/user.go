package handler

import (
	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/service"
	"github.com/deppfellow/go-adverts/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserHandler serves /user. Users are never updated or deleted.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) GetUser(c echo.Context, sess *database.Session, req *validation.GetUserRequest) (*model.User, error) {
	return h.users.GetUser(c.Request().Context(), sess, req.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, sess *database.Session, req *validation.CreateUserRequest) (*model.User, error) {
	return h.users.CreateUser(c.Request().Context(), sess, req.Name, req.Email, req.Password)
}
