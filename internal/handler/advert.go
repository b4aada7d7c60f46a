package handler

import (
	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/service"
	"github.com/deppfellow/go-adverts/internal/validation"
	"github.com/labstack/echo/v4"
)

// StatusResponse is the body of successful operations that return no entity.
type StatusResponse struct {
	Status string `json:"status"`
}

// AdvertHandler serves /advert.
type AdvertHandler struct {
	Handler
	adverts *service.AdvertService
}

func NewAdvertHandler(s *server.Server, adverts *service.AdvertService) *AdvertHandler {
	return &AdvertHandler{
		Handler: NewHandler(s),
		adverts: adverts,
	}
}

func (h *AdvertHandler) GetAdvert(c echo.Context, sess *database.Session, req *validation.GetAdvertRequest) (*model.Advert, error) {
	return h.adverts.GetAdvert(c.Request().Context(), sess, req.ID)
}

func (h *AdvertHandler) CreateAdvert(c echo.Context, sess *database.Session, req *validation.CreateAdvertRequest) (*model.Advert, error) {
	return h.adverts.CreateAdvert(c.Request().Context(), sess, req.Title, req.Note, req.OwnerID)
}

func (h *AdvertHandler) DeleteAdvert(c echo.Context, sess *database.Session, req *validation.DeleteAdvertRequest) (StatusResponse, error) {
	if err := h.adverts.DeleteAdvert(c.Request().Context(), sess, req.ID); err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{Status: "success"}, nil
}
