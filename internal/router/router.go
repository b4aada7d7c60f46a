// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API routes,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/go-adverts/internal/handler"
	"github.com/deppfellow/go-adverts/internal/middleware"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/validation"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with global middleware, the error
// handler, system routes and resource routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the tracing and
	// context logger read it, and the request logger needs the context logger.
	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.Secure(),
		mw.Global.CORS(),
		mw.Metrics.Middleware(),
	)

	registerSystemRoutes(router, s, h, mw)
	registerUserRoutes(router, h, mw)
	registerAdvertRoutes(router, h, mw)

	return router
}

// fresh allocates a zero request for every call of a handler.
func fresh[T any]() *T {
	return new(T)
}

func registerUserRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	users := h.Users

	r.POST("/user", mw.Session.WithSession(
		handler.Handle(users.Handler, users.CreateUser, http.StatusCreated, fresh[validation.CreateUserRequest]),
	))
	r.GET("/user/:id", mw.Session.WithSession(
		handler.Handle(users.Handler, users.GetUser, http.StatusOK, fresh[validation.GetUserRequest]),
	))
}

func registerAdvertRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	adverts := h.Adverts

	r.POST("/advert", mw.Session.WithSession(
		handler.Handle(adverts.Handler, adverts.CreateAdvert, http.StatusCreated, fresh[validation.CreateAdvertRequest]),
	))
	r.GET("/advert/:id", mw.Session.WithSession(
		handler.Handle(adverts.Handler, adverts.GetAdvert, http.StatusOK, fresh[validation.GetAdvertRequest]),
	))
	r.DELETE("/advert/:id", mw.Session.WithSession(
		handler.Handle(adverts.Handler, adverts.DeleteAdvert, http.StatusOK, fresh[validation.DeleteAdvertRequest]),
	))
}
