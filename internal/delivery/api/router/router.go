// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"calsync/internal/delivery/api/middleware"
	"calsync/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
	CalendarHandler *handler.CalendarHandler
	OAuthHandler    *handler.OAuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler *handler.IdentityHandler
	calendarHandler *handler.CalendarHandler
	oauthHandler    *handler.OAuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler: params.IdentityHandler,
		calendarHandler: params.CalendarHandler,
		oauthHandler:    params.OAuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Client-side provider sign-in
	e.POST("/microsoft-login", r.identityHandler.MicrosoftLogin)
	e.POST("/google-login", r.identityHandler.GoogleLogin)

	e.POST("/fetch_microsoft_calendar_events", r.calendarHandler.ListEvents, r.authMiddleware.Authenticate)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/refresh", r.oauthHandler.RefreshSession)
	}

	oauthGroup := e.Group("/oauth/:provider")
	{
		oauthGroup.GET("/authorize-url", r.oauthHandler.AuthorizationURL)
		oauthGroup.POST("/token", r.oauthHandler.ExchangeCode)
	}

	calendarGroup := e.Group("/calendar")
	calendarGroup.Use(r.authMiddleware.Authenticate)
	{
		calendarGroup.GET("/events", r.calendarHandler.ListEvents)
		calendarGroup.GET("/events/today", r.calendarHandler.ListTodaysEvents)
		calendarGroup.POST("/events", r.calendarHandler.CreateEvent)
		calendarGroup.PATCH("/events/:id", r.calendarHandler.UpdateEvent)
		calendarGroup.DELETE("/events/:id", r.calendarHandler.DeleteEvent)
		calendarGroup.GET("/profile", r.calendarHandler.GetProfile)
	}
}
