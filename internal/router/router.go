// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rachtours/tour-reservation/internal/config"
	"github.com/rachtours/tour-reservation/internal/handler"
	"github.com/rachtours/tour-reservation/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Catalog     *handler.CatalogHandler
	Selection   *handler.SelectionHandler
	Reservation *handler.ReservationHandler
	Auth        *handler.AuthHandler
	Admin       *handler.AdminHandler
}

// Register sets up the full route table.  The public surface lives under
// /api; admin routes additionally pass the JWT middleware.  The rate
// limiter guards the two endpoints that trigger outbound messages or
// credential checks, and the response cache fronts the static catalog.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api")

	api.GET("/tours", h.Catalog.List, cache)

	api.GET("/selection", h.Selection.Get)
	api.DELETE("/selection", h.Selection.Clear)
	api.POST("/selection/tours", h.Selection.Add)
	api.DELETE("/selection/tours/:id", h.Selection.Remove)
	api.PUT("/selection/tours/:id/transport", h.Selection.SetTransport)
	api.POST("/selection/toggle-category", h.Selection.ToggleCategory)

	api.POST("/reservations", h.Reservation.Create, limiter)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login, limiter)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	admin.GET("/stats", h.Admin.Stats)
	admin.GET("/reservations", h.Admin.List)
	admin.GET("/reservations/:id", h.Admin.Get)
	admin.PUT("/reservations/:id", h.Admin.UpdateStatus)
	admin.DELETE("/reservations/:id", h.Admin.Delete)
}
