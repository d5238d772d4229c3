// Package router sets up the HTTP routes for the snipbin API server.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/snipbin/snipbin/internal/http/handler"
	"github.com/snipbin/snipbin/internal/http/middleware"
)

// NewRouter initializes and returns the main Gin engine with all routes.
// tokens may be nil in tests that exercise only public routes.
func NewRouter(snippets *handler.Handler, users *handler.UserHandler, health *handler.HealthHandler, tokens middleware.TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger())
	if tokens != nil {
		router.Use(middleware.Identity(tokens))
	}

	v1 := router.Group("/v1")
	{
		v1.GET("/health", handler.Health)
		v1.GET("/livez", health.Liveness)
		v1.GET("/readyz", health.Readiness)

		v1.GET("/snippets", snippets.List)
		v1.POST("/snippets", snippets.Create)
		v1.GET("/snippets/:id", snippets.Get)
		v1.PUT("/snippets/:id", snippets.Update)
		v1.DELETE("/snippets/:id", snippets.Delete)

		v1.GET("/users", users.List)
		v1.POST("/users", users.Register)
		v1.GET("/users/:id", users.Get)
		v1.POST("/auth/login", users.Login)
	}

	return router
}
