package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/internal/middleware"
)

// SetupRoutes wires every route of the application onto the engine.
func SetupRoutes(r *gin.Engine) {
	r.Use(cors.Default())

	// Public routes first: login and registration need no token.
	RegisterAuthRoutes(r)

	// Everything under /api requires a valid JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
