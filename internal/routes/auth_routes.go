package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/internal/handlers"
)

// RegisterAuthRoutes registers the public authentication routes.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/register", handlers.RegisterHandler)
	r.POST("/login", handlers.LoginHandler)
	r.GET("/logout", handlers.LogoutHandler)
}
