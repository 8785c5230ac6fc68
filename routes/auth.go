package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, d Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Services.Users, d.Tokens))
	}
}
