package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/armory-api/controllers/cart"
	"github.com/junaidrashid-git/armory-api/services"
)

func SetupCartRoutes(secured *gin.RouterGroup, carts *services.Carts) {
	cartGroup := secured.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCarts(carts))
		cartGroup.POST("", cartControllers.CreateCart(carts))
		cartGroup.PUT("/:id", cartControllers.UpdateCart(carts))
		cartGroup.DELETE("/:id", cartControllers.DeleteCart(carts))
	}
}
