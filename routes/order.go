package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/armory-api/controllers/order"
	"github.com/junaidrashid-git/armory-api/services"
)

func SetupOrderRoutes(secured *gin.RouterGroup, orders *services.Orders) {
	orderGroup := secured.Group("/orders")
	{
		orderGroup.GET("", orderControllers.GetOrders(orders))
		orderGroup.POST("", orderControllers.PlaceOrder(orders))
		orderGroup.PUT("/:id", orderControllers.UpdateOrder(orders))
		orderGroup.DELETE("/:id", orderControllers.DeleteOrder(orders))
	}
}
