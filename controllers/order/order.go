package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/services"
)

// GET /orders
func GetOrders(orders *services.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.OrderQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			render.BadRequest(c, err)
			return
		}

		page, err := orders.List(c.Request.Context(), q, pagination.Parse(c.Query("page"), c.Query("totalItemsPage")))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// PlaceOrder turns an existing cart into an order. A cart takes at most one
// order.
func PlaceOrder(orders *services.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := orders.Create(c.Request.Context(), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// PUT /orders/:id
func UpdateOrder(orders *services.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := orders.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
func DeleteOrder(orders *services.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := orders.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
