package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/services"
)

// GET /cart?id=&user=&page=&totalItemsPage=
func GetCarts(carts *services.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.CartQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			render.BadRequest(c, err)
			return
		}

		page, err := carts.List(c.Request.Context(), q, pagination.Parse(c.Query("page"), c.Query("totalItemsPage")))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// POST /cart
func CreateCart(carts *services.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.Create(c.Request.Context(), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /cart/:id
func UpdateCart(carts *services.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:id
func DeleteCart(carts *services.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := carts.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
