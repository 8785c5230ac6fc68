package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/services"
)

// CreateProduct stores a product under an existing category. The image is
// uploaded separately through SetProductImage.
func CreateProduct(products *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			render.BadRequest(c, err)
			return
		}

		product, err := products.Create(c.Request.Context(), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
