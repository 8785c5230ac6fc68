package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/services"
)

// PUT /products/:code
// The code in the path wins over any code in the body.
func UpdateProduct(products *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			render.BadRequest(c, err)
			return
		}

		product, err := products.Update(c.Request.Context(), c.Param("code"), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
