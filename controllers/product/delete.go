package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/services"
)

// DELETE /products/:code
func DeleteProduct(products *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := products.Delete(c.Request.Context(), c.Param("code"))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}

// POST /products/setImage/:code with a multipart "file" field.
func SetProductImage(products *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer file.Close()

		ok, err := products.SetImage(c.Request.Context(), c.Param("code"), file)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, ok)
	}
}
