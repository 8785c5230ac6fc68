package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/services"
)

// GET /products?code=&name=&category=&tax=&page=&totalItemsPage=
func GetProducts(products *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.ProductQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			render.BadRequest(c, err)
			return
		}

		page, err := products.List(c.Request.Context(), q, pagination.Parse(c.Query("page"), c.Query("totalItemsPage")))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
