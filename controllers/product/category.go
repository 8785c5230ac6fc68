package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/pagination"
	"github.com/junaidrashid-git/armory-api/services"
)

// GET /categories
func GetCategories(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.CategoryQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			render.BadRequest(c, err)
			return
		}

		page, err := categories.List(c.Request.Context(), q, pagination.Parse(c.Query("page"), c.Query("totalItemsPage")))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// POST /categories
func CreateCategory(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			render.BadRequest(c, err)
			return
		}

		category, err := categories.Create(c.Request.Context(), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:name
func UpdateCategory(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			render.BadRequest(c, err)
			return
		}

		category, err := categories.Update(c.Request.Context(), c.Param("name"), input)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:name
func DeleteCategory(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := categories.Delete(c.Request.Context(), c.Param("name"))
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
