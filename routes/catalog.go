package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/armory-api/controllers/product"
	"github.com/junaidrashid-git/armory-api/services"
)

// SetupCatalogRoutes registers categories and products. Listing is public,
// every write goes through the secured group.
func SetupCatalogRoutes(public, secured *gin.RouterGroup, svc *services.Services) {
	public.GET("/categories", productcontroller.GetCategories(svc.Categories))
	public.GET("/products", productcontroller.GetProducts(svc.Products))

	categories := secured.Group("/categories")
	{
		categories.POST("", productcontroller.CreateCategory(svc.Categories))
		categories.PUT("/:name", productcontroller.UpdateCategory(svc.Categories))
		categories.DELETE("/:name", productcontroller.DeleteCategory(svc.Categories))
	}

	products := secured.Group("/products")
	{
		products.POST("", productcontroller.CreateProduct(svc.Products))
		products.PUT("/:code", productcontroller.UpdateProduct(svc.Products))
		products.DELETE("/:code", productcontroller.DeleteProduct(svc.Products))
		products.POST("/setImage/:code", productcontroller.SetProductImage(svc.Products))
		products.POST("/import-excel", productcontroller.ImportProductsFromExcel(svc.Products))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(svc.Products))
	}
}
