package catalog

import (
	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/middleware"
)

// SetupCatalogRoutes configures the public catalog read surface.
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	cat := rg.Group("/catalog")
	{
		cat.GET("/movies", controller.ListMovies)       // GET /api/v1/catalog/movies
		cat.GET("/movies/:id", controller.GetMovie)     // GET /api/v1/catalog/movies/:id
		cat.GET("/theaters", controller.ListTheaters)   // GET /api/v1/catalog/theaters
		cat.GET("/cities", controller.ListCities)       // GET /api/v1/catalog/cities
	}
}

// SetupAdminCatalogRoutes configures the admin mutation surface.
func SetupAdminCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/movies", controller.SaveMovie)          // POST /api/v1/admin/movies
		admin.DELETE("/movies/:id", controller.DeleteMovie)  // DELETE /api/v1/admin/movies/:id
	}
}
