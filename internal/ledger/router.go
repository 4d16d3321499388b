package ledger

import (
	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/middleware"
)

// SetupLedgerRoutes configures booking-history routes.
func SetupLedgerRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		bookings.GET("", controller.ListMyBookings) // GET /api/v1/bookings
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/bookings", controller.ListAllBookings) // GET /api/v1/admin/bookings
	}
}
