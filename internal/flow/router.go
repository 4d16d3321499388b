package flow

import (
	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/middleware"
)

// SetupFlowRoutes configures the booking session surface. Every route is
// authenticated: a session belongs to exactly one user.
func SetupFlowRoutes(rg *gin.RouterGroup, controller *Controller) {
	booking := rg.Group("/booking")
	booking.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		booking.GET("/session", controller.GetSession)                        // GET  /api/v1/booking/session
		booking.GET("/session/dates", controller.GetDates)                    // GET  /api/v1/booking/session/dates
		booking.GET("/session/seats", controller.GetSeats)                    // GET  /api/v1/booking/session/seats
		booking.POST("/session/city", controller.ChangeCity)                  // POST /api/v1/booking/session/city
		booking.POST("/session/theater", controller.SelectTheater)            // POST /api/v1/booking/session/theater
		booking.POST("/session/movie", controller.SelectMovie)                // POST /api/v1/booking/session/movie
		booking.POST("/session/showtime", controller.SelectShowtime)          // POST /api/v1/booking/session/showtime
		booking.POST("/session/seats/toggle", controller.ToggleSeat)          // POST /api/v1/booking/session/seats/toggle
		booking.POST("/session/seats/confirm", controller.ConfirmSeats)       // POST /api/v1/booking/session/seats/confirm
		booking.POST("/session/summary/confirm", controller.ProceedToPayment) // POST /api/v1/booking/session/summary/confirm
		booking.POST("/session/payment", controller.SubmitPayment)            // POST /api/v1/booking/session/payment
		booking.POST("/session/reset", controller.ResetSession)               // POST /api/v1/booking/session/reset
	}
}
