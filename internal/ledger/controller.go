package ledger

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListMyBookings handles GET /api/v1/bookings. Returns the caller's
// history, newest first.
func (c *Controller) ListMyBookings(ctx *gin.Context) {
	userID, ok := ctx.Get("user_id")
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}
	bookings := c.service.ListByUser(userID.(string))
	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved", bookings, nil)
}

// ListAllBookings handles GET /api/v1/admin/bookings. Returns the full
// ledger, read only.
func (c *Controller) ListAllBookings(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved", c.service.ListAll(), nil)
}
