package flow

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cineverse/internal/catalog"
	"cineverse/internal/payment"
	"cineverse/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func currentUserID(ctx *gin.Context) string {
	if v, ok := ctx.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetSession handles GET /api/v1/booking/session
func (c *Controller) GetSession(ctx *gin.Context) {
	view := c.service.Session(currentUserID(ctx))
	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved", view, nil)
}

// GetDates handles GET /api/v1/booking/session/dates
func (c *Controller) GetDates(ctx *gin.Context) {
	dates := c.service.Dates()
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Dates retrieved", out, nil)
}

// GetSeats handles GET /api/v1/booking/session/seats. Outside seat
// selection the payload carries no layout; the client falls back to a
// placeholder.
func (c *Controller) GetSeats(ctx *gin.Context) {
	view := c.service.Session(currentUserID(ctx))
	seats := gin.H{
		"step":           view.Step,
		"seating":        nil,
		"selected_seats": view.SelectedSeats,
		"total_price":    view.TotalPrice,
	}
	if view.Showtime != nil {
		seats["seating"] = view.Showtime.Seating
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seats retrieved", seats, nil)
}

// ChangeCity handles POST /api/v1/booking/session/city
func (c *Controller) ChangeCity(ctx *gin.Context) {
	var req ChangeCityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	view, err := c.service.ChangeCity(currentUserID(ctx), req.City)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Unknown city", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "City changed", view, nil)
}

// SelectTheater handles POST /api/v1/booking/session/theater
func (c *Controller) SelectTheater(ctx *gin.Context) {
	var req SelectTheaterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	view, err := c.service.SelectTheater(currentUserID(ctx), req.TheaterID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Theater selected", view, nil)
}

// SelectMovie handles POST /api/v1/booking/session/movie
func (c *Controller) SelectMovie(ctx *gin.Context) {
	var req SelectMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	view, err := c.service.SelectMovie(currentUserID(ctx), req.MovieID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie selected", view, nil)
}

// SelectShowtime handles POST /api/v1/booking/session/showtime
func (c *Controller) SelectShowtime(ctx *gin.Context) {
	var req SelectShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil, nil)
		return
	}

	view, err := c.service.SelectShowtime(currentUserID(ctx), req.MovieID, req.ShowtimeID, date)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime selected", view, nil)
}

// ToggleSeat handles POST /api/v1/booking/session/seats/toggle
func (c *Controller) ToggleSeat(ctx *gin.Context) {
	var req ToggleSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	view, err := c.service.ToggleSeat(currentUserID(ctx), req.SeatID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seat toggled", view, nil)
}

// ConfirmSeats handles POST /api/v1/booking/session/seats/confirm
func (c *Controller) ConfirmSeats(ctx *gin.Context) {
	view, err := c.service.ConfirmSeats(currentUserID(ctx))
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seats confirmed", view, nil)
}

// ProceedToPayment handles POST /api/v1/booking/session/summary/confirm
func (c *Controller) ProceedToPayment(ctx *gin.Context) {
	view, err := c.service.ProceedToPayment(currentUserID(ctx))
	if err != nil {
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Proceeding to payment", view, nil)
}

// SubmitPayment handles POST /api/v1/booking/session/payment
func (c *Controller) SubmitPayment(ctx *gin.Context) {
	var req payment.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.SubmitPayment(ctx.Request.Context(), currentUserID(ctx), req)
	if err != nil {
		if errors.Is(err, ErrPaymentValidation) {
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Payment validation failed", nil, result.FieldErrors)
			return
		}
		respondFlowError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Booking confirmed", result, nil)
}

// ResetSession handles POST /api/v1/booking/session/reset
func (c *Controller) ResetSession(ctx *gin.Context) {
	view := c.service.Reset(currentUserID(ctx))
	response.RespondJSON(ctx, "success", http.StatusOK, "Session reset", view, nil)
}

func respondFlowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Action not valid at current step", nil, err.Error())
	case errors.Is(err, ErrEmptySelection):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Select at least one seat", nil, nil)
	case errors.Is(err, ErrPaymentInFlight):
		response.RespondJSON(ctx, "error", http.StatusConflict, "A payment is already being processed", nil, nil)
	case errors.Is(err, ErrStaleCompletion):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Session changed during payment; no booking was made", nil, nil)
	case errors.Is(err, ErrDateOutOfWindow):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Show date is not selectable", nil, nil)
	case errors.Is(err, ErrSeatNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Seat not found", nil, nil)
	case errors.Is(err, catalog.ErrMovieNotFound),
		errors.Is(err, catalog.ErrTheaterNotFound),
		errors.Is(err, catalog.ErrShowtimeNotFound),
		errors.Is(err, catalog.ErrUnknownCity):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Resource not found", nil, err.Error())
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Something went wrong", nil, err.Error())
	}
}
