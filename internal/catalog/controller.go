package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/utils/response"
	"cineverse/pkg/logger"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListMovies handles GET /api/v1/catalog/movies
func (c *Controller) ListMovies(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved", c.service.ListMovies(), nil)
}

// GetMovie handles GET /api/v1/catalog/movies/:id
func (c *Controller) GetMovie(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, nil)
		return
	}

	movie, err := c.service.GetMovie(id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie retrieved", movie, nil)
}

// ListTheaters handles GET /api/v1/catalog/theaters
func (c *Controller) ListTheaters(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Theaters retrieved", c.service.ListTheaters(), nil)
}

// ListCities handles GET /api/v1/catalog/cities
func (c *Controller) ListCities(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Cities retrieved", c.service.TheatersByCity(), nil)
}

// SaveMovie handles POST /api/v1/admin/movies (add-or-update by ID)
func (c *Controller) SaveMovie(ctx *gin.Context) {
	var req SaveMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	movie, err := c.service.SaveMovie(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Movie validation failed", nil, verr.Fields)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save movie", nil, err.Error())
		return
	}
	logger.GetDefault().LogCatalogMutation(ctx.Request.Context(), "save", strconv.Itoa(movie.ID), adminID(ctx))
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie saved", movie, nil)
}

// DeleteMovie handles DELETE /api/v1/admin/movies/:id
func (c *Controller) DeleteMovie(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, nil)
		return
	}

	if err := c.service.DeleteMovie(id); err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
		return
	}
	logger.GetDefault().LogCatalogMutation(ctx.Request.Context(), "delete", strconv.Itoa(id), adminID(ctx))
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie deleted", nil, nil)
}

func adminID(ctx *gin.Context) string {
	if v, ok := ctx.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
