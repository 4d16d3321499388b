package auth

import (
	"github.com/gin-gonic/gin"

	"cineverse/internal/shared/middleware"
)

// Router handles auth-related routes
type Router struct {
	controller *Controller
}

// NewRouter creates a new auth router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
	}
}

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/login", authRouter.controller.Login)
		auth.POST("/admin/login", authRouter.controller.AdminLogin)
		auth.POST("/refresh", authRouter.controller.RefreshToken)
		auth.POST("/logout", authRouter.controller.Logout)

		// Protected routes (authentication required)
		protected := auth.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.GET("/me", authRouter.controller.GetMe)
		}
	}
}
