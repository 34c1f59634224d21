package auth

import (
	"github.com/gin-gonic/gin"

	"tourly/internal/shared/config"
	"tourly/internal/shared/middleware"
)

// Router handles auth-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authRouter.controller.Login)

		protected := auth.Group("")
		protected.Use(middleware.JWTAuth(authRouter.config), middleware.RequireAdmin())
		{
			protected.GET("/me", authRouter.controller.GetMe)
		}
	}
}
