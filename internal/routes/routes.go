package routes

import (
	"encore_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every HTTP route on the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Gig.RegisterRoutes(api)
		appHandlers.Review.RegisterRoutes(api)
		appHandlers.Message.RegisterRoutes(api)
		appHandlers.Invitation.RegisterRoutes(api)
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
