package routes

import (
	"cardiowell/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAIRoutes(router *gin.Engine, aiController *controllers.AIController) {
	aiRoutes := router.Group("/ai")
	{
		aiRoutes.POST("/search", aiController.HealthSearch)
		aiRoutes.POST("/analyze-pdf", aiController.AnalyzePDF)
	}
}
