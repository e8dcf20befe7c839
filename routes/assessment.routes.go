package routes

import (
	"cardiowell/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAssessmentRoutes(router *gin.Engine, assessmentController *controllers.AssessmentController) {
	assessmentRoutes := router.Group("/assessments")
	{
		assessmentRoutes.POST("/", assessmentController.GenerateAssessment)
		assessmentRoutes.GET("/:id", assessmentController.GetReportByID)
		assessmentRoutes.DELETE("/:id", assessmentController.DeleteReport)
		assessmentRoutes.GET("/:id/export/text", assessmentController.ExportReportText)
		assessmentRoutes.GET("/:id/export/pdf", assessmentController.ExportReportPDF)

		assessmentRoutes.GET("/patient/:patient_id", assessmentController.GetPatientReports)
		assessmentRoutes.GET("/patient/:patient_id/latest", assessmentController.GetLatestPatientReport)
		assessmentRoutes.GET("/patient/:patient_id/date-range", assessmentController.GetPatientReportsByDateRange)
	}
}
