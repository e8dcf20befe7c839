package routes

import (
	"cardiowell/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController) {
	patientRoutes := router.Group("/patients")
	{
		patientRoutes.POST("/", patientController.CreatePatient)
		patientRoutes.GET("/", patientController.GetAllPatients)
		patientRoutes.GET("/latest", patientController.GetLatestPatient)
		patientRoutes.GET("/:id", patientController.GetPatientByID)
		patientRoutes.PUT("/:id", patientController.UpdatePatient)
		patientRoutes.PATCH("/:id", patientController.PatchPatient)
		patientRoutes.DELETE("/:id", patientController.DeletePatient)
	}
}
