package controllers

import (
	"math"
	"net/http"
	"strconv"

	"cardiowell/internal/models"
	"cardiowell/internal/repository"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	repo repository.PatientRepository
}

func NewPatientController(repo repository.PatientRepository) *PatientController {
	return &PatientController{repo: repo}
}

// CreatePatient godoc
// @Summary Create patient record
// @Description Register a new patient from the intake form
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.Patient true "Patient data"
// @Success 201 {object} map[string]interface{} "Patient created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create patient"
// @Router /patients [post]
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validatePatient(&patient); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient data",
			"error":   err,
		})
		return
	}

	// BMI is derived, never accepted from the client
	patient.BMI = nil
	patient.RecalculateBMI()

	if err := pc.repo.Create(&patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Patient created successfully",
		"data":    patient,
	})
}

// GetLatestPatient godoc
// @Summary Get latest patient record
// @Description Retrieve the most recently created patient record (the active session profile)
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{} "Patient retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No patient records found"
// @Router /patients/latest [get]
func (pc *PatientController) GetLatestPatient(c *gin.Context) {
	patient, err := pc.repo.FindLatest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No patient records found",
			"error":   "Please complete patient details first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}

// GetAllPatients godoc
// @Summary List patient records
// @Description Retrieve patient records, newest first
// @Tags patients
// @Produce json
// @Param limit query int false "Maximum number of records (default 20)"
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit parameter"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve patients"
// @Router /patients [get]
func (pc *PatientController) GetAllPatients(c *gin.Context) {
	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit parameter",
				"error":   "Limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	patients, err := pc.repo.FindAll(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}

// GetPatientByID godoc
// @Summary Get patient by ID
// @Description Retrieve a specific patient record
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id} [get]
func (pc *PatientController) GetPatientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}

// UpdatePatient godoc
// @Summary Update patient record
// @Description Replace a patient record; BMI is recomputed from height and weight
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param patient body models.Patient true "Patient data"
// @Success 200 {object} map[string]interface{} "Patient updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Failed to update patient"
// @Router /patients/{id} [put]
func (pc *PatientController) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var updatedPatient models.Patient
	if err := c.ShouldBindJSON(&updatedPatient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existingPatient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
		})
		return
	}

	if errMsg := validatePatient(&updatedPatient); errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient data",
			"error":   errMsg,
		})
		return
	}

	updatedPatient.ID = existingPatient.ID
	updatedPatient.CreatedAt = existingPatient.CreatedAt

	updatedPatient.BMI = nil
	updatedPatient.RecalculateBMI()

	if err := pc.repo.Update(&updatedPatient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient updated successfully",
		"data":    updatedPatient,
	})
}

// PatchPatient godoc
// @Summary Patch patient record
// @Description Update specific fields; BMI is recomputed whenever height or weight changes
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param patient body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Patient patched successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Failed to update patient"
// @Router /patients/{id} [patch]
func (pc *PatientController) PatchPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var patchData map[string]interface{}
	if err := c.ShouldBindJSON(&patchData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existingPatient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
		})
		return
	}

	// BMI is never patched directly
	delete(patchData, "bmi")

	// Merge incoming height/weight with stored values and recompute BMI
	// whenever either changes.
	recalculateBMI := false
	var weight, height float64

	if existingPatient.Weight != nil {
		weight = float64(*existingPatient.Weight)
	}
	if existingPatient.Height != nil {
		height = float64(*existingPatient.Height)
	}

	if weightVal, ok := patchData["weight"]; ok {
		if w, ok := weightVal.(float64); ok {
			weight = w
			recalculateBMI = true
		}
	}
	if heightVal, ok := patchData["height"]; ok {
		if h, ok := heightVal.(float64); ok {
			height = h
			recalculateBMI = true
		}
	}

	if recalculateBMI && height > 0 && weight > 0 {
		heightInMeters := height / 100.0
		bmi := weight / (heightInMeters * heightInMeters)
		bmi = math.Round(bmi*10) / 10
		patchData["bmi"] = bmi
	}

	if err := pc.repo.Patch(uint(id), patchData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update patient",
			"error":   err.Error(),
		})
		return
	}

	updatedPatient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve updated patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient patched successfully",
		"data":    updatedPatient,
	})
}

// DeletePatient godoc
// @Summary Delete patient record
// @Description Delete a patient record by ID
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete patient"
// @Router /patients/{id} [delete]
func (pc *PatientController) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient deleted successfully",
		"data":    nil,
	})
}

func validatePatient(p *models.Patient) string {
	if p.Age < 0 {
		return "Age must be zero or greater"
	}
	if p.Height != nil && *p.Height <= 0 {
		return "Height must be a positive number of centimeters"
	}
	if p.Weight != nil && *p.Weight <= 0 {
		return "Weight must be a positive number of kilograms"
	}
	return ""
}
