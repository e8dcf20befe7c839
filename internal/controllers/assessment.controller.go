package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cardiowell/internal/assessment"
	"cardiowell/internal/cache"
	"cardiowell/internal/export"
	"cardiowell/internal/models"
	"cardiowell/internal/repository"

	"github.com/gin-gonic/gin"
)

const latestReportTTL = 24 * time.Hour

type AssessmentController struct {
	reportRepo  repository.ReportRepository
	patientRepo repository.PatientRepository
	redisClient *cache.RedisClient // nil when the cache is unavailable
}

func NewAssessmentController(
	reportRepo repository.ReportRepository,
	patientRepo repository.PatientRepository,
	redisClient *cache.RedisClient,
) *AssessmentController {
	return &AssessmentController{
		reportRepo:  reportRepo,
		patientRepo: patientRepo,
		redisClient: redisClient,
	}
}

// GenerateAssessment godoc
// @Summary Generate a cardiac risk assessment report
// @Description Score the patient's inputs, classify urgency, and synthesize the full narrative report
// @Tags assessments
// @Accept json
// @Produce json
// @Param assessment body models.AssessmentRequest true "Assessment inputs"
// @Success 201 {object} map[string]interface{} "Report generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Patient details not found"
// @Failure 500 {object} map[string]interface{} "Failed to generate report"
// @Router /assessments [post]
func (ac *AssessmentController) GenerateAssessment(c *gin.Context) {
	var req models.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Engine precondition: a resolved patient profile. Short-circuit here
	// rather than letting the engine see a missing profile.
	patient, err := ac.resolvePatient(req.PatientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient details not found. Please complete patient details first.",
			"error":   err.Error(),
		})
		return
	}

	risk, err := assessment.ComputeRiskScore(patient, &req.AssessmentInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute risk score",
			"error":   err.Error(),
		})
		return
	}

	report, err := assessment.Synthesize(patient, &req.AssessmentInput, risk)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate report",
			"error":   err.Error(),
		})
		return
	}

	record := reportToRecord(patient.ID, report)
	if err := ac.reportRepo.Save(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save report",
			"error":   err.Error(),
		})
		return
	}

	// Cache is best effort; a cache failure never fails the request.
	if ac.redisClient != nil {
		if err := ac.redisClient.StoreLatestReport(c.Request.Context(), patient.ID, report, latestReportTTL); err != nil {
			log.Printf("Failed to cache latest report for patient %d: %v", patient.ID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Report generated successfully",
		"data": gin.H{
			"id":     record.ID,
			"report": report,
		},
	})
}

// GetReportByID godoc
// @Summary Get report by ID
// @Description Retrieve a stored assessment report
// @Tags assessments
// @Produce json
// @Param id path int true "Report row ID"
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /assessments/{id} [get]
func (ac *AssessmentController) GetReportByID(c *gin.Context) {
	record, ok := ac.findReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report retrieved successfully",
		"data":    record,
	})
}

// GetPatientReports godoc
// @Summary Get a patient's report history
// @Description Retrieve stored reports for a patient, newest first
// @Tags assessments
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Param limit query int false "Maximum number of reports (default 10)"
// @Success 200 {object} map[string]interface{} "Reports retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve reports"
// @Router /assessments/patient/{patient_id} [get]
func (ac *AssessmentController) GetPatientReports(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit parameter",
				"error":   "Limit must be a positive integer",
			})
			return
		}
	}

	reports, err := ac.reportRepo.FindByPatientID(uint(patientID), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reports",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reports retrieved successfully",
		"data":    reports,
	})
}

// GetPatientReportsByDateRange godoc
// @Summary Get a patient's reports by date range
// @Description Retrieve stored reports for a patient created within a date range
// @Tags assessments
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Reports retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve reports"
// @Router /assessments/patient/{patient_id}/date-range [get]
func (ac *AssessmentController) GetPatientReportsByDateRange(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid start date format",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid end date format",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	endDate = endDate.Add(24 * time.Hour).Add(-time.Second)

	reports, err := ac.reportRepo.FindByPatientIDAndDateRange(uint(patientID), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reports",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reports retrieved successfully",
		"data":    reports,
	})
}

// GetLatestPatientReport godoc
// @Summary Get a patient's most recent report
// @Description Retrieve the latest report for a patient, served from cache when available
// @Tags assessments
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "No reports found"
// @Router /assessments/patient/{patient_id}/latest [get]
func (ac *AssessmentController) GetLatestPatientReport(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if ac.redisClient != nil {
		cached, found, err := ac.redisClient.GetLatestReport(c.Request.Context(), uint(patientID))
		if err != nil {
			log.Printf("Failed to read latest report cache for patient %d: %v", patientID, err)
		} else if found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Report retrieved successfully",
				"source":  "cache",
				"data":    cached,
			})
			return
		}
	}

	reports, err := ac.reportRepo.FindByPatientID(uint(patientID), 1)
	if err != nil || len(reports) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No reports found for this patient",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report retrieved successfully",
		"source":  "database",
		"data":    reports[0],
	})
}

// DeleteReport godoc
// @Summary Delete a report
// @Description Delete a stored assessment report by ID
// @Tags assessments
// @Produce json
// @Param id path int true "Report row ID"
// @Success 200 {object} map[string]interface{} "Report deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete report"
// @Router /assessments/{id} [delete]
func (ac *AssessmentController) DeleteReport(c *gin.Context) {
	record, ok := ac.findReport(c)
	if !ok {
		return
	}

	if err := ac.reportRepo.Delete(record.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete report",
			"error":   err.Error(),
		})
		return
	}

	if ac.redisClient != nil {
		if err := ac.redisClient.DeleteLatestReport(c.Request.Context(), record.PatientID); err != nil {
			log.Printf("Failed to drop latest report cache for patient %d: %v", record.PatientID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report deleted successfully",
	})
}

// ExportReportText godoc
// @Summary Export report as plain text
// @Description Download a stored report as a sectioned text file
// @Tags assessments
// @Produce plain
// @Param id path int true "Report row ID"
// @Success 200 {string} string "Text report"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /assessments/{id}/export/text [get]
func (ac *AssessmentController) ExportReportText(c *gin.Context) {
	record, ok := ac.findReport(c)
	if !ok {
		return
	}

	report := recordToReport(record)
	filename := fmt.Sprintf("%s.txt", record.ReportID)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", export.Text(report))
}

// ExportReportPDF godoc
// @Summary Export report as PDF
// @Description Download a stored report as a paginated PDF document
// @Tags assessments
// @Produce octet-stream
// @Param id path int true "Report row ID"
// @Success 200 {string} binary "PDF report"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 500 {object} map[string]interface{} "Failed to render PDF"
// @Router /assessments/{id}/export/pdf [get]
func (ac *AssessmentController) ExportReportPDF(c *gin.Context) {
	record, ok := ac.findReport(c)
	if !ok {
		return
	}

	report := recordToReport(record)
	data, err := export.PDF(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to render PDF",
			"error":   err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("%s.pdf", record.ReportID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (ac *AssessmentController) resolvePatient(patientID uint) (*models.Patient, error) {
	if patientID > 0 {
		return ac.patientRepo.FindByID(patientID)
	}
	return ac.patientRepo.FindLatest()
}

func (ac *AssessmentController) findReport(c *gin.Context) (*models.AssessmentReport, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid report ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	record, err := ac.reportRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Report not found",
		})
		return nil, false
	}

	return record, true
}

// reportToRecord flattens an immutable engine report into its persisted row.
func reportToRecord(patientID uint, report *assessment.Report) *models.AssessmentReport {
	v := report.Input.Vitals
	return &models.AssessmentReport{
		PatientID:   patientID,
		ReportID:    report.ReportID,
		GeneratedAt: report.GeneratedAt,
		RiskScore:   report.Risk.Score,
		UrgencyTier: string(report.Tier),

		Symptoms:           strings.Join(report.Input.Symptoms, ", "),
		RiskFactors:        strings.Join(report.Input.RiskFactors, ", "),
		SystolicBP:         v.SystolicBP,
		DiastolicBP:        v.DiastolicBP,
		HeartRate:          v.HeartRate,
		SpO2:               v.SpO2,
		Temperature:        v.Temperature,
		AdditionalSymptoms: report.Input.AdditionalSymptoms,
		FamilyHistory:      report.Input.FamilyHistory,

		PatientSummary:       report.PatientSummary,
		RiskBreakdown:        report.RiskBreakdown,
		VitalsInterpretation: report.VitalsInterpretation,
		UrgencyStatement:     report.UrgencyStatement,
		SuggestedDiagnostics: report.SuggestedDiagnostics,
		CandidateConditions:  report.CandidateConditions,
		DoctorScript:         report.DoctorScript,
		ClinicianSummary:     report.ClinicianSummary,
		Disclaimer:           report.Disclaimer,
	}
}

// recordToReport rebuilds the narrative sections needed by the export
// adapters from a stored row.
func recordToReport(record *models.AssessmentReport) *assessment.Report {
	return &assessment.Report{
		ReportID:    record.ReportID,
		GeneratedAt: record.GeneratedAt,
		Risk:        assessment.RiskScore{Score: record.RiskScore},
		Tier:        assessment.UrgencyTier(record.UrgencyTier),

		PatientSummary:       record.PatientSummary,
		RiskBreakdown:        record.RiskBreakdown,
		VitalsInterpretation: record.VitalsInterpretation,
		UrgencyStatement:     record.UrgencyStatement,
		SuggestedDiagnostics: record.SuggestedDiagnostics,
		CandidateConditions:  record.CandidateConditions,
		DoctorScript:         record.DoctorScript,
		ClinicianSummary:     record.ClinicianSummary,
		Disclaimer:           record.Disclaimer,
	}
}
