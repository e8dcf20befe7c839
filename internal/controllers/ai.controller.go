package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cardiowell/internal/models"

	"github.com/gin-gonic/gin"
)

const maxPDFSize = 10 << 20 // 10MB upload cap

// GeminiClient is the subset of the Gemini client the AI proxies depend on.
type GeminiClient interface {
	HealthSearch(ctx context.Context, query string) (string, error)
	AnalyzePDF(ctx context.Context, pdfData []byte) (string, error)
}

type AIController struct {
	client GeminiClient
}

func NewAIController(client GeminiClient) *AIController {
	return &AIController{client: client}
}

// HealthSearch godoc
// @Summary AI health search
// @Description Proxy a free-text health question to the generative AI service
// @Tags ai
// @Accept json
// @Produce json
// @Param query body models.ChatRequest true "Health question"
// @Success 200 {object} models.ChatResponse "AI response"
// @Failure 400 {object} models.ChatResponse "Query is required"
// @Failure 502 {object} models.ChatResponse "AI service unavailable"
// @Router /ai/search [post]
func (ai *AIController) HealthSearch(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{
			Error:    "Query is required",
			Response: "",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	answer, err := ai.client.HealthSearch(ctx, req.Query)
	if err != nil {
		log.Printf("AI health search failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ChatResponse{
			Error:    "Failed to get AI response",
			Response: "Sorry, I was unable to process your health question at the moment. Please try again later or contact our support team for assistance.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response: answer,
		Query:    req.Query,
	})
}

// AnalyzePDF godoc
// @Summary AI medical-report analysis
// @Description Upload a medical report PDF and receive an AI-generated summary
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "Medical report PDF (max 10MB)"
// @Success 200 {object} map[string]interface{} "AI report"
// @Failure 400 {object} map[string]interface{} "No file uploaded or not a PDF"
// @Failure 502 {object} map[string]interface{} "AI service unavailable"
// @Router /ai/analyze-pdf [post]
func (ai *AIController) AnalyzePDF(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
			"error":   "Attach a PDF file under the 'pdf' form field",
		})
		return
	}

	if fileHeader.Size > maxPDFSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File too large",
			"error":   "PDF uploads are limited to 10MB",
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Only PDF files are allowed",
			"error":   "Upload a file with content type application/pdf",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(io.LimitReader(file, maxPDFSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	summary, err := ai.client.AnalyzePDF(ctx, pdfData)
	if err != nil {
		log.Printf("AI PDF analysis failed for %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Error analyzing PDF",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"report": summary,
	})
}
