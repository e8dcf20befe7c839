package repository

import (
	"time"

	"cardiowell/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Save(report *models.AssessmentReport) error
	FindByID(id uint) (*models.AssessmentReport, error)
	FindByReportID(reportID string) (*models.AssessmentReport, error)
	FindByPatientID(patientID uint, limit int) ([]models.AssessmentReport, error)
	FindByPatientIDAndDateRange(patientID uint, startDate, endDate time.Time) ([]models.AssessmentReport, error)
	Delete(id uint) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

func (r *reportRepository) Save(report *models.AssessmentReport) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id uint) (*models.AssessmentReport, error) {
	var report models.AssessmentReport
	err := r.db.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByReportID(reportID string) (*models.AssessmentReport, error) {
	var report models.AssessmentReport
	err := r.db.Where("report_id = ?", reportID).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByPatientID(patientID uint, limit int) ([]models.AssessmentReport, error) {
	var reports []models.AssessmentReport
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) FindByPatientIDAndDateRange(patientID uint, startDate, endDate time.Time) ([]models.AssessmentReport, error) {
	var reports []models.AssessmentReport
	err := r.db.Where("patient_id = ? AND created_at BETWEEN ? AND ?", patientID, startDate, endDate).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) Delete(id uint) error {
	return r.db.Delete(&models.AssessmentReport{}, id).Error
}
