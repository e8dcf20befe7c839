package controllers_test

import (
	"context"
	"time"

	"cardiowell/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindLatest() (*models.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(limit int) ([]models.Patient, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Patch(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Save(report *models.AssessmentReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(id uint) (*models.AssessmentReport, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentReport), args.Error(1)
}

func (m *MockReportRepository) FindByReportID(reportID string) (*models.AssessmentReport, error) {
	args := m.Called(reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentReport), args.Error(1)
}

func (m *MockReportRepository) FindByPatientID(patientID uint, limit int) ([]models.AssessmentReport, error) {
	args := m.Called(patientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssessmentReport), args.Error(1)
}

func (m *MockReportRepository) FindByPatientIDAndDateRange(patientID uint, startDate, endDate time.Time) ([]models.AssessmentReport, error) {
	args := m.Called(patientID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssessmentReport), args.Error(1)
}

func (m *MockReportRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockGeminiClient struct {
	mock.Mock
}

func (m *MockGeminiClient) HealthSearch(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockGeminiClient) AnalyzePDF(ctx context.Context, pdfData []byte) (string, error) {
	args := m.Called(ctx, pdfData)
	return args.String(0), args.Error(1)
}
