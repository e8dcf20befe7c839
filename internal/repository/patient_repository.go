package repository

import (
	"cardiowell/internal/models"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(patient *models.Patient) error
	FindByID(id uint) (*models.Patient, error)
	FindLatest() (*models.Patient, error)
	FindAll(limit int) ([]models.Patient, error)
	Update(patient *models.Patient) error
	Patch(id uint, data map[string]interface{}) error
	Delete(id uint) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db}
}

func (r *patientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *patientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindLatest returns the most recently created patient record. The intake
// flow loads this as the active session profile.
func (r *patientRepository) FindLatest() (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Order("created_at DESC").First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(limit int) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("created_at DESC").Limit(limit).Find(&patients).Error
	return patients, err
}

func (r *patientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

func (r *patientRepository) Patch(id uint, data map[string]interface{}) error {
	var patient models.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		return err
	}
	return r.db.Model(&patient).Updates(data).Error
}

func (r *patientRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Patient{}, id).Error
}
