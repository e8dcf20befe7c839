package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	FirstName   string `json:"first_name" example:"Jane"`
	LastName    string `json:"last_name" example:"Doe"`
	Email       string `json:"email" example:"jane.doe@example.com"`
	Phone       string `json:"phone" example:"+1 (555) 123-4567"`
	DateOfBirth string `json:"date_of_birth" example:"1985-04-12"`
	Age         int    `json:"age" example:"38"`
	Gender      string `json:"gender" example:"female"`

	Height *int     `json:"height" example:"170"`
	Weight *int     `json:"weight" example:"70"`
	BMI    *float64 `json:"bmi" example:"24.2"`

	BloodGroup     string `json:"blood_group" example:"O+"`
	Allergies      string `gorm:"type:text" json:"allergies" example:"Penicillin"`
	Medications    string `gorm:"type:text" json:"medications" example:"Atorvastatin 10mg daily"`
	MedicalHistory string `gorm:"type:text" json:"medical_history" example:"Appendectomy 2010"`

	InsuranceProvider string `json:"insurance_provider" example:"Acme Health"`
	PolicyNumber      string `json:"policy_number" example:"POL-123456"`
	EmergencyContact  string `json:"emergency_contact" example:"John Doe"`
	EmergencyPhone    string `json:"emergency_phone" example:"+1 (555) 987-6543"`
}

func (p *Patient) TableName() string {
	return "patients"
}

// RecalculateBMI derives BMI from weight (kg) and height (cm), rounded to one
// decimal. BMI is never set independently; callers must invoke this whenever
// height or weight changes.
func (p *Patient) RecalculateBMI() {
	if p.Weight == nil || p.Height == nil || *p.Height <= 0 {
		return
	}
	heightInMeters := float64(*p.Height) / 100.0
	bmi := float64(*p.Weight) / (heightInMeters * heightInMeters)
	bmi = math.Round(bmi*10) / 10
	p.BMI = &bmi
}

// FullName joins the name fields for display in reports and exports.
func (p *Patient) FullName() string {
	switch {
	case p.FirstName == "" && p.LastName == "":
		return "Unknown Patient"
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
