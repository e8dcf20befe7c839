package models

import (
	"time"

	"gorm.io/gorm"
)

// VitalSigns carries the live readings entered for one assessment. All fields
// default to zero when the form leaves them blank; a zero heart rate or SpO2
// is treated as "not recorded" rather than an abnormal reading.
type VitalSigns struct {
	SystolicBP  float64 `json:"systolic_bp" binding:"min=0" example:"120"`
	DiastolicBP float64 `json:"diastolic_bp" binding:"min=0" example:"80"`
	HeartRate   float64 `json:"heart_rate" binding:"min=0" example:"72"`
	SpO2        float64 `json:"spo2" binding:"min=0,max=100" example:"98"`
	Temperature float64 `json:"temperature" binding:"min=0" example:"98.6"`
}

// AssessmentInput is the transient, per-report clinical snapshot. It is
// constructed fresh for each report generation and never persisted as-is.
type AssessmentInput struct {
	Symptoms           []string   `json:"symptoms" example:"Chest Pain,Fatigue"`
	RiskFactors        []string   `json:"risk_factors" example:"Diabetes,Smoking"`
	Vitals             VitalSigns `json:"vitals"`
	AdditionalSymptoms string     `json:"additional_symptoms" example:"Occasional dizziness after exercise"`
	FamilyHistory      string     `json:"family_history" example:"Father had a heart attack at 58"`
}

// AssessmentRequest is the payload for generating a report. PatientID is
// optional; when zero the most recently created patient record is used.
type AssessmentRequest struct {
	PatientID uint `json:"patient_id" example:"1"`
	AssessmentInput
}

// AssessmentReport is the persisted snapshot of one report synthesis. Rows are
// immutable after creation; re-generation always inserts a new row with a new
// report ID and timestamp.
type AssessmentReport struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	PatientID uint    `gorm:"index" json:"patient_id" example:"1"`
	Patient   Patient `gorm:"foreignKey:PatientID" json:"-"`

	ReportID    string    `gorm:"uniqueIndex" json:"report_id" example:"RPT-20230101T120000Z-1A2B3C"`
	GeneratedAt time.Time `json:"generated_at" example:"2023-01-01T12:00:00Z"`

	RiskScore   int    `json:"risk_score" example:"6"`
	UrgencyTier string `json:"urgency_tier" example:"MODERATE"`

	Symptoms           string  `gorm:"type:text" json:"symptoms" example:"Chest Pain, Fatigue"`
	RiskFactors        string  `gorm:"type:text" json:"risk_factors" example:"Diabetes, Smoking"`
	SystolicBP         float64 `json:"systolic_bp" example:"120"`
	DiastolicBP        float64 `json:"diastolic_bp" example:"80"`
	HeartRate          float64 `json:"heart_rate" example:"72"`
	SpO2               float64 `json:"spo2" example:"98"`
	Temperature        float64 `json:"temperature" example:"98.6"`
	AdditionalSymptoms string  `gorm:"type:text" json:"additional_symptoms"`
	FamilyHistory      string  `gorm:"type:text" json:"family_history"`

	PatientSummary       string `gorm:"type:text" json:"patient_summary"`
	RiskBreakdown        string `gorm:"type:text" json:"risk_breakdown"`
	VitalsInterpretation string `gorm:"type:text" json:"vitals_interpretation"`
	UrgencyStatement     string `gorm:"type:text" json:"urgency_statement"`
	SuggestedDiagnostics string `gorm:"type:text" json:"suggested_diagnostics"`
	CandidateConditions  string `gorm:"type:text" json:"candidate_conditions"`
	DoctorScript         string `gorm:"type:text" json:"doctor_script"`
	ClinicianSummary     string `gorm:"type:text" json:"clinician_summary"`
	Disclaimer           string `gorm:"type:text" json:"disclaimer"`
}

func (r *AssessmentReport) TableName() string {
	return "assessment_reports"
}

// ChatRequest is the payload for the AI health search proxy.
type ChatRequest struct {
	Query string `json:"query" binding:"required" example:"What does an SpO2 of 94 mean?"`
}

// ChatResponse mirrors the upstream proxy contract: a single string answer
// echoed alongside the original query.
type ChatResponse struct {
	Response string `json:"response"`
	Query    string `json:"query,omitempty"`
	Error    string `json:"error,omitempty"`
}
