package assessment

import (
	"errors"
	"fmt"
	"strings"

	"cardiowell/internal/models"
)

// MaxScore caps the additive risk score.
const MaxScore = 10

var ErrMissingProfile = errors.New("patient profile is required before assessment")

// Factor is one itemized contribution to the risk score, kept for the
// auditable breakdown in the report.
type Factor struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// RiskScore is the bounded score plus the ordered list of contributing
// factors that produced it.
type RiskScore struct {
	Score   int      `json:"score"`
	Factors []Factor `json:"factors"`
}

// catalogEntry pairs a clinical label with its point value. The catalogs are
// declarative lookup tables so the scoring rules stay auditable; evaluation
// order is the slice order.
type catalogEntry struct {
	Label  string
	Points int
}

var highRiskSymptoms = []catalogEntry{
	{"Chest Pain", 2},
	{"Shortness of Breath", 2},
	{"Palpitations", 2},
	{"Syncope (Fainting)", 2},
}

var criticalRiskFactors = []catalogEntry{
	{"Diabetes", 1},
	{"Hypertension", 1},
	{"Family History of Heart Disease", 1},
	{"Smoking", 1},
}

func containsLabel(set []string, label string) bool {
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), label) {
			return true
		}
	}
	return false
}

// ComputeRiskScore maps a patient profile plus live assessment inputs to a
// bounded risk score with its itemized breakdown. It is deterministic and
// side-effect free. Rules accumulate in a fixed evaluation order:
// age, BMI, high-risk symptoms, critical risk factors, blood pressure,
// heart rate, SpO2. The sum is clamped to MaxScore.
//
// A zero heart rate or SpO2 means the vital was never entered and contributes
// nothing, rather than flagging a spurious bradycardia or hypoxia.
func ComputeRiskScore(patient *models.Patient, input *models.AssessmentInput) (*RiskScore, error) {
	if patient == nil {
		return nil, ErrMissingProfile
	}
	if input == nil {
		input = &models.AssessmentInput{}
	}

	var factors []Factor
	add := func(label string, points int) {
		if points > 0 {
			factors = append(factors, Factor{Label: label, Points: points})
		}
	}

	switch {
	case patient.Age > 65:
		add("Age over 65", 2)
	case patient.Age > 50:
		add("Age over 50", 1)
	}

	if patient.BMI != nil {
		switch {
		case *patient.BMI > 30:
			add("BMI over 30 (Obese)", 2)
		case *patient.BMI > 25:
			add("BMI over 25 (Overweight)", 1)
		}
	}

	for _, entry := range highRiskSymptoms {
		if containsLabel(input.Symptoms, entry.Label) {
			add(fmt.Sprintf("High-risk symptom: %s", entry.Label), entry.Points)
		}
	}

	for _, entry := range criticalRiskFactors {
		if containsLabel(input.RiskFactors, entry.Label) {
			add(fmt.Sprintf("Critical risk factor: %s", entry.Label), entry.Points)
		}
	}

	v := input.Vitals
	if v.SystolicBP > 140 || v.DiastolicBP > 90 {
		add("Elevated blood pressure", 2)
	}
	if v.HeartRate > 0 && (v.HeartRate > 100 || v.HeartRate < 60) {
		add("Abnormal heart rate", 1)
	}
	if v.SpO2 > 0 && v.SpO2 < 95 {
		add("Low oxygen saturation", 3)
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}
	if total > MaxScore {
		total = MaxScore
	}

	return &RiskScore{Score: total, Factors: factors}, nil
}
