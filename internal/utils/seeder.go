package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"strings"

	"cardiowell/internal/assessment"
	"cardiowell/internal/models"
	"cardiowell/internal/repository"

	"gorm.io/gorm"
)

const DefaultNumPatients = 10

var sampleSymptoms = [][]string{
	{},
	{"Fatigue"},
	{"Chest Pain"},
	{"Shortness of Breath", "Palpitations"},
	{"Chest Pain", "Syncope (Fainting)"},
}

var sampleRiskFactors = [][]string{
	{},
	{"Stress"},
	{"Hypertension"},
	{"Diabetes", "Smoking"},
	{"Family History of Heart Disease", "Hypertension", "Smoking"},
}

var firstNames = []string{"Ava", "Liam", "Maya", "Noah", "Priya", "Diego", "Hana", "Omar", "Lena", "Marcus"}
var lastNames = []string{"Reyes", "Okafor", "Tanaka", "Novak", "Singh", "Muller", "Costa", "Haddad", "Ivanov", "Park"}
var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// SeedPatients inserts demo patients and, optionally, one generated
// assessment report per patient so the history endpoints have data.
func SeedPatients(db *gorm.DB, numPatients int, withReports bool) error {
	patientRepo := repository.NewPatientRepository(db)
	reportRepo := repository.NewReportRepository(db)

	for i := 0; i < numPatients; i++ {
		height := 150 + mathrand.Intn(45)
		weight := 50 + mathrand.Intn(55)
		age := 20 + mathrand.Intn(60)

		patient := &models.Patient{
			FirstName:         firstNames[i%len(firstNames)],
			LastName:          lastNames[i%len(lastNames)],
			Email:             fmt.Sprintf("patient%d@example.com", i+1),
			Phone:             fmt.Sprintf("+1 (555) 010-%04d", i+1),
			Age:               age,
			Gender:            []string{"female", "male", "other"}[i%3],
			Height:            &height,
			Weight:            &weight,
			BloodGroup:        bloodGroups[i%len(bloodGroups)],
			Allergies:         "None known",
			Medications:       "None",
			MedicalHistory:    "No significant history",
			InsuranceProvider: "Acme Health",
			PolicyNumber:      fmt.Sprintf("POL-%06d", 100000+i),
			EmergencyContact:  "Family Member",
			EmergencyPhone:    fmt.Sprintf("+1 (555) 020-%04d", i+1),
		}
		patient.RecalculateBMI()

		if err := patientRepo.Create(patient); err != nil {
			return fmt.Errorf("failed to seed patient %d: %w", i+1, err)
		}

		if !withReports {
			continue
		}

		input := &models.AssessmentInput{
			Symptoms:    sampleSymptoms[i%len(sampleSymptoms)],
			RiskFactors: sampleRiskFactors[i%len(sampleRiskFactors)],
			Vitals: models.VitalSigns{
				SystolicBP:  float64(105 + mathrand.Intn(50)),
				DiastolicBP: float64(65 + mathrand.Intn(35)),
				HeartRate:   float64(55 + mathrand.Intn(60)),
				SpO2:        float64(92 + mathrand.Intn(8)),
				Temperature: 97.5 + mathrand.Float64()*2,
			},
		}

		risk, err := assessment.ComputeRiskScore(patient, input)
		if err != nil {
			return fmt.Errorf("failed to score seeded patient %d: %w", patient.ID, err)
		}
		report, err := assessment.Synthesize(patient, input, risk)
		if err != nil {
			return fmt.Errorf("failed to synthesize report for patient %d: %w", patient.ID, err)
		}

		record := &models.AssessmentReport{
			PatientID:            patient.ID,
			ReportID:             report.ReportID,
			GeneratedAt:          report.GeneratedAt,
			RiskScore:            report.Risk.Score,
			UrgencyTier:          string(report.Tier),
			Symptoms:             strings.Join(input.Symptoms, ", "),
			RiskFactors:          strings.Join(input.RiskFactors, ", "),
			SystolicBP:           input.Vitals.SystolicBP,
			DiastolicBP:          input.Vitals.DiastolicBP,
			HeartRate:            input.Vitals.HeartRate,
			SpO2:                 input.Vitals.SpO2,
			Temperature:          input.Vitals.Temperature,
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

		if err := reportRepo.Save(record); err != nil {
			return fmt.Errorf("failed to save seeded report for patient %d: %w", patient.ID, err)
		}

		log.Printf("Seeded patient %d (%s %s) with report %s [score %d, %s]",
			patient.ID, patient.FirstName, patient.LastName, report.ReportID, report.Risk.Score, report.Tier)
	}

	return nil
}
