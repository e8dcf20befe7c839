package assessment

import (
	"fmt"
	"strings"
	"time"

	"cardiowell/internal/models"

	"github.com/google/uuid"
)

// Disclaimer is appended to every report, verbatim and unconditional.
const Disclaimer = "DISCLAIMER: This report is generated by an automated rule-based screening tool " +
	"and does not constitute a medical diagnosis. It is intended for informational purposes only. " +
	"Always consult a qualified healthcare professional regarding symptoms, treatment, and any " +
	"decisions about your health. If you are experiencing a medical emergency, call your local " +
	"emergency number immediately."

// conditionCatalog maps symptoms to candidate conditions worth discussing with
// a clinician. Symptoms without an entry contribute nothing.
var conditionCatalog = map[string][]string{
	"Chest Pain":          {"Coronary Artery Disease", "Aortic Stenosis", "Hypertrophic Cardiomyopathy"},
	"Shortness of Breath": {"Mitral Valve Disease", "Heart Failure", "Pulmonary Hypertension"},
	"Palpitations":        {"Atrial Fibrillation", "Supraventricular Tachycardia", "Thyroid-related Arrhythmia"},
	"Syncope (Fainting)":  {"Aortic Stenosis", "Bradyarrhythmia", "Orthostatic Hypotension"},
}

var baseDiagnostics = []string{
	"12-lead Electrocardiogram (ECG)",
	"Echocardiogram",
	"Lipid panel",
	"Fasting blood glucose and HbA1c",
	"Complete blood count (CBC)",
	"Chest X-ray",
	"Thyroid function test (TSH)",
}

// Report is the immutable structured output of one synthesis. Re-generation
// always produces a new Report with a fresh ID and timestamp.
type Report struct {
	ReportID    string                 `json:"report_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Patient     models.Patient         `json:"patient"`
	Input       models.AssessmentInput `json:"input"`
	Risk        RiskScore              `json:"risk"`
	Tier        UrgencyTier            `json:"urgency_tier"`

	PatientSummary       string `json:"patient_summary"`
	RiskBreakdown        string `json:"risk_breakdown"`
	VitalsInterpretation string `json:"vitals_interpretation"`
	UrgencyStatement     string `json:"urgency_statement"`
	SuggestedDiagnostics string `json:"suggested_diagnostics"`
	CandidateConditions  string `json:"candidate_conditions"`
	DoctorScript         string `json:"doctor_script"`
	ClinicianSummary     string `json:"clinician_summary"`
	Disclaimer           string `json:"disclaimer"`
}

// Synthesize builds the full report from a resolved patient profile, the
// assessment inputs, and the computed score. Every section is independently
// computable from the arguments; identical inputs yield identical narrative
// text apart from the report ID and timestamp.
func Synthesize(patient *models.Patient, input *models.AssessmentInput, risk *RiskScore) (*Report, error) {
	if patient == nil {
		return nil, ErrMissingProfile
	}
	if input == nil {
		input = &models.AssessmentInput{}
	}
	if risk == nil {
		risk = &RiskScore{}
	}

	tier := Classify(risk.Score)
	now := time.Now().UTC()

	return &Report{
		ReportID:    newReportID(now),
		GeneratedAt: now,
		Patient:     *patient,
		Input:       *input,
		Risk:        *risk,
		Tier:        tier,

		PatientSummary:       patientSummary(patient),
		RiskBreakdown:        riskBreakdown(risk),
		VitalsInterpretation: vitalsInterpretation(input.Vitals),
		UrgencyStatement:     urgencyStatement(tier),
		SuggestedDiagnostics: suggestedDiagnostics(risk.Score, tier),
		CandidateConditions:  candidateConditions(input.Symptoms),
		DoctorScript:         doctorScript(input, risk.Score),
		ClinicianSummary:     clinicianSummary(patient, input, risk, tier),
		Disclaimer:           Disclaimer,
	}, nil
}

// newReportID builds a display-only identifier that sorts by generation time.
func newReportID(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("RPT-%s-%s", t.Format("20060102T150405Z"), suffix)
}

// AgeBracket classifies an age in years for the patient summary.
func AgeBracket(age int) string {
	switch {
	case age < 18:
		return "Pediatric"
	case age < 65:
		return "Adult"
	default:
		return "Senior"
	}
}

// BMICategory classifies a BMI value against the standard WHO cutoffs.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func patientSummary(p *models.Patient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient: %s\n", p.FullName())
	fmt.Fprintf(&b, "Age: %d (%s)\n", p.Age, AgeBracket(p.Age))
	if p.Gender != "" {
		fmt.Fprintf(&b, "Gender: %s\n", p.Gender)
	}
	if p.Height != nil && p.Weight != nil && p.BMI != nil {
		fmt.Fprintf(&b, "Physical profile: %d cm, %d kg, BMI %.1f (%s)\n",
			*p.Height, *p.Weight, *p.BMI, BMICategory(*p.BMI))
	}
	if p.BloodGroup != "" {
		fmt.Fprintf(&b, "Blood type: %s\n", p.BloodGroup)
	}
	if p.Email != "" || p.Phone != "" {
		fmt.Fprintf(&b, "Contact: %s %s\n", p.Email, p.Phone)
	}
	if p.InsuranceProvider != "" {
		fmt.Fprintf(&b, "Insurance: %s (policy %s)\n", p.InsuranceProvider, p.PolicyNumber)
	}
	if p.EmergencyContact != "" {
		fmt.Fprintf(&b, "Emergency contact: %s %s\n", p.EmergencyContact, p.EmergencyPhone)
	}
	return strings.TrimRight(b.String(), "\n")
}

func riskBreakdown(risk *RiskScore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overall risk score: %d out of %d\n", risk.Score, MaxScore)
	if len(risk.Factors) == 0 {
		b.WriteString("No contributing risk factors identified.")
		return b.String()
	}
	b.WriteString("Contributing factors:\n")
	for _, f := range risk.Factors {
		fmt.Fprintf(&b, "  - %s (+%d)\n", f.Label, f.Points)
	}
	return strings.TrimRight(b.String(), "\n")
}

func vitalsInterpretation(v models.VitalSigns) string {
	var b strings.Builder

	switch {
	case v.SystolicBP == 0 && v.DiastolicBP == 0:
		b.WriteString("Blood pressure: Not recorded\n")
	case v.SystolicBP > 140 || v.DiastolicBP > 90:
		fmt.Fprintf(&b, "Blood pressure: %.0f/%.0f mmHg (ELEVATED)\n", v.SystolicBP, v.DiastolicBP)
	default:
		fmt.Fprintf(&b, "Blood pressure: %.0f/%.0f mmHg (Normal range)\n", v.SystolicBP, v.DiastolicBP)
	}

	switch {
	case v.HeartRate == 0:
		b.WriteString("Heart rate: Not recorded\n")
	case v.HeartRate > 100:
		fmt.Fprintf(&b, "Heart rate: %.0f BPM (Tachycardia)\n", v.HeartRate)
	case v.HeartRate < 60:
		fmt.Fprintf(&b, "Heart rate: %.0f BPM (Bradycardia)\n", v.HeartRate)
	default:
		fmt.Fprintf(&b, "Heart rate: %.0f BPM (Normal)\n", v.HeartRate)
	}

	switch {
	case v.SpO2 == 0:
		b.WriteString("Oxygen saturation: Not recorded\n")
	case v.SpO2 < 95:
		fmt.Fprintf(&b, "Oxygen saturation: %.0f%% (LOW)\n", v.SpO2)
	default:
		fmt.Fprintf(&b, "Oxygen saturation: %.0f%% (Normal)\n", v.SpO2)
	}

	switch {
	case v.Temperature == 0:
		b.WriteString("Temperature: Not recorded")
	case v.Temperature > 100.4:
		fmt.Fprintf(&b, "Temperature: %.1f F (ELEVATED)", v.Temperature)
	default:
		fmt.Fprintf(&b, "Temperature: %.1f F (Normal range)", v.Temperature)
	}

	return b.String()
}

func urgencyStatement(tier UrgencyTier) string {
	return fmt.Sprintf("Urgency level: %s\n%s\n%s", tier, tier.Reasoning(), tier.Action())
}

func suggestedDiagnostics(score int, tier UrgencyTier) string {
	tests := make([]string, len(baseDiagnostics))
	copy(tests, baseDiagnostics)
	if tier == TierUrgent {
		tests = append(tests, "Cardiac enzyme panel (Troponin)")
	}
	if score >= 5 {
		tests = append(tests, "24-hour Holter monitoring")
	}

	var b strings.Builder
	b.WriteString("Suggested diagnostic tests:\n")
	for _, t := range tests {
		fmt.Fprintf(&b, "  - %s\n", t)
	}
	return strings.TrimRight(b.String(), "\n")
}

func candidateConditions(symptoms []string) string {
	var conditions []string
	seen := make(map[string]bool)
	// Walk the symptom catalog in its fixed order so the rendered list is
	// stable across regenerations.
	for _, entry := range highRiskSymptoms {
		if !containsLabel(symptoms, entry.Label) {
			continue
		}
		for _, c := range conditionCatalog[entry.Label] {
			if !seen[c] {
				seen[c] = true
				conditions = append(conditions, c)
			}
		}
	}
	if len(conditions) == 0 {
		return "No specific cardiac conditions indicated by the reported symptoms."
	}

	var b strings.Builder
	b.WriteString("Conditions to discuss with your doctor:\n")
	for _, c := range conditions {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	return strings.TrimRight(b.String(), "\n")
}

func doctorScript(input *models.AssessmentInput, score int) string {
	var b strings.Builder
	b.WriteString("What to tell your doctor:\n")
	if len(input.Symptoms) > 0 {
		fmt.Fprintf(&b, "\"I have been experiencing: %s.\"\n", strings.Join(input.Symptoms, ", "))
	}
	if len(input.RiskFactors) > 0 {
		fmt.Fprintf(&b, "\"My known risk factors are: %s.\"\n", strings.Join(input.RiskFactors, ", "))
	}
	if input.AdditionalSymptoms != "" {
		fmt.Fprintf(&b, "\"I have also noticed: %s.\"\n", input.AdditionalSymptoms)
	}
	if input.FamilyHistory != "" {
		fmt.Fprintf(&b, "\"My family history includes: %s.\"\n", input.FamilyHistory)
	}
	fmt.Fprintf(&b, "\"A cardiac screening tool scored my risk at %d out of %d.\"", score, MaxScore)
	return b.String()
}

func clinicianSummary(p *models.Patient, input *models.AssessmentInput, risk *RiskScore, tier UrgencyTier) string {
	var b strings.Builder
	b.WriteString("CLINICIAN SUMMARY\n")
	fmt.Fprintf(&b, "Patient: %s | Age: %d | Gender: %s", p.FullName(), p.Age, p.Gender)
	if p.BMI != nil {
		fmt.Fprintf(&b, " | BMI: %.1f", *p.BMI)
	}
	b.WriteString("\n")
	v := input.Vitals
	fmt.Fprintf(&b, "Vitals: BP %.0f/%.0f mmHg, HR %.0f BPM, SpO2 %.0f%%, Temp %.1f F\n",
		v.SystolicBP, v.DiastolicBP, v.HeartRate, v.SpO2, v.Temperature)
	fmt.Fprintf(&b, "Reported symptoms: %s\n", orNone(strings.Join(input.Symptoms, ", ")))
	fmt.Fprintf(&b, "Risk factors: %s\n", orNone(strings.Join(input.RiskFactors, ", ")))
	if p.Medications != "" {
		fmt.Fprintf(&b, "Current medications: %s\n", p.Medications)
	}
	if p.Allergies != "" {
		fmt.Fprintf(&b, "Allergies: %s\n", p.Allergies)
	}
	fmt.Fprintf(&b, "Rule-based risk score: %d/%d | Urgency: %s", risk.Score, MaxScore, tier)
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "None reported"
	}
	return s
}
