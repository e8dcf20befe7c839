package export_test

import (
	"strings"
	"testing"
	"time"

	"cardiowell/internal/assessment"
	"cardiowell/internal/export"

	"github.com/stretchr/testify/assert"
)

func sampleReport() *assessment.Report {
	return &assessment.Report{
		ReportID:             "RPT-20230101T120000Z-1A2B3C",
		GeneratedAt:          time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Risk:                 assessment.RiskScore{Score: 5},
		Tier:                 assessment.TierModerate,
		PatientSummary:       "Patient: Jane Doe\nAge: 58 (Adult)",
		RiskBreakdown:        "Overall risk score: 5 out of 10",
		VitalsInterpretation: "Blood pressure: 145/92 mmHg (ELEVATED)",
		UrgencyStatement:     "Urgency level: MODERATE",
		SuggestedDiagnostics: "Suggested diagnostic tests:\n  - Echocardiogram",
		CandidateConditions:  "Conditions to discuss with your doctor:\n  - Heart Failure",
		DoctorScript:         "What to tell your doctor:",
		ClinicianSummary:     "CLINICIAN SUMMARY",
		Disclaimer:           assessment.Disclaimer,
	}
}

func TestTextExportContainsAllSectionsInOrder(t *testing.T) {
	out := string(export.Text(sampleReport()))

	assert.Contains(t, out, "CardioWell - Cardiac Risk Assessment Report")
	assert.Contains(t, out, "Report ID: RPT-20230101T120000Z-1A2B3C")
	assert.Contains(t, out, "Generated: 2023-01-01 12:00:00 UTC")

	titles := []string{
		"PATIENT SUMMARY",
		"RISK BREAKDOWN",
		"VITALS INTERPRETATION",
		"URGENCY",
		"SUGGESTED DIAGNOSTICS",
		"POSSIBLE CONDITIONS",
		"DOCTOR DISCUSSION GUIDE",
		"FOR YOUR CLINICIAN",
		"DISCLAIMER",
	}
	lastIdx := -1
	for _, title := range titles {
		idx := strings.Index(out, "\n"+title+"\n")
		assert.Greater(t, idx, lastIdx, "section %q out of order or missing", title)
		lastIdx = idx
	}

	assert.Contains(t, out, "Blood pressure: 145/92 mmHg (ELEVATED)")
	assert.Contains(t, out, assessment.Disclaimer)
}

func TestTextExportSkipsEmptySections(t *testing.T) {
	report := sampleReport()
	report.CandidateConditions = ""

	out := string(export.Text(report))

	assert.NotContains(t, out, "POSSIBLE CONDITIONS")
	assert.Contains(t, out, "SUGGESTED DIAGNOSTICS")
}

func TestTextExportDoesNotMutateReport(t *testing.T) {
	report := sampleReport()
	before := *report

	_ = export.Text(report)

	assert.Equal(t, before, *report)
}

func TestPDFExportProducesValidDocument(t *testing.T) {
	data, err := export.PDF(sampleReport())

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output should start with a PDF header")
}

func TestPDFExportHandlesLongSections(t *testing.T) {
	report := sampleReport()
	report.ClinicianSummary = strings.Repeat("Extended clinical narrative line. ", 400)

	data, err := export.PDF(report)

	assert.NoError(t, err)
	assert.Greater(t, len(data), 1000)
}
