package export

import (
	"fmt"
	"strings"

	"cardiowell/internal/assessment"
)

var sectionOrder = []struct {
	Title string
	Field func(*assessment.Report) string
}{
	{"PATIENT SUMMARY", func(r *assessment.Report) string { return r.PatientSummary }},
	{"RISK BREAKDOWN", func(r *assessment.Report) string { return r.RiskBreakdown }},
	{"VITALS INTERPRETATION", func(r *assessment.Report) string { return r.VitalsInterpretation }},
	{"URGENCY", func(r *assessment.Report) string { return r.UrgencyStatement }},
	{"SUGGESTED DIAGNOSTICS", func(r *assessment.Report) string { return r.SuggestedDiagnostics }},
	{"POSSIBLE CONDITIONS", func(r *assessment.Report) string { return r.CandidateConditions }},
	{"DOCTOR DISCUSSION GUIDE", func(r *assessment.Report) string { return r.DoctorScript }},
	{"FOR YOUR CLINICIAN", func(r *assessment.Report) string { return r.ClinicianSummary }},
	{"DISCLAIMER", func(r *assessment.Report) string { return r.Disclaimer }},
}

// Text renders the report as a sectioned plain-text document. The report is
// read-only; rendering never mutates it.
func Text(report *assessment.Report) []byte {
	var b strings.Builder

	b.WriteString("CardioWell - Cardiac Risk Assessment Report\n")
	fmt.Fprintf(&b, "Report ID: %s\n", report.ReportID)
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for _, section := range sectionOrder {
		body := section.Field(report)
		if body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", section.Title, strings.Repeat("-", len(section.Title)), body)
	}

	return []byte(b.String())
}
