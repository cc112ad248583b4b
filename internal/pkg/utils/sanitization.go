package utils

import (
	"strings"

	"optizen-service/internal/pkg/dto/requests"
)

// SanitizeCreateCaseRequest normalizes a raw case payload before validation.
// The UI is allowed to submit placeholder rows (a blank row added by "Add
// Item" and never filled in); any nested entry missing its one mandatory
// reference field is dropped here, and blank optional reference fields are
// coerced to absent. Surviving entries keep their order and their other
// fields untouched. Cleaning an already-clean payload is a no-op.
func SanitizeCreateCaseRequest(input *requests.CreateCase) {
	input.CaseNo = strings.TrimSpace(input.CaseNo)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.EncounterDate = strings.TrimSpace(input.EncounterDate)
	input.Status = strings.TrimSpace(input.Status)

	input.Complaints = sanitizeComplaints(input.Complaints)
	input.Treatments = sanitizeTreatments(input.Treatments)
	input.DiagnosticTests = sanitizeDiagnosticTests(input.DiagnosticTests)
}

func sanitizeComplaints(complaints []requests.CreateComplaint) []requests.CreateComplaint {
	if complaints == nil {
		return nil
	}
	cleaned := make([]requests.CreateComplaint, 0, len(complaints))
	for _, complaint := range complaints {
		complaint.ComplaintID = strings.TrimSpace(complaint.ComplaintID)
		if complaint.ComplaintID == "" {
			continue
		}
		complaint.CategoryID = strings.TrimSpace(complaint.CategoryID)
		cleaned = append(cleaned, complaint)
	}
	return cleaned
}

func sanitizeTreatments(treatments []requests.CreateTreatment) []requests.CreateTreatment {
	if treatments == nil {
		return nil
	}
	cleaned := make([]requests.CreateTreatment, 0, len(treatments))
	for _, treatment := range treatments {
		treatment.DrugID = strings.TrimSpace(treatment.DrugID)
		if treatment.DrugID == "" {
			continue
		}
		treatment.DosageID = strings.TrimSpace(treatment.DosageID)
		treatment.RouteID = strings.TrimSpace(treatment.RouteID)
		cleaned = append(cleaned, treatment)
	}
	return cleaned
}

func sanitizeDiagnosticTests(tests []requests.CreateDiagnosticTest) []requests.CreateDiagnosticTest {
	if tests == nil {
		return nil
	}
	cleaned := make([]requests.CreateDiagnosticTest, 0, len(tests))
	for _, test := range tests {
		test.TestID = strings.TrimSpace(test.TestID)
		if test.TestID == "" {
			continue
		}
		cleaned = append(cleaned, test)
	}
	return cleaned
}
