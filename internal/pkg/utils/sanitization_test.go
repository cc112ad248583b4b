package utils

import (
	"testing"

	"optizen-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateCaseRequest(t *testing.T) {
	t.Run("Drops complaints missing their mandatory reference", func(t *testing.T) {
		request := &requests.CreateCase{
			Complaints: []requests.CreateComplaint{
				{ComplaintID: "11111111-1111-1111-1111-111111111111", Duration: "2 days"},
				{ComplaintID: "   "},
				{ComplaintID: "22222222-2222-2222-2222-222222222222", Notes: "worse at night"},
				{ComplaintID: ""},
			},
		}

		SanitizeCreateCaseRequest(request)

		assert.Len(t, request.Complaints, 2)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", request.Complaints[0].ComplaintID)
		assert.Equal(t, "22222222-2222-2222-2222-222222222222", request.Complaints[1].ComplaintID, "order should be preserved")
	})

	t.Run("Coerces blank optional references to absent", func(t *testing.T) {
		request := &requests.CreateCase{
			Treatments: []requests.CreateTreatment{
				{DrugID: "33333333-3333-3333-3333-333333333333", DosageID: "  ", RouteID: " "},
			},
			Complaints: []requests.CreateComplaint{
				{ComplaintID: "11111111-1111-1111-1111-111111111111", CategoryID: "   "},
			},
		}

		SanitizeCreateCaseRequest(request)

		assert.Equal(t, "", request.Treatments[0].DosageID)
		assert.Equal(t, "", request.Treatments[0].RouteID)
		assert.Equal(t, "", request.Complaints[0].CategoryID)
	})

	t.Run("Drops treatments and tests without their mandatory reference", func(t *testing.T) {
		request := &requests.CreateCase{
			Treatments: []requests.CreateTreatment{
				{DrugID: ""},
				{DrugID: "33333333-3333-3333-3333-333333333333"},
			},
			DiagnosticTests: []requests.CreateDiagnosticTest{
				{TestID: "  "},
				{TestID: "44444444-4444-4444-4444-444444444444"},
			},
		}

		SanitizeCreateCaseRequest(request)

		assert.Len(t, request.Treatments, 1)
		assert.Len(t, request.DiagnosticTests, 1)
	})

	t.Run("Cleaning an already-clean payload is a no-op", func(t *testing.T) {
		request := &requests.CreateCase{
			CaseNo:        "OPT-2024-0042",
			PatientID:     "55555555-5555-5555-5555-555555555555",
			EncounterDate: "2024-06-01",
			Complaints: []requests.CreateComplaint{
				{ComplaintID: "11111111-1111-1111-1111-111111111111", Eye: "66666666-6666-6666-6666-666666666666"},
			},
			Treatments: []requests.CreateTreatment{
				{DrugID: "33333333-3333-3333-3333-333333333333", Duration: "5 days", Quantity: "10"},
			},
		}
		expected := *request
		expectedComplaints := append([]requests.CreateComplaint(nil), request.Complaints...)
		expectedTreatments := append([]requests.CreateTreatment(nil), request.Treatments...)

		SanitizeCreateCaseRequest(request)

		assert.Equal(t, expected.CaseNo, request.CaseNo)
		assert.Equal(t, expectedComplaints, request.Complaints)
		assert.Equal(t, expectedTreatments, request.Treatments)
	})

	t.Run("Nil collections stay nil", func(t *testing.T) {
		request := &requests.CreateCase{CaseNo: "OPT-2024-0042"}

		SanitizeCreateCaseRequest(request)

		assert.Nil(t, request.Complaints)
		assert.Nil(t, request.Treatments)
		assert.Nil(t, request.DiagnosticTests)
	})
}
