package utils

import (
	"errors"
	"testing"

	"optizen-service/internal/pkg/dto/requests"
	"optizen-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateCaseRequest() *requests.CreateCase {
	return &requests.CreateCase{
		CaseNo:        "OPT-2024-0042",
		PatientID:     "55555555-5555-5555-5555-555555555555",
		EncounterDate: "2024-06-01",
		Status:        "active",
		Treatments: []requests.CreateTreatment{
			{DrugID: "33333333-3333-3333-3333-333333333333"},
		},
	}
}

func TestValidateCreateCaseRequest(t *testing.T) {
	t.Run("Valid payload passes", func(t *testing.T) {
		err := ValidateCreateCaseRequest(validCreateCaseRequest())
		assert.NoError(t, err)
	})

	t.Run("Status may be absent", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.Status = ""
		assert.NoError(t, ValidateCreateCaseRequest(request))
	})

	t.Run("Reports every violation, not just the first", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.CaseNo = ""
		request.Treatments[0].DrugID = "not-a-uuid"

		err := ValidateCreateCaseRequest(request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
		require.Len(t, customErr.Details, 2)
		assert.Contains(t, customErr.Details, "case_no: is required")
		assert.Contains(t, customErr.Details, "treatments.0.drug_id: must be a valid identifier")
	})

	t.Run("Nested paths use the wire field names", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.Complaints = []requests.CreateComplaint{
			{ComplaintID: "11111111-1111-1111-1111-111111111111"},
			{ComplaintID: "11111111-1111-1111-1111-111111111111", Eye: "left"},
		}

		err := ValidateCreateCaseRequest(request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		require.Len(t, customErr.Details, 1)
		assert.Equal(t, "complaints.1.eye: must be a valid identifier", customErr.Details[0])
	})

	t.Run("Rejects malformed dates and statuses", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.EncounterDate = "01/06/2024"
		request.Status = "archived"

		err := ValidateCreateCaseRequest(request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.Details, "encounter_date: must be a valid date in YYYY-MM-DD format")
		assert.Contains(t, customErr.Details, "status: must be one of: active, completed, cancelled, pending")
	})

	t.Run("Checks surgeries inside the examination data bag", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.ExaminationData = map[string]interface{}{
			"surgeries": []interface{}{
				map[string]interface{}{
					"surgery_name": "Phacoemulsification",
					"anesthesia":   "not-an-id",
				},
				map[string]interface{}{
					"surgery_name": "",
				},
			},
		}

		err := ValidateCreateCaseRequest(request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.Details, "examination_data.surgeries.0.anesthesia: must be a valid identifier")
		assert.Contains(t, customErr.Details, "examination_data.surgeries.1.surgery_name: is required")
	})

	t.Run("Extra top-level fields are not rejected", func(t *testing.T) {
		request := validCreateCaseRequest()
		request.Extra = map[string]interface{}{"referral_source": "walk-in"}

		assert.NoError(t, ValidateCreateCaseRequest(request))
	})
}

func TestCreateCaseUnmarshalCapturesUnknownFields(t *testing.T) {
	payload := []byte(`{
		"case_no": "OPT-2024-0042",
		"patient_id": "55555555-5555-5555-5555-555555555555",
		"encounter_date": "2024-06-01",
		"referral_source": "walk-in",
		"follow_up": {"weeks": 2}
	}`)

	var request requests.CreateCase
	require.NoError(t, request.UnmarshalJSON(payload))

	assert.Equal(t, "OPT-2024-0042", request.CaseNo)
	require.NotNil(t, request.Extra)
	assert.Equal(t, "walk-in", request.Extra["referral_source"])
	assert.NotContains(t, request.Extra, "case_no")
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("a1b2c3d4-e5f6-7890-abcd-ef1234567890"))
	assert.True(t, IsUUID("A1B2C3D4-E5F6-7890-ABCD-EF1234567890"))
	assert.False(t, IsUUID("Phacoemulsification"))
	assert.False(t, IsUUID("a1b2c3d4e5f67890abcdef1234567890"), "unhyphenated hex is free text")
	assert.False(t, IsUUID(""))
}
