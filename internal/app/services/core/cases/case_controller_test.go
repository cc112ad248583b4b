package cases

import (
	"net/http/httptest"
	"strings"
	"testing"

	"optizen-service/internal/app/config"
	"optizen-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCaseControllerForTest(caseRepo *fakeCaseRepository) *CaseController {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.RequestTimeoutInSecond = 10
	return NewCaseController(zap.NewNop(), newCaseUsecaseForTest(caseRepo), internalConfig)
}

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded
}

func TestCaseControllerCreate(t *testing.T) {
	t.Run("Valid payload returns 201 with the enriched record", func(t *testing.T) {
		controller := newCaseControllerForTest(&fakeCaseRepository{})

		payload := `{
			"case_no": "OPT-2024-0042",
			"patient_id": "` + knownPatientID + `",
			"encounter_date": "2024-06-01",
			"treatments": [{"drug_id": "` + drugID + `"}],
			"referral_source": "walk-in"
		}`
		recorder := httptest.NewRecorder()
		controller.Create(recorder, httptest.NewRequest("POST", "/cases", strings.NewReader(payload)))

		assert.Equal(t, 201, recorder.Code)
		body := decodeBody(t, recorder.Body.String())
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]interface{})
		treatments := data["treatments"].([]interface{})
		treatment := treatments[0].(map[string]interface{})
		assert.Equal(t, "Timolol 0.5%", treatment["drug_name"])

		extra := data["extra"].(map[string]interface{})
		assert.Equal(t, "walk-in", extra["referral_source"], "unknown fields survive the round trip")
	})

	t.Run("Malformed JSON returns 400", func(t *testing.T) {
		controller := newCaseControllerForTest(&fakeCaseRepository{})

		recorder := httptest.NewRecorder()
		controller.Create(recorder, httptest.NewRequest("POST", "/cases", strings.NewReader(`{"case_no":`)))

		assert.Equal(t, 400, recorder.Code)
		body := decodeBody(t, recorder.Body.String())
		assert.Equal(t, false, body["success"])
	})

	t.Run("Validation failures return 400 with dotted-path details", func(t *testing.T) {
		controller := newCaseControllerForTest(&fakeCaseRepository{})

		payload := `{
			"patient_id": "` + knownPatientID + `",
			"encounter_date": "2024-06-01",
			"treatments": [{"drug_id": "not-a-uuid"}]
		}`
		recorder := httptest.NewRecorder()
		controller.Create(recorder, httptest.NewRequest("POST", "/cases", strings.NewReader(payload)))

		assert.Equal(t, 400, recorder.Code)
		body := decodeBody(t, recorder.Body.String())
		details := body["details"].([]interface{})
		assert.Contains(t, details, "case_no: is required")
		assert.Contains(t, details, "treatments.0.drug_id: must be a valid identifier")
	})

	t.Run("Blank embedded rows are dropped before validation", func(t *testing.T) {
		caseRepo := &fakeCaseRepository{}
		controller := newCaseControllerForTest(caseRepo)

		payload := `{
			"case_no": "OPT-2024-0042",
			"patient_id": "` + knownPatientID + `",
			"encounter_date": "2024-06-01",
			"complaints": [{"complaintId": "  "}]
		}`
		recorder := httptest.NewRecorder()
		controller.Create(recorder, httptest.NewRequest("POST", "/cases", strings.NewReader(payload)))

		require.Equal(t, 201, recorder.Code)
		require.Len(t, caseRepo.inserted, 1)
		assert.Empty(t, caseRepo.inserted[0].Complaints)
	})

	t.Run("Unknown patient returns 404", func(t *testing.T) {
		controller := newCaseControllerForTest(&fakeCaseRepository{})

		payload := `{
			"case_no": "OPT-2024-0042",
			"patient_id": "00000000-0000-0000-0000-000000000000",
			"encounter_date": "2024-06-01"
		}`
		recorder := httptest.NewRecorder()
		controller.Create(recorder, httptest.NewRequest("POST", "/cases", strings.NewReader(payload)))

		assert.Equal(t, 404, recorder.Code)
	})
}

func TestCaseControllerList(t *testing.T) {
	t.Run("Returns paginated enriched cases", func(t *testing.T) {
		caseRepo := &fakeCaseRepository{
			stored: []models.Case{sampleCase()},
			total:  1,
		}
		controller := newCaseControllerForTest(caseRepo)

		recorder := httptest.NewRecorder()
		controller.List(recorder, httptest.NewRequest("GET", "/cases?page=1&limit=50", nil))

		assert.Equal(t, 200, recorder.Code)
		body := decodeBody(t, recorder.Body.String())
		assert.Equal(t, true, body["success"])

		pagination := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["total"])
		assert.Equal(t, false, pagination["hasNextPage"])
	})

	t.Run("Query parsing feeds the repository options", func(t *testing.T) {
		caseRepo := &fakeCaseRepository{}
		controller := newCaseControllerForTest(caseRepo)

		recorder := httptest.NewRecorder()
		controller.List(recorder, httptest.NewRequest(
			"GET", "/cases?status=cancelled&patient_id=abc&sortBy=case_no&sortOrder=asc", nil))

		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, []string{"cancelled"}, caseRepo.lastOpts.Statuses)
		assert.Equal(t, "abc", caseRepo.lastOpts.PatientID)
		assert.Equal(t, "case_no", caseRepo.lastOpts.SortBy)
		assert.Equal(t, "asc", caseRepo.lastOpts.SortOrder)
	})
}
