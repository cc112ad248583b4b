package requests

import (
	"github.com/goccy/go-json"
)

// CreateCase is the write-path payload. Known fields are strongly typed; any
// unrecognized top-level field lands in Extra so the clinical-data shape can
// evolve without a redeployment of this layer.
type CreateCase struct {
	CaseNo          string                 `json:"case_no" validate:"required"`
	PatientID       string                 `json:"patient_id" validate:"required,uuid"`
	EncounterDate   string                 `json:"encounter_date" validate:"required,datetime=2006-01-02"`
	ChiefComplaint  string                 `json:"chief_complaint"`
	History         string                 `json:"history"`
	Findings        string                 `json:"findings"`
	TreatmentPlan   string                 `json:"treatment_plan"`
	Diagnosis       []string               `json:"diagnosis"`
	Status          string                 `json:"status" validate:"omitempty,oneof=active completed cancelled pending"`
	Complaints      []CreateComplaint      `json:"complaints" validate:"omitempty,dive"`
	Treatments      []CreateTreatment      `json:"treatments" validate:"omitempty,dive"`
	DiagnosticTests []CreateDiagnosticTest `json:"diagnostic_tests" validate:"omitempty,dive"`
	ExaminationData map[string]interface{} `json:"examination_data"`
	VisionData      *CreateVisionData      `json:"vision_data"`
	Extra           map[string]interface{} `json:"-"`
}

// The complaint sub-payload keeps the camelCase keys the legacy UI sends.
type CreateComplaint struct {
	CategoryID  string `json:"categoryId" validate:"omitempty,uuid"`
	ComplaintID string `json:"complaintId" validate:"required,uuid"`
	Duration    string `json:"duration"`
	Eye         string `json:"eye" validate:"omitempty,uuid"`
	Notes       string `json:"notes"`
}

type CreateTreatment struct {
	DrugID   string `json:"drug_id" validate:"required,uuid"`
	DosageID string `json:"dosage_id" validate:"omitempty,uuid"`
	RouteID  string `json:"route_id" validate:"omitempty,uuid"`
	Duration string `json:"duration"`
	Eye      string `json:"eye" validate:"omitempty,uuid"`
	Quantity string `json:"quantity"`
}

type CreateDiagnosticTest struct {
	TestID  string `json:"test_id" validate:"required,uuid"`
	Eye     string `json:"eye" validate:"omitempty,uuid"`
	Type    string `json:"type"`
	Problem string `json:"problem"`
	Notes   string `json:"notes"`
}

type CreateVisionData struct {
	Unaided *CreateVisionReading `json:"unaided"`
	Pinhole *CreateVisionReading `json:"pinhole"`
	Aided   *CreateVisionReading `json:"aided"`
	Near    *CreateVisionReading `json:"near"`
}

type CreateVisionReading struct {
	Right string `json:"right"`
	Left  string `json:"left"`
}

var knownCreateCaseFields = map[string]bool{
	"case_no":          true,
	"patient_id":       true,
	"encounter_date":   true,
	"chief_complaint":  true,
	"history":          true,
	"findings":         true,
	"treatment_plan":   true,
	"diagnosis":        true,
	"status":           true,
	"complaints":       true,
	"treatments":       true,
	"diagnostic_tests": true,
	"examination_data": true,
	"vision_data":      true,
}

// UnmarshalJSON decodes the typed fields and captures every unknown
// top-level key into Extra instead of rejecting or dropping it.
func (c *CreateCase) UnmarshalJSON(data []byte) error {
	type createCaseAlias CreateCase
	var alias createCaseAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if knownCreateCaseFields[key] {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]interface{})
		}
		alias.Extra[key] = decoded
	}

	*c = CreateCase(alias)
	return nil
}
