package responses

import (
	"time"

	"optizen-service/internal/app/models"
)

// Case is the enriched, read-side shape of an encounter. The *_name fields
// are derived at request time by the reference resolution engine and are
// never persisted; the raw identifiers always travel alongside them.
type Case struct {
	ID              string                 `json:"id"`
	CaseNo          string                 `json:"case_no"`
	PatientID       string                 `json:"patient_id"`
	EncounterDate   string                 `json:"encounter_date"`
	ChiefComplaint  string                 `json:"chief_complaint,omitempty"`
	History         string                 `json:"history,omitempty"`
	Findings        string                 `json:"findings,omitempty"`
	TreatmentPlan   string                 `json:"treatment_plan,omitempty"`
	Diagnosis       []string               `json:"diagnosis,omitempty"`
	Status          string                 `json:"status"`
	Complaints      []Complaint            `json:"complaints,omitempty"`
	Treatments      []Treatment            `json:"treatments,omitempty"`
	DiagnosticTests []DiagnosticTest       `json:"diagnostic_tests,omitempty"`
	ExaminationData map[string]interface{} `json:"examination_data,omitempty"`
	VisionData      *models.VisionData     `json:"vision_data,omitempty"`
	Extra           map[string]interface{} `json:"extra,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type Complaint struct {
	CategoryID    string `json:"categoryId,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`
	ComplaintID   string `json:"complaintId"`
	ComplaintName string `json:"complaint_name"`
	Duration      string `json:"duration,omitempty"`
	Eye           string `json:"eye,omitempty"`
	EyeName       string `json:"eye_name,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type Treatment struct {
	DrugID     string `json:"drug_id"`
	DrugName   string `json:"drug_name"`
	DosageID   string `json:"dosage_id,omitempty"`
	DosageName string `json:"dosage_name,omitempty"`
	RouteID    string `json:"route_id,omitempty"`
	RouteName  string `json:"route_name,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Eye        string `json:"eye,omitempty"`
	EyeName    string `json:"eye_name,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
}

type DiagnosticTest struct {
	TestID   string `json:"test_id"`
	TestName string `json:"test_name"`
	Eye      string `json:"eye,omitempty"`
	EyeName  string `json:"eye_name,omitempty"`
	Type     string `json:"type,omitempty"`
	Problem  string `json:"problem,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Surgery keeps the original stored value in SurgeryNameOriginal whenever it
// was UUID-shaped, so a consumer can still tell a resolved reference apart
// from literal text.
type Surgery struct {
	SurgeryName         string `json:"surgery_name"`
	SurgeryNameOriginal string `json:"surgery_name_original,omitempty"`
	Anesthesia          string `json:"anesthesia,omitempty"`
	AnesthesiaName      string `json:"anesthesia_name,omitempty"`
	Eye                 string `json:"eye,omitempty"`
	EyeName             string `json:"eye_name,omitempty"`
}
