package models

import "time"

// Case is the persisted encounter document. Embedded collections are stored
// inside the document itself; they only ever hold raw identifiers or
// user-entered text, never resolved display names.
type Case struct {
	ID              string                 `bson:"_id,omitempty" json:"id,omitempty"`
	CaseNo          string                 `bson:"case_no" json:"case_no"`
	PatientID       string                 `bson:"patient_id" json:"patient_id"`
	EncounterDate   string                 `bson:"encounter_date" json:"encounter_date"`
	ChiefComplaint  string                 `bson:"chief_complaint,omitempty" json:"chief_complaint,omitempty"`
	History         string                 `bson:"history,omitempty" json:"history,omitempty"`
	Findings        string                 `bson:"findings,omitempty" json:"findings,omitempty"`
	TreatmentPlan   string                 `bson:"treatment_plan,omitempty" json:"treatment_plan,omitempty"`
	Diagnosis       []string               `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Status          string                 `bson:"status" json:"status"`
	Complaints      []Complaint            `bson:"complaints,omitempty" json:"complaints,omitempty"`
	Treatments      []Treatment            `bson:"treatments,omitempty" json:"treatments,omitempty"`
	DiagnosticTests []DiagnosticTest       `bson:"diagnostic_tests,omitempty" json:"diagnostic_tests,omitempty"`
	ExaminationData map[string]interface{} `bson:"examination_data,omitempty" json:"examination_data,omitempty"`
	VisionData      *VisionData            `bson:"vision_data,omitempty" json:"vision_data,omitempty"`
	Extra           map[string]interface{} `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at" json:"updated_at"`
}

type Complaint struct {
	CategoryID  string `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	ComplaintID string `bson:"complaintId" json:"complaintId"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	Eye         string `bson:"eye,omitempty" json:"eye,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Treatment struct {
	DrugID   string `bson:"drug_id" json:"drug_id"`
	DosageID string `bson:"dosage_id,omitempty" json:"dosage_id,omitempty"`
	RouteID  string `bson:"route_id,omitempty" json:"route_id,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
	Eye      string `bson:"eye,omitempty" json:"eye,omitempty"`
	Quantity string `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

type DiagnosticTest struct {
	TestID  string `bson:"test_id" json:"test_id"`
	Eye     string `bson:"eye,omitempty" json:"eye,omitempty"`
	Type    string `bson:"type,omitempty" json:"type,omitempty"`
	Problem string `bson:"problem,omitempty" json:"problem,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Surgery lives inside the free-form examination_data bag under the
// "surgeries" key. SurgeryName holds either a master-data identifier (when
// UUID-shaped) or a literal human-entered surgery name.
type Surgery struct {
	SurgeryName string `bson:"surgery_name" json:"surgery_name"`
	Anesthesia  string `bson:"anesthesia,omitempty" json:"anesthesia,omitempty"`
	Eye         string `bson:"eye,omitempty" json:"eye,omitempty"`
}

type VisionData struct {
	Unaided *VisionReading `bson:"unaided,omitempty" json:"unaided,omitempty"`
	Pinhole *VisionReading `bson:"pinhole,omitempty" json:"pinhole,omitempty"`
	Aided   *VisionReading `bson:"aided,omitempty" json:"aided,omitempty"`
	Near    *VisionReading `bson:"near,omitempty" json:"near,omitempty"`
}

type VisionReading struct {
	Right string `bson:"right,omitempty" json:"right,omitempty"`
	Left  string `bson:"left,omitempty" json:"left,omitempty"`
}
