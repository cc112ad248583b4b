package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceCases      = "cases"
	ResourceMasterData = "master-data"
)

const (
	MongoCollectionCases         = "cases"
	MongoCollectionPatients      = "patients"
	MongoCollectionMasterData    = "master_data"
	MongoCollectionPharmacyItems = "pharmacy_items"
)

// Master-data categories. One logical vocabulary may be split across more
// than one physical source, see the category resolver fallback chains.
const (
	CategoryComplaints          = "complaints"
	CategoryComplaintCategories = "complaint_categories"
	CategoryEyeSelection        = "eye_selection"
	CategoryMedicines           = "medicines"
	CategoryDosages             = "dosages"
	CategoryRoutes              = "routes"
	CategoryDiagnosticTests     = "diagnostic_tests"
	CategorySurgeries           = "surgeries"
	CategorySurgeryTypes        = "surgery_types"
	CategoryAnesthesiaTypes     = "anesthesia_types"
)

const (
	CaseStatusActive    = "active"
	CaseStatusCompleted = "completed"
	CaseStatusCancelled = "cancelled"
	CaseStatusPending   = "pending"
)

const (
	ExaminationDataSurgeriesKey = "surgeries"
)

// Display fallback for a mandatory reference the master data no longer knows.
const DisplayNameUnknown = "Unknown"

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100

	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

const (
	MasterDataCacheKeyFormat = "master_data:%s:%s"
)
