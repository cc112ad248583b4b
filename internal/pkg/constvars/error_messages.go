package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientValidationFailed              = "Validation failed"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientCaseNumberAlreadyExists       = "A case with this case number already exists"
	ErrClientCategoryRequired              = "Query parameter 'category' is required"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer-facing messages, logged but never returned to the client.
const (
	ErrDevValidationFailed        = "Request payload validation failed"
	ErrDevCannotParseRequestBody  = "Failed to parse request body"
	ErrDevPatientNotFound         = "Referenced patient does not exist"
	ErrDevDuplicateCaseNumber     = "Unique index violation on case_no"
	ErrDevServerDeadlineExceeded  = "Request context deadline exceeded"
	ErrDevCategoryParamMissing    = "Missing category query parameter"
	ErrDevMongoDBFindDocument     = "MongoDB failed to find document(s)"
	ErrDevMongoDBInsertDocument   = "MongoDB failed to insert document"
	ErrDevMongoDBIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevMongoDBCountDocuments   = "MongoDB failed to count documents"
	ErrDevRedisSet                = "Redis failed to set key"
	ErrDevRedisGet                = "Redis failed to get key(s)"
	ErrDevCannotMarshalJSON       = "Failed to marshal value to JSON"
)

// Per-field validation messages, keyed by validator tag.
var ValidationErrorMessages = map[string]string{
	"required": "is required",
	"uuid":     "must be a valid identifier",
	"uuid4":    "must be a valid identifier",
	"oneof":    "must be one of: %s",
	"datetime": "must be a valid date in YYYY-MM-DD format",
	"max":      "must be at most %s characters",
}
