package constvars

const (
	ListCasesSuccessMessage      = "Successfully retrieved cases"
	CreateCaseSuccessMessage     = "Case created successfully"
	ListMasterDataSuccessMessage = "Successfully retrieved master data"
)
