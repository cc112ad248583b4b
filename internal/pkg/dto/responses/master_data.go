package responses

type MasterDataEntry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}
