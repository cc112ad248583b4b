package constvars

const (
	// RegexUUID matches the canonical hyphenated form only. The dual-purpose
	// surgery_name field is sniffed against this, so anything looser would
	// misclassify free-text names.
	RegexUUID = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
)
