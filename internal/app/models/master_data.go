package models

// MasterDataEntry is one row of the category-tagged lookup catalog. The
// catalog is read-only from this service's point of view.
type MasterDataEntry struct {
	ID       string `bson:"_id" json:"id"`
	Category string `bson:"category" json:"category"`
	Name     string `bson:"name" json:"name"`
}

// PharmacyItem is the legacy inventory collection that still backs part of
// the drug vocabulary. Used only as a fallback after the medicines category.
type PharmacyItem struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	GenericName string `bson:"generic_name,omitempty" json:"generic_name,omitempty"`
}
