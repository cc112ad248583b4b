package utils

import (
	"optizen-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoerceSurgeries extracts the surgeries list out of the free-form
// examination_data bag. The bag reaches this code through two decoders, the
// JSON request path (map[string]interface{} / []interface{}) and the BSON
// read path (primitive.M / primitive.A), so both shapes are handled.
// Entries without a surgery_name are skipped.
func CoerceSurgeries(value interface{}) []models.Surgery {
	items := coerceSlice(value)
	if items == nil {
		return nil
	}

	surgeries := make([]models.Surgery, 0, len(items))
	for _, item := range items {
		entry := coerceMap(item)
		if entry == nil {
			continue
		}
		surgery := models.Surgery{
			SurgeryName: coerceString(entry["surgery_name"]),
			Anesthesia:  coerceString(entry["anesthesia"]),
			Eye:         coerceString(entry["eye"]),
		}
		if surgery.SurgeryName == "" {
			continue
		}
		surgeries = append(surgeries, surgery)
	}
	return surgeries
}

func coerceSlice(value interface{}) []interface{} {
	switch typed := value.(type) {
	case []interface{}:
		return typed
	case primitive.A:
		return []interface{}(typed)
	default:
		return nil
	}
}

func coerceMap(value interface{}) map[string]interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		return typed
	case primitive.M:
		return map[string]interface{}(typed)
	default:
		return nil
	}
}

func coerceString(value interface{}) string {
	s, _ := value.(string)
	return s
}
