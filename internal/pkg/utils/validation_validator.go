package utils

import (
	"fmt"
	"reflect"
	"strings"

	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/dto/requests"
	"optizen-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateCreateCaseRequest checks a sanitized payload against the case
// schema and returns a single error carrying every violation. Surgeries live
// inside the free-form examination_data bag, so they are checked by hand
// rather than through struct tags.
func ValidateCreateCaseRequest(input *requests.CreateCase) error {
	var details []string

	if err := validate.Struct(input); err != nil {
		if _, ok := err.(validator.ValidationErrors); !ok {
			return exceptions.ErrInputValidation(err, nil)
		}
		details = exceptions.FormatValidationErrorDetails(err)
	}

	details = append(details, validateSurgeryEntries(input.ExaminationData)...)

	if len(details) > 0 {
		return exceptions.ErrInputValidation(nil, details)
	}
	return nil
}

func validateSurgeryEntries(bag map[string]interface{}) []string {
	if bag == nil {
		return nil
	}
	raw, ok := bag[constvars.ExaminationDataSurgeriesKey]
	if !ok {
		return nil
	}

	var details []string
	for i, item := range coerceSlice(raw) {
		entry := coerceMap(item)
		path := fmt.Sprintf("examination_data.surgeries.%d", i)
		if entry == nil {
			details = append(details, path+": must be an object")
			continue
		}
		if strings.TrimSpace(coerceString(entry["surgery_name"])) == "" {
			details = append(details, path+".surgery_name: is required")
		}
		if anesthesia := coerceString(entry["anesthesia"]); anesthesia != "" && !IsUUID(anesthesia) {
			details = append(details, path+".anesthesia: must be a valid identifier")
		}
		if eye := coerceString(entry["eye"]); eye != "" && !IsUUID(eye) {
			details = append(details, path+".eye: must be a valid identifier")
		}
	}
	return details
}
