package exceptions

import (
	"fmt"
	"regexp"
	"strings"

	"optizen-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var sliceIndexPattern = regexp.MustCompile(`\[(\d+)\]`)

// FormatValidationErrorDetails turns validator errors into one message per
// violated constraint, each naming the dotted field path as the client sent
// it, e.g. "treatments.0.drug_id: must be a valid identifier". Every
// violation is reported, not just the first, so a form can highlight all
// problems at once.
func FormatValidationErrorDetails(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{constvars.ErrClientCannotProcessRequest}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		path := dottedFieldPath(fieldErr.Namespace())
		message, found := constvars.ValidationErrorMessages[fieldErr.Tag()]
		if !found {
			message = "is invalid"
		}
		if strings.Contains(message, "%s") {
			param := fieldErr.Param()
			if fieldErr.Tag() == "oneof" {
				param = strings.Join(strings.Fields(param), ", ")
			}
			message = fmt.Sprintf(message, param)
		}
		details = append(details, path+": "+message)
	}
	return details
}

// dottedFieldPath strips the root struct name and rewrites slice indexes, so
// "CreateCase.treatments[0].drug_id" becomes "treatments.0.drug_id".
func dottedFieldPath(namespace string) string {
	path := namespace
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	return sliceIndexPattern.ReplaceAllString(path, ".$1")
}
