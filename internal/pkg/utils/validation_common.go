package utils

import (
	"regexp"

	"optizen-service/internal/pkg/constvars"
)

var uuidPattern = regexp.MustCompile(constvars.RegexUUID)

// IsUUID reports whether s is syntactically a canonical hyphenated UUID.
// The reference resolution engine uses this to tell a master-data identifier
// apart from user-entered free text in dual-purpose fields.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}
