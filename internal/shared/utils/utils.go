package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// uuidPattern matches the canonical 8-4-4-4-12 textual form with a version
// nibble of 1-5 and an RFC 4122 variant nibble.
var uuidPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// IsValidUUID reports whether s is a well-formed UUID string.
func IsValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// ParseStringToUUID parses s, returning uuid.Nil on any malformed input.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return uid
}

// IsValidISBN reports whether s looks like an ISBN-10 or ISBN-13.
// Hyphens and spaces are tolerated; ISBN-10 may end in X as its check digit.
// Only the shape is validated, not the checksum.
func IsValidISBN(s string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(s)

	switch len(cleaned) {
	case 10:
		for i := 0; i < 9; i++ {
			if cleaned[i] < '0' || cleaned[i] > '9' {
				return false
			}
		}
		last := cleaned[9]
		return (last >= '0' && last <= '9') || last == 'X' || last == 'x'
	case 13:
		for i := 0; i < 13; i++ {
			if cleaned[i] < '0' || cleaned[i] > '9' {
				return false
			}
		}
		return true
	default:
		return false
	}
}
