package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseStringToUUID returns uuid.Nil for empty or malformed input, so callers
// can treat a bad identifier the same as an unknown one.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return uid
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
