package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength is the longest accepted display name, in bytes.
const MaxNameLength = 256

// ValidateName validates an individual's display name.
//
// The rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters (including newlines, which would corrupt the
//     line-oriented export formats)
//   - Maximum length of 256 bytes
//
// The store enforces the empty-name rule on its own; this helper lets outer
// surfaces (CLI, HTTP) reject junk before it reaches a mutation.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	return nil
}
