package schema

import (
	"regexp"
	"strings"
)

// MaxCollectionNameLength is the longest accepted collection name.
const MaxCollectionNameLength = 256

var collectionNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// NameValidation is the advisory result of a collection name check.
// Callers decide whether to block on it.
type NameValidation struct {
	Valid bool
	Error string
}

// ValidateCollectionName checks a user-entered collection name. Pure and
// total: never panics, never errors, always returns a result.
func ValidateCollectionName(name string) NameValidation {
	if strings.TrimSpace(name) == "" {
		return NameValidation{Error: "collection name is required"}
	}
	if len(name) > MaxCollectionNameLength {
		return NameValidation{Error: "collection name is too long (max 256 characters)"}
	}
	if !collectionNameRegex.MatchString(name) {
		return NameValidation{
			Error: "collection name must start with a letter or underscore and contain only letters, digits, and underscores",
		}
	}
	return NameValidation{Valid: true}
}
