package query

import "strings"

// Validation is the advisory result of a syntactic query check. Callers
// decide whether to block execution on it.
type Validation struct {
	Valid     bool
	Sanitized string
	Errors    []string
}

// ValidateAndSanitize performs a syntactic sanity check on GraphQL query
// text: brace balance and a plausible leading token. It does not parse the
// query against a GraphQL grammar or schema. Control characters in the C0
// and C1 ranges are stripped, except tab, newline, and carriage return,
// which carry the query's formatting.
func ValidateAndSanitize(q string) Validation {
	sanitized := strings.TrimSpace(stripControlChars(q))

	var errs []string
	if sanitized == "" {
		errs = append(errs, "Query is empty")
	} else {
		if strings.Count(sanitized, "{") != strings.Count(sanitized, "}") {
			errs = append(errs, "Unbalanced braces in query")
		}
		if !strings.HasPrefix(sanitized, "{") && !strings.HasPrefix(sanitized, "mutation") {
			errs = append(errs, "Query must start with '{' or 'mutation'")
		}
	}

	return Validation{
		Valid:     len(errs) == 0,
		Sanitized: sanitized,
		Errors:    errs,
	}
}

func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return r
		}
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
}
