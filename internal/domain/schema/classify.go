package schema

import "strings"

// Kind buckets a property's first dataType tag for query generation.
type Kind int

// Property kinds. The first dataType tag is authoritative; array variants
// classify the same as their element type.
const (
	KindOther Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindGeo
	KindReference
)

// KindOf classifies a property. Cross-references follow the Weaviate
// convention of a capitalized class name in dataType.
func KindOf(p Property) Kind {
	if len(p.DataType) == 0 {
		return KindOther
	}
	tag := strings.TrimSuffix(p.DataType[0], "[]")
	switch tag {
	case "text", "string":
		return KindText
	case "int", "number":
		return KindNumber
	case "boolean":
		return KindBool
	case "date":
		return KindDate
	case "geoCoordinates":
		return KindGeo
	}
	if tag != "" && tag[0] >= 'A' && tag[0] <= 'Z' {
		return KindReference
	}
	return KindOther
}

// IsPrimitive reports whether the property holds a scalar value that can be
// selected without a sub-selection.
func IsPrimitive(p Property) bool {
	switch KindOf(p) {
	case KindText, KindNumber, KindBool, KindDate:
		return true
	default:
		return false
	}
}

// ReferencedClass returns the target class name of a cross-reference
// property, or "" for non-reference properties.
func ReferencedClass(p Property) string {
	if KindOf(p) != KindReference {
		return ""
	}
	return strings.TrimSuffix(p.DataType[0], "[]")
}

// TextProperties returns up to max text-typed property names of the class.
// A nil class or max <= 0 yields nil.
func TextProperties(c *Class, max int) []string {
	if c == nil || max <= 0 {
		return nil
	}
	var names []string
	for _, p := range c.Properties {
		if KindOf(p) == KindText {
			names = append(names, p.Name)
			if len(names) == max {
				break
			}
		}
	}
	return names
}
