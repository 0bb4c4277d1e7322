// Package schema models Weaviate collection definitions and normalizes the
// two schema payload formats Weaviate has shipped over time.
package schema

import "strings"

// Property describes one field of a Weaviate class. Read-only once decoded;
// nothing in this package mutates a Property.
type Property struct {
	Name             string         `json:"name"`
	DataType         []string       `json:"dataType"`
	Description      string         `json:"description,omitempty"`
	Tokenization     string         `json:"tokenization,omitempty"`
	IndexFilterable  *bool          `json:"indexFilterable,omitempty"`
	IndexSearchable  *bool          `json:"indexSearchable,omitempty"`
	ModuleConfig     map[string]any `json:"moduleConfig,omitempty"`
	VectorizerConfig map[string]any `json:"vectorizerConfig,omitempty"`
}

// Class describes one Weaviate collection. Legacy payloads key the name under
// "class" with a single "vectorizer"; newer payloads key it under "name" with
// a "vectorizers" map of named vector configs. Both decode into this struct.
type Class struct {
	Class        string         `json:"class,omitempty"`
	Name         string         `json:"name,omitempty"`
	Description  string         `json:"description,omitempty"`
	Properties   []Property     `json:"properties"`
	Vectorizer   string         `json:"vectorizer,omitempty"`
	ModuleConfig map[string]any `json:"moduleConfig,omitempty"`
	Vectorizers  map[string]any `json:"vectorizers,omitempty"`
}

// CollectionName returns the class name regardless of payload format.
func (c *Class) CollectionName() string {
	if c == nil {
		return ""
	}
	if c.Class != "" {
		return c.Class
	}
	return c.Name
}

// Payload is the /v1/schema response body.
type Payload struct {
	Classes []Class `json:"classes"`
}

// Lookup finds the class entry for a collection, matching case-insensitively
// on either name key. When nothing matches and the payload holds exactly one
// class, that sole entry is returned. Returns nil when no match is found and
// the payload is ambiguous; callers fall back to schema-less generation.
func Lookup(p *Payload, collection string) *Class {
	if p == nil || len(p.Classes) == 0 {
		return nil
	}
	for i := range p.Classes {
		if strings.EqualFold(p.Classes[i].CollectionName(), collection) {
			return &p.Classes[i]
		}
	}
	if len(p.Classes) == 1 {
		return &p.Classes[0]
	}
	return nil
}
