// Package query holds the query generation options, the fixed set of query
// shapes, and the syntactic GraphQL validator.
package query

// Generation defaults. Baked into the generators; a nil or partial Config
// falls back to these.
const (
	DefaultLimit         = 10
	DefaultAlpha         = 0.5
	DefaultCertainty     = 0.7
	DefaultMoveToForce   = 0.85
	DefaultMoveAwayForce = 0.45
)

// SortSpec is one sort clause of a generated query.
type SortSpec struct {
	Path  string
	Order string // "asc" or "desc"
}

// Config is an optional bag of generation options. Every field is optional;
// pointer fields distinguish "absent" from zero so that explicit zero values
// survive. All methods are nil-receiver safe.
type Config struct {
	Limit     *int
	Offset    *int
	Distance  *float64
	Certainty *float64
	Alpha     *float64

	Query    string
	Concepts []string

	MoveTo        []string
	MoveToForce   *float64
	MoveAwayFrom  []string
	MoveAwayForce *float64

	Vector []float32

	Tenant string
	Prompt string

	// Properties restricts keyword matching (hybrid/bm25) when set.
	Properties []string

	// Operator overrides the where-clause combinator ("And"/"Or").
	Operator string

	Sort []SortSpec

	IncludeVector  bool
	IncludeVectors bool // accepted alias, same effect as IncludeVector
}

// LimitOr returns the configured limit, or fallback when absent or
// non-positive.
func (c *Config) LimitOr(fallback int) int {
	if c == nil || c.Limit == nil || *c.Limit <= 0 {
		return fallback
	}
	return *c.Limit
}

// AlphaOr returns the hybrid blend weight, defaulting when absent.
func (c *Config) AlphaOr(fallback float64) float64 {
	if c == nil || c.Alpha == nil {
		return fallback
	}
	return *c.Alpha
}

// MoveToOr returns the moveTo concepts, or fallback when none are set.
func (c *Config) MoveToOr(fallback []string) []string {
	if c == nil || len(c.MoveTo) == 0 {
		return fallback
	}
	return c.MoveTo
}

// MoveAwayFromOr returns the moveAwayFrom concepts, or fallback when none
// are set.
func (c *Config) MoveAwayFromOr(fallback []string) []string {
	if c == nil || len(c.MoveAwayFrom) == 0 {
		return fallback
	}
	return c.MoveAwayFrom
}

// MoveToForceOr returns the moveTo force, defaulting when absent.
func (c *Config) MoveToForceOr(fallback float64) float64 {
	if c == nil || c.MoveToForce == nil {
		return fallback
	}
	return *c.MoveToForce
}

// MoveAwayForceOr returns the moveAwayFrom force, defaulting when absent.
func (c *Config) MoveAwayForceOr(fallback float64) float64 {
	if c == nil || c.MoveAwayForce == nil {
		return fallback
	}
	return *c.MoveAwayForce
}

// ConceptsOr returns the configured concepts, or fallback when none are set.
func (c *Config) ConceptsOr(fallback []string) []string {
	if c == nil || len(c.Concepts) == 0 {
		return fallback
	}
	return c.Concepts
}

// QueryOr returns the configured query text, or fallback when empty.
func (c *Config) QueryOr(fallback string) string {
	if c == nil || c.Query == "" {
		return fallback
	}
	return c.Query
}

// HasDistance reports whether an explicit distance threshold is set.
func (c *Config) HasDistance() bool { return c != nil && c.Distance != nil }

// HasCertainty reports whether an explicit certainty threshold is set.
func (c *Config) HasCertainty() bool { return c != nil && c.Certainty != nil }

// DistanceValue returns the distance threshold; only valid when HasDistance.
func (c *Config) DistanceValue() float64 {
	if c == nil || c.Distance == nil {
		return 0
	}
	return *c.Distance
}

// CertaintyValue returns the certainty threshold; only valid when HasCertainty.
func (c *Config) CertaintyValue() float64 {
	if c == nil || c.Certainty == nil {
		return 0
	}
	return *c.Certainty
}

// OffsetValue returns the configured offset, or 0 when absent.
func (c *Config) OffsetValue() int {
	if c == nil || c.Offset == nil || *c.Offset < 0 {
		return 0
	}
	return *c.Offset
}

// TenantName returns the configured tenant, or "".
func (c *Config) TenantName() string {
	if c == nil {
		return ""
	}
	return c.Tenant
}

// SortSpecs returns the configured sort clauses, nil when absent.
func (c *Config) SortSpecs() []SortSpec {
	if c == nil {
		return nil
	}
	return c.Sort
}

// CustomVector returns the configured literal vector, nil when absent.
func (c *Config) CustomVector() []float32 {
	if c == nil {
		return nil
	}
	return c.Vector
}

// PropertyOverride returns the configured keyword-property list, nil when
// absent.
func (c *Config) PropertyOverride() []string {
	if c == nil {
		return nil
	}
	return c.Properties
}

// OperatorOr returns the where-clause combinator, defaulting when absent or
// unrecognized.
func (c *Config) OperatorOr(fallback string) string {
	if c == nil {
		return fallback
	}
	switch c.Operator {
	case "And", "Or":
		return c.Operator
	default:
		return fallback
	}
}

// PromptOr returns the generative task prompt, or fallback when empty.
func (c *Config) PromptOr(fallback string) string {
	if c == nil || c.Prompt == "" {
		return fallback
	}
	return c.Prompt
}
