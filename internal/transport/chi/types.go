package chi

import (
	"encoding/json"

	domquery "github.com/kailas-cloud/weaviq/internal/domain/query"
)

// errorCode is a machine-readable error class for API clients.
type errorCode string

const (
	codeBadRequest             errorCode = "bad_request"
	codeValidationFailed       errorCode = "validation_failed"
	codeNotFound               errorCode = "not_found"
	codeAlreadyExists          errorCode = "already_exists"
	codeUpstreamUnavailable    errorCode = "weaviate_unavailable"
	codeEmbeddingProviderError errorCode = "embedding_provider_error"
	codeInternalError          errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type templateEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Shape       string `json:"shape"`
}

type templateList struct {
	Templates []templateEntry `json:"templates"`
}

type sortSpec struct {
	Path  string `json:"path"`
	Order string `json:"order"`
}

// generateConfig mirrors the optional generation options on the wire.
// Pointer fields keep "absent" distinct from an explicit zero.
type generateConfig struct {
	Limit         *int       `json:"limit,omitempty"`
	Offset        *int       `json:"offset,omitempty"`
	Distance      *float64   `json:"distance,omitempty"`
	Certainty     *float64   `json:"certainty,omitempty"`
	Alpha         *float64   `json:"alpha,omitempty"`
	Query         string     `json:"query,omitempty"`
	Concepts      []string   `json:"concepts,omitempty"`
	MoveTo        []string   `json:"moveTo,omitempty"`
	MoveToForce   *float64   `json:"moveToForce,omitempty"`
	MoveAwayFrom  []string   `json:"moveAwayFrom,omitempty"`
	MoveAwayForce *float64   `json:"moveAwayForce,omitempty"`
	Vector        []float32  `json:"vector,omitempty"`
	Tenant        string     `json:"tenant,omitempty"`
	Prompt        string     `json:"prompt,omitempty"`
	Properties    []string   `json:"properties,omitempty"`
	Operator      string     `json:"operator,omitempty"`
	Sort          []sortSpec `json:"sort,omitempty"`
	IncludeVector bool       `json:"includeVector,omitempty"`
}

func (c *generateConfig) toDomain() *domquery.Config {
	if c == nil {
		return nil
	}
	cfg := &domquery.Config{
		Limit:         c.Limit,
		Offset:        c.Offset,
		Distance:      c.Distance,
		Certainty:     c.Certainty,
		Alpha:         c.Alpha,
		Query:         c.Query,
		Concepts:      c.Concepts,
		MoveTo:        c.MoveTo,
		MoveToForce:   c.MoveToForce,
		MoveAwayFrom:  c.MoveAwayFrom,
		MoveAwayForce: c.MoveAwayForce,
		Vector:        c.Vector,
		Tenant:        c.Tenant,
		Prompt:        c.Prompt,
		Properties:    c.Properties,
		Operator:      c.Operator,
		IncludeVector: c.IncludeVector,
	}
	for _, s := range c.Sort {
		cfg.Sort = append(cfg.Sort, domquery.SortSpec{Path: s.Path, Order: s.Order})
	}
	return cfg
}

type generateRequest struct {
	Template   string          `json:"template"`
	Collection string          `json:"collection"`
	Limit      int             `json:"limit,omitempty"`
	Config     *generateConfig `json:"config,omitempty"`
}

type generateResponse struct {
	Query string `json:"query"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type validationResponse struct {
	Valid     bool     `json:"valid"`
	Sanitized string   `json:"sanitized"`
	Errors    []string `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

type runResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type collectionSummary struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	PropertyCount int    `json:"propertyCount"`
	Vectorized    bool   `json:"vectorized"`
}

type collectionList struct {
	Collections []collectionSummary `json:"collections"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type nameValidationResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type aliasEntry struct {
	Alias string `json:"alias"`
	Class string `json:"class"`
}

type aliasList struct {
	Aliases []aliasEntry `json:"aliases"`
}

type backupRequest struct {
	ID      string   `json:"id"`
	Include []string `json:"include,omitempty"`
}

type backupStatusResponse struct {
	ID     string `json:"id"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
