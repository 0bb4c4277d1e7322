package query

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestConfig_NilReceiverSafe(t *testing.T) {
	var c *Config

	if got := c.LimitOr(10); got != 10 {
		t.Errorf("nil.LimitOr(10) = %d, want 10", got)
	}
	if got := c.AlphaOr(DefaultAlpha); got != DefaultAlpha {
		t.Errorf("nil.AlphaOr = %v, want %v", got, DefaultAlpha)
	}
	if got := c.QueryOr("x"); got != "x" {
		t.Errorf("nil.QueryOr = %q, want x", got)
	}
	if c.HasDistance() || c.HasCertainty() {
		t.Error("nil config reports thresholds present")
	}
	if got := c.OffsetValue(); got != 0 {
		t.Errorf("nil.OffsetValue = %d, want 0", got)
	}
	if got := c.TenantName(); got != "" {
		t.Errorf("nil.TenantName = %q, want empty", got)
	}
	if c.SortSpecs() != nil || c.CustomVector() != nil || c.PropertyOverride() != nil {
		t.Error("nil config should return nil slices")
	}
	if got := c.OperatorOr("And"); got != "And" {
		t.Errorf("nil.OperatorOr = %q, want And", got)
	}
}

func TestConfig_LimitOr(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{"absent", nil, DefaultLimit},
		{"explicit", intPtr(25), 25},
		{"zero falls back", intPtr(0), DefaultLimit},
		{"negative falls back", intPtr(-3), DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Limit: tt.limit}
			if got := c.LimitOr(DefaultLimit); got != tt.want {
				t.Errorf("LimitOr = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfig_ExplicitZeroAlphaSurvives(t *testing.T) {
	c := &Config{Alpha: floatPtr(0)}
	if got := c.AlphaOr(DefaultAlpha); got != 0 {
		t.Errorf("AlphaOr with explicit 0 = %v, want 0", got)
	}
}

func TestConfig_ConceptsOr(t *testing.T) {
	fallback := []string{"your", "search", "concepts"}

	c := &Config{Concepts: []string{"wine"}}
	if got := c.ConceptsOr(fallback); !reflect.DeepEqual(got, []string{"wine"}) {
		t.Errorf("ConceptsOr = %v, want [wine]", got)
	}

	c = &Config{}
	if got := c.ConceptsOr(fallback); !reflect.DeepEqual(got, fallback) {
		t.Errorf("ConceptsOr = %v, want fallback", got)
	}
}

func TestConfig_OperatorOr(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"And", "And"},
		{"Or", "Or"},
		{"", "And"},
		{"XOR", "And"},
	}

	for _, tt := range tests {
		c := &Config{Operator: tt.op}
		if got := c.OperatorOr("And"); got != tt.want {
			t.Errorf("OperatorOr(%q) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
