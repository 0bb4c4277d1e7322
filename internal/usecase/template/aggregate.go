package template

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Up to this many properties get an example where-operand; up to this many
// get an aggregation block.
const (
	maxFilterOperands  = 3
	maxAggregateFields = 5
)

// Filter renders a Get query with a where clause of example operands, one
// per scanned property, operator and value field chosen by declared type.
func (g *Generator) Filter(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	var whereLines []string
	operands := filterOperands(class)
	if len(operands) == 0 {
		whereLines = []string{
			"# Replace path and value with a real property",
			`path: ["propertyName"]`,
			"operator: Equal",
			`valueText: "example"`,
		}
	} else {
		whereLines = append(whereLines, "operator: "+cfg.OperatorOr("And"), "operands: [")
		for _, op := range operands {
			whereLines = append(whereLines, "  {")
			for _, l := range op {
				whereLines = append(whereLines, "    "+l)
			}
			whereLines = append(whereLines, "  }")
		}
		whereLines = append(whereLines, "]")
	}

	args := append(commonArgs(limit, cfg), block("where", whereLines))
	fields := append(g.selectFields(class), additionalLines(cfg, false)...)
	return getQuery(collection, nil, args, fields)
}

// filterOperands builds example operand lines for up to three properties.
func filterOperands(class *schema.Class) [][]string {
	if class == nil {
		return nil
	}
	var ops [][]string
	for _, p := range class.Properties {
		if len(ops) == maxFilterOperands {
			break
		}
		if p.Name == "" || !schema.IsPrimitive(p) {
			continue
		}
		ops = append(ops, operandFor(p))
	}
	return ops
}

func operandFor(p schema.Property) []string {
	path := fmt.Sprintf("path: [%q]", p.Name)
	switch schema.KindOf(p) {
	case schema.KindText:
		return []string{path, "operator: Like", `valueText: "*example*"`}
	case schema.KindNumber:
		return []string{path, "operator: GreaterThan", "valueNumber: 0"}
	case schema.KindBool:
		return []string{path, "operator: Equal", "valueBoolean: true"}
	case schema.KindDate:
		return []string{path, "operator: GreaterThan", `valueDate: "2024-01-01T00:00:00Z"`}
	default:
		return []string{path, "operator: Equal", `valueText: "example"`}
	}
}

// Aggregation renders per-property aggregation blocks for up to five
// properties; with no schema it falls back to a commented generic skeleton.
func (g *Generator) Aggregation(collection string, _ int, cfg *query.Config) string {
	class := g.class(collection)

	lines := []string{"meta {", "  count", "}"}
	counted := 0
	if class != nil {
		for _, p := range class.Properties {
			if counted == maxAggregateFields {
				break
			}
			agg := aggregateLines(p)
			if agg == nil {
				continue
			}
			lines = append(lines, agg...)
			counted++
		}
	}
	if counted == 0 {
		lines = append(lines,
			"# Add per-property blocks, for example:",
			"# wordCount { count mean maximum }",
		)
	}

	return aggregateQuery(collection, "", cfg, lines)
}

// aggregateLines renders one property's aggregation block by declared type.
func aggregateLines(p schema.Property) []string {
	if p.Name == "" {
		return nil
	}
	switch schema.KindOf(p) {
	case schema.KindText:
		return []string{
			p.Name + " {",
			"  count",
			"  topOccurrences {",
			"    value",
			"    occurs",
			"  }",
			"}",
		}
	case schema.KindNumber:
		return []string{
			p.Name + " {",
			"  count",
			"  minimum",
			"  maximum",
			"  mean",
			"  median",
			"  sum",
			"}",
		}
	case schema.KindBool:
		return []string{
			p.Name + " {",
			"  count",
			"  totalTrue",
			"  totalFalse",
			"  percentageTrue",
			"  percentageFalse",
			"}",
		}
	case schema.KindDate:
		return []string{
			p.Name + " {",
			"  count",
			"  minimum",
			"  maximum",
			"}",
		}
	default:
		return nil
	}
}

// GroupBy renders an aggregation grouped by the first text property, or a
// fixed fallback key without one.
func (g *Generator) GroupBy(collection string, _ int, cfg *query.Config) string {
	class := g.class(collection)

	groupKey := "category"
	if names := schema.TextProperties(class, 1); len(names) > 0 {
		groupKey = names[0]
	}

	lines := []string{
		"groupedBy {",
		"  path",
		"  value",
		"}",
		"meta {",
		"  count",
		"}",
	}
	groupArg := fmt.Sprintf("groupBy: [%q]", groupKey)
	return aggregateQuery(collection, groupArg, cfg, lines)
}

// aggregateQuery assembles an Aggregate query. arg, when non-empty, is the
// single argument rendered in parentheses (tenant is appended when set).
func aggregateQuery(collection, arg string, cfg *query.Config, lines []string) string {
	args := make([]string, 0, 2)
	if arg != "" {
		args = append(args, arg)
	}
	if tenant := cfg.TenantName(); tenant != "" {
		args = append(args, fmt.Sprintf("tenant: %q", tenant))
	}

	var b strings.Builder
	b.WriteString("{\n  Aggregate {\n")
	if len(args) > 0 {
		b.WriteString("    " + collection + "(" + strings.Join(args, ", ") + ") {\n")
	} else {
		b.WriteString("    " + collection + " {\n")
	}
	for _, l := range lines {
		writeIndented(&b, l, "      ")
	}
	b.WriteString("    }\n  }\n}")
	return b.String()
}

// Sample renders a plain Get query with schema-derived field selection.
func (g *Generator) Sample(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)
	args := commonArgs(limit, cfg)
	fields := append(g.selectFields(class), additionalLines(cfg, false)...)
	return getQuery(collection, nil, args, fields)
}
