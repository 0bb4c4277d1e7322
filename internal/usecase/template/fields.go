package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Field selection limits: primitives first, then one geo property, then
// cross-references up to the overall cap.
const (
	maxPrimitiveFields = 3
	maxSelectedFields  = 6
	maxFallbackFields  = 3
)

// selectFields chooses the default return-field lines for a class. The
// result never includes the _additional block; generators append that
// themselves so the id invariant holds for every Get query.
func (g *Generator) selectFields(class *schema.Class) []string {
	if class == nil || len(class.Properties) == 0 {
		return []string{"# Add the properties you want returned"}
	}

	var lines []string
	selected := 0

	for _, p := range class.Properties {
		if selected == maxPrimitiveFields {
			break
		}
		if schema.IsPrimitive(p) && p.Name != "" {
			lines = append(lines, p.Name)
			selected++
		}
	}

	for _, p := range class.Properties {
		if schema.KindOf(p) == schema.KindGeo && p.Name != "" {
			lines = append(lines, p.Name+" {", "  latitude", "  longitude", "}")
			selected++
			break
		}
	}

	for _, p := range class.Properties {
		if selected >= maxSelectedFields {
			break
		}
		if schema.KindOf(p) == schema.KindReference && p.Name != "" {
			lines = append(lines, g.referenceLines(p)...)
			selected++
		}
	}

	if len(lines) == 0 {
		// Nothing classified: list the first few raw names as-is.
		for i, p := range class.Properties {
			if i == maxFallbackFields {
				break
			}
			if p.Name != "" {
				lines = append(lines, p.Name)
			}
		}
	}

	if len(lines) == 0 {
		return []string{"# Add the properties you want returned"}
	}
	return lines
}

// referenceLines expands a cross-reference property into an inline fragment
// on the referenced class. When the referenced class is present in the
// schema payload its primitive properties are selected; otherwise only the
// object id is.
func (g *Generator) referenceLines(p schema.Property) []string {
	target := schema.ReferencedClass(p)

	lines := []string{
		"# Cross-reference: result fan-out may be large",
		p.Name + " {",
		"  ... on " + target + " {",
	}

	refClass := schema.Lookup(g.payload, target)
	if refClass != nil {
		for _, rp := range refClass.Properties {
			if schema.IsPrimitive(rp) && rp.Name != "" {
				lines = append(lines, "    "+rp.Name)
			}
		}
	}

	lines = append(lines,
		"    _additional {",
		"      id",
		"    }",
		"  }",
		"}",
	)
	return lines
}

// additionalLines renders the _additional metadata block every Get query
// carries. includeDistance adds the similarity distance for vector shapes.
func additionalLines(cfg *query.Config, includeDistance bool) []string {
	lines := []string{"_additional {", "  id"}
	if includeDistance {
		lines = append(lines, "  distance")
	}
	if cfg != nil && (cfg.IncludeVector || cfg.IncludeVectors) {
		lines = append(lines, "  vector")
	}
	return append(lines, "}")
}

// commonArgs renders the argument lines shared by every Get-style query:
// limit, then offset, tenant, and sort when configured.
func commonArgs(limit int, cfg *query.Config) []string {
	args := []string{fmt.Sprintf("limit: %d", limit)}
	if off := cfg.OffsetValue(); off > 0 {
		args = append(args, fmt.Sprintf("offset: %d", off))
	}
	if tenant := cfg.TenantName(); tenant != "" {
		args = append(args, fmt.Sprintf("tenant: %q", tenant))
	}
	if sorts := cfg.SortSpecs(); len(sorts) > 0 {
		args = append(args, sortArg(sorts))
	}
	return args
}

func sortArg(sorts []query.SortSpec) string {
	clauses := make([]string, 0, len(sorts))
	for _, s := range sorts {
		order := s.Order
		if order != "asc" && order != "desc" {
			order = "asc"
		}
		clauses = append(clauses, fmt.Sprintf("{path: [%q], order: %s}", s.Path, order))
	}
	return "sort: [" + strings.Join(clauses, ", ") + "]"
}

// getQuery assembles a Get query from argument lines and selection lines.
// headComments, if any, are emitted above the query body.
func getQuery(collection string, headComments, args, fields []string) string {
	var b strings.Builder
	for _, c := range headComments {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	b.WriteString("{\n  Get {\n")
	b.WriteString("    " + collection + "(\n")
	for _, a := range args {
		writeIndented(&b, a, "      ")
	}
	b.WriteString("    ) {\n")
	for _, f := range fields {
		writeIndented(&b, f, "      ")
	}
	b.WriteString("    }\n  }\n}")
	return b.String()
}

// writeIndented writes a possibly multiline fragment, prefixing every line.
func writeIndented(b *strings.Builder, fragment, prefix string) {
	for _, line := range strings.Split(fragment, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// block renders a named argument block: name: { lines... }.
func block(name string, lines []string) string {
	var b strings.Builder
	b.WriteString(name + ": {\n")
	for _, l := range lines {
		b.WriteString("  " + l + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// escapeString escapes backslashes and double quotes for embedding in a
// GraphQL string literal.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// formatConcepts renders a concepts list: ["a", "b"].
func formatConcepts(concepts []string) string {
	quoted := make([]string, 0, len(concepts))
	for _, c := range concepts {
		quoted = append(quoted, `"`+escapeString(c)+`"`)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatProperties renders a property-name list: ["title", "content"].
func formatProperties(names []string) string {
	return formatConcepts(names)
}

// formatVector renders a literal vector: [0.1, 0.2, 0.3].
func formatVector(v []float32) string {
	parts := make([]string, 0, len(v))
	for _, f := range v {
		parts = append(parts, strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatNumber renders a float without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// thresholdLine renders the similarity threshold. Distance takes precedence
// when both are configured; neither configured falls back to the default
// certainty.
func thresholdLine(cfg *query.Config) string {
	if cfg.HasDistance() {
		return "distance: " + formatNumber(cfg.DistanceValue())
	}
	if cfg.HasCertainty() {
		return "certainty: " + formatNumber(cfg.CertaintyValue())
	}
	return "certainty: " + formatNumber(query.DefaultCertainty)
}
