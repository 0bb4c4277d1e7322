package query

// Shape is one of the fixed query shapes the generator can produce.
type Shape string

// Query shape constants.
const (
	ShapeNearVector  Shape = "near_vector"
	ShapeNearText    Shape = "near_text"
	ShapeHybrid      Shape = "hybrid"
	ShapeBM25        Shape = "bm25"
	ShapeGenerative  Shape = "generative"
	ShapeFilter      Shape = "filter"
	ShapeAggregation Shape = "aggregation"
	ShapeGroupBy     Shape = "group_by"
	ShapeSample      Shape = "sample"
)

// IsValid checks if the shape is one of the supported values.
func (s Shape) IsValid() bool {
	switch s {
	case ShapeNearVector, ShapeNearText, ShapeHybrid, ShapeBM25,
		ShapeGenerative, ShapeFilter, ShapeAggregation, ShapeGroupBy, ShapeSample:
		return true
	default:
		return false
	}
}
