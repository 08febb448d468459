// Package transform holds the row-transformation capability and the
// composition wrapper that delegates to an injected implementation.
package transform

// Row is one record of the toy dataset used throughout the catalogue.
type Row struct {
	Letter string
	Number int
}

// Transformer is the capability a Pipeline is composed over. Implementations
// must not mutate the input slice.
type Transformer interface {
	Transform(rows []Row) []Row
}

// ThresholdFilter keeps rows whose Number does not exceed Limit.
type ThresholdFilter struct {
	Limit int
}

// Transform returns the rows with Number <= Limit, preserving input order.
func (f ThresholdFilter) Transform(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Number <= f.Limit {
			out = append(out, r)
		}
	}
	return out
}

// Pipeline wraps a single injected Transformer. It carries no logic of its
// own: Run hands the rows to the transformer unchanged. The field is the
// interface, never a concrete type, so any variant can be substituted.
type Pipeline struct {
	transformer Transformer
}

// NewPipeline constructs a Pipeline around the given transformer.
func NewPipeline(t Transformer) *Pipeline {
	return &Pipeline{transformer: t}
}

// Run delegates to the injected transformer.
func (p *Pipeline) Run(rows []Row) []Row {
	return p.transformer.Transform(rows)
}
