package logs

// Span identifies one unit of work, such as a single equivalence check.
type Span string

type spanKey struct{}

var SpanKey spanKey
