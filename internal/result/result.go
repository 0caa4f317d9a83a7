package result

import (
	"context"
	"fmt"
	"strings"

	"github.com/ritamzico/cyquery/internal/graph"
)

type Kind int

const (
	MatchResultKind Kind = iota
	CreateResultKind
)

// Result is whatever a query produces: a MATCH's lazily-pulled row
// stream, or a CREATE's single emitted row.
type Result interface {
	Kind() Kind
	String() string
}

// Value is one projected cell. Exactly one of NodeID, EdgeID or Scalar
// is set, depending on whether the projection named a bare
// designation (bound to a vertex or an edge witness) or a
// designation.key path (a property value).
type Value struct {
	NodeID *graph.NodeID
	EdgeID *graph.EdgeID
	Scalar *graph.Value
}

func (v Value) String() string {
	switch {
	case v.NodeID != nil:
		return string(*v.NodeID)
	case v.EdgeID != nil:
		return string(*v.EdgeID)
	case v.Scalar != nil:
		return scalarString(*v.Scalar)
	default:
		return "<null>"
	}
}

func scalarString(v graph.Value) string {
	switch v.Kind {
	case graph.StringVal:
		return v.S
	case graph.IntVal:
		return fmt.Sprintf("%d", v.I)
	case graph.DocumentVal:
		return fmt.Sprintf("%v", v.Doc)
	case graph.NullVal:
		return "null"
	default:
		return ""
	}
}

// Row is one projected tuple, in the order RETURN named its
// projections.
type Row []Value

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = v.String()
	}
	return strings.Join(parts, " | ")
}

// Cursor is the pull-based interface MATCH evaluation exposes: callers
// drive it one Next call at a time rather than receiving a
// pre-materialized slice, so a caller uninterested in every match can
// stop early without paying for the rest of the Cartesian product.
type Cursor interface {
	Next(ctx context.Context) bool
	Row() Row
	Err() error
}

// MatchResult wraps a Cursor over MATCH...WHERE...RETURN rows.
type MatchResult struct {
	Cursor Cursor
}

func (MatchResult) Kind() Kind { return MatchResultKind }

func (r MatchResult) String() string {
	return "match result (pull rows via Cursor)"
}

// CreateResult is the single row a CREATE...RETURN clause produces
// from the vertices and edges it just inserted.
type CreateResult struct {
	Row Row
}

func (CreateResult) Kind() Kind { return CreateResultKind }

func (r CreateResult) String() string {
	return r.Row.String()
}
