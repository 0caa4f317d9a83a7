package engine

import (
	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/match"
	"github.com/ritamzico/cyquery/internal/result"
)

// QueryError reports a clause-shape violation the grammar itself
// cannot express, such as a statement missing its RETURN.
type QueryError struct {
	Kind    string
	Message string
}

func (e QueryError) Error() string {
	return "query error (" + e.Kind + "): " + e.Message
}

// Engine executes parsed queries against a graph.
type Engine struct {
	Graph graph.Adapter
}

// Execute parses text and runs it against the engine's graph. Only
// the two legal shapes are accepted: MATCH [WHERE] RETURN, or CREATE
// RETURN.
func (ie *Engine) Execute(text string) (result.Result, error) {
	q, err := cypher.Parse(text)
	if err != nil {
		return nil, err
	}
	return ie.ExecuteParsed(q)
}

// ExecuteParsed runs an already-parsed query, for callers that parse
// once and want to reuse the AST.
func (ie *Engine) ExecuteParsed(q *cypher.Query) (result.Result, error) {
	if len(q.Clauses) != 2 {
		return nil, QueryError{Kind: "ClauseCount", Message: "a query must have exactly a MATCH/CREATE clause followed by a RETURN clause"}
	}

	ret, ok := q.Clauses[1].(*cypher.ReturnClause)
	if !ok {
		return nil, QueryError{Kind: "MissingReturn", Message: "the second clause must be RETURN"}
	}

	switch first := q.Clauses[0].(type) {
	case *cypher.MatchWhereClause:
		cursor, err := match.RunMatch(ie.Graph, first, ret)
		if err != nil {
			return nil, err
		}
		return result.MatchResult{Cursor: cursor}, nil
	case *cypher.CreateClause:
		return match.RunCreate(ie.Graph, first, ret)
	default:
		return nil, QueryError{Kind: "InvalidFirstClause", Message: "a query must begin with MATCH or CREATE"}
	}
}
