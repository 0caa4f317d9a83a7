package engine_test

import (
	"context"
	"testing"

	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/engine"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/result"
)

func TestExecute_MatchReturnsRows(t *testing.T) {
	g := graph.NewMultiGraph()
	g.AddVertex("PERSON", graph.Document{"name": {Kind: graph.StringVal, S: "ada"}})

	ie := &engine.Engine{Graph: g}
	res, err := ie.Execute(`MATCH (n:PERSON) RETURN n.name`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	mr, ok := res.(result.MatchResult)
	if !ok {
		t.Fatalf("expected MatchResult, got %T", res)
	}
	ctx := context.Background()
	var rows []string
	for mr.Cursor.Next(ctx) {
		rows = append(rows, mr.Cursor.Row().String())
	}
	if err := mr.Cursor.Err(); err != nil {
		t.Fatalf("cursor error: %v", err)
	}
	if len(rows) != 1 || rows[0] != "ada" {
		t.Fatalf("expected one row [ada], got %v", rows)
	}
}

func TestExecute_CreateReturnsRow(t *testing.T) {
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	res, err := ie.Execute(`CREATE (n:PERSON {name: "ada"}) RETURN n`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	cr, ok := res.(result.CreateResult)
	if !ok {
		t.Fatalf("expected CreateResult, got %T", res)
	}
	if len(cr.Row) != 1 || cr.Row[0].NodeID == nil {
		t.Fatalf("expected a single node binding, got %+v", cr.Row)
	}
	if len(g.Vertices()) != 1 {
		t.Fatalf("expected 1 vertex created, got %d", len(g.Vertices()))
	}
}

// Creating (n:A)-[:R]->(m:B) then matching (x:A)-[:R]->(y:B) RETURN
// x, y must yield at least the created pair.
func TestExecute_CreateThenMatchRoundTrip(t *testing.T) {
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	createRes, err := ie.Execute(`CREATE (n:A)-[:R]->(m:B) RETURN n, m`)
	if err != nil {
		t.Fatalf("CREATE failed: %v", err)
	}
	cr := createRes.(result.CreateResult)
	createdN, createdM := *cr.Row[0].NodeID, *cr.Row[1].NodeID

	matchRes, err := ie.Execute(`MATCH (x:A)-[:R]->(y:B) RETURN x, y`)
	if err != nil {
		t.Fatalf("MATCH failed: %v", err)
	}
	mr := matchRes.(result.MatchResult)

	ctx := context.Background()
	found := false
	for mr.Cursor.Next(ctx) {
		row := mr.Cursor.Row()
		if *row[0].NodeID == createdN && *row[1].NodeID == createdM {
			found = true
		}
	}
	if err := mr.Cursor.Err(); err != nil {
		t.Fatalf("cursor error: %v", err)
	}
	if !found {
		t.Fatalf("expected MATCH to find the created pair (%v, %v)", createdN, createdM)
	}
}

func TestExecute_MalformedQueryIsParseError(t *testing.T) {
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	_, err := ie.Execute(`MATCH (n RETURN n`)
	if err == nil {
		t.Fatal("expected an error for a malformed query")
	}
	if _, ok := err.(*cypher.ParseError); !ok {
		t.Fatalf("expected *cypher.ParseError, got %T: %v", err, err)
	}
}

func TestExecuteParsed_RejectsMissingReturn(t *testing.T) {
	q := &cypher.Query{
		Clauses: []cypher.Clause{
			&cypher.MatchWhereClause{
				Paths: []*cypher.PatternPath{{Nodes: []*cypher.PatternNode{{Designation: "n"}}}},
			},
		},
	}
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	_, err := ie.ExecuteParsed(q)
	if err == nil {
		t.Fatal("expected an error for a one-clause query")
	}
	qe, ok := err.(engine.QueryError)
	if !ok {
		t.Fatalf("expected engine.QueryError, got %T", err)
	}
	if qe.Kind != "ClauseCount" {
		t.Fatalf("expected ClauseCount, got %q", qe.Kind)
	}
}

func TestExecuteParsed_RejectsSecondClauseNotReturn(t *testing.T) {
	q := &cypher.Query{
		Clauses: []cypher.Clause{
			&cypher.MatchWhereClause{
				Paths: []*cypher.PatternPath{{Nodes: []*cypher.PatternNode{{Designation: "n"}}}},
			},
			&cypher.CreateClause{},
		},
	}
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	_, err := ie.ExecuteParsed(q)
	if err == nil {
		t.Fatal("expected an error when the second clause isn't RETURN")
	}
	qe, ok := err.(engine.QueryError)
	if !ok {
		t.Fatalf("expected engine.QueryError, got %T", err)
	}
	if qe.Kind != "MissingReturn" {
		t.Fatalf("expected MissingReturn, got %q", qe.Kind)
	}
}

func TestExecuteParsed_RejectsInvalidFirstClause(t *testing.T) {
	q := &cypher.Query{
		Clauses: []cypher.Clause{
			&cypher.ReturnClause{},
			&cypher.ReturnClause{},
		},
	}
	g := graph.NewMultiGraph()
	ie := &engine.Engine{Graph: g}

	_, err := ie.ExecuteParsed(q)
	if err == nil {
		t.Fatal("expected an error when the first clause is neither MATCH nor CREATE")
	}
	qe, ok := err.(engine.QueryError)
	if !ok {
		t.Fatalf("expected engine.QueryError, got %T", err)
	}
	if qe.Kind != "InvalidFirstClause" {
		t.Fatalf("expected InvalidFirstClause, got %q", qe.Kind)
	}
}
