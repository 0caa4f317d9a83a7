package match_test

import (
	"context"
	"testing"

	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/match"
	"github.com/ritamzico/cyquery/internal/result"
)

func runMatch(t *testing.T, g graph.Adapter, query string) [][]string {
	t.Helper()
	q, err := cypher.Parse(query)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", query, err)
	}
	if len(q.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(q.Clauses))
	}
	mw, ok := q.Clauses[0].(*cypher.MatchWhereClause)
	if !ok {
		t.Fatalf("expected MatchWhereClause, got %T", q.Clauses[0])
	}
	ret, ok := q.Clauses[1].(*cypher.ReturnClause)
	if !ok {
		t.Fatalf("expected ReturnClause, got %T", q.Clauses[1])
	}

	cursor, err := match.RunMatch(g, mw, ret)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}

	var rows [][]string
	ctx := context.Background()
	for cursor.Next(ctx) {
		row := cursor.Row()
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = v.String()
		}
		rows = append(rows, strs)
	}
	if err := cursor.Err(); err != nil {
		t.Fatalf("cursor error: %v", err)
	}
	return rows
}

// Scenario 3: a bare unconstrained node still gets enumerated over
// the whole vertex universe.
func TestMatch_BareNodeKeypathProjection(t *testing.T) {
	g := graph.NewMultiGraph()
	g.AddVertex("SOMECLASS", graph.Document{"foo": {Kind: graph.StringVal, S: "bar"}})

	rows := runMatch(t, g, `MATCH (n) RETURN n.foo`)
	if len(rows) != 1 || rows[0][0] != "bar" {
		t.Fatalf("expected [[bar]], got %v", rows)
	}
}

// Scenario 4: nested document pattern match, labeled edge, WHERE over
// an integer property, projection through a nested keypath and a bare
// edge designation.
func TestMatch_NestedDocumentLabeledEdgeIntegerWhere(t *testing.T) {
	g := graph.NewMultiGraph()
	a, _ := g.AddVertex("A", graph.Document{
		"foo": {Kind: graph.DocumentVal, Doc: graph.Document{"goo": {Kind: graph.StringVal, S: "bar"}}},
	})
	b, _ := g.AddVertex("B", graph.Document{
		"qux": {Kind: graph.StringVal, S: "foobar"},
		"bar": {Kind: graph.IntVal, I: 10},
	})
	e, _ := g.AddEdge(a, b, "EDGECLASS", nil)

	rows := runMatch(t, g, `MATCH (n:A {foo: {goo: "bar"}})-[e:EDGECLASS]->(m:B) WHERE m.bar = 10 RETURN n.foo.goo, m.qux, e`)
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d: %v", len(rows), rows)
	}
	if rows[0][0] != "bar" || rows[0][1] != "foobar" || rows[0][2] != string(e) {
		t.Fatalf("expected [bar foobar %s], got %v", e, rows[0])
	}
}

// Scenario 5: a negated conjunction, rewritten via De Morgan, must
// still evaluate as the original AND's negation.
func TestMatch_NotOverConjunction(t *testing.T) {
	g := graph.NewMultiGraph()
	g.AddVertex("", graph.Document{"foo": {Kind: graph.StringVal, S: "bar"}})

	rows := runMatch(t, g, `MATCH (n) WHERE NOT (n.foo = "baz" AND n.foo = "bar") RETURN n.foo`)
	if len(rows) != 1 || rows[0][0] != "bar" {
		t.Fatalf("expected [[bar]] since the AND is false, got %v", rows)
	}
}

func TestMatch_EmptyGraphYieldsNoRows(t *testing.T) {
	g := graph.NewMultiGraph()
	rows := runMatch(t, g, `MATCH (n:ANYTHING) RETURN n`)
	if len(rows) != 0 {
		t.Fatalf("expected no rows on an empty graph, got %v", rows)
	}
}

func TestMatch_WhereOverMissingNestedKeyIsFalseNotError(t *testing.T) {
	g := graph.NewMultiGraph()
	g.AddVertex("FOO", nil)

	rows := runMatch(t, g, `MATCH (n:FOO) WHERE n.missing.deeper = "x" RETURN n`)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, a missing nested key must evaluate false not crash: %v", rows)
	}
}

// With more than one satisfying vertex for a designation, repeated
// runs of the same RunMatch call over the same unchanged graph must
// enumerate rows in byte-identical order every time.
func TestMatch_MultipleCandidatesYieldDeterministicOrderAcrossRuns(t *testing.T) {
	g := graph.NewMultiGraph()
	for _, name := range []string{"carol", "alice", "bob", "dave", "erin"} {
		g.AddVertex("PERSON", graph.Document{"name": {Kind: graph.StringVal, S: name}})
	}

	first := runMatch(t, g, `MATCH (n:PERSON) RETURN n.name`)
	if len(first) != 5 {
		t.Fatalf("expected 5 rows, got %d: %v", len(first), first)
	}
	for i := 0; i < 20; i++ {
		again := runMatch(t, g, `MATCH (n:PERSON) RETURN n.name`)
		if len(again) != len(first) {
			t.Fatalf("run %d: row count changed: %v vs %v", i, first, again)
		}
		for j := range first {
			if first[j][0] != again[j][0] {
				t.Fatalf("run %d: row order changed at index %d: %v vs %v", i, j, first, again)
			}
		}
	}
}

func TestMatch_ParallelEdgesWithDistinctLabels(t *testing.T) {
	g := graph.NewMultiGraph()
	a, _ := g.AddVertex("A", nil)
	b, _ := g.AddVertex("B", nil)
	g.AddEdge(a, b, "FOLLOWS", nil)
	wantEdge, _ := g.AddEdge(a, b, "BLOCKS", nil)

	rows := runMatch(t, g, `MATCH (x:A)-[e:BLOCKS]->(y:B) RETURN e`)
	if len(rows) != 1 || rows[0][0] != string(wantEdge) {
		t.Fatalf("expected the BLOCKS witness edge %s, got %v", wantEdge, rows)
	}
}

func TestMatch_UnknownReturnDesignationFailsBeforeAnyRow(t *testing.T) {
	g := graph.NewMultiGraph()
	g.AddVertex("FOO", nil)

	q, err := cypher.Parse(`MATCH (n:FOO) RETURN ghost`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mw := q.Clauses[0].(*cypher.MatchWhereClause)
	ret := q.Clauses[1].(*cypher.ReturnClause)

	if _, err := match.RunMatch(g, mw, ret); err == nil {
		t.Fatal("expected RunMatch to reject a RETURN on an undeclared designation")
	}
}

func TestRunCreate_SingleNodeWithClass(t *testing.T) {
	g := graph.NewMultiGraph()
	q, err := cypher.Parse(`CREATE (n:SOMECLASS) RETURN n`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cc := q.Clauses[0].(*cypher.CreateClause)
	ret := q.Clauses[1].(*cypher.ReturnClause)

	res, err := match.RunCreate(g, cc, ret)
	if err != nil {
		t.Fatalf("RunCreate failed: %v", err)
	}
	if len(g.Vertices()) != 1 {
		t.Fatalf("expected 1 vertex after create, got %d", len(g.Vertices()))
	}
	id := g.Vertices()[0]
	doc, _ := g.Vertex(id)
	class, ok := graph.ClassOf(doc)
	if !ok || class != "SOMECLASS" {
		t.Fatalf("expected class SOMECLASS, got %q (ok=%v)", class, ok)
	}
	row := res.(result.CreateResult).Row
	if len(row) != 1 || row[0].NodeID == nil || *row[0].NodeID != id {
		t.Fatalf("expected the RETURN row to bind n to %v, got %+v", id, row)
	}
}

func TestRunCreate_UnlabeledEdgeBetweenFreshNodes(t *testing.T) {
	g := graph.NewMultiGraph()
	q, err := cypher.Parse(`CREATE (n)-->(m) RETURN n, m`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cc := q.Clauses[0].(*cypher.CreateClause)
	ret := q.Clauses[1].(*cypher.ReturnClause)

	res, err := match.RunCreate(g, cc, ret)
	if err != nil {
		t.Fatalf("RunCreate failed: %v", err)
	}
	if len(g.Vertices()) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(g.Vertices()))
	}
	row := res.(result.CreateResult).Row
	nID, mID := *row[0].NodeID, *row[1].NodeID
	ids, err := g.EdgesBetween(nID, mID)
	if err != nil {
		t.Fatalf("EdgesBetween: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected exactly one edge n->m, got %d", len(ids))
	}
}
