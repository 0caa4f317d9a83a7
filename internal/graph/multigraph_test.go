package graph

import "testing"

func TestMultiGraph_AddVertex_StoresClassAndProps(t *testing.T) {
	g := NewMultiGraph()

	id, err := g.AddVertex("SOMECLASS", Document{"foo": {Kind: StringVal, S: "bar"}})
	if err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}

	doc, err := g.Vertex(id)
	if err != nil {
		t.Fatalf("Vertex failed: %v", err)
	}
	class, ok := ClassOf(doc)
	if !ok || class != "SOMECLASS" {
		t.Errorf("expected class SOMECLASS, got %q (ok=%v)", class, ok)
	}
	if doc["foo"].S != "bar" {
		t.Errorf("expected foo=bar, got %+v", doc["foo"])
	}
}

func TestMultiGraph_AddVertex_NoClass(t *testing.T) {
	g := NewMultiGraph()

	id, err := g.AddVertex("", nil)
	if err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	doc, err := g.Vertex(id)
	if err != nil {
		t.Fatalf("Vertex failed: %v", err)
	}
	if _, ok := ClassOf(doc); ok {
		t.Errorf("expected no class key, got %+v", doc)
	}
}

func TestMultiGraph_AddEdge_UnknownEndpointFails(t *testing.T) {
	g := NewMultiGraph()
	a, _ := g.AddVertex("A", nil)

	if _, err := g.AddEdge(a, "missing", "", nil); err == nil {
		t.Fatal("expected error adding edge to a nonexistent vertex")
	}
}

func TestMultiGraph_ParallelEdges_PreserveInsertionOrder(t *testing.T) {
	g := NewMultiGraph()
	a, _ := g.AddVertex("A", nil)
	b, _ := g.AddVertex("B", nil)

	e1, err := g.AddEdge(a, b, "FIRST", nil)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	e2, err := g.AddEdge(a, b, "SECOND", nil)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	ids, err := g.EdgesBetween(a, b)
	if err != nil {
		t.Fatalf("EdgesBetween failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != e1 || ids[1] != e2 {
		t.Fatalf("expected [%v %v], got %v", e1, e2, ids)
	}
}

func TestMultiGraph_EdgesBetween_UnknownPairIsEmptyNotError(t *testing.T) {
	g := NewMultiGraph()
	a, _ := g.AddVertex("A", nil)
	b, _ := g.AddVertex("B", nil)

	ids, err := g.EdgesBetween(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no edges, got %v", ids)
	}
}

func TestMultiGraph_FreshID_IsUniqueAndPrefixed(t *testing.T) {
	g := NewMultiGraph()
	a := g.FreshID()
	b := g.FreshID()
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	if len(a) < len("_id_") || a[:4] != "_id_" {
		t.Errorf("expected _id_ prefix, got %q", a)
	}
}
