package graph

import (
	"sort"

	"github.com/google/uuid"
)

type pairKey struct {
	from, to NodeID
}

// MultiGraph is an in-memory adjacency-map implementation of Adapter.
// Unlike a single-edge-per-pair graph it allows parallel edges: out/in
// hold every edge touching a vertex, and between indexes edges by
// ordered endpoint pair in insertion order so EdgesBetween is stable.
type MultiGraph struct {
	nodes   map[NodeID]Document
	edges   map[EdgeID]*Edge
	out     map[NodeID][]*Edge
	in      map[NodeID][]*Edge
	between map[pairKey][]EdgeID
}

// NewMultiGraph returns an empty graph.
func NewMultiGraph() *MultiGraph {
	return &MultiGraph{
		nodes:   make(map[NodeID]Document),
		edges:   make(map[EdgeID]*Edge),
		out:     make(map[NodeID][]*Edge),
		in:      make(map[NodeID][]*Edge),
		between: make(map[pairKey][]EdgeID),
	}
}

func (g *MultiGraph) Vertices() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}

func (g *MultiGraph) Vertex(id NodeID) (Document, error) {
	doc, ok := g.nodes[id]
	if !ok {
		return nil, VertexDoesNotExist(id)
	}
	return doc, nil
}

func (g *MultiGraph) Edge(id EdgeID) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, EdgeDoesNotExist(id)
	}
	return e, nil
}

// Edges returns every edge grouped by source vertex id (sorted), in
// insertion order within each source, so parallel edges between a pair
// keep the order EdgesBetween reports for them.
func (g *MultiGraph) Edges() []*Edge {
	srcs := make([]NodeID, 0, len(g.out))
	for id := range g.out {
		srcs = append(srcs, id)
	}
	sort.Slice(srcs, func(i, j int) bool { return srcs[i] < srcs[j] })
	out := make([]*Edge, 0, len(g.edges))
	for _, src := range srcs {
		out = append(out, g.out[src]...)
	}
	return out
}

func (g *MultiGraph) EdgesBetween(src, dst NodeID) ([]EdgeID, error) {
	if _, ok := g.nodes[src]; !ok {
		return nil, EndpointDoesNotExist(src)
	}
	if _, ok := g.nodes[dst]; !ok {
		return nil, EndpointDoesNotExist(dst)
	}
	ids := g.between[pairKey{src, dst}]
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]EdgeID, len(ids))
	copy(out, ids)
	return out, nil
}

func (g *MultiGraph) AddVertex(class string, props Document) (NodeID, error) {
	id := NodeID(g.FreshID())
	doc := CloneDocument(props)
	if doc == nil {
		doc = make(Document)
	}
	if class != "" {
		doc["class"] = Value{Kind: StringVal, S: class}
	}
	g.nodes[id] = doc
	return id, nil
}

func (g *MultiGraph) AddEdge(src, dst NodeID, label string, props Document) (EdgeID, error) {
	if _, ok := g.nodes[src]; !ok {
		return "", EndpointDoesNotExist(src)
	}
	if _, ok := g.nodes[dst]; !ok {
		return "", EndpointDoesNotExist(dst)
	}
	id := EdgeID(g.FreshID())
	doc := CloneDocument(props)
	if doc == nil {
		doc = make(Document)
	}
	if label != "" {
		doc["edge_label"] = Value{Kind: StringVal, S: label}
	}
	e := &Edge{ID: id, From: src, To: dst, Props: doc}
	g.edges[id] = e
	g.out[src] = append(g.out[src], e)
	g.in[dst] = append(g.in[dst], e)
	key := pairKey{src, dst}
	g.between[key] = append(g.between[key], id)
	return id, nil
}

// FreshID mints a process-unique opaque string, the _id_-prefixed
// scheme the reference implementation's md5(random+time) hack was
// meant to approximate.
func (g *MultiGraph) FreshID() string {
	return "_id_" + uuid.NewString()
}

// RestoreVertex inserts a vertex under an exact, caller-supplied id,
// bypassing FreshID minting. It exists for serialization's snapshot
// loader, which must reproduce the ids a saved graph already has; it
// is not part of Adapter since ordinary queries never choose their
// own ids.
func (g *MultiGraph) RestoreVertex(id NodeID, doc Document) {
	g.nodes[id] = doc
}

// RestoreEdge inserts an edge under an exact, caller-supplied id, for
// the same snapshot-loading reason as RestoreVertex.
func (g *MultiGraph) RestoreEdge(id EdgeID, src, dst NodeID, doc Document) error {
	if _, ok := g.nodes[src]; !ok {
		return EndpointDoesNotExist(src)
	}
	if _, ok := g.nodes[dst]; !ok {
		return EndpointDoesNotExist(dst)
	}
	e := &Edge{ID: id, From: src, To: dst, Props: doc}
	g.edges[id] = e
	g.out[src] = append(g.out[src], e)
	g.in[dst] = append(g.in[dst], e)
	key := pairKey{src, dst}
	g.between[key] = append(g.between[key], id)
	return nil
}
