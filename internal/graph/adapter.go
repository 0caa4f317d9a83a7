package graph

// Adapter is the capability layer the matcher and create executor
// depend on. It treats the underlying store abstractly: enumerate
// vertices, fetch a vertex record, iterate edges between two
// vertices, insert a vertex, insert an edge.
type Adapter interface {
	// Vertices returns every vertex id currently in the graph, in no
	// particular order; callers that need determinism sort it.
	Vertices() []NodeID

	// Vertex returns the document stored for id, including its
	// reserved class key if one was set.
	Vertex(id NodeID) (Document, error)

	// Edge returns the edge record for id.
	Edge(id EdgeID) (*Edge, error)

	// Edges returns every edge in the graph, in a stable order. It is
	// not part of the matcher's contract (the matcher only ever needs
	// EdgesBetween); it exists for whole-graph tooling such as
	// serialization.
	Edges() []*Edge

	// EdgesBetween returns the ids of edges from src to dst, in the
	// order they were inserted. The matcher's edge-witness selection
	// depends on this order being stable across calls.
	EdgesBetween(src, dst NodeID) ([]EdgeID, error)

	// AddVertex inserts a fresh vertex. class, if non-empty, is stored
	// under the document's reserved class key alongside props.
	AddVertex(class string, props Document) (NodeID, error)

	// AddEdge inserts a fresh directed edge from src to dst. label, if
	// non-empty, is stored under the document's reserved edge_label
	// key alongside props.
	AddEdge(src, dst NodeID, label string, props Document) (EdgeID, error)

	// FreshID mints a process-unique opaque identifier string.
	FreshID() string
}
