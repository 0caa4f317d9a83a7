package graph

// NodeID uniquely identifies a vertex within a graph.
type NodeID string
