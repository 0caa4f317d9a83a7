package serialization

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ritamzico/cyquery/internal/graph"
)

type serializedValue struct {
	Kind  string                     `json:"kind"`
	Value any                        `json:"value,omitempty"`
	Doc   map[string]serializedValue `json:"doc,omitempty"`
}

type serializedNode struct {
	ID    string                     `json:"id"`
	Props map[string]serializedValue `json:"props,omitempty"`
}

type serializedEdge struct {
	ID    string                     `json:"id"`
	From  string                     `json:"from"`
	To    string                     `json:"to"`
	Props map[string]serializedValue `json:"props,omitempty"`
}

type serializedGraph struct {
	Nodes []serializedNode `json:"nodes"`
	Edges []serializedEdge `json:"edges"`
}

func marshalValue(v graph.Value) serializedValue {
	switch v.Kind {
	case graph.IntVal:
		return serializedValue{Kind: "int", Value: v.I}
	case graph.StringVal:
		return serializedValue{Kind: "string", Value: v.S}
	case graph.DocumentVal:
		return serializedValue{Kind: "document", Doc: marshalDocument(v.Doc)}
	case graph.NullVal:
		return serializedValue{Kind: "null"}
	default:
		return serializedValue{Kind: "unknown"}
	}
}

func unmarshalValue(sv serializedValue) (graph.Value, error) {
	switch sv.Kind {
	case "int":
		f, ok := sv.Value.(float64)
		if !ok {
			return graph.Value{}, fmt.Errorf("expected number for int, got %T", sv.Value)
		}
		return graph.Value{Kind: graph.IntVal, I: int64(f)}, nil
	case "string":
		s, ok := sv.Value.(string)
		if !ok {
			return graph.Value{}, fmt.Errorf("expected string, got %T", sv.Value)
		}
		return graph.Value{Kind: graph.StringVal, S: s}, nil
	case "document":
		doc, err := unmarshalDocument(sv.Doc)
		if err != nil {
			return graph.Value{}, err
		}
		return graph.Value{Kind: graph.DocumentVal, Doc: doc}, nil
	case "null":
		return graph.Null, nil
	default:
		return graph.Value{}, fmt.Errorf("unknown serialized value kind %q", sv.Kind)
	}
}

func marshalDocument(doc graph.Document) map[string]serializedValue {
	out := make(map[string]serializedValue, len(doc))
	for k, v := range doc {
		out[k] = marshalValue(v)
	}
	return out
}

func unmarshalDocument(sd map[string]serializedValue) (graph.Document, error) {
	doc := make(graph.Document, len(sd))
	for k, sv := range sd {
		v, err := unmarshalValue(sv)
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", k, err)
		}
		doc[k] = v
	}
	return doc, nil
}

func toSerializedGraph(g *graph.MultiGraph) serializedGraph {
	ids := g.Vertices()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sNodes := make([]serializedNode, 0, len(ids))
	for _, id := range ids {
		doc, _ := g.Vertex(id)
		sNodes = append(sNodes, serializedNode{ID: string(id), Props: marshalDocument(doc)})
	}

	edges := g.Edges()
	sEdges := make([]serializedEdge, 0, len(edges))
	for _, e := range edges {
		sEdges = append(sEdges, serializedEdge{
			ID:    string(e.ID),
			From:  string(e.From),
			To:    string(e.To),
			Props: marshalDocument(e.Props),
		})
	}

	return serializedGraph{Nodes: sNodes, Edges: sEdges}
}

func fromSerializedGraph(sg serializedGraph) (*graph.MultiGraph, error) {
	g := graph.NewMultiGraph()
	seenNode := make(map[string]bool, len(sg.Nodes))

	for _, sn := range sg.Nodes {
		if seenNode[sn.ID] {
			return nil, fmt.Errorf("duplicate node id %q", sn.ID)
		}
		seenNode[sn.ID] = true
		doc, err := unmarshalDocument(sn.Props)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", sn.ID, err)
		}
		g.RestoreVertex(graph.NodeID(sn.ID), doc)
	}

	seenEdge := make(map[string]bool, len(sg.Edges))
	for _, se := range sg.Edges {
		if seenEdge[se.ID] {
			return nil, fmt.Errorf("duplicate edge id %q", se.ID)
		}
		seenEdge[se.ID] = true
		doc, err := unmarshalDocument(se.Props)
		if err != nil {
			return nil, fmt.Errorf("edge %s: %w", se.ID, err)
		}
		if err := g.RestoreEdge(graph.EdgeID(se.ID), graph.NodeID(se.From), graph.NodeID(se.To), doc); err != nil {
			return nil, fmt.Errorf("edge %s: %w", se.ID, err)
		}
	}

	return g, nil
}

// WriteJSON encodes a graph snapshot to JSON and writes it to w.
func WriteJSON(g *graph.MultiGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toSerializedGraph(g))
}

// ReadJSON decodes a graph snapshot from JSON read from r.
func ReadJSON(r io.Reader) (*graph.MultiGraph, error) {
	var sg serializedGraph
	if err := json.NewDecoder(r).Decode(&sg); err != nil {
		return nil, fmt.Errorf("decoding graph JSON: %w", err)
	}
	return fromSerializedGraph(sg)
}

// SaveJSON writes a graph snapshot to a JSON file at path.
func SaveJSON(g *graph.MultiGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// LoadJSON reads a graph snapshot from a JSON file at path.
func LoadJSON(path string) (*graph.MultiGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
