package cyquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ritamzico/cyquery/internal/engine"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/result"
	"github.com/ritamzico/cyquery/internal/serialization"
)

type (
	Result       = result.Result
	MatchResult  = result.MatchResult
	CreateResult = result.CreateResult
	Row          = result.Row
	Value        = result.Value
	Cursor       = result.Cursor
)

// Graph is an in-memory labeled property directed multigraph paired
// with a query engine bound to it.
type Graph struct {
	Adapter graph.Adapter
	engine  engine.Engine
}

// New returns an empty graph.
func New() *Graph {
	g := graph.NewMultiGraph()
	return &Graph{Adapter: g, engine: engine.Engine{Graph: g}}
}

// Load reads a graph snapshot from r.
func Load(r io.Reader) (*Graph, error) {
	g, err := serialization.ReadJSON(r)
	if err != nil {
		return nil, err
	}
	return &Graph{Adapter: g, engine: engine.Engine{Graph: g}}, nil
}

// LoadFile reads a graph snapshot from a file at path.
func LoadFile(path string) (*Graph, error) {
	g, err := serialization.LoadJSON(path)
	if err != nil {
		return nil, err
	}
	return &Graph{Adapter: g, engine: engine.Engine{Graph: g}}, nil
}

// Query parses and runs a single MATCH/CREATE...RETURN statement.
func (g *Graph) Query(text string) (Result, error) {
	return g.engine.Execute(text)
}

// Save writes a snapshot of the graph to w.
func (g *Graph) Save(w io.Writer) error {
	mg, ok := g.Adapter.(*graph.MultiGraph)
	if !ok {
		return fmt.Errorf("graph adapter %T does not support snapshotting", g.Adapter)
	}
	return serialization.WriteJSON(mg, w)
}

// SaveFile writes a snapshot of the graph to a file at path.
func (g *Graph) SaveFile(path string) error {
	mg, ok := g.Adapter.(*graph.MultiGraph)
	if !ok {
		return fmt.Errorf("graph adapter %T does not support snapshotting", g.Adapter)
	}
	return serialization.SaveJSON(mg, path)
}

type jsonValue struct {
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func valueToJSON(v result.Value) jsonValue {
	switch {
	case v.NodeID != nil:
		return jsonValue{Kind: "node", Value: string(*v.NodeID)}
	case v.EdgeID != nil:
		return jsonValue{Kind: "edge", Value: string(*v.EdgeID)}
	case v.Scalar != nil:
		return scalarToJSON(*v.Scalar)
	default:
		return jsonValue{Kind: "null"}
	}
}

func scalarToJSON(v graph.Value) jsonValue {
	switch v.Kind {
	case graph.StringVal:
		return jsonValue{Kind: "string", Value: v.S}
	case graph.IntVal:
		return jsonValue{Kind: "int", Value: v.I}
	case graph.DocumentVal:
		return jsonValue{Kind: "document", Value: documentToPlain(v.Doc)}
	default:
		return jsonValue{Kind: "null"}
	}
}

func documentToPlain(doc graph.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = valueToPlain(v)
	}
	return out
}

func valueToPlain(v graph.Value) any {
	switch v.Kind {
	case graph.StringVal:
		return v.S
	case graph.IntVal:
		return v.I
	case graph.DocumentVal:
		return documentToPlain(v.Doc)
	default:
		return nil
	}
}

func rowToJSON(row result.Row) []jsonValue {
	out := make([]jsonValue, len(row))
	for i, v := range row {
		out[i] = valueToJSON(v)
	}
	return out
}

// drain pulls every row from a MATCH cursor to completion. It is only
// ever used for whole-result JSON rendering, never by the matcher
// itself, which stays lazy end to end.
func drain(cursor result.Cursor) ([][]jsonValue, error) {
	ctx := context.Background()
	var rows [][]jsonValue
	for cursor.Next(ctx) {
		rows = append(rows, rowToJSON(cursor.Row()))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// MarshalResultJSON renders a query result as JSON, draining a MATCH
// result's cursor fully in the process.
func MarshalResultJSON(r Result) ([]byte, error) {
	switch v := r.(type) {
	case result.MatchResult:
		rows, err := drain(v.Cursor)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Kind string      `json:"kind"`
			Rows [][]jsonValue `json:"rows"`
		}{"match", rows})
	case result.CreateResult:
		return json.Marshal(struct {
			Kind string      `json:"kind"`
			Row  []jsonValue `json:"row"`
		}{"create", rowToJSON(v.Row)})
	default:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Data string `json:"data"`
		}{"unknown", fmt.Sprintf("%v", r)})
	}
}
