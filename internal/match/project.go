package match

import (
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/result"
)

// projectRow evaluates every RETURN projection against a binding,
// shared by both the matcher (one call per satisfying binding) and
// the create executor (one call for the newly inserted vertices and
// edges). A bare designation with no further segments yields the
// bound identifier itself; a keypath resolves into the bound
// record's document.
func projectRow(projections [][]string, binding map[string]graph.NodeID, edgeBinding map[string]graph.EdgeID, g graph.Adapter) (result.Row, error) {
	row := make(result.Row, len(projections))
	for i, proj := range projections {
		v, err := projectOne(proj, binding, edgeBinding, g)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func projectOne(proj []string, binding map[string]graph.NodeID, edgeBinding map[string]graph.EdgeID, g graph.Adapter) (result.Value, error) {
	head, rest := proj[0], proj[1:]

	if id, ok := binding[head]; ok {
		if len(rest) == 0 {
			return result.Value{NodeID: &id}, nil
		}
		doc, err := g.Vertex(id)
		if err != nil {
			return result.Value{}, err
		}
		v := resolveKeypath(doc, rest)
		return result.Value{Scalar: &v}, nil
	}
	if id, ok := edgeBinding[head]; ok {
		if len(rest) == 0 {
			return result.Value{EdgeID: &id}, nil
		}
		e, err := g.Edge(id)
		if err != nil {
			return result.Value{}, err
		}
		v := resolveKeypath(e.Props, rest)
		return result.Value{Scalar: &v}, nil
	}
	return result.Value{}, BindingError{Kind: "UnknownDesignation", Message: "RETURN references undeclared designation " + head}
}
