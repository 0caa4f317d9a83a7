package match

import (
	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/result"
)

// RunCreate inserts every pattern node then every pattern edge a
// CREATE clause describes, in declaration order, then evaluates
// RETURN once against the freshly minted designations.
func RunCreate(g graph.Adapter, clause *cypher.CreateClause, ret *cypher.ReturnClause) (result.Result, error) {
	binding := make(map[string]graph.NodeID)
	edgeBinding := make(map[string]graph.EdgeID)
	nodeIDs := make(map[*cypher.PatternNode]graph.NodeID)

	for _, path := range clause.Paths {
		for _, n := range path.Nodes {
			if _, already := nodeIDs[n]; already {
				continue
			}
			id, err := g.AddVertex(n.Class, n.Conditions)
			if err != nil {
				return nil, err
			}
			nodeIDs[n] = id
			if n.Designation != "" {
				binding[n.Designation] = id
			}
		}
	}

	for _, path := range clause.Paths {
		for _, e := range path.Edges {
			src, ok := nodeIDs[e.Source]
			if !ok {
				return nil, BindingError{Kind: "UnresolvedEndpoint", Message: "CREATE edge references a node it never created"}
			}
			dst, ok := nodeIDs[e.Target]
			if !ok {
				return nil, BindingError{Kind: "UnresolvedEndpoint", Message: "CREATE edge references a node it never created"}
			}
			id, err := g.AddEdge(src, dst, e.Label, nil)
			if err != nil {
				return nil, err
			}
			if e.Designation != "" {
				edgeBinding[e.Designation] = id
			}
		}
	}

	nodeDes := make([]string, 0, len(binding))
	for d := range binding {
		nodeDes = append(nodeDes, d)
	}
	edgeDes := make(map[string]bool, len(edgeBinding))
	for d := range edgeBinding {
		edgeDes[d] = true
	}
	if err := validateReturn(ret.Projections, nodeDes, edgeDes); err != nil {
		return nil, err
	}

	row, err := projectRow(ret.Projections, binding, edgeBinding, g)
	if err != nil {
		return nil, err
	}
	return result.CreateResult{Row: row}, nil
}
