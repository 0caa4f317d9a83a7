package match

import (
	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/graph"
)

// resolveValue looks up keypath[0] as a node or edge designation,
// fetches its document from g, and traverses the remaining segments.
// Comparisons always carry a keypath of length >= 2 (enforced at
// parse time), so there is always at least one segment to traverse.
func resolveValue(keypath []string, binding map[string]graph.NodeID, edgeBinding map[string]graph.EdgeID, g graph.Adapter) (graph.Value, error) {
	head, rest := keypath[0], keypath[1:]
	if id, ok := binding[head]; ok {
		doc, err := g.Vertex(id)
		if err != nil {
			return graph.Value{}, err
		}
		return resolveKeypath(doc, rest), nil
	}
	if id, ok := edgeBinding[head]; ok {
		e, err := g.Edge(id)
		if err != nil {
			return graph.Value{}, err
		}
		return resolveKeypath(e.Props, rest), nil
	}
	return graph.Value{}, BindingError{Kind: "UnknownDesignation", Message: "WHERE references undeclared designation " + head}
}

// evalConstraint is the predicate evaluator's recursive descent over
// the WHERE tree. There is no And case: AND was rewritten via De
// Morgan into Not(Or(Not, Not)) at parse time.
func evalConstraint(c cypher.Constraint, binding map[string]graph.NodeID, edgeBinding map[string]graph.EdgeID, g graph.Adapter) (bool, error) {
	switch node := c.(type) {
	case *cypher.Comparison:
		lhs, err := resolveValue(node.Keypath, binding, edgeBinding, g)
		if err != nil {
			return false, err
		}
		return compare(node.Op, lhs, node.Value), nil
	case *cypher.Or:
		left, err := evalConstraint(node.Left, binding, edgeBinding, g)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return evalConstraint(node.Right, binding, edgeBinding, g)
	case *cypher.Not:
		inner, err := evalConstraint(node.X, binding, edgeBinding, g)
		if err != nil {
			return false, err
		}
		return !inner, nil
	default:
		return false, BindingError{Kind: "UnknownConstraint", Message: "unrecognized WHERE node"}
	}
}

// compare dispatches a comparison operator over a resolved lhs value
// and a literal rhs. Numeric comparison applies only when both sides
// are integers; string (in)equality applies only when both sides are
// strings. Any other pairing of types evaluates to false for every
// operator rather than an error.
func compare(op string, lhs graph.Value, rhs cypher.ComparisonValue) bool {
	if rhs.Int != nil {
		if lhs.Kind != graph.IntVal {
			return false
		}
		return compareInt(op, lhs.I, *rhs.Int)
	}
	if rhs.Str != nil {
		if lhs.Kind != graph.StringVal {
			return false
		}
		return compareString(op, lhs.S, *rhs.Str)
	}
	return false
}

func compareInt(op string, a, b int64) bool {
	switch op {
	case "=":
		return a == b
	case "!=":
		return a != b
	case ">":
		return a > b
	case "<":
		return a < b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	default:
		return false
	}
}

func compareString(op string, a, b string) bool {
	switch op {
	case "=":
		return a == b
	case "!=":
		return a != b
	default:
		return false
	}
}
