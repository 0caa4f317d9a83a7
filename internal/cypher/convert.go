package cypher

import "github.com/ritamzico/cyquery/internal/graph"

// convertQuery turns participle's raw parse tree into the domain AST.
// Clause ordering and arity (MATCH-WHERE-RETURN vs CREATE-RETURN) are
// not checked here; that belongs to the engine.
func convertQuery(gq *grammarQuery) (*Query, error) {
	clauses := make([]Clause, 0, len(gq.Clauses))
	for _, gc := range gq.Clauses {
		c, err := convertClause(gc)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return &Query{Clauses: clauses}, nil
}

func convertClause(gc *grammarClause) (Clause, error) {
	switch {
	case gc.MatchWhere != nil:
		paths, err := convertPattern(gc.MatchWhere.Pattern)
		if err != nil {
			return nil, err
		}
		var where Constraint
		if gc.MatchWhere.Where != nil {
			where, err = convertOr(gc.MatchWhere.Where)
			if err != nil {
				return nil, err
			}
		}
		return &MatchWhereClause{Paths: paths, Where: where}, nil
	case gc.Create != nil:
		paths, err := convertPattern(gc.Create.Pattern)
		if err != nil {
			return nil, err
		}
		return &CreateClause{Paths: paths}, nil
	case gc.Return != nil:
		projections := make([][]string, 0, len(gc.Return.Projections))
		for _, kp := range gc.Return.Projections {
			projections = append(projections, append([]string(nil), kp.Segments...))
		}
		return &ReturnClause{Projections: projections}, nil
	default:
		return nil, &ParseError{Message: "empty clause"}
	}
}

func convertPattern(gp *grammarPattern) ([]*PatternPath, error) {
	paths := make([]*PatternPath, 0, len(gp.Paths))
	for _, gpath := range gp.Paths {
		p, err := convertPath(gpath)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func convertPath(gp *grammarPath) (*PatternPath, error) {
	head, err := convertNode(gp.Head)
	if err != nil {
		return nil, err
	}
	path := &PatternPath{Nodes: []*PatternNode{head}}
	left := head
	for _, step := range gp.Tail {
		right, err := convertNode(step.Node)
		if err != nil {
			return nil, err
		}
		edge, err := convertEdge(step.Edge, left, right)
		if err != nil {
			return nil, err
		}
		path.Nodes = append(path.Nodes, right)
		path.Edges = append(path.Edges, edge)
		left = right
	}
	return path, nil
}

func convertNode(gn *grammarNode) (*PatternNode, error) {
	n := &PatternNode{}
	if gn.Designation != nil {
		n.Designation = *gn.Designation
	}
	if gn.Class != nil {
		n.Class = *gn.Class
	}
	// The grammar's node production only allows cond_list in the
	// ( KEY : NAME cond_list ) form: a bare designation or a bare class
	// may never carry properties.
	if len(gn.Props) > 0 && (gn.Designation == nil || gn.Class == nil) {
		return nil, &SemanticError{Message: "node properties require both a designation and a class, e.g. (k:NAME {...})"}
	}
	doc, err := convertProps(gn.Props)
	if err != nil {
		return nil, err
	}
	n.Conditions = doc
	return n, nil
}

func convertProps(props []*grammarProp) (graph.Document, error) {
	if len(props) == 0 {
		return nil, nil
	}
	doc := make(graph.Document, len(props))
	for _, p := range props {
		v, err := convertPropValue(p.Value)
		if err != nil {
			return nil, err
		}
		doc[p.Key] = v
	}
	return doc, nil
}

func convertPropValue(pv *grammarPropValue) (graph.Value, error) {
	switch {
	case pv.Str != nil:
		return graph.Value{Kind: graph.StringVal, S: unquote(*pv.Str)}, nil
	case pv.Int != nil:
		return graph.Value{Kind: graph.IntVal, I: *pv.Int}, nil
	case pv.Nested != nil:
		doc, err := convertProps(pv.Nested)
		if err != nil {
			return graph.Value{}, err
		}
		return graph.Value{Kind: graph.DocumentVal, Doc: doc}, nil
	default:
		return graph.Value{}, &ParseError{Message: "empty property value"}
	}
}

// convertEdge resolves an edge literal's arrow direction against the
// two pattern nodes it sits between, filling Source/Target so the
// extractor and matcher never need to reason about left-to-right
// reading order again.
func convertEdge(ge *grammarEdge, left, right *PatternNode) (*PatternEdge, error) {
	switch {
	case ge.Unlabeled != nil:
		e := &PatternEdge{}
		switch ge.Unlabeled.Arrow {
		case "-->":
			e.Source, e.Target = left, right
		case "<--":
			e.Source, e.Target = right, left
		default:
			return nil, &ParseError{Message: "unrecognized arrow " + ge.Unlabeled.Arrow}
		}
		return e, nil
	case ge.Right != nil:
		e := &PatternEdge{Label: ge.Right.Label, Source: left, Target: right}
		if ge.Right.Designation != nil {
			e.Designation = *ge.Right.Designation
		}
		return e, nil
	case ge.Left != nil:
		e := &PatternEdge{Label: ge.Left.Label, Source: right, Target: left}
		if ge.Left.Designation != nil {
			e.Designation = *ge.Left.Designation
		}
		return e, nil
	default:
		return nil, &ParseError{Message: "empty edge"}
	}
}

func convertOr(o *grammarOr) (Constraint, error) {
	result, err := convertAnd(o.Left)
	if err != nil {
		return nil, err
	}
	for _, rest := range o.Rest {
		rc, err := convertAnd(rest)
		if err != nil {
			return nil, err
		}
		result = &Or{Left: result, Right: rc}
	}
	return result, nil
}

// convertAnd rewrites AND via De Morgan's law into Not(Or(Not L, Not R))
// so the evaluator only ever has to handle Or, Not and Comparison.
func convertAnd(a *grammarAnd) (Constraint, error) {
	result, err := convertNot(a.Left)
	if err != nil {
		return nil, err
	}
	for _, rest := range a.Rest {
		rc, err := convertNot(rest)
		if err != nil {
			return nil, err
		}
		result = &Not{X: &Or{Left: &Not{X: result}, Right: &Not{X: rc}}}
	}
	return result, nil
}

func convertNot(n *grammarNot) (Constraint, error) {
	atom, err := convertAtom(n.Atom)
	if err != nil {
		return nil, err
	}
	if n.Negate {
		return &Not{X: atom}, nil
	}
	return atom, nil
}

func convertAtom(at *grammarAtom) (Constraint, error) {
	switch {
	case at.Paren != nil:
		return convertOr(at.Paren)
	case at.Comparison != nil:
		return convertComparison(at.Comparison)
	default:
		return nil, &ParseError{Message: "empty boolean atom"}
	}
}

func convertComparison(c *grammarComparison) (Constraint, error) {
	if len(c.Keypath.Segments) < 2 {
		return nil, &SemanticError{Message: "WHERE comparison requires a designation.key path, got " + c.Keypath.Segments[0]}
	}
	var value ComparisonValue
	switch {
	case c.Value.Str != nil:
		s := unquote(*c.Value.Str)
		value.Str = &s
	case c.Value.Int != nil:
		value.Int = c.Value.Int
	default:
		return nil, &ParseError{Message: "empty comparison value"}
	}
	return &Comparison{
		Keypath: append([]string(nil), c.Keypath.Segments...),
		Op:      c.Op,
		Value:   value,
	}, nil
}
