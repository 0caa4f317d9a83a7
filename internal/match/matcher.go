package match

import (
	"context"
	"sort"

	"github.com/ritamzico/cyquery/internal/cypher"
	"github.com/ritamzico/cyquery/internal/graph"
	"github.com/ritamzico/cyquery/internal/result"
)

// RunMatch validates a MATCH...WHERE clause against a RETURN clause
// and returns a lazily-driven cursor over satisfying bindings. No
// enumeration happens until the caller starts pulling with Next.
func RunMatch(g graph.Adapter, clause *cypher.MatchWhereClause, ret *cypher.ReturnClause) (result.Cursor, error) {
	// ExtractFacts assigns designations to anonymous nodes and edges as
	// a side effect; it must run before the domain set and RETURN
	// validation are computed so anonymous designations are visible.
	facts := cypher.ExtractFacts(clause)

	designations := nodeDesignations(clause.Paths)
	edgeDes := edgeDesignations(clause.Paths)
	if err := validateReturn(ret.Projections, designations, edgeDes); err != nil {
		return nil, err
	}

	// Vertices is documented as unordered; the Cartesian domain must be
	// sorted so repeated runs over an unchanged graph enumerate in the
	// same order.
	universe := g.Vertices()
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	return &cartesianCursor{
		g:            g,
		facts:        facts,
		designations: designations,
		universe:     universe,
		idx:          make([]int, len(designations)),
		projections:  ret.Projections,
	}, nil
}

// cartesianCursor enumerates assignments designation -> vertex id as
// an odometer: idx increments rightmost-first over sorted
// designations, matching the lexicographic order the ordering
// guarantee requires. No recursion or goroutines; each Next call
// advances exactly as far as the next satisfying binding (or
// exhaustion).
type cartesianCursor struct {
	g            graph.Adapter
	facts        []cypher.Fact
	designations []string
	universe     []graph.NodeID
	idx          []int

	projections [][]string

	started      bool
	done         bool
	emittedEmpty bool

	row result.Row
	err error
}

func (c *cartesianCursor) Next(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			c.err = ctx.Err()
			return false
		default:
		}

		if !c.advance() {
			return false
		}

		binding := c.currentBinding()
		edgeBinding := make(map[string]graph.EdgeID)
		ok, err := c.evaluate(binding, edgeBinding)
		if err != nil {
			c.err = err
			c.done = true
			return false
		}
		if !ok {
			continue
		}

		row, err := projectRow(c.projections, binding, edgeBinding, c.g)
		if err != nil {
			c.err = err
			c.done = true
			return false
		}
		c.row = row
		return true
	}
}

func (c *cartesianCursor) Row() result.Row { return c.row }
func (c *cartesianCursor) Err() error       { return c.err }

// advance moves idx to the next combination, lexicographically over
// designations. It returns false once every combination (or, for a
// pattern with no designations, the single vacuous combination) has
// been produced.
func (c *cartesianCursor) advance() bool {
	if c.done {
		return false
	}
	if len(c.designations) == 0 {
		if c.emittedEmpty {
			c.done = true
			return false
		}
		c.emittedEmpty = true
		return true
	}
	if !c.started {
		c.started = true
		if len(c.universe) == 0 {
			c.done = true
			return false
		}
		return true
	}
	for i := len(c.idx) - 1; i >= 0; i-- {
		c.idx[i]++
		if c.idx[i] < len(c.universe) {
			return true
		}
		c.idx[i] = 0
	}
	c.done = true
	return false
}

func (c *cartesianCursor) currentBinding() map[string]graph.NodeID {
	binding := make(map[string]graph.NodeID, len(c.designations))
	for i, d := range c.designations {
		binding[d] = c.universe[c.idx[i]]
	}
	return binding
}

// evaluate checks every atomic fact against binding in extraction
// order, short-circuiting on the first that fails. EdgeExists facts
// populate edgeBinding as a side effect; WhereClauseFact is always
// evaluated last since the extractor appends it after every node and
// edge fact.
func (c *cartesianCursor) evaluate(binding map[string]graph.NodeID, edgeBinding map[string]graph.EdgeID) (bool, error) {
	for _, fact := range c.facts {
		switch f := fact.(type) {
		case *cypher.ClassIsFact:
			doc, err := c.g.Vertex(binding[f.Designation])
			if err != nil {
				return false, err
			}
			class, _ := graph.ClassOf(doc)
			if class != f.Class {
				return false, nil
			}
		case *cypher.NodeHasDocumentFact:
			doc, err := c.g.Vertex(binding[f.Designation])
			if err != nil {
				return false, err
			}
			if !graph.DocumentEquals(graph.WithoutClass(doc), f.Doc) {
				return false, nil
			}
		case *cypher.EdgeExistsFact:
			ids, err := c.g.EdgesBetween(binding[f.SourceDesignation], binding[f.TargetDesignation])
			if err != nil {
				return false, err
			}
			witness, found := firstMatchingEdge(c.g, ids, f.Label)
			if !found {
				return false, nil
			}
			if f.EdgeDesignation != "" {
				edgeBinding[f.EdgeDesignation] = witness
			}
		case *cypher.WhereClauseFact:
			ok, err := evalConstraint(f.Constraint, binding, edgeBinding, c.g)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// firstMatchingEdge returns the first edge id in ids (already in the
// adapter's stable insertion order) whose label matches, or any edge
// at all when label is empty.
func firstMatchingEdge(g graph.Adapter, ids []graph.EdgeID, label string) (graph.EdgeID, bool) {
	for _, id := range ids {
		if label == "" {
			return id, true
		}
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		if e.Label() == label {
			return id, true
		}
	}
	return "", false
}
