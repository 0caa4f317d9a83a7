package match

import (
	"sort"

	"github.com/ritamzico/cyquery/internal/cypher"
)

// nodeDesignations returns the sorted, deduplicated set of every
// pattern-node designation appearing in paths. It walks the pattern
// AST directly rather than the flattened fact list, so a node with
// neither a class nor attribute conditions (and so no ClassIs or
// NodeHasDocument fact) is still included in the matcher's Cartesian
// domain.
func nodeDesignations(paths []*cypher.PatternPath) []string {
	seen := make(map[string]bool)
	for _, path := range paths {
		for _, n := range path.Nodes {
			seen[n.Designation] = true
		}
	}
	return sortedKeys(seen)
}

// edgeDesignations returns the set of every pattern-edge designation
// appearing in paths. Edge designations are deliberately excluded
// from the Cartesian domain: they are bound by side effect while
// evaluating EdgeExists facts, not by direct assignment.
func edgeDesignations(paths []*cypher.PatternPath) map[string]bool {
	seen := make(map[string]bool)
	for _, path := range paths {
		for _, e := range path.Edges {
			seen[e.Designation] = true
		}
	}
	return seen
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// validateReturn checks that every RETURN projection's leading
// designation refers to a node or edge the pattern actually declares.
// It runs before any row is enumerated so a query with an undeclared
// projection fails fast rather than after partial output.
func validateReturn(projections [][]string, nodeDes []string, edgeDes map[string]bool) error {
	known := make(map[string]bool, len(nodeDes)+len(edgeDes))
	for _, d := range nodeDes {
		known[d] = true
	}
	for d := range edgeDes {
		known[d] = true
	}
	for _, proj := range projections {
		if len(proj) == 0 {
			return BindingError{Kind: "EmptyProjection", Message: "RETURN projection has no segments"}
		}
		if !known[proj[0]] {
			return BindingError{Kind: "UnknownDesignation", Message: "RETURN references undeclared designation " + proj[0]}
		}
	}
	return nil
}
