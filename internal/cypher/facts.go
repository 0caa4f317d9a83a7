package cypher

import (
	"fmt"

	"github.com/ritamzico/cyquery/internal/graph"
)

// Fact is one atomic assertion the matcher must check a candidate
// binding against. A MATCH...WHERE clause decomposes into a flat list
// of these, independent of how its pattern was nested.
type Fact interface {
	factNode()
}

// ClassIsFact requires the vertex bound to Designation to carry the
// given class.
type ClassIsFact struct {
	Designation string
	Class       string
}

// NodeHasDocumentFact requires the vertex bound to Designation, once
// its reserved class key is stripped, to deep-equal Doc.
type NodeHasDocumentFact struct {
	Designation string
	Doc         graph.Document
}

// EdgeExistsFact requires some edge from the vertex bound to
// SourceDesignation to the vertex bound to TargetDesignation, matching
// Label if non-empty. A witness edge is bound to EdgeDesignation as a
// side effect of evaluating this fact, not via the Cartesian
// assignment over node designations.
type EdgeExistsFact struct {
	EdgeDesignation   string
	Label             string
	SourceDesignation string
	TargetDesignation string
}

// WhereClauseFact wraps the clause's WHERE tree, evaluated once all
// node and edge facts for a candidate binding already hold.
type WhereClauseFact struct {
	Constraint Constraint
}

func (*ClassIsFact) factNode()         {}
func (*NodeHasDocumentFact) factNode() {}
func (*EdgeExistsFact) factNode()      {}
func (*WhereClauseFact) factNode()     {}

// extractor mints designations for anonymous nodes and edges.
type extractor struct {
	counter int
}

func (e *extractor) freshDesignation() string {
	e.counter++
	return fmt.Sprintf("_v%d", e.counter)
}

// ExtractFacts decomposes a MATCH...WHERE clause into atomic facts.
// It runs in two passes: the first walks every path assigning a fresh
// designation to every anonymous node and edge, path by path, visiting
// a path's nodes left to right and then its edges left to right; the
// second walks the same paths in the same order emitting facts, with
// the WHERE fact last. Splitting assignment from emission this way means an edge
// naming a node that appears later in the pattern never sees an
// unassigned designation.
func ExtractFacts(clause *MatchWhereClause) []Fact {
	ex := &extractor{}

	for _, path := range clause.Paths {
		for _, n := range path.Nodes {
			if n.Designation == "" {
				n.Designation = ex.freshDesignation()
			}
		}
		for _, e := range path.Edges {
			if e.Designation == "" {
				e.Designation = ex.freshDesignation()
			}
		}
	}

	var facts []Fact
	for _, path := range clause.Paths {
		for _, n := range path.Nodes {
			if n.Class != "" {
				facts = append(facts, &ClassIsFact{Designation: n.Designation, Class: n.Class})
			}
			if len(n.Conditions) > 0 {
				facts = append(facts, &NodeHasDocumentFact{Designation: n.Designation, Doc: n.Conditions})
			}
		}
		for _, e := range path.Edges {
			facts = append(facts, &EdgeExistsFact{
				EdgeDesignation:   e.Designation,
				Label:             e.Label,
				SourceDesignation: e.Source.Designation,
				TargetDesignation: e.Target.Designation,
			})
		}
	}
	if clause.Where != nil {
		facts = append(facts, &WhereClauseFact{Constraint: clause.Where})
	}
	return facts
}
