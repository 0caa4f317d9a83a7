package cypher

import "github.com/ritamzico/cyquery/internal/graph"

// Query is an ordered sequence of clauses. The engine only accepts
// MATCH-WHERE-RETURN and CREATE-RETURN shapes, but the AST itself
// does not enforce clause ordering; that is a semantic check.
type Query struct {
	Clauses []Clause
}

// Clause is one top-level statement segment: a MATCH (with optional
// WHERE), a CREATE, or a RETURN.
type Clause interface {
	clauseNode()
}

type MatchWhereClause struct {
	Paths []*PatternPath
	Where Constraint // nil if no WHERE was given
}

type CreateClause struct {
	Paths []*PatternPath
}

type ReturnClause struct {
	Projections [][]string
}

func (*MatchWhereClause) clauseNode() {}
func (*CreateClause) clauseNode()     {}
func (*ReturnClause) clauseNode()     {}

// PatternPath is a chain of pattern nodes connected by pattern edges:
// Edges[i] connects Nodes[i] and Nodes[i+1], in whichever direction
// its arrow denoted (Source/Target on the edge record that, not the
// path's left-to-right order).
type PatternPath struct {
	Nodes []*PatternNode
	Edges []*PatternEdge
}

// PatternNode is one parenthesized node literal in a pattern.
// Designation is "" for an anonymous node (the extractor mints one).
// Conditions holds the literal props the node was written with; Class
// is "" if the node carries no class constraint.
type PatternNode struct {
	Designation string
	Class       string
	Conditions  graph.Document
}

// PatternEdge is one arrow or bracketed-label edge in a pattern.
// Designation is "" for an unlabeled or anonymous-labeled edge.
type PatternEdge struct {
	Designation    string
	Label          string
	Source, Target *PatternNode
}

// Constraint is a node in the WHERE boolean-expression tree. There is
// deliberately no And type: conversion rewrites AND via De Morgan into
// Not(Or(Not L, Not R)), so Or/Not/Comparison are the only shapes that
// ever need to be evaluated.
type Constraint interface {
	constraintNode()
}

type Or struct {
	Left, Right Constraint
}

type Not struct {
	X Constraint
}

type Comparison struct {
	Keypath []string
	Op      string
	Value   ComparisonValue
}

type ComparisonValue struct {
	Str *string
	Int *int64
}

func (*Or) constraintNode()         {}
func (*Not) constraintNode()        {}
func (*Comparison) constraintNode() {}
