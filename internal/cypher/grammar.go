package cypher

import "github.com/alecthomas/participle/v2"

// grammarQuery is the raw parse tree participle produces. convert.go
// turns it into the idiomatic domain AST in ast.go immediately after
// a successful parse.
type grammarQuery struct {
	Clauses []*grammarClause `parser:"@@+"`
}

type grammarClause struct {
	MatchWhere *grammarMatchWhere `parser:"  @@"`
	Create     *grammarCreate     `parser:"| @@"`
	Return     *grammarReturn     `parser:"| @@"`
}

type grammarMatchWhere struct {
	Pattern *grammarPattern `parser:"\"MATCH\" @@"`
	Where   *grammarOr      `parser:"( \"WHERE\" @@ )?"`
}

type grammarCreate struct {
	Pattern *grammarPattern `parser:"\"CREATE\" @@"`
}

type grammarReturn struct {
	Projections []*grammarKeypath `parser:"\"RETURN\" @@ ( \",\" @@ )*"`
}

// grammarKeypath covers both RETURN's "KEY | keypath" production and
// WHERE's stricter "keypath" (length >= 2); convert.go enforces the
// length-2 floor where the grammar requires it.
type grammarKeypath struct {
	Segments []string `parser:"@Key ( \".\" @Key )*"`
}

type grammarPattern struct {
	Paths []*grammarPath `parser:"@@ ( \",\" @@ )*"`
}

type grammarPath struct {
	Head *grammarNode       `parser:"@@"`
	Tail []*grammarPathStep `parser:"@@*"`
}

type grammarPathStep struct {
	Edge *grammarEdge `parser:"@@"`
	Node *grammarNode `parser:"@@"`
}

// grammarNode covers all four node-literal variants: (KEY), (:NAME),
// (KEY:NAME), (KEY:NAME {props}).
type grammarNode struct {
	Designation *string        `parser:"\"(\" @Key?"`
	Class       *string        `parser:"( \":\" @Name )?"`
	Props       []*grammarProp `parser:"( \"{\" @@ ( \",\" @@ )* \"}\" )? \")\""`
}

type grammarProp struct {
	Key   string            `parser:"@Key \":\""`
	Value *grammarPropValue `parser:"@@"`
}

type grammarPropValue struct {
	Str    *string        `parser:"  @String"`
	Int    *int64         `parser:"| @Int"`
	Nested []*grammarProp `parser:"| \"{\" @@ ( \",\" @@ )* \"}\""`
}

// grammarEdge covers the three edge-literal shapes: unlabeled arrows,
// and labeled edges pointing right or left. Both labeled forms require
// a colon + label once the brackets appear; there is no bracketed
// designation-only form.
type grammarEdge struct {
	Unlabeled *grammarUnlabeledEdge `parser:"  @@"`
	Right     *grammarLabeledRight  `parser:"| @@"`
	Left      *grammarLabeledLeft   `parser:"| @@"`
}

type grammarUnlabeledEdge struct {
	Arrow string `parser:"@( \"-->\" | \"<--\" )"`
}

type grammarLabeledRight struct {
	Designation *string `parser:"\"-\" \"[\" @Key?"`
	Label       string  `parser:"\":\" @Name \"]\" \"-\" \">\""`
}

type grammarLabeledLeft struct {
	Designation *string `parser:"\"<\" \"-\" \"[\" @Key?"`
	Label       string  `parser:"\":\" @Name \"]\" \"-\""`
}

// grammarOr / grammarAnd / grammarNot implement the NOT > AND > OR
// precedence tower; comparisons never nest inside one another.
type grammarOr struct {
	Left *grammarAnd   `parser:"@@"`
	Rest []*grammarAnd `parser:"( \"OR\" @@ )*"`
}

type grammarAnd struct {
	Left *grammarNot   `parser:"@@"`
	Rest []*grammarNot `parser:"( \"AND\" @@ )*"`
}

type grammarNot struct {
	Negate bool         `parser:"( @\"NOT\" )?"`
	Atom   *grammarAtom `parser:"@@"`
}

type grammarAtom struct {
	Paren      *grammarOr         `parser:"  \"(\" @@ \")\""`
	Comparison *grammarComparison `parser:"| @@"`
}

type grammarComparison struct {
	Keypath *grammarKeypath         `parser:"@@"`
	Op      string                  `parser:"@( \"=\" | \">=\" | \"<=\" | \"!=\" | \">\" | \"<\" )"`
	Value   *grammarComparisonValue `parser:"@@"`
}

// grammarComparisonValue extends the literal grammar's STRING-only
// comparison value with INTEGER, since the spec's own worked examples
// compare against integers (e.g. m.bar = 10).
type grammarComparisonValue struct {
	Str *string `parser:"  @String"`
	Int *int64  `parser:"| @Int"`
}

var cypherParser = participle.MustBuild[grammarQuery](
	participle.Lexer(cypherLexer),
	participle.Elide("Whitespace"),
)
