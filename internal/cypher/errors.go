package cypher

import "fmt"

// LexError reports an unrecognized character or token in the source
// text, surfaced before participle ever sees the token stream.
type LexError struct {
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %v", e.Message)
}

// ParseError reports a grammar violation: participle rejected an
// otherwise well-tokenized query.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Message)
}

// SemanticError reports a query that parses but violates a rule the
// grammar itself cannot express, such as a keypath too short for a
// WHERE comparison.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error: %v", e.Message)
}
