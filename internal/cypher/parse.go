package cypher

// Parse lexes, parses and converts a query string into the domain AST.
// Lexing runs as an explicit pre-pass so an unrecognized character is
// reported as a LexError rather than participle's own, less specific
// parse failure.
func Parse(text string) (*Query, error) {
	if err := tokenize(text); err != nil {
		return nil, err
	}
	gq, err := cypherParser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	return convertQuery(gq)
}
