package cypher

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// cypherLexer tokenizes the restricted dialect. Keyword recognition
// has priority over Name/Key by rule order; arrows are ordered
// longest-alternative-first within a single rule so --> beats -, and
// >= beats >, matching Go's leftmost-first alternation semantics.
var cypherLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(MATCH|CREATE|WHERE|RETURN|AND|OR|NOT)\b`},
	{Name: "Arrow", Pattern: `-->|<--|>=|<=|!=|=|-|>|<`},
	{Name: "Punct", Pattern: `[(){}\[\],:.]`},
	{Name: "Name", Pattern: `[A-Z][A-Za-z0-9]*`},
	{Name: "Key", Pattern: `[a-z][A-Za-z0-9]*`},
	{Name: "String", Pattern: `"[A-Za-z0-9]*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// tokenize runs the lexer to completion, surfacing the first
// unrecognized character as a LexError rather than leaving it for
// participle's own parse-time error to describe.
func tokenize(text string) error {
	lex, err := cypherLexer.Lex("", strings.NewReader(text))
	if err != nil {
		return &LexError{Message: err.Error()}
	}
	for {
		tok, err := lex.Next()
		if err != nil {
			return &LexError{Message: err.Error()}
		}
		if tok.EOF() {
			return nil
		}
	}
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
