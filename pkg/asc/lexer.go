package asc

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ASCLexer splits a single LTspice schematic line into words.
// The .asc format is whitespace separated; keywords, numbers and free-form
// attribute values are all plain words and are told apart by the grammar.
var ASCLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Word", Pattern: `[^ \t\r\n]+`},
})
