package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var kscLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `#[^\n]*`, nil},

		// String literals
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Number literals
		{"Number", `[0-9]+(\.[0-9]+)?`, nil},

		// Keywords and identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Return-type arrow (must come before Operator)
		{"Arrow", `->`, nil},

		// Operators (longest alternatives first)
		{"Operator", `==|!=|<=|>=|//|[-+*/%<>=]`, nil},

		// Punctuation
		{"Punct", `[(){},;]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
