/*
File    : mlang/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a single lexer fixture: source text paired
// with the token sequence it must produce.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func tok(t TokenType, lit string) Token {
	return NewToken(t, lit, 0, 0)
}

// TestLexer_ConsumeAll exercises literals, identifiers, keywords, most
// single-character operators and punctuation, and illegal input, including
// the greedy multi-character operators and the two arrow tokens that no
// grammar rule consumes. `*` and `/` do not appear in these fixtures.
func TestLexer_ConsumeAll(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				tok(INT, "123"),
				tok(PLUS, "+"),
				tok(INT, "2"),
				tok(INT, "31"),
				tok(MINUS, "-"),
				tok(INT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				tok(LBRACE, "{"),
				tok(RBRACE, "}"),
				tok(PLUS, "+"),
				tok(LBRACKET, "["),
				tok(RBRACKET, "]"),
				tok(IDENT, "abc"),
				tok(MINUS, "-"),
				tok(IDENT, "a12"),
			},
		},
		{
			Input: ` <=  >=  ==  !=  +=  -=  &&  ||  -> <- `,
			ExpectedTokens: []Token{
				tok(LT_EQUAL, "<="),
				tok(GT_EQUAL, ">="),
				tok(EQUAL, "=="),
				tok(NOT_EQUAL, "!="),
				tok(PLUS_EQUAL, "+="),
				tok(MINUS_EQUAL, "-="),
				tok(AND, "&&"),
				tok(OR, "||"),
				tok(RARROW, "->"),
				tok(LARROW, "<-"),
			},
		},
		{
			Input: `& | . , ; ( ) { } [ ] ! < >`,
			ExpectedTokens: []Token{
				tok(AMPERSAND, "&"),
				tok(PIPE, "|"),
				tok(DOT, "."),
				tok(COMMA, ","),
				tok(SEMICOLON, ";"),
				tok(LPAREN, "("),
				tok(RPAREN, ")"),
				tok(LBRACE, "{"),
				tok(RBRACE, "}"),
				tok(LBRACKET, "["),
				tok(RBRACKET, "]"),
				tok(BANG, "!"),
				tok(LT, "<"),
				tok(GT, ">"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				tok(STRING, "This is a long string  "),
				tok(IDENT, "nowAnIdentifier_234"),
				tok(STRING, "12"),
			},
		},
		{
			Input: `let fn if else true false return then`,
			ExpectedTokens: []Token{
				tok(LET, "let"),
				tok(FN, "fn"),
				tok(IF, "if"),
				tok(ELSE, "else"),
				tok(TRUE, "true"),
				tok(FALSE, "false"),
				tok(RETURN, "return"),
				tok(IDENT, "then"),
			},
		},
		{
			Input: `
			let add = fn(a, b) {
				return a + b;
			};
			if (add(1, 2) <= 3) {
				add.total = 5;
			} else {
				add.total -= 1;
			}
			`,
			ExpectedTokens: []Token{
				tok(LET, "let"), tok(IDENT, "add"), tok(ASSIGN, "="),
				tok(FN, "fn"), tok(LPAREN, "("), tok(IDENT, "a"), tok(COMMA, ","),
				tok(IDENT, "b"), tok(RPAREN, ")"), tok(LBRACE, "{"),
				tok(RETURN, "return"), tok(IDENT, "a"), tok(PLUS, "+"), tok(IDENT, "b"), tok(SEMICOLON, ";"),
				tok(RBRACE, "}"), tok(SEMICOLON, ";"),
				tok(IF, "if"), tok(LPAREN, "("), tok(IDENT, "add"), tok(LPAREN, "("),
				tok(INT, "1"), tok(COMMA, ","), tok(INT, "2"), tok(RPAREN, ")"),
				tok(LT_EQUAL, "<="), tok(INT, "3"), tok(RPAREN, ")"), tok(LBRACE, "{"),
				tok(IDENT, "add"), tok(DOT, "."), tok(IDENT, "total"), tok(ASSIGN, "="), tok(INT, "5"), tok(SEMICOLON, ";"),
				tok(RBRACE, "}"), tok(ELSE, "else"), tok(LBRACE, "{"),
				tok(IDENT, "add"), tok(DOT, "."), tok(IDENT, "total"), tok(MINUS_EQUAL, "-="), tok(INT, "1"), tok(SEMICOLON, ";"),
				tok(RBRACE, "}"),
			},
		},
		{
			Input: `@`,
			ExpectedTokens: []Token{
				tok(ILLEGAL, "@"),
			},
		},
	}

	for _, test := range tests {
		lex := New(test.Input)
		gotTokens := lex.ConsumeAll()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %q", test.Input)
		for i, want := range test.ExpectedTokens {
			assert.Equal(t, want.Type, gotTokens[i].Type, "input: %q token %d", test.Input, i)
			assert.Equal(t, want.Literal, gotTokens[i].Literal, "input: %q token %d", test.Input, i)
		}
	}
}

// TestLexer_EOFIsSticky checks that NextToken keeps returning EOF once the
// input is exhausted, rather than panicking or looping.
func TestLexer_EOFIsSticky(t *testing.T) {
	lex := New("x")
	assert.Equal(t, IDENT, lex.NextToken().Type)
	assert.Equal(t, EOF, lex.NextToken().Type)
	assert.Equal(t, EOF, lex.NextToken().Type)
}
