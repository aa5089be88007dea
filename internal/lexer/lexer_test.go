package lexer

import "testing"

func TestNextToken_Operators(t *testing.T) {
	input := `+-*/ = == != < > <= >= && ||`
	want := []TokenType{
		PLUS, MINUS, STAR, SLASH,
		EQUAL, EQUAL_EQUAL, BANG_EQUAL,
		LESS, GREATER, LESS_EQUAL, GREATER_EQUAL,
		LOGICAL_AND, LOGICAL_OR,
		EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextToken_Delimiters(t *testing.T) {
	input := `(){}[],;:.`
	want := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
		COMMA, SEMICOLON, COLON, DOT, EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := `fn return break if else while for in var let print and not false true null`
	want := []TokenType{
		FUNCTION, RETURN, BREAK, IF, ELSE, WHILE, FOR, IN,
		VAR, LET, PRINT, AND, NOT, FALSE, TRUE, NULL, EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d (%q): got %s, want %s", i, tok.Literal, tok.Type, tt)
		}
	}
}

func TestNextToken_TypeKeywords(t *testing.T) {
	input := `char string int float bool list void`
	want := []TokenType{
		CHAR_TYPE, STRING_TYPE, INT_TYPE, FLOAT_TYPE, BOOL_TYPE, LIST_TYPE, VOID_TYPE, EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNextToken_IdentifiersAndLiterals(t *testing.T) {
	l := New(`foo_bar 42 3.14 "hi"`)

	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "foo_bar" {
		t.Fatalf("got %s %q, want IDENT foo_bar", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != INT || tok.Literal != "42" {
		t.Fatalf("got %s %q, want INT 42", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != FLOAT || tok.Literal != "3.14" {
		t.Fatalf("got %s %q, want FLOAT 3.14", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != STRING || tok.Literal != "hi" {
		t.Fatalf("got %s %q, want STRING hi", tok.Type, tok.Literal)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d\\e"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	want := "a\nb\tc\"d\\e"
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestNextToken_UnknownEscapeLeftVerbatim(t *testing.T) {
	l := New(`"a\qb"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if tok.Literal != `a\qb` {
		t.Fatalf("got %q, want %q", tok.Literal, `a\qb`)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != SYNTAX_ERROR {
		t.Fatalf("got %s, want SYNTAX_ERROR", tok.Type)
	}
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexer error to be recorded")
	}
}

func TestNextToken_LineComment(t *testing.T) {
	l := New("let x = 1; // trailing comment\nlet y = 2;")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{
		LET, IDENT, EQUAL, INT, SEMICOLON,
		LET, IDENT, EQUAL, INT, SEMICOLON,
		EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestNextToken_PositionTracking(t *testing.T) {
	l := New("let\nx = 1;")
	tok := l.NextToken() // let
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("let: got %d:%d, want 1:1", tok.Pos.Line, tok.Pos.Column)
	}
	tok = l.NextToken() // x
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("x: got %d:%d, want 2:1", tok.Pos.Line, tok.Pos.Column)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("let x = 1;")
	if len(toks) == 0 || toks[len(toks)-1].Type != EOF {
		t.Fatalf("Tokenize should end with EOF, got %v", toks)
	}
}
