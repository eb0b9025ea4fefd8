package lexer

import (
	"errors"
	"io"
	"testing"
)

type kindText struct {
	kind Kind
	text string
}

func kindsAndTexts(tokens []Token) []kindText {
	out := make([]kindText, len(tokens))
	for i, tok := range tokens {
		out[i] = kindText{tok.Kind, tok.Text}
	}
	return out
}

func assertTokens(t *testing.T, input string, expected []kindText) {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	got := kindsAndTexts(tokens)
	if len(got) != len(expected) {
		t.Fatalf("Tokenize(%q): expected %d tokens, got %d: %v", input, len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Tokenize(%q) token %d: expected %v, got %v", input, i, expected[i], got[i])
		}
	}
}

func TestTokenizeAssignment(t *testing.T) {
	assertTokens(t, "value = 32;", []kindText{
		{Identifier, "value"},
		{Assign, "="},
		{Number, "32"},
		{Semicolon, ";"},
	})
}

func TestKeywordsAreIdentifiers(t *testing.T) {
	for _, kw := range Keywords {
		assertTokens(t, kw, []kindText{{Identifier, kw}})
	}
	assertTokens(t, "iffy loops end_ifx", []kindText{
		{Identifier, "iffy"},
		{Identifier, "loops"},
		{Identifier, "end_ifx"},
	})
}

func TestTokenizeOperators(t *testing.T) {
	assertTokens(t, "a==b!=c>=d<=e>f<g=h", []kindText{
		{Identifier, "a"}, {LogicOp, "=="},
		{Identifier, "b"}, {LogicOp, "!="},
		{Identifier, "c"}, {LogicOp, ">="},
		{Identifier, "d"}, {LogicOp, "<="},
		{Identifier, "e"}, {LogicOp, ">"},
		{Identifier, "f"}, {LogicOp, "<"},
		{Identifier, "g"}, {Assign, "="},
		{Identifier, "h"},
	})
	assertTokens(t, "+-*/%():", []kindText{
		{ArithOp, "+"}, {ArithOp, "-"}, {ArithOp, "*"}, {ArithOp, "/"}, {ArithOp, "%"},
		{LParen, "("}, {RParen, ")"}, {Colon, ":"},
	})
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []kindText
	}{
		{"0", []kindText{{Number, "0"}}},
		{"3.14", []kindText{{Number, "3.14"}}},
		{"7.", []kindText{{Number, "7."}}},
		{"12abc", []kindText{{Number, "12"}, {Identifier, "abc"}}},
		{"x1_2", []kindText{{Identifier, "x1_2"}}},
	}

	for _, tt := range tests {
		assertTokens(t, tt.input, tt.expected)
	}

	// a '.' without leading digits is not a token
	if _, err := Tokenize("1.2.3"); err == nil {
		t.Error(`expected "1.2.3" to fail`)
	}
}

func TestWhitespaceAndNewlinesAreDropped(t *testing.T) {
	assertTokens(t, " \t\n\n  x\t;\n", []kindText{{Identifier, "x"}, {Semicolon, ";"}})

	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("empty input failed: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := Tokenize("program\n  value = 32;\nend_program")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	expected := []struct{ line, column int }{
		{1, 1}, {2, 3}, {2, 9}, {2, 11}, {2, 13}, {3, 1},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, pos := range expected {
		if tokens[i].Line != pos.line || tokens[i].Column != pos.column {
			t.Errorf("token %d (%q): expected %d:%d, got %d:%d",
				i, tokens[i].Text, pos.line, pos.column, tokens[i].Line, tokens[i].Column)
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   rune
		line   int
		column int
	}{
		{"a = 1 @ 2;", '@', 1, 7},
		{"program\n\n  x = $;", '$', 3, 7},
		{"a = b!", '!', 1, 6},
		{"x = 1;\r\n", '\r', 1, 7},
		{"naïve", 'ï', 1, 3},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if tokens != nil {
			t.Errorf("Tokenize(%q): expected no tokens on failure, got %v", tt.input, tokens)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("Tokenize(%q): expected *LexError, got %v", tt.input, err)
		}
		if lexErr.Char != tt.char || lexErr.Line != tt.line || lexErr.Column != tt.column {
			t.Errorf("Tokenize(%q): expected %q at %d:%d, got %q at %d:%d",
				tt.input, tt.char, tt.line, tt.column, lexErr.Char, lexErr.Line, lexErr.Column)
		}
	}
}

func TestLexErrorMessage(t *testing.T) {
	_, err := Tokenize("x = 1;\ny = @;")
	if err == nil {
		t.Fatal("expected an error")
	}
	expected := `unexpected character '@' at line 2, column 5`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword("end_loop") {
		t.Error("expected end_loop to be a keyword")
	}
	if IsKeyword("value") {
		t.Error("did not expect value to be a keyword")
	}
}

func TestNextTokenEndsWithEOF(t *testing.T) {
	l := NewLexer("x ;\n")
	for _, expected := range []Kind{Identifier, Semicolon} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken failed: %v", err)
		}
		if tok.Kind != expected {
			t.Errorf("expected %s, got %s", expected, tok.Kind)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := l.NextToken(); err != io.EOF {
			t.Errorf("expected io.EOF, got %v", err)
		}
	}
	if l.Line() != 2 {
		t.Errorf("expected line counter at 2, got %d", l.Line())
	}
}
