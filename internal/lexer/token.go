package lexer

import "fmt"

type Kind string

const (
	Number     Kind = "Number"     // 32, 4.5, 7.
	Assign     Kind = "Assign"     // =
	Semicolon  Kind = "Semicolon"  // ;
	Identifier Kind = "Identifier" // value, mod1, end_if, ...
	ArithOp    Kind = "ArithOp"    // + - * / %
	LParen     Kind = "LParen"     // (
	RParen     Kind = "RParen"     // )
	Colon      Kind = "Colon"      // : (loop range separator)
	LogicOp    Kind = "LogicOp"    // == != > < >= <=
)

// Keywords are lexed as Identifier tokens; the parser tells them apart by text.
const (
	KwProgram    = "program"
	KwEndProgram = "end_program"
	KwIf         = "if"
	KwEndIf      = "end_if"
	KwLoop       = "loop"
	KwEndLoop    = "end_loop"
)

var Keywords = []string{KwProgram, KwEndProgram, KwIf, KwEndIf, KwLoop, KwEndLoop}

func IsKeyword(text string) bool {
	for _, kw := range Keywords {
		if kw == text {
			return true
		}
	}
	return false
}

// Token is a classified lexeme. Line and Column point at its first character.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at line %d, column %d", t.Kind, t.Text, t.Line, t.Column)
}

// Is reports whether the token has the given kind and, when text is not
// empty, the given text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && (text == "" || t.Text == text)
}
