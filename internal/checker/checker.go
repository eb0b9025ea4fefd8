// Package checker runs the tokenizer and the parser as one step and
// summarises the outcome for front ends.
package checker

import (
	"errors"

	"MiniCheck/internal/lexer"
	"MiniCheck/internal/parser"
)

type Stage string

const (
	StageNone  Stage = ""
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

type Result struct {
	Valid   bool
	Tokens  []lexer.Token
	Err     error
	Stage   Stage
	Line    int
	Column  int
	Message string
}

// Check returns nil for a well-formed program, otherwise the first
// *lexer.LexError or *parser.ParseError unchanged.
func Check(src string) error {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	return parser.Parse(tokens)
}

func Analyze(src string) Result {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return failed(nil, StageLex, err)
	}
	if err := parser.Parse(tokens); err != nil {
		return failed(tokens, StageParse, err)
	}
	return Result{Valid: true, Tokens: tokens}
}

func failed(tokens []lexer.Token, stage Stage, err error) Result {
	line, column := Position(err)
	return Result{
		Tokens:  tokens,
		Err:     err,
		Stage:   stage,
		Line:    line,
		Column:  column,
		Message: err.Error(),
	}
}

// Position reports where err points in the source. A parse error at end of
// input has no position and yields 0, 0.
func Position(err error) (line, column int) {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Line, lexErr.Column
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) && parseErr.Found != nil {
		return parseErr.Found.Line, parseErr.Found.Column
	}
	return 0, 0
}
