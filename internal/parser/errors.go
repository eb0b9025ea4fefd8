package parser

import (
	"fmt"

	"MiniCheck/internal/lexer"
)

type ErrorCode int

const (
	ErrUnexpectedToken ErrorCode = iota
	ErrExtraInput
)

// ParseError is the single diagnostic of a failed parse. Found is nil when
// the input ended before the grammar was satisfied.
type ParseError struct {
	Code     ErrorCode
	Expected string
	Found    *lexer.Token
}

func (e *ParseError) Error() string {
	if e.Code == ErrExtraInput {
		return fmt.Sprintf("extra input after end of program: found %s", e.found())
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.found())
}

func (e *ParseError) found() string {
	if e.Found == nil {
		return "end of input"
	}
	return e.Found.String()
}

func newParseError(code ErrorCode, expected string, found *lexer.Token) *ParseError {
	var tok *lexer.Token
	if found != nil {
		t := *found
		tok = &t
	}
	return &ParseError{Code: code, Expected: expected, Found: tok}
}

func expectation(kind lexer.Kind, text string) string {
	if text == "" {
		return string(kind)
	}
	return fmt.Sprintf("%s=%q", kind, text)
}
