package lexer

import (
	"io"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	lineStart    int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Tokenize scans the whole input. Nothing is returned on failure.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	tokens := []Token{}

	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Line is the line the scanner is currently on.
func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken returns the next token, or io.EOF once the input is exhausted.
// Where two rules overlap the longer match wins, so "==" is a LogicOp and
// never two Assigns.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{}, io.EOF
	}

	start := l.position
	tok := Token{Line: l.line, Column: start - l.lineStart + 1}

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			return l.twoCharToken(tok, LogicOp), nil
		}
		tok.Kind = Assign
	case ';':
		tok.Kind = Semicolon
	case '+', '-', '*', '/', '%':
		tok.Kind = ArithOp
	case '(':
		tok.Kind = LParen
	case ')':
		tok.Kind = RParen
	case ':':
		tok.Kind = Colon
	case '<', '>':
		if l.peekChar() == '=' {
			return l.twoCharToken(tok, LogicOp), nil
		}
		tok.Kind = LogicOp
	case '!':
		if l.peekChar() == '=' {
			return l.twoCharToken(tok, LogicOp), nil
		}
		return Token{}, l.mismatch(tok)
	default:
		switch {
		case isDigit(l.ch):
			tok.Kind = Number
			tok.Text = l.readNumber()
			return tok, nil
		case isLetter(l.ch):
			tok.Kind = Identifier
			tok.Text = l.readIdentifier()
			return tok, nil
		default:
			return Token{}, l.mismatch(tok)
		}
	}

	tok.Text = l.input[start : start+1]
	l.readChar()
	return tok, nil
}

func (l *Lexer) twoCharToken(tok Token, kind Kind) Token {
	tok.Kind = kind
	tok.Text = l.input[l.position : l.position+2]
	l.readChar()
	l.readChar()
	return tok
}

func (l *Lexer) mismatch(tok Token) error {
	r, _ := utf8.DecodeRuneInString(l.input[l.position:])
	return &LexError{Char: r, Line: tok.Line, Column: tok.Column}
}

// skipWhitespace drops spaces, tabs and newlines; newlines bump the line counter.
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t':
		case '\n':
			l.line++
			l.lineStart = l.readPosition
		default:
			return
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEnd() && isAlphanumeric(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber accepts digits with an optional fraction; "7." is a Number.
func (l *Lexer) readNumber() string {
	position := l.position
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	if !l.atEnd() && l.ch == '.' {
		l.readChar()
		for !l.atEnd() && isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
