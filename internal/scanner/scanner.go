/*
File    : loxgo/internal/scanner/scanner.go
*/

// Package scanner implements the single-pass character scanner of §4.1:
// it consumes a source string and produces an ordered Token stream
// terminated by an EOF sentinel, recording lexical errors rather than
// aborting on the first one (grounded on lexer/lexer.go's Lexer struct
// and its Advance/Peek/NextToken dispatch, trimmed from go-mix's
// extended operator set down to the Lox subset of §6, and extended with
// the canonical-number-literal rule of §4.1 which go-mix does not need).
package scanner

import (
	"strings"

	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

// Scanner holds the scan position over a source string.
type Scanner struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // index of the next unconsumed byte
	line    int
	tokens  []token.Token
	report  loxerr.Reporter
}

// New creates a Scanner ready to tokenize src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanTokens runs the scanner to completion and returns the full token
// stream (always EOF-terminated) along with the accumulated diagnostics.
func (s *Scanner) ScanTokens() ([]token.Token, []*loxerr.Diagnostic) {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens, s.report.All()
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the next byte if it equals expected, reporting whether
// it did; used for the two-character operator lookahead of §4.1.
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.src[s.start:s.current], s.line))
}

func (s *Scanner) addLiteral(kind token.Kind, literal string) {
	s.tokens = append(s.tokens, token.NewLiteral(kind, s.src[s.start:s.current], literal, s.line))
}

func (s *Scanner) addLiteralLexeme(kind token.Kind, lexeme, literal string) {
	s.tokens = append(s.tokens, token.NewLiteral(kind, lexeme, literal, s.line))
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case '*':
		s.addToken(token.STAR)
	case '.':
		s.addToken(token.DOT)
	case ',':
		s.addToken(token.COMMA)
	case '+':
		s.addToken(token.PLUS)
	case '-':
		s.addToken(token.MINUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '=':
		if s.match('=') {
			s.addToken(token.EQUAL_EQUAL)
		} else {
			s.addToken(token.EQUAL)
		}
	case '!':
		if s.match('=') {
			s.addToken(token.BANG_EQUAL)
		} else {
			s.addToken(token.BANG)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LESS_EQUAL)
		} else {
			s.addToken(token.LESS)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GREATER_EQUAL)
		} else {
			s.addToken(token.GREATER)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\t', '\r':
		// whitespace: skip
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.report.Report(loxerr.NewLexical(s.line, "Unexpected character: %c", c))
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.report.Report(loxerr.NewLexical(s.line, "Unterminated string."))
		return
	}
	// consume the closing quote
	s.advance()
	literal := s.src[s.start+1 : s.current-1]
	s.addLiteral(token.STRING, literal)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.src[s.start:s.current]
	s.addLiteralLexeme(token.NUMBER, lexeme, canonicalNumber(lexeme))
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	if kind, ok := token.Keywords[text]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(token.IDENTIFIER)
}

// canonicalNumber computes the literal field of a NUMBER token per §4.1:
// if the lexeme contains a '.', trailing zeros in the fractional part
// are trimmed but at least one fractional digit is kept; otherwise a
// bare ".0" is appended.
func canonicalNumber(lexeme string) string {
	if !strings.Contains(lexeme, ".") {
		return lexeme + ".0"
	}
	trimmed := strings.TrimRight(lexeme, "0")
	if strings.HasSuffix(trimmed, ".") {
		trimmed += "0"
	}
	return trimmed
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
