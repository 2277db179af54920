// Package scanner tokenizes C-minus source text for the parser to consume.
//
// The scanning loop and error-collection idiom are adapted from a
// hand-written switch-driven scanner rather than from a generic
// interpreted DFA object graph: https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
package scanner

import (
	"context"
	"go/scanner"
	gotoken "go/token"
	"os"
	"unicode"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/token"
)

type (
	// Error and ErrorList are reused from the standard library's scanner
	// package: a lexical error is always (position, message), and ordering
	// and deduplication behavior already implemented there is exactly what
	// this scanner needs.
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// TokenAndValue combines a scanned token with its source position and raw
// text.
type TokenAndValue struct {
	Token token.Token
	Pos   token.Pos
	Lit   string
}

// ScanFile tokenizes the named source file in full and returns every token
// (including EOF) alongside any lexical errors encountered. Unlike a
// fail-fast scanner, it never stops at the first error: it keeps scanning so
// that every lexical error in the file is reported.
func ScanFile(_ context.Context, filename string) ([]TokenAndValue, ErrorList, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	toks, el := ScanSource(filename, src)
	return toks, el, nil
}

// ScanSource tokenizes src in full, collecting lexical errors rather than
// stopping at the first one.
func ScanSource(filename string, src []byte) ([]TokenAndValue, ErrorList) {
	var (
		s   Scanner
		el  ErrorList
		out []TokenAndValue
	)
	s.Init(src, func(pos token.Pos, msg string) {
		el.Add(gotoken.Position{Filename: filename, Line: pos.Line()}, msg)
	})
	for {
		tok, pos, lit := s.Scan()
		out = append(out, TokenAndValue{Token: tok, Pos: pos, Lit: lit})
		if tok == token.EOF {
			break
		}
	}
	el.Sort()
	return out, el
}

// Scanner tokenizes a single source buffer.
type Scanner struct {
	src []byte
	err func(pos token.Pos, msg string)

	cur  rune // current character, -1 at EOF
	off  int  // byte offset of cur
	roff int  // byte offset following cur
	line int  // current 1-based line
}

// Init (re)initializes the scanner to tokenize src from the start.
func (s *Scanner) Init(src []byte, errHandler func(token.Pos, string)) {
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.line = 1
	s.advance()
}

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}
	s.off = s.roff
	s.cur = rune(s.src[s.roff])
	s.roff++
}

func (s *Scanner) advanceIf(b byte) bool {
	if s.cur == rune(b) {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) error(line int, msg string) {
	if s.err != nil {
		s.err(token.MakePos(line), msg)
	}
}

// Scan returns the next token, its position and its raw source text. At end
// of input it keeps returning (token.EOF, pos, "").
func (s *Scanner) Scan() (tok token.Token, pos token.Pos, lit string) {
	s.skipWhitespace()

	startLine := s.line
	pos = token.MakePos(startLine)

	switch cur := s.cur; {
	case isLetter(cur):
		lit = s.ident()
		tok = token.LookupKw(lit)
		return tok, pos, lit

	case isDigit(cur):
		lit = s.number()
		return token.NUM, pos, lit

	case cur == -1:
		return token.EOF, pos, ""

	default:
		s.advance()
		switch cur {
		case ';', ',', '[', ']', '(', ')', '{', '}', '+', '-', '<':
			// unambiguous single-char punctuation
			lit = string(cur)
			return token.LookupPunct(lit), pos, lit

		case '=':
			// assignment, or equality when followed by a second '='
			lit = "="
			if s.advanceIf('=') {
				lit = "=="
			}
			return token.LookupPunct(lit), pos, lit

		case '*':
			// could be the end of an unmatched block comment
			if s.cur == '/' {
				s.advance()
				s.error(startLine, "unmatched comment")
				return s.Scan()
			}
			return token.LookupPunct("*"), pos, "*"

		case '/':
			if s.cur == '*' {
				s.advance()
				s.comment(startLine)
				return s.Scan()
			}
			s.error(startLine, "invalid input: '/'")
			return s.Scan()

		default:
			s.error(startLine, "invalid input: "+string(cur))
			return s.Scan()
		}
	}
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) number() string {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}
	if isLetter(s.cur) {
		// digits immediately followed by letters: not a valid number or a
		// valid identifier (identifiers cannot start with a digit).
		for isLetter(s.cur) || isDigit(s.cur) {
			s.advance()
		}
		s.error(s.line, "invalid number: "+string(s.src[start:s.off]))
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) skipWhitespace() {
	for s.cur == ' ' || s.cur == '\t' || s.cur == '\n' || s.cur == '\r' || s.cur == '\v' || s.cur == '\f' {
		s.advance()
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
