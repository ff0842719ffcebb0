package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on VaC source code.
//
// The scanner is streaming: each call to Next advances to the next token,
// whose type, literal, and position are then available through Token,
// Literal, and Pos. After the input is exhausted, Next yields EOF forever.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token literal (identifier name, digit run, operator text)
	tokPos Pos    // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case isOperatorStart(s.ch):
		if !s.scanOperator() {
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, carriage return, and newline.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier or keyword: a letter followed by a maximal
// run of letters and digits.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a maximal run of decimal digits.
// VaC has integer literals only: no sign, no decimal point, no exponent.
func (s *Scanner) scanNumber() {
	s.startLit()
	s.nextch()

	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = _Number
}

// scanOperator scans an operator or delimiter.
// Returns false if no token was produced (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
		s.lit = "+"
	case '-':
		s.tok = _Sub
		s.lit = "-"
	case '*':
		s.tok = _Mul
		s.lit = "*"
	case '/':
		s.tok = _Div
		s.lit = "/"
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			// A bare ! is not a VaC token.
			s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q", ch))
			return false
		}
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		} else {
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		} else {
			s.tok = _Gtr
			s.lit = ">"
		}
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	}

	return true
}

// errorAt reports a lexical error at a specific position.
func (s *Scanner) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos.Line(), pos.Col(), msg)
	}
}
