// Package syntax implements lexical analysis for the VaC language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Name   // identifier: speed, startEngine
	_Number // integer literal: 100

	// Operators
	_Assign // =

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Function
	_If

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "NAME",
	_Number: "NUMBER",

	_Assign: "=",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Function: "function",
	_If:       "if",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t == _Function || t == _If
}

// IsOperator reports whether t is an operator token (including =).
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Div
}

// IsBinaryOp reports whether t may appear as a binary operator inside an
// expression. Assignment is handled at the statement level and is excluded.
func (t Token) IsBinaryOp() bool {
	return t >= _Eql && t <= _Div
}

// IsDelimiter reports whether t is a delimiter token.
func (t Token) IsDelimiter() bool {
	return t >= _Lparen && t <= _Semi
}

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Kind classifies a token into one of the coarse token classes.
type Kind uint8

const (
	KindEOF Kind = iota
	KindKeyword
	KindIdentifier
	KindNumber
	KindOperator
	KindDelimiter
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	KindEOF:        "EndOfInput",
	KindKeyword:    "Keyword",
	KindIdentifier: "Identifier",
	KindNumber:     "Number",
	KindOperator:   "Operator",
	KindDelimiter:  "Delimiter",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kind returns the coarse class of the token.
func (t Token) Kind() Kind {
	switch {
	case t == _EOF:
		return KindEOF
	case t.IsKeyword():
		return KindKeyword
	case t == _Name:
		return KindIdentifier
	case t == _Number:
		return KindNumber
	case t.IsOperator():
		return KindOperator
	case t.IsDelimiter():
		return KindDelimiter
	}
	return KindEOF
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"function": _Function,
	"if":       _If,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
