// Package symbols implements the symbol table for VaC name resolution.
package symbols

import "github.com/vac-lang/vac/internal/syntax"

// Symbol represents a declared entity: a variable or a function.
type Symbol interface {
	Name() string    // symbol name
	Pos() syntax.Pos // declaration position
	aSymbol()        // marker method to restrict implementations
}

// symbol is the base struct for all symbols.
type symbol struct {
	name string
	pos  syntax.Pos
}

func (s *symbol) Name() string    { return s.name }
func (s *symbol) Pos() syntax.Pos { return s.pos }
func (*symbol) aSymbol()          {}

// Var represents a variable binding.
// Variables are created by assignment: the first assignment to a name
// declares it.
type Var struct {
	symbol
}

// NewVar creates a new variable symbol.
func NewVar(pos syntax.Pos, name string) *Var {
	return &Var{symbol: symbol{name: name, pos: pos}}
}

// Func represents a declared function with its ordered parameter names.
type Func struct {
	symbol
	params []string
}

// NewFunc creates a new function symbol.
func NewFunc(pos syntax.Pos, name string, params []string) *Func {
	return &Func{symbol: symbol{name: name, pos: pos}, params: params}
}

// Params returns the ordered parameter names.
func (f *Func) Params() []string {
	return f.params
}
