// Package resolver implements name resolution for parsed VaC programs.
//
// The resolver walks the AST in pre-order, populating a flat symbol table
// and reporting every name reference that has no preceding declaration.
// It deliberately checks nothing else: no arity, no types.
package resolver

import (
	"fmt"

	"github.com/vac-lang/vac/internal/symbols"
	"github.com/vac-lang/vac/internal/syntax"
)

// ResolveError represents a name-resolution error.
type ResolveError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each resolution error.
type ErrorHandler func(pos syntax.Pos, msg string)

// Config specifies the configuration for name resolution.
type Config struct {
	// Error is called for each resolution error.
	// If nil, errors are only retained as the returned first error.
	Error ErrorHandler
}

// Info holds the results of name resolution.
type Info struct {
	// Defs maps defining identifiers to their declared symbols.
	// Assignment targets, function names, and parameter names land here.
	Defs map[*syntax.Name]symbols.Symbol

	// Uses maps referencing identifiers to their referenced symbols.
	Uses map[*syntax.Name]symbols.Symbol
}

// Resolve resolves all names in a parsed program.
// It returns the populated symbol table and the first error encountered,
// if any. The table is freshly created per call and never shared.
func Resolve(prog *syntax.Program, conf *Config, info *Info) (*symbols.Table, error) {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]symbols.Symbol)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]symbols.Symbol)
		}
	}

	r := &resolver{
		conf:  conf,
		info:  info,
		table: symbols.NewTable(),
	}

	r.stmts(prog.Stmts)

	if r.errors > 0 {
		return r.table, r.first
	}
	return r.table, nil
}

// resolver holds the state of one resolution run.
type resolver struct {
	conf  *Config
	info  *Info
	table *symbols.Table

	errors int           // error count
	first  *ResolveError // first error
}

// errorf reports a resolution error at the given position.
func (r *resolver) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if r.errors == 0 {
		r.first = &ResolveError{Pos: pos, Msg: msg}
	}
	r.errors++

	if r.conf.Error != nil {
		r.conf.Error(pos, msg)
	}
}

// declare binds a symbol and records the defining identifier.
// A later declaration with the same name overwrites the earlier one.
func (r *resolver) declare(name *syntax.Name, sym symbols.Symbol) {
	r.table.Bind(sym)
	if r.info != nil {
		r.info.Defs[name] = sym
	}
}

// use resolves a referencing identifier against the table.
// Reports an error if the name is unbound.
func (r *resolver) use(name *syntax.Name) {
	sym := r.table.Lookup(name.Value)
	if sym == nil {
		r.errorf(name.Pos(), "undefined: %s", name.Value)
		return
	}
	if r.info != nil {
		r.info.Uses[name] = sym
	}
}

// ----------------------------------------------------------------------------
// Statements

// stmts resolves a list of statements in order.
func (r *resolver) stmts(list []syntax.Stmt) {
	for _, s := range list {
		r.stmt(s)
	}
}

// stmt resolves a single statement.
func (r *resolver) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		// Declaration-on-assignment: the target is bound before the value
		// resolves, so x = x; resolves (to the fresh binding).
		r.declare(s.Name, symbols.NewVar(s.Name.Pos(), s.Name.Value))
		r.expr(s.Value)

	case *syntax.FuncDecl:
		params := make([]string, len(s.Params))
		for i, param := range s.Params {
			params[i] = param.Value
		}
		r.declare(s.Name, symbols.NewFunc(s.Name.Pos(), s.Name.Value, params))

		// Parameters bind into the same flat table as everything else.
		for _, param := range s.Params {
			r.declare(param, symbols.NewVar(param.Pos(), param.Value))
		}

		r.stmts(s.Body.Stmts)

	case *syntax.IfStmt:
		r.expr(s.Cond)
		r.stmts(s.Body.Stmts)

	case *syntax.ExprStmt:
		r.expr(s.X)

	case *syntax.BlockStmt:
		r.stmts(s.Stmts)

	default:
		r.errorf(s.Pos(), "unexpected statement %T", s)
	}
}

// ----------------------------------------------------------------------------
// Expressions

// expr resolves an expression.
func (r *resolver) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.NumberLit:
		// Nothing to resolve.

	case *syntax.Name:
		r.use(e)

	case *syntax.Operation:
		r.expr(e.X)
		r.expr(e.Y)

	case *syntax.CallExpr:
		r.use(e.Fun)
		for _, a := range e.Args {
			r.expr(a)
		}

	default:
		r.errorf(e.Pos(), "unexpected expression %T", e)
	}
}
