package syntax

import (
	"io"
	"strconv"
)

// Maximum number of errors before aborting parse.
const maxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on VaC source code.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh   func(pos Pos, msg string)
	errcnt int
	first  error // first error encountered
	abort  bool  // set to true when error limit reached
}

// NewParser creates a new Parser for the given source.
// The errh function is called for each syntax or lexical error; if nil,
// errors are only retained as FirstError.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{}

	scanErrh := func(line, col uint32, msg string) {
		p.errorAt(NewPos(filename, line, col), msg)
	}

	p.scanner = NewScanner(filename, src, scanErrh)
	p.errh = errh
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error naming both the expected and the found token.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String() + ", found " + p.describeTok())
		p.advance()
	}
}

// describeTok renders the current token for an error message.
func (p *Parser) describeTok() string {
	switch p.tok {
	case _EOF:
		return "end of input"
	case _Name:
		return "identifier " + strconv.Quote(p.lit)
	case _Number:
		return "number " + p.lit
	}
	return strconv.Quote(p.lit)
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.errorAt(p.pos, msg)
}

// errorAt reports an error at a specific position.
// The first error is retained; parsing aborts after maxErrors.
func (p *Parser) errorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	if p.errcnt >= maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = _EOF
	}
}

// advance skips tokens until it finds a synchronization point.
// This is used for error recovery.
func (p *Parser) advance() {
	sync := map[Token]bool{
		_Semi:     true, // statement terminator
		_Rbrace:   true, // block end
		_Rparen:   true, // param list end
		_Function: true,
		_If:       true,
		_EOF:      true,
	}

	for p.tok != _EOF && !sync[p.tok] {
		p.next()
	}

	// Consume sync point to avoid repeated errors at the same position.
	if p.tok != _EOF {
		p.next()
	}
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete source unit and returns the AST.
// Statements that fail to parse are dropped; no partially built node is ever
// returned. Callers must check Errors or FirstError before trusting the result.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	prog.pos = p.pos

	for !p.abort && p.tok != _EOF {
		if s := p.stmt(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}

	return prog
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a single statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Function:
		return p.funcDecl()

	case _If:
		return p.ifStmt()

	case _Name:
		return p.simpleStmt()

	default:
		p.syntaxError("expected statement, found " + p.describeTok())
		p.advance()
		return nil
	}
}

// funcDecl parses: function Name(params) { body }
func (p *Parser) funcDecl() Stmt {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(_Function)
	d.Name = p.name()
	d.Params = p.paramList()
	d.Body = p.blockStmt()

	return d
}

// paramList parses (p1, p2, ...)
// A trailing comma before the closing parenthesis is tolerated.
func (p *Parser) paramList() []*Name {
	p.want(_Lparen)

	var params []*Name
	for p.tok != _Rparen && p.tok != _EOF {
		params = append(params, p.name())
		if !p.got(_Comma) {
			break
		}
	}

	p.want(_Rparen)
	return params
}

// ifStmt parses: if (cond) { body }
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Body = p.blockStmt()

	return s
}

// simpleStmt parses an assignment or an expression statement.
// Both start with an identifier; one token past the expression decides.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.term()

	if p.tok == _Assign {
		name, ok := x.(*Name)
		if !ok {
			p.syntaxError("cannot assign to " + nodeDesc(x))
			p.advance()
			return nil
		}
		return p.assignStmt(pos, name)
	}

	// Expression statement: continue the expression past the operand.
	s := &ExprStmt{X: p.exprTail(x)}
	s.pos = pos
	p.want(_Semi)
	return s
}

// assignStmt parses the remainder of: Name = expr ;
func (p *Parser) assignStmt(pos Pos, name *Name) Stmt {
	s := &AssignStmt{Name: name}
	s.pos = pos

	p.want(_Assign)
	s.Value = p.expr()
	p.want(_Semi)

	return s
}

// blockStmt parses { stmts... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)

	for p.tok != _Rbrace && p.tok != _EOF && !p.abort {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// ----------------------------------------------------------------------------
// Expressions
//
// The expression grammar is flat and right-recursive with no operator
// precedence: expr := term (op expr)?. A chain like a + b * c therefore
// parses as a + (b * c) purely because the right recursion swallows
// everything after the first operator. This is a deliberate property of the
// language, not an accident of the implementation.

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.exprTail(p.term())
}

// exprTail parses the optional operator tail after an already parsed term.
func (p *Parser) exprTail(x Expr) Expr {
	if !p.tok.IsBinaryOp() {
		return x
	}

	op := &Operation{Op: p.tok, X: x}
	op.pos = x.Pos()
	p.next() // consume operator
	op.Y = p.expr()
	return op
}

// term parses a term: a number, a name, a call, or a parenthesized expression.
func (p *Parser) term() Expr {
	switch p.tok {
	case _Number:
		return p.numberLit()

	case _Name:
		n := p.name()
		if p.tok == _Lparen {
			return p.callExpr(n)
		}
		return n

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		// Parenthesized groups yield the inner expression; there is no
		// grouping node in the tree.
		return x

	default:
		p.syntaxError("expected expression, found " + p.describeTok())
		p.advance()
		// Error recovery placeholder; never survives a successful parse.
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError("expected identifier, found " + p.describeTok())
		// Return a placeholder for error recovery.
		n := &Name{Value: "_"}
		n.pos = p.pos
		p.advance()
		return n
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// numberLit parses an integer literal.
func (p *Parser) numberLit() Expr {
	lit := &NumberLit{Text: p.lit}
	lit.pos = p.pos

	v, err := strconv.ParseInt(p.lit, 10, 64)
	if err != nil {
		// The scanner only emits digit runs, but the boundary is still
		// checked: a run too long for int64 lands here.
		p.syntaxError("malformed number " + strconv.Quote(p.lit))
	}
	lit.Value = v

	p.next()
	return lit
}

// callExpr parses the remainder of: Fun(args...)
func (p *Parser) callExpr(fun *Name) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	for p.tok != _Rparen && p.tok != _EOF {
		call.Args = append(call.Args, p.expr())
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_Rparen)

	return call
}

// nodeDesc renders a node kind for an error message.
func nodeDesc(x Expr) string {
	switch x.(type) {
	case *NumberLit:
		return "number literal"
	case *CallExpr:
		return "function call"
	case *Operation:
		return "operation"
	}
	return "expression"
}
