// Package syntax implements lexical and syntactic analysis for the VaC language.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements.
// All nodes implement the Node interface. Expression and Statement nodes
// further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program represents a complete VaC source unit: an ordered sequence of
// top-level statements.
type Program struct {
	node
	Stmts []Stmt // top-level statements
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier used as a variable or function reference.
type Name struct {
	expr
	Value string // identifier string
}

// NumberLit represents an integer literal.
type NumberLit struct {
	expr
	Value int64  // decoded value
	Text  string // original lexeme
}

// Operation represents a binary operation: X Op Y.
// The grammar is flat and right-recursive, so the right operand of a chain
// of operators is itself an Operation nesting everything to its right.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand
	Y  Expr  // right operand
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name  // callee
	Args []Expr // argument list
}

// ----------------------------------------------------------------------------
// Statements

// AssignStmt represents an assignment: Name = Value ;
// Assignment doubles as declaration: the first assignment to a name creates
// its binding.
type AssignStmt struct {
	stmt
	Name  *Name // target
	Value Expr  // assigned value
}

// FuncDecl represents a function declaration:
// function Name(Params...) { Body }
type FuncDecl struct {
	stmt
	Name   *Name   // function name
	Params []*Name // ordered parameter names
	Body   *BlockStmt
}

// IfStmt represents an if statement: if (Cond) { Body }
// There is no else clause in VaC.
type IfStmt struct {
	stmt
	Cond Expr // condition expression
	Body *BlockStmt
}

// ExprStmt represents an expression used as a statement: Expr ;
// In practice this is a function call statement.
type ExprStmt struct {
	stmt
	X Expr // expression
}

// BlockStmt represents a braced statement list: { Stmts... }
// Blocks appear only as function and if bodies, never in statement position.
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements
	Rbrace Pos    // position of closing brace
}
