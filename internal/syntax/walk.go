package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *FuncDecl:
		Walk(n.Name, v)
		for _, param := range n.Params {
			Walk(param, v)
		}
		Walk(n.Body, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Name, NumberLit
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
