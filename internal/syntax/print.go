package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Value:\n")
		p.indent++
		p.print(n.Value)
		p.indent--
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, param := range n.Params {
				p.printf("%s\n", param.Value)
			}
			p.indent--
		}
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *NumberLit:
		p.printf("NumberLit %s %d\n", n.pos, n.Value)

	case *Operation:
		p.printf("BinaryOp %s %s\n", n.pos, n.Op)
		p.indent++
		p.printf("X:\n")
		p.indent++
		p.print(n.X)
		p.indent--
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent--
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.printf("Fun: %s\n", n.Fun.Value)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}
