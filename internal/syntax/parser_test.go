package syntax

import (
	"reflect"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Test helpers

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	prog, errs := parseProgramWithErrors(t, src)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func parseProgramWithErrors(t *testing.T, src string) (*Program, []string) {
	t.Helper()
	var errs []string
	errh := func(pos Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	p := NewParser("test.vac", strings.NewReader(src), errh)
	prog := p.Parse()
	if prog == nil {
		t.Fatal("Parse returned nil")
	}
	return prog, errs
}

// ----------------------------------------------------------------------------
// Statements

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t\n"} {
		prog := parseProgram(t, src)
		if len(prog.Stmts) != 0 {
			t.Errorf("source %q: got %d statements, want 0", src, len(prog.Stmts))
		}
	}
}

func TestParseAssignment(t *testing.T) {
	prog := parseProgram(t, "speed = 100;")
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}

	as, ok := prog.Stmts[0].(*AssignStmt)
	if !ok {
		t.Fatalf("got %T, want *AssignStmt", prog.Stmts[0])
	}
	if as.Name.Value != "speed" {
		t.Errorf("target = %q, want %q", as.Name.Value, "speed")
	}
	lit, ok := as.Value.(*NumberLit)
	if !ok {
		t.Fatalf("value is %T, want *NumberLit", as.Value)
	}
	if lit.Value != 100 {
		t.Errorf("value = %d, want 100", lit.Value)
	}
}

func TestParseFuncDecl(t *testing.T) {
	prog := parseProgram(t, "function f(a,b){ x = a; }")
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}

	fd, ok := prog.Stmts[0].(*FuncDecl)
	if !ok {
		t.Fatalf("got %T, want *FuncDecl", prog.Stmts[0])
	}
	if fd.Name.Value != "f" {
		t.Errorf("name = %q, want %q", fd.Name.Value, "f")
	}

	var params []string
	for _, p := range fd.Params {
		params = append(params, p.Value)
	}
	if !reflect.DeepEqual(params, []string{"a", "b"}) {
		t.Errorf("params = %v, want [a b]", params)
	}

	if len(fd.Body.Stmts) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fd.Body.Stmts))
	}
	as, ok := fd.Body.Stmts[0].(*AssignStmt)
	if !ok {
		t.Fatalf("body statement is %T, want *AssignStmt", fd.Body.Stmts[0])
	}
	if as.Name.Value != "x" {
		t.Errorf("body target = %q, want %q", as.Name.Value, "x")
	}
	if v, ok := as.Value.(*Name); !ok || v.Value != "a" {
		t.Errorf("body value = %#v, want Name a", as.Value)
	}
}

func TestParseParamLists(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "function f(){}", nil},
		{"one", "function f(a){}", []string{"a"}},
		{"two", "function f(a,b){}", []string{"a", "b"}},
		{"trailing_comma", "function f(a,b,){}", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, tt.src)
			fd := prog.Stmts[0].(*FuncDecl)
			var params []string
			for _, p := range fd.Params {
				params = append(params, p.Value)
			}
			if !reflect.DeepEqual(params, tt.want) {
				t.Errorf("params = %v, want %v", params, tt.want)
			}
		})
	}
}

func TestParseIfStmt(t *testing.T) {
	prog := parseProgram(t, "if (speed > 60) { brake = 1; }")
	s, ok := prog.Stmts[0].(*IfStmt)
	if !ok {
		t.Fatalf("got %T, want *IfStmt", prog.Stmts[0])
	}

	cond, ok := s.Cond.(*Operation)
	if !ok {
		t.Fatalf("condition is %T, want *Operation", s.Cond)
	}
	if cond.Op != _Gtr {
		t.Errorf("condition operator = %s, want >", cond.Op)
	}
	if len(s.Body.Stmts) != 1 {
		t.Errorf("body has %d statements, want 1", len(s.Body.Stmts))
	}
}

func TestParseCallStmt(t *testing.T) {
	prog := parseProgram(t, "applyBrakes();\nsetSpeed(60, limit - 5);")
	if len(prog.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Stmts))
	}

	es, ok := prog.Stmts[0].(*ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ExprStmt", prog.Stmts[0])
	}
	call, ok := es.X.(*CallExpr)
	if !ok {
		t.Fatalf("expression is %T, want *CallExpr", es.X)
	}
	if call.Fun.Value != "applyBrakes" || len(call.Args) != 0 {
		t.Errorf("call = %s/%d args, want applyBrakes/0", call.Fun.Value, len(call.Args))
	}

	call = prog.Stmts[1].(*ExprStmt).X.(*CallExpr)
	if call.Fun.Value != "setSpeed" || len(call.Args) != 2 {
		t.Fatalf("call = %s/%d args, want setSpeed/2", call.Fun.Value, len(call.Args))
	}
	if _, ok := call.Args[1].(*Operation); !ok {
		t.Errorf("second argument is %T, want *Operation", call.Args[1])
	}
}

// ----------------------------------------------------------------------------
// Expressions

// TestParseFlatRightRecursion pins down the flat expression grammar:
// there is no operator precedence, the right recursion nests everything
// after the first operator.
func TestParseFlatRightRecursion(t *testing.T) {
	tests := []struct {
		name string
		src  string
		// pre-order rendering of the expression tree
		want string
	}{
		{"add_mul", "x = a + b * c;", "(a + (b * c))"},
		{"mul_add", "x = a * b + c;", "(a * (b + c))"},
		{"sub_chain", "x = a - b - c;", "(a - (b - c))"},
		{"paren_left", "x = (a + b) * c;", "((a + b) * c)"},
		{"paren_inner", "x = a * (b + c);", "(a * (b + c))"},
		{"compare", "x = a + b > c;", "(a + (b > c))"},
		{"single", "x = a;", "a"},
		{"number", "x = 7;", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, tt.src)
			as := prog.Stmts[0].(*AssignStmt)
			if got := exprString(as.Value); got != tt.want {
				t.Errorf("parsed %q as %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

// exprString renders an expression tree with explicit grouping.
func exprString(e Expr) string {
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *NumberLit:
		return x.Text
	case *Operation:
		return "(" + exprString(x.X) + " " + x.Op.String() + " " + exprString(x.Y) + ")"
	case *CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = exprString(a)
		}
		return x.Fun.Value + "(" + strings.Join(args, ", ") + ")"
	}
	return "?"
}

func TestParseParenGroupsUnwrap(t *testing.T) {
	prog := parseProgram(t, "x = (a);")
	as := prog.Stmts[0].(*AssignStmt)
	if n, ok := as.Value.(*Name); !ok || n.Value != "a" {
		t.Errorf("value = %#v, want the unwrapped Name a", as.Value)
	}
}

func TestParseCallInExpression(t *testing.T) {
	prog := parseProgram(t, "x = limit(a) + 1;")
	as := prog.Stmts[0].(*AssignStmt)
	op, ok := as.Value.(*Operation)
	if !ok {
		t.Fatalf("value is %T, want *Operation", as.Value)
	}
	if _, ok := op.X.(*CallExpr); !ok {
		t.Errorf("left operand is %T, want *CallExpr", op.X)
	}
}

func TestParseDeterminism(t *testing.T) {
	src := `
function startEngine(gear) {
	speed = gear * 10;
	if (speed > 60) {
		speed = 60;
	}
}
speed = 0;
`
	first := parseProgram(t, src)
	second := parseProgram(t, src)
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same source twice produced different ASTs")
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring of the first error
	}{
		{"missing_semi", "x = 1", "expected ;, found end of input"},
		{"missing_rparen", "if (x { y = 1; }", "expected ), found"},
		{"missing_value", "x = ;", "expected expression, found"},
		{"stray_delimiter", ") x = 1;", "expected statement, found"},
		{"keyword_as_target", "function = 1;", "expected identifier"},
		{"assign_to_call", "f() = 1;", "cannot assign to function call"},
		{"number_statement", "42;", "expected statement, found number 42"},
		{"unterminated_block", "function f() { x = 1;", "expected }"},
		{"number_overflow", "x = 99999999999999999999;", "malformed number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseProgramWithErrors(t, tt.src)
			if len(errs) == 0 {
				t.Fatalf("source %q: expected a parse error, got none", tt.src)
			}
			if !strings.Contains(errs[0], tt.want) {
				t.Errorf("first error %q does not contain %q", errs[0], tt.want)
			}
		})
	}
}

func TestParseFirstError(t *testing.T) {
	var count int
	errh := func(pos Pos, msg string) { count++ }
	p := NewParser("test.vac", strings.NewReader("x = ; y = ;"), errh)
	p.Parse()

	if p.Errors() == 0 || p.Errors() != count {
		t.Errorf("Errors() = %d, callback count = %d", p.Errors(), count)
	}
	first := p.FirstError()
	if first == nil {
		t.Fatal("FirstError() = nil, want error")
	}
	se, ok := first.(*SyntaxError)
	if !ok {
		t.Fatalf("FirstError() is %T, want *SyntaxError", first)
	}
	if se.Pos.Line() != 1 || se.Pos.Col() != 5 {
		t.Errorf("first error at %s, want 1:5", se.Pos)
	}
}

func TestParseErrorLimit(t *testing.T) {
	// Force many independent errors; the parser must abort instead of
	// reporting without bound.
	src := strings.Repeat("; ", 50)
	_, errs := parseProgramWithErrors(t, src)
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	if len(errs) > maxErrors+1 {
		t.Errorf("got %d errors, want at most %d", len(errs), maxErrors+1)
	}
	last := errs[len(errs)-1]
	if !strings.Contains(last, "too many errors") {
		t.Errorf("last error %q does not mention the abort", last)
	}
}

func TestParseLexicalErrorSurfaces(t *testing.T) {
	_, errs := parseProgramWithErrors(t, "x = 1 $ 2;")
	if len(errs) == 0 {
		t.Fatal("expected a lexical error through the parser error handler")
	}
	if !strings.Contains(errs[0], "unexpected character '$'") {
		t.Errorf("first error %q, want the unexpected character report", errs[0])
	}
	if !strings.Contains(errs[0], "test.vac:1:7") {
		t.Errorf("first error %q lacks position test.vac:1:7", errs[0])
	}
}
