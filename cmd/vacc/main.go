// Package main implements the VaC front-end entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/vac-lang/vac/internal/resolver"
	"github.com/vac-lang/vac/internal/symbols"
	"github.com/vac-lang/vac/internal/syntax"
)

// Front-end flags
var (
	emitTokens  = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST     = flag.Bool("emit-ast", false, "Output AST")
	astFormat   = flag.String("ast-format", "text", "AST output format (text or json)")
	emitSymbols = flag.Bool("emit-symbols", false, "Output resolved symbol table")
	version     = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "VaC front-end %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: vacc [options] <file.vac>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("vacc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: vacc [options] <file.vac>")
		os.Exit(1)
	}

	filename := args[0]

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(filename))
	case *emitAST:
		os.Exit(runEmitAST(filename))
	case *emitSymbols:
		os.Exit(runEmitSymbols(filename))
	}

	os.Exit(runCheck(filename))
}

// runCheck parses and resolves the input file, reporting all diagnostics.
func runCheck(filename string) int {
	prog, errs := parseProgram(filename)
	if prog == nil {
		return 1
	}

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(errs) > 0 {
		return 1
	}

	resolveErrs := resolveProgram(prog)
	for _, e := range resolveErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(resolveErrs) > 0 {
		return 1
	}

	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	fmt.Printf("%-20s %-12s %-12s %s\n", "POSITION", "KIND", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %-12s %s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-12s %-12s %q\n", s.Pos(), tok.Kind(), tok, s.Literal())
		if tok.IsEOF() {
			break
		}
	}

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	prog, errs := parseProgram(filename)
	if prog == nil {
		return 1
	}

	// Print errors first
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, prog)
	}

	if len(errs) > 0 {
		return 1
	}
	return 0
}

// runEmitSymbols parses and resolves the input file, then dumps the table.
func runEmitSymbols(filename string) int {
	prog, errs := parseProgram(filename)
	if prog == nil {
		return 1
	}

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(errs) > 0 {
		return 1
	}

	var resolveErrs []string
	errh := func(pos syntax.Pos, msg string) {
		resolveErrs = append(resolveErrs, fmt.Sprintf("%s: %s", pos, msg))
	}

	table, _ := resolver.Resolve(prog, &resolver.Config{Error: errh}, nil)

	for _, e := range resolveErrs {
		fmt.Fprintln(os.Stderr, e)
	}

	fmt.Print(table)

	if len(resolveErrs) > 0 {
		return 1
	}
	return 0
}

// parseProgram opens and parses a file, collecting diagnostics.
// Returns nil with the open error already printed when the file is unreadable.
func parseProgram(filename string) (*syntax.Program, []string) {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, nil
	}
	defer f.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	p := syntax.NewParser(filename, f, errh)
	return p.Parse(), errs
}

// resolveProgram resolves a parsed program, collecting diagnostics.
func resolveProgram(prog *syntax.Program) []string {
	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	info := &resolver.Info{
		Defs: make(map[*syntax.Name]symbols.Symbol),
		Uses: make(map[*syntax.Name]symbols.Symbol),
	}
	_, _ = resolver.Resolve(prog, &resolver.Config{Error: errh}, info)

	return errs
}
