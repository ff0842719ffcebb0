package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a flat mapping from name to Symbol.
//
// VaC has no nested lexical scoping: function bodies bind into the same
// table as the enclosing program. One Table serves exactly one resolver
// run and must not be shared across concurrent runs.
type Table struct {
	elems map[string]Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{elems: make(map[string]Symbol)}
}

// Bind inserts a symbol, overwriting any earlier binding with the same name.
// Redeclaration is last-write-wins, not an error.
func (t *Table) Bind(sym Symbol) {
	t.elems[sym.Name()] = sym
}

// Lookup returns the symbol with the given name, or nil if unbound.
func (t *Table) Lookup(name string) Symbol {
	return t.elems[name]
}

// Names returns the names of all bound symbols, sorted alphabetically.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.elems))
	for name := range t.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound symbols.
func (t *Table) Len() int {
	return len(t.elems)
}

// String returns a string representation of the table for debugging.
func (t *Table) String() string {
	var buf strings.Builder
	buf.WriteString("symbols {\n")
	for _, name := range t.Names() {
		switch sym := t.elems[name].(type) {
		case *Func:
			fmt.Fprintf(&buf, "  %s: function(%s)\n", name, strings.Join(sym.Params(), ", "))
		default:
			fmt.Fprintf(&buf, "  %s: variable\n", name)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}
