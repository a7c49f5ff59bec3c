package scm

import (
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Symbol is an interned name.
// Two Symbols from the same SymbolTable with the same name are the same pointer,
// so symbols are compared with ==.
type Symbol struct {
	name string
}

func (*Symbol) isValue() {}

func (*Symbol) Kind() Kind { return KindSymbol }

func (s *Symbol) Name() string { return s.name }

func (s *Symbol) String() string { return s.name }

// SymbolTable interns names to Symbols.
// It is the only way to create a Symbol.
// Symbols are never removed; they live as long as the table.
// A SymbolTable is safe for concurrent use.
type SymbolTable struct {
	mu   sync.Mutex
	syms map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: make(map[string]*Symbol)}
}

// Intern returns the Symbol for name, creating it on first use.
func (st *SymbolTable) Intern(name string) *Symbol {
	st.mu.Lock()
	defer st.mu.Unlock()
	if sym, exists := st.syms[name]; exists {
		return sym
	}
	sym := &Symbol{name: name}
	st.syms[name] = sym
	return sym
}

// Lookup returns the Symbol for name if it has been interned.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sym, exists := st.syms[name]
	return sym, exists
}

// Len returns the number of interned symbols.
func (st *SymbolTable) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.syms)
}

// Names returns the names of all interned symbols in sorted order.
func (st *SymbolTable) Names() []string {
	st.mu.Lock()
	names := maps.Keys(st.syms)
	st.mu.Unlock()
	slices.Sort(names)
	return names
}
