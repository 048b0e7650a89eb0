// Package scope builds transient analytical views over a parsed AST: which
// tables, CTEs, and derived tables are visible at each nesting level, and
// how many times each CTE is actually referenced. Scopes are discarded
// after use; they are not retained on the AST itself.
package scope

import "github.com/sqlmorph/sqlmorph/pkg/ast"

// Kind identifies what a Scope was built from.
type Kind int

const (
	// Root is the scope of a top-level statement (and the home of its CTEs).
	Root Kind = iota
	// CTE is the scope of a single WITH-clause CTE's query.
	CTE
	// Subquery is the scope of a derived table in a FROM/JOIN clause.
	Subquery
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "ROOT"
	case CTE:
		return "CTE"
	case Subquery:
		return "SUBQUERY"
	default:
		return "UNKNOWN"
	}
}

// Source is a named thing a query can select from: either a physical
// table or another scope (a CTE or derived table).
type Source interface {
	source()
	EffectiveName() string
}

// TableSource is a reference to a physical table, qualified name intact.
type TableSource struct {
	Alias         string
	QualifiedName string
}

func (TableSource) source() {}

// EffectiveName returns the alias if present, else the qualified name.
func (t TableSource) EffectiveName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.QualifiedName
}

// ScopeSource is a reference to a CTE or derived table, resolved to its
// own child Scope.
type ScopeSource struct {
	Alias string
	Child *Scope
}

func (ScopeSource) source() {}

// EffectiveName returns the binding alias this source is reachable by.
func (s ScopeSource) EffectiveName() string { return s.Alias }

// Scope is one level of a scope tree: a defining expression, the ordered
// set of sources visible within it, CTE reference counts (only
// meaningful on a Root scope), the set of column names referenced
// directly within it, and links to parent/child scopes.
type Scope struct {
	Kind     Kind
	Defining ast.Node

	order   []string
	sources map[string]Source

	CTERefCount map[string]int
	Columns     map[string]struct{}

	Parent   *Scope
	Children []*Scope
}

func newScope(kind Kind, defining ast.Node, parent *Scope) *Scope {
	s := &Scope{
		Kind:        kind,
		Defining:    defining,
		sources:     make(map[string]Source),
		CTERefCount: make(map[string]int),
		Columns:     make(map[string]struct{}),
		Parent:      parent,
	}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// register binds name (case-sensitive; callers normalize upstream if
// their dialect requires it) to src, preserving insertion order.
func (s *Scope) register(name string, src Source) {
	if _, exists := s.sources[name]; !exists {
		s.order = append(s.order, name)
	}
	s.sources[name] = src
}

// Sources returns every source registered directly on this scope, in
// declaration order.
func (s *Scope) Sources() []Source {
	out := make([]Source, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.sources[name])
	}
	return out
}

// Lookup finds a source by alias or qualified name, searching this scope
// then every ancestor.
func (s *Scope) Lookup(name string) (Source, bool) {
	if s == nil {
		return nil, false
	}
	if src, ok := s.sources[name]; ok {
		return src, true
	}
	return s.Parent.Lookup(name)
}

// LookupCTE finds a CTE's ScopeSource by name, searching this scope then
// every ancestor. Only ScopeSource entries qualify.
func (s *Scope) LookupCTE(name string) (ScopeSource, bool) {
	if s == nil {
		return ScopeSource{}, false
	}
	if src, ok := s.sources[name]; ok {
		if ss, ok := src.(ScopeSource); ok {
			return ss, true
		}
	}
	return s.Parent.LookupCTE(name)
}

// markColumnReferenced records that name was referenced as a bare
// column within this scope's defining query.
func (s *Scope) markColumnReferenced(name string) {
	if name == "" {
		return
	}
	s.Columns[name] = struct{}{}
}
