package scope

import (
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

// Build walks stmt and constructs its scope tree: a root scope holding
// any WITH-clause CTEs as ScopeSource entries, the FROM/JOIN sources of
// every SELECT reachable from stmt as TableSource or nested ScopeSource
// entries, and a CTERefCount on the root tallying how many times each
// CTE is actually selected from.
//
// Each subquery's child scope is built exactly once, by the FROM/JOIN
// walk that discovers it; nothing re-derives it while counting CTE
// references afterward.
func Build(stmt ast.Stmt) *Scope {
	root := newScope(Root, stmt, nil)

	sel, ok := topLevelSelect(stmt)
	if !ok {
		return root
	}

	if sel.With != nil {
		for _, cte := range sel.With.CTEs {
			child := buildSelectLike(cte.Query, CTE, root)
			root.register(cte.Name, ScopeSource{Alias: cte.Name, Child: child})
			root.CTERefCount[cte.Name] = 0
		}
	}

	populateFromSources(sel, root)
	collectColumnRefs(sel, root)
	countCTEReferences(stmt, root)
	return root
}

// collectColumnRefs records every bare column name sel's own clauses
// reference directly, stopping at Subquery boundaries since a nested
// subquery's columns belong to the scope built for it, not this one.
func collectColumnRefs(sel *ast.Select, s *Scope) {
	mark := func(n ast.Node) {
		if col, ok := n.(*ast.Column); ok {
			s.markColumnReferenced(col.Name)
		}
	}

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		mark(n)
		if _, isSubquery := n.(*ast.Subquery); isSubquery {
			return
		}
		for _, c := range ast.Children(n) {
			walk(c)
		}
	}

	for _, c := range sel.Columns {
		walk(c)
	}
	if sel.Where != nil {
		walk(sel.Where)
	}
	if sel.GroupBy != nil {
		walk(sel.GroupBy)
	}
	if sel.Having != nil {
		walk(sel.Having)
	}
	for _, o := range sel.OrderBy {
		walk(o)
	}
}

func topLevelSelect(stmt ast.Stmt) (*ast.Select, bool) {
	switch s := stmt.(type) {
	case *ast.Select:
		return s, true
	case *ast.SetOp:
		return topLevelSelect(s.Left)
	default:
		return nil, false
	}
}

// buildSelectLike builds the scope for a CTE's or subquery's inner
// statement, which is itself a full SELECT (possibly a set operation).
func buildSelectLike(stmt ast.Stmt, kind Kind, parent *Scope) *Scope {
	s := newScope(kind, stmt, parent)
	sel, ok := topLevelSelect(stmt)
	if !ok {
		return s
	}
	populateFromSources(sel, s)
	collectColumnRefs(sel, s)
	return s
}

// populateFromSources registers every table/derived-table reachable
// from sel's FROM and JOIN clauses into s, skipping names that are
// already bound to a CTE in s or an ancestor scope.
func populateFromSources(sel *ast.Select, s *Scope) {
	if sel.From != nil {
		registerFromSource(sel.From.Source, s)
	}
	for _, j := range sel.Joins {
		registerFromSource(j.Right, s)
	}
}

func registerFromSource(src ast.Expr, s *Scope) {
	switch t := src.(type) {
	case *ast.Table:
		if t.Catalog == "" && t.Schema == "" {
			if _, isCTE := s.LookupCTE(t.Name); isCTE {
				// Already reachable via the scope (s or an ancestor) that
				// defines this CTE; counted by countCTEReferences, not re-bound here.
				return
			}
		}
		s.register(effectiveTableName(t), TableSource{Alias: t.Alias, QualifiedName: qualifiedTableName(t)})
	case *ast.Subquery:
		child := buildSelectLike(t.Query, Subquery, s)
		s.register(t.Alias, ScopeSource{Alias: t.Alias, Child: child})
	}
}

func qualifiedTableName(t *ast.Table) string {
	parts := make([]string, 0, 3)
	if t.Catalog != "" {
		parts = append(parts, t.Catalog)
	}
	if t.Schema != "" {
		parts = append(parts, t.Schema)
	}
	parts = append(parts, t.Name)
	return strings.Join(parts, ".")
}

func effectiveTableName(t *ast.Table) string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// countCTEReferences walks every Table node reachable from stmt
// (including inside each CTE's own query, so cross-CTE references
// count) and increments root.CTERefCount for every unqualified name
// that names a registered CTE. Each Table node counts once, although
// FindAll reaches a join's left source a second time through Join.Left.
func countCTEReferences(stmt ast.Stmt, root *Scope) {
	if len(root.CTERefCount) == 0 {
		return
	}
	seen := make(map[*ast.Table]bool)
	for n := range ast.FindAll(stmt, func(n ast.Node) bool {
		_, ok := n.(*ast.Table)
		return ok
	}) {
		t := n.(*ast.Table)
		if seen[t] {
			continue
		}
		seen[t] = true
		if t.Catalog != "" || t.Schema != "" {
			continue
		}
		if _, ok := root.CTERefCount[t.Name]; ok {
			root.CTERefCount[t.Name]++
		}
	}
}
