package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/parser"
	"github.com/sqlmorph/sqlmorph/pkg/scope"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

func parseSQL(t *testing.T, sql string) ast.Stmt {
	t.Helper()
	p, err := parser.New(sql, lexer.Config{Keywords: token.Keywords})
	require.NoError(t, err)
	stmt, err := p.ParseStatement()
	require.NoError(t, err)
	return stmt
}

func TestBuildRegistersSimpleTable(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM orders o")
	root := scope.Build(stmt)

	sources := root.Sources()
	require.Len(t, sources, 1)
	ts, ok := sources[0].(scope.TableSource)
	require.True(t, ok)
	assert.Equal(t, "o", ts.Alias)
	assert.Equal(t, "orders", ts.QualifiedName)
	assert.Equal(t, "o", ts.EffectiveName())
}

func TestBuildRegistersJoinSources(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM orders o JOIN customers c ON o.customer_id = c.id")
	root := scope.Build(stmt)

	require.Len(t, root.Sources(), 2)
	_, ok := root.Lookup("o")
	assert.True(t, ok)
	_, ok = root.Lookup("c")
	assert.True(t, ok)
}

func TestBuildCountsCTEReferences(t *testing.T) {
	stmt := parseSQL(t, `
		WITH recent AS (SELECT id FROM orders)
		SELECT r1.id FROM recent r1 JOIN recent r2 ON r1.id = r2.id
	`)
	root := scope.Build(stmt)

	require.Contains(t, root.CTERefCount, "recent")
	assert.Equal(t, 2, root.CTERefCount["recent"])

	cte, ok := root.LookupCTE("recent")
	require.True(t, ok)
	assert.Equal(t, scope.CTE, cte.Child.Kind)
}

func TestBuildUnreferencedCTEHasZeroCount(t *testing.T) {
	stmt := parseSQL(t, `
		WITH unused AS (SELECT id FROM orders)
		SELECT a FROM customers
	`)
	root := scope.Build(stmt)

	require.Contains(t, root.CTERefCount, "unused")
	assert.Equal(t, 0, root.CTERefCount["unused"])
}

func TestBuildRegistersDerivedTableAsScopeSource(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM (SELECT a FROM orders) AS sub")
	root := scope.Build(stmt)

	src, ok := root.Lookup("sub")
	require.True(t, ok)
	ss, ok := src.(scope.ScopeSource)
	require.True(t, ok)
	require.NotNil(t, ss.Child)
	assert.Equal(t, scope.Subquery, ss.Child.Kind)
	assert.Equal(t, root, ss.Child.Parent)
}

func TestBuildDoesNotDoubleRegisterCTENameInFrom(t *testing.T) {
	stmt := parseSQL(t, `
		WITH recent AS (SELECT id FROM orders)
		SELECT id FROM recent
	`)
	root := scope.Build(stmt)

	// recent is registered once, as the CTE's ScopeSource, not again as
	// a TableSource when it appears in the main query's FROM clause.
	sources := root.Sources()
	count := 0
	for _, src := range sources {
		if src.EffectiveName() == "recent" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildCollectsReferencedColumns(t *testing.T) {
	stmt := parseSQL(t, "SELECT a, b FROM orders WHERE status = 'open' GROUP BY a HAVING b > 1 ORDER BY a")
	root := scope.Build(stmt)

	for _, name := range []string{"a", "b", "status"} {
		assert.Contains(t, root.Columns, name)
	}
}

func TestBuildDoesNotLeakSubqueryColumnsIntoParentScope(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM (SELECT secret FROM orders) AS sub")
	root := scope.Build(stmt)

	assert.NotContains(t, root.Columns, "secret")
}
