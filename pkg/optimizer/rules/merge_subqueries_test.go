package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestMergeSubqueries_InlinesSimpleSubquery(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a, b FROM t) s")
	out := applyOnce(t, "merge_subqueries", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	table, ok := sel.From.Source.(*ast.Table)
	assert.True(t, ok)
	assert.Equal(t, "t", table.Name)
	assert.Equal(t, "s", table.Alias)
}

func TestMergeSubqueries_LeavesAggregatingSubqueryAlone(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a, COUNT(*) AS c FROM t GROUP BY a) s")
	out := applyOnce(t, "merge_subqueries", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	_, ok = sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
}

func TestMergeSubqueries_LeavesDistinctSubqueryAlone(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT DISTINCT a FROM t) s")
	out := applyOnce(t, "merge_subqueries", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	_, ok = sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
}

func TestMergeSubqueries_RewritesOuterRefsToRenamedColumn(t *testing.T) {
	stmt := parseSQL(t, "SELECT x FROM (SELECT a AS x FROM t) s WHERE x > 5")
	out := applyOnce(t, "merge_subqueries", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	table, ok := sel.From.Source.(*ast.Table)
	assert.True(t, ok)
	assert.Equal(t, "t", table.Name)

	col, ok := sel.Columns[0].(*ast.Column)
	assert.True(t, ok)
	assert.Equal(t, "a", col.Name)

	assert.NotNil(t, sel.Where)
	got := render(sel)
	assert.Contains(t, got, "a > 5")
	assert.NotContains(t, got, "x")
}

func TestMergeSubqueries_MergesInnerWhereIntoOuter(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a FROM t WHERE a > 0) s WHERE a < 100")
	out := applyOnce(t, "merge_subqueries", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.NotNil(t, sel.Where)
	got := render(sel)
	assert.Contains(t, got, "a > 0")
	assert.Contains(t, got, "a < 100")
}
