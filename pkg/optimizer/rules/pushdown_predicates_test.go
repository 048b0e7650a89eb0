package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestPushdownPredicates_MovesCoveredPredicate(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a, b FROM t) s WHERE a = 5")
	out := applyOnce(t, "pushdown_predicates", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Nil(t, sel.Where)

	sub, ok := sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
	inner := sub.Query.(*ast.Select)
	assert.NotNil(t, inner.Where)
}

func TestPushdownPredicates_LeavesUncoveredPredicateAlone(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a FROM t) s WHERE b = 5")
	out := applyOnce(t, "pushdown_predicates", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.NotNil(t, sel.Where)
}

func TestPushdownPredicates_SkipsAggregatingSubquery(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT a, COUNT(*) AS c FROM t GROUP BY a) s WHERE a = 5")
	out := applyOnce(t, "pushdown_predicates", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.NotNil(t, sel.Where)
}

func TestPushdownPredicates_RewritesAliasedColumnToInnerExpr(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT x AS y FROM t) s WHERE y > 5")
	out := applyOnce(t, "pushdown_predicates", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Nil(t, sel.Where)

	sub, ok := sel.From.Source.(*ast.Subquery)
	assert.True(t, ok)
	inner := sub.Query.(*ast.Select)
	require.NotNil(t, inner.Where)

	gt, ok := inner.Where.Condition.(*ast.GT)
	require.True(t, ok)
	col, ok := gt.Left.(*ast.Column)
	require.True(t, ok)
	assert.Equal(t, "x", col.Name)
}

func TestPushdownPredicates_StarCoversAnyColumn(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM (SELECT * FROM t) s WHERE a = 5")
	out := applyOnce(t, "pushdown_predicates", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Nil(t, sel.Where)
}
