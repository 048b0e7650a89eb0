package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestJoinReordering_InnerBeforeOuter(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM a LEFT JOIN b ON a.id = b.id INNER JOIN c ON a.id = c.id")
	out := applyOnce(t, "join_reordering", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Len(t, sel.Joins, 2)
	assert.Equal(t, ast.InnerJoin, sel.Joins[0].Kind)
	assert.Equal(t, ast.LeftJoin, sel.Joins[1].Kind)
}

func TestJoinReordering_SingleJoinUnchanged(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM a LEFT JOIN b ON a.id = b.id")
	out := applyOnce(t, "join_reordering", stmt, fakeDialect{})

	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Len(t, sel.Joins, 1)
	assert.Equal(t, ast.LeftJoin, sel.Joins[0].Kind)
}

func TestJoinReordering_IdempotentOnAlreadySorted(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM a INNER JOIN b ON a.id = b.id LEFT JOIN c ON a.id = c.id")
	first := applyOnce(t, "join_reordering", stmt, fakeDialect{})
	second := applyOnce(t, "join_reordering", first, fakeDialect{})
	assert.Equal(t, render(first), render(second))
}
