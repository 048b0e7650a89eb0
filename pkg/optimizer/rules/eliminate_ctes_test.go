package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

func TestEliminateCTEs_RemovesUnreferenced(t *testing.T) {
	stmt := parseSQL(t, "WITH unused AS (SELECT 1) SELECT * FROM t")
	out := applyOnce(t, "eliminate_ctes", stmt, fakeDialect{})
	got := render(out)
	assert.NotContains(t, got, "WITH")
}

func TestEliminateCTEs_KeepsReferenced(t *testing.T) {
	stmt := parseSQL(t, "WITH c AS (SELECT 1 AS x) SELECT * FROM c")
	out := applyOnce(t, "eliminate_ctes", stmt, fakeDialect{})
	got := render(out)
	assert.Contains(t, got, "WITH")
	assert.Contains(t, got, "c")
}

func TestEliminateCTEs_Cascades(t *testing.T) {
	stmt := parseSQL(t, "WITH a AS (SELECT 1), b AS (SELECT * FROM a) SELECT * FROM t")
	out := applyOnce(t, "eliminate_ctes", stmt, fakeDialect{})
	got := render(out)
	assert.NotContains(t, got, "WITH")
}

func TestEliminateCTEs_NoWithClauseNoOp(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t")
	out := applyOnce(t, "eliminate_ctes", stmt, fakeDialect{})
	sel, ok := out.(*ast.Select)
	assert.True(t, ok)
	assert.Nil(t, sel.With)
}
