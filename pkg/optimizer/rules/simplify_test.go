package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify_BooleanIdentities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"true and x", "SELECT * FROM t WHERE TRUE AND x = 5", "x = 5"},
		{"false and x", "SELECT * FROM t WHERE FALSE AND x = 5", "FALSE"},
		{"x or true", "SELECT * FROM t WHERE x = 5 OR TRUE", "TRUE"},
		{"false or x", "SELECT * FROM t WHERE FALSE OR x = 5", "x = 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			out := applyOnce(t, "simplify", stmt, fakeDialect{})
			assert.Contains(t, render(out), tt.want)
			assert.NotContains(t, render(out), "TRUE AND")
		})
	}
}

func TestSimplify_NotCollapse(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE NOT NOT x = 5")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.NotContains(t, render(out), "NOT NOT")
}

func TestSimplify_NotComparisonInversion(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE NOT x > 5")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.Contains(t, render(out), "x <= 5")
}

func TestSimplify_ArithmeticIdentities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"x+0", "SELECT x + 0 FROM t", "x"},
		{"0+x", "SELECT 0 + x FROM t", "x"},
		{"x-0", "SELECT x - 0 FROM t", "x"},
		{"x*1", "SELECT x * 1 FROM t", "x"},
		{"1*x", "SELECT 1 * x FROM t", "x"},
		{"x*0", "SELECT x * 0 FROM t", "0"},
		{"x/1", "SELECT x / 1 FROM t", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			out := applyOnce(t, "simplify", stmt, fakeDialect{})
			got := render(out)
			assert.NotContains(t, got, "+ 0")
			assert.NotContains(t, got, "- 0")
			assert.Contains(t, got, "SELECT "+tt.want+" FROM")
		})
	}
}

func TestSimplify_ConstantFolding(t *testing.T) {
	stmt := parseSQL(t, "SELECT 2 + 3 FROM t")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.Contains(t, render(out), "5")
}

func TestSimplify_DivisionByZero(t *testing.T) {
	stmt := parseSQL(t, "SELECT x / 0 FROM t")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.Contains(t, render(out), "NULL")
}

func TestSimplify_IdentityComparison(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE 'a' = 'a'")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.Contains(t, render(out), "TRUE")
}

func TestSimplify_NullPropagation(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE x = NULL")
	out := applyOnce(t, "simplify", stmt, fakeDialect{})
	assert.Contains(t, render(out), "NULL")
}
