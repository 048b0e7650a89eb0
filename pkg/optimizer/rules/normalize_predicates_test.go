package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePredicates_DeduplicatesConjuncts(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE x = 5 AND x = 5")
	out := applyOnce(t, "normalize_predicates", stmt, fakeDialect{})
	got := render(out)
	assert.Equal(t, 1, strings.Count(got, "x = 5"))
}

func TestNormalizePredicates_DeduplicatesDisjuncts(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE x = 5 OR x = 5")
	out := applyOnce(t, "normalize_predicates", stmt, fakeDialect{})
	got := render(out)
	assert.Equal(t, 1, strings.Count(got, "x = 5"))
}

func TestNormalizePredicates_DoubleNegation(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE NOT NOT x = 5")
	out := applyOnce(t, "normalize_predicates", stmt, fakeDialect{})
	assert.NotContains(t, render(out), "NOT NOT")
}

func TestNormalizePredicates_DeMorganOnAnd(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE NOT (x = 5 AND y = 6)")
	out := applyOnce(t, "normalize_predicates", stmt, fakeDialect{})
	got := render(out)
	assert.Contains(t, got, "OR")
}

func TestNormalizePredicates_DeMorganOnOr(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE NOT (x = 5 OR y = 6)")
	out := applyOnce(t, "normalize_predicates", stmt, fakeDialect{})
	got := render(out)
	assert.Contains(t, got, "AND")
}
