package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_LiteralColumnSwap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		avoid string
	}{
		{"lt becomes gt", "SELECT * FROM t WHERE 5 < x", "x > 5", "5 < x"},
		{"gt becomes lt", "SELECT * FROM t WHERE 5 > x", "x < 5", "5 > x"},
		{"lte becomes gte", "SELECT * FROM t WHERE 5 <= x", "x >= 5", "5 <= x"},
		{"gte becomes lte", "SELECT * FROM t WHERE 5 >= x", "x <= 5", "5 >= x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			out := applyOnce(t, "canonicalize", stmt, fakeDialect{})
			got := render(out)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestCanonicalize_NotComparisonInversion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not gt", "SELECT * FROM t WHERE NOT x > 5", "x <= 5"},
		{"not lt", "SELECT * FROM t WHERE NOT x < 5", "x >= 5"},
		{"not eq", "SELECT * FROM t WHERE NOT x = 5", "x != 5"},
		{"not neq", "SELECT * FROM t WHERE NOT x != 5", "x = 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			out := applyOnce(t, "canonicalize", stmt, fakeDialect{})
			assert.Contains(t, render(out), tt.want)
		})
	}
}
