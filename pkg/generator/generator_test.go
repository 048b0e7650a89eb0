package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/parser"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

func ansiConfig() lexer.Config {
	return lexer.Config{Keywords: token.Keywords}
}

func parseSQL(t *testing.T, sql string) ast.Stmt {
	t.Helper()
	p, err := parser.New(sql, ansiConfig())
	require.NoError(t, err)
	stmt, err := p.ParseStatement()
	require.NoError(t, err)
	return stmt
}

func TestFormat_BasicSelect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "simple select",
			input: "SELECT a, b FROM t",
			expected: `SELECT
  a,
  b
FROM t
`,
		},
		{
			name:  "select with where",
			input: "SELECT a FROM t WHERE x = 1",
			expected: `SELECT
  a
FROM t
WHERE
  x = 1
`,
		},
		{
			name:  "select with alias",
			input: "SELECT a AS col1, b AS col2 FROM t",
			expected: `SELECT
  a AS col1,
  b AS col2
FROM t
`,
		},
		{
			name:  "select star",
			input: "SELECT * FROM t",
			expected: `SELECT
  *
FROM t
`,
		},
		{
			name:  "select table star",
			input: "SELECT t.* FROM t",
			expected: `SELECT
  t.*
FROM t
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			result := generator.Format(stmt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_Joins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "inner join",
			input: "SELECT * FROM a JOIN b ON a.id = b.id",
			expected: `SELECT
  *
FROM a
INNER JOIN b
  ON a.id = b.id
`,
		},
		{
			name:  "left join",
			input: "SELECT * FROM a LEFT JOIN b ON a.id = b.id",
			expected: `SELECT
  *
FROM a
LEFT JOIN b
  ON a.id = b.id
`,
		},
		{
			name:  "cross join",
			input: "SELECT * FROM a CROSS JOIN b",
			expected: `SELECT
  *
FROM a
CROSS JOIN b
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSQL(t, tt.input)
			result := generator.Format(stmt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_CTE(t *testing.T) {
	input := "WITH cte AS (SELECT a FROM t) SELECT * FROM cte"
	expected := `WITH
  cte AS (
    SELECT
      a
    FROM t
  )
SELECT
  *
FROM cte
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_GroupByOrderBy(t *testing.T) {
	input := "SELECT a, COUNT(*) FROM t GROUP BY a ORDER BY a DESC"
	expected := `SELECT
  a,
  COUNT(*)
FROM t
GROUP BY
  a
ORDER BY
  a DESC
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_LimitOffset(t *testing.T) {
	input := "SELECT * FROM t LIMIT 10 OFFSET 5"
	expected := `SELECT
  *
FROM t
LIMIT 10
OFFSET 5
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_Union(t *testing.T) {
	input := "SELECT a FROM t1 UNION SELECT b FROM t2"
	expected := `SELECT
  a
FROM t1
UNION
SELECT
  b
FROM t2
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_Subquery(t *testing.T) {
	input := "SELECT * FROM (SELECT a FROM t) AS sub"
	expected := `SELECT
  *
FROM (
  SELECT
    a
  FROM t
) sub
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_CaseExpression(t *testing.T) {
	input := "SELECT CASE WHEN x = 1 THEN 'a' ELSE 'b' END FROM t"
	expected := `SELECT
  CASE
    WHEN x = 1 THEN 'a'
    ELSE 'b'
  END
FROM t
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_Cast(t *testing.T) {
	input := "SELECT CAST(x AS INT) FROM t"
	expected := `SELECT
  CAST(x AS INT)
FROM t
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}

func TestFormat_ArithmeticPrecedenceParens(t *testing.T) {
	// (a + b) * c must keep its parens; a + b * c must not gain any.
	tests := []struct {
		input    string
		expected string
	}{
		{"SELECT (a + b) * c FROM t", "SELECT (a + b) * c FROM t"},
		{"SELECT a + b * c FROM t", "SELECT a + b * c FROM t"},
		{"SELECT a - (b - c) FROM t", "SELECT a - (b - c) FROM t"},
	}
	for _, tt := range tests {
		stmt := parseSQL(t, tt.input)
		result := generator.New(generator.CompactConfig()).Generate(stmt)
		assert.Equal(t, tt.expected, result)
	}
}

func TestFormat_CompactIsSingleLine(t *testing.T) {
	stmt := parseSQL(t, "SELECT a, b FROM t WHERE a = 1 AND b = 2")
	result := generator.Canonical(stmt)
	assert.NotContains(t, result, "\n")
	assert.Equal(t, "SELECT a, b FROM t WHERE a = 1 AND b = 2", result)
}

func TestFormat_IdentifierQuotingReservedWord(t *testing.T) {
	stmt := parseSQL(t, `SELECT a FROM t`)
	sel := stmt.(*ast.Select)
	sel.Columns = append(sel.Columns, ast.NewIdentifier("select"))

	result := generator.Canonical(stmt)
	assert.Contains(t, result, `"select"`)
}

func TestFormat_LowerCaseKeywords(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM t WHERE a = 1")
	cfg := generator.CompactConfig()
	cfg.LowerCaseKeywords = true
	result := generator.New(cfg).Generate(stmt)
	assert.Equal(t, "select a from t where a = 1", result)
}

func TestFormat_CustomIdentifierFormatter(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM t")
	backtick := func(name string, quoted bool) string { return "`" + name + "`" }
	g := generator.New(generator.CompactConfig(), generator.WithIdentifierFormatter(backtick))
	result := g.Generate(stmt)
	assert.Equal(t, "SELECT `a` FROM `t`", result)
}

func TestFormat_InExpression(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE x IN (1, 2, 3)")
	result := generator.Canonical(stmt)
	assert.Equal(t, "SELECT * FROM t WHERE x IN (1, 2, 3)", result)
}

func TestFormat_PreservesSourceQuotedColumn(t *testing.T) {
	stmt := parseSQL(t, `SELECT "myCol" FROM t`)
	result := generator.Canonical(stmt)
	assert.Contains(t, result, `"myCol"`)
}

func TestFormat_PreservesSourceQuotedTable(t *testing.T) {
	stmt := parseSQL(t, `SELECT a FROM "my table"`)
	result := generator.Canonical(stmt)
	assert.Contains(t, result, `"my table"`)
}

func TestFormat_BareColumnIsNotQuoted(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM t")
	result := generator.Canonical(stmt)
	assert.NotContains(t, result, `"a"`)
}

func TestFormat_ExistsSubquery(t *testing.T) {
	input := "SELECT * FROM t WHERE EXISTS (SELECT 1 FROM other)"
	expected := `SELECT
  *
FROM t
WHERE
  EXISTS (
    SELECT
      1
    FROM other
  )
`
	stmt := parseSQL(t, input)
	result := generator.Format(stmt)
	assert.Equal(t, expected, result)
}
