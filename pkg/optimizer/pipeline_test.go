package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
	_ "github.com/sqlmorph/sqlmorph/pkg/optimizer/rules"
	"github.com/sqlmorph/sqlmorph/pkg/parser"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

type fakeDialect struct{}

func (fakeDialect) Name() string                  { return "fake" }
func (fakeDialect) IsReservedKeyword(string) bool { return false }

func parseSQL(t *testing.T, sql string) ast.Stmt {
	t.Helper()
	p, err := parser.New(sql, lexer.Config{Keywords: token.Keywords})
	require.NoError(t, err)
	stmt, err := p.ParseStatement()
	require.NoError(t, err)
	return stmt
}

func TestPipeline_ReachesFixpointBeforeMaxPasses(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE 1 = 1 AND a = 5")
	pipe := optimizer.NewPipeline(optimizer.AggressiveConfig(), optimizer.WithMaxPasses(8))

	out, ctx := pipe.Optimize(stmt, fakeDialect{})

	require.NotNil(t, ctx)
	got := generator.Canonical(out)
	assert.NotContains(t, got, "1 = 1")
	assert.Contains(t, got, "a = 5")
}

func TestPipeline_MinimalConfigOnlySimplifies(t *testing.T) {
	stmt := parseSQL(t, "SELECT a FROM x JOIN y ON x.id = y.id WHERE 1 = 1")
	pipe := optimizer.NewPipeline(optimizer.MinimalConfig())

	out, _ := pipe.Optimize(stmt, fakeDialect{})
	got := generator.Canonical(out)

	assert.NotContains(t, got, "1 = 1")
	// QualifyColumns is disabled under MinimalConfig, so the ambiguous
	// column from the two-table join stays unqualified.
	sel, ok := out.(*ast.Select)
	require.True(t, ok)
	col, ok := sel.Columns[0].(*ast.Column)
	require.True(t, ok)
	assert.Equal(t, "", col.Qualifier)
}

func TestPipeline_MaxPassesCapsIteration(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE a = 5")
	pipe := optimizer.NewPipeline(optimizer.AggressiveConfig(), optimizer.WithMaxPasses(1))

	out, ctx := pipe.Optimize(stmt, fakeDialect{})
	assert.NotNil(t, out)
	assert.NotNil(t, ctx)
}

func TestPipeline_EmptyConfigIsNoOp(t *testing.T) {
	stmt := parseSQL(t, "SELECT * FROM t WHERE 1 = 1")
	pipe := optimizer.NewPipeline(optimizer.OptimizerConfig{})

	out, _ := pipe.Optimize(stmt, fakeDialect{})
	assert.Equal(t, generator.Canonical(stmt), generator.Canonical(out))
}
