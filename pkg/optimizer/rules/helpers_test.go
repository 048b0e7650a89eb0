package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
	_ "github.com/sqlmorph/sqlmorph/pkg/optimizer/rules"
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

type fakeDialect struct {
	reserved map[string]bool
}

func (f fakeDialect) Name() string { return "fake" }
func (f fakeDialect) IsReservedKeyword(name string) bool {
	return f.reserved[name]
}

// applyOnce runs a single registered rule, by ID, once over stmt via
// ast.Transform, mirroring what Pipeline.runPass does for one rule in one
// pass.
func applyOnce(t *testing.T, ruleID string, stmt ast.Stmt, dialect optimizer.DialectInfo) ast.Stmt {
	t.Helper()
	rule, ok := optimizer.Get(ruleID)
	require.True(t, ok, "rule %q not registered", ruleID)
	ctx := &optimizer.Context{
		Dialect: dialect,
		Config:  optimizer.AggressiveConfig(),
		Types:   make(map[ast.Node]optimizer.TypeInfo),
	}
	result := ast.Transform(stmt, func(n ast.Node) ast.Node {
		return rule.Apply(n, ctx)
	})
	return result.(ast.Stmt)
}

func render(stmt ast.Stmt) string {
	return generator.Canonical(stmt)
}
