package generator

import "github.com/sqlmorph/sqlmorph/pkg/ast"

// Generator renders an AST back into SQL text according to a Config and
// optional identifier-formatting override.
type Generator struct {
	cfg              Config
	formatIdentifier IdentifierFormatter
}

// New constructs a Generator. With no options, identifiers are quoted per
// DefaultIdentifierFormatter.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, formatIdentifier: DefaultIdentifierFormatter}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders stmt to a SQL string under the Generator's Config.
func (g *Generator) Generate(stmt ast.Stmt) string {
	p := newPrinter(g.cfg)
	g.formatStmt(p, stmt)
	return p.String()
}

// Format is a convenience wrapper for one-off pretty-printing with the
// default configuration.
func Format(stmt ast.Stmt) string {
	return New(DefaultConfig()).Generate(stmt)
}

// Canonical renders stmt in compact single-line form, used by the optimizer
// to detect whether a pass produced a structural change without comparing
// ASTs by pointer identity or reflect.DeepEqual.
func Canonical(stmt ast.Stmt) string {
	return New(CompactConfig()).Generate(stmt)
}
