// Package optimizer rewrites an AST through an ordered, fixpoint-looped
// sequence of rules. Every rule is a pure function of (node, *Context); the
// pipeline, not any individual rule, owns the looping and termination logic.
package optimizer

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

// DialectInfo is the minimal view of a dialect an optimizer rule needs,
// kept narrow so pkg/optimizer never imports pkg/dialect; pkg/sqlmorph
// adapts a *dialect.Dialect to it.
type DialectInfo interface {
	Name() string
	IsReservedKeyword(name string) bool
}

// Type is the coarse type lattice AnnotateTypes assigns to expression
// nodes. It is never used to reject a query, only to annotate it.
type Type int

const (
	Unknown Type = iota
	Numeric
	String
	Boolean
	Date
)

func (t Type) String() string {
	switch t {
	case Numeric:
		return "NUMERIC"
	case String:
		return "STRING"
	case Boolean:
		return "BOOLEAN"
	case Date:
		return "DATE"
	default:
		return "UNKNOWN"
	}
}

// TypeInfo is one node's inferred type and nullability.
type TypeInfo struct {
	Type     Type
	Nullable bool
}

// Context carries everything a rule may consult beyond the node it is
// rewriting: the active dialect, the resolved configuration, an optional
// logger, and the scratch space AnnotateTypes uses to record its
// (non-rewriting) findings. A Context is built fresh per Pipeline.Optimize
// call and is not safe to share across concurrent optimizations of
// different statements.
type Context struct {
	Dialect DialectInfo
	Config  OptimizerConfig
	Logger  *slog.Logger

	// PassID correlates every slog line emitted during one multi-pass
	// optimization run.
	PassID ulid.ULID

	// Types accumulates AnnotateTypes' findings, keyed by node identity.
	// newContext allocates it empty; AnnotateTypes allocates it on a
	// Context whose map is nil.
	Types map[ast.Node]TypeInfo
}

func newContext(dialect DialectInfo, cfg OptimizerConfig, logger *slog.Logger, passID ulid.ULID) *Context {
	return &Context{
		Dialect: dialect,
		Config:  cfg,
		Logger:  logger,
		PassID:  passID,
		Types:   make(map[ast.Node]TypeInfo),
	}
}

func (c *Context) annotate(n ast.Node, info TypeInfo) {
	if c.Types == nil {
		c.Types = make(map[ast.Node]TypeInfo)
	}
	c.Types[n] = info
}

// TypeOf reports the type annotation AnnotateTypes recorded for n, if any.
func (c *Context) TypeOf(n ast.Node) (TypeInfo, bool) {
	info, ok := c.Types[n]
	return info, ok
}

func (c *Context) log(rule string, msg string) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug(msg, "rule", rule, "pass_id", c.PassID.String())
}
