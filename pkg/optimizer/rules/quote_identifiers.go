package rules

import (
	"regexp"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(quoteIdentifiersRule{})
}

var safeIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type quoteIdentifiersRule struct{}

func (quoteIdentifiersRule) ID() string   { return "quote_identifiers" }
func (quoteIdentifiersRule) Name() string { return "QuoteIdentifiers" }

// Apply marks Identifier, Column, and Table nodes that need quoting. A
// name already quoted in source is left alone; its Quoted flag already
// preserves that through generation. An unquoted name is flipped to
// Quoted only when it is unsafe bare: a reserved keyword, or containing
// characters a bare identifier can't.
func (r quoteIdentifiersRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	switch v := n.(type) {
	case *ast.Identifier:
		if v.Quoted || !needsQuote(ctx, v.Name) {
			return n
		}
		nv := *v
		nv.Quoted = true
		return &nv
	case *ast.Column:
		if v.Quoted || !needsQuote(ctx, v.Name) {
			return n
		}
		nv := *v
		nv.Quoted = true
		return &nv
	case *ast.Table:
		if v.Quoted || !needsQuote(ctx, v.Name) {
			return n
		}
		nv := *v
		nv.Quoted = true
		return &nv
	}
	return n
}

func needsQuote(ctx *optimizer.Context, name string) bool {
	if !safeIdentifier.MatchString(name) {
		return true
	}
	if ctx != nil && ctx.Dialect != nil && ctx.Dialect.IsReservedKeyword(name) {
		return true
	}
	return false
}
