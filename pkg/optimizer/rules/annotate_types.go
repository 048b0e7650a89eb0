package rules

import (
	"strconv"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(annotateTypesRule{})
}

type annotateTypesRule struct{}

func (annotateTypesRule) ID() string   { return "annotate_types" }
func (annotateTypesRule) Name() string { return "AnnotateTypes" }

// Apply never rewrites; it records a TypeInfo for n in ctx and returns n
// unchanged. Incompatible-looking comparisons (e.g. NUMERIC vs STRING)
// are simply annotated BOOLEAN like any other comparison — nothing here
// rejects a query.
func (r annotateTypesRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	if ctx.Types == nil {
		ctx.Types = make(map[ast.Node]optimizer.TypeInfo)
	}
	switch v := n.(type) {
	case *ast.Literal:
		if v.Kind == ast.NumberLiteral {
			if _, err := strconv.ParseFloat(v.Text, 64); err == nil {
				ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.Numeric}
				return n
			}
		}
		ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.String}
	case *ast.True, *ast.False:
		ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.Boolean}
	case *ast.Null:
		ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.Unknown, Nullable: true}
	case *ast.Add, *ast.Sub, *ast.Mul, *ast.Div, *ast.Mod:
		ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.Numeric, Nullable: true}
	case *ast.EQ, *ast.NEQ, *ast.GT, *ast.LT, *ast.GTE, *ast.LTE,
		*ast.And, *ast.Or, *ast.Not, *ast.Is:
		ctx.Types[n] = optimizer.TypeInfo{Type: optimizer.Boolean}
	}
	return n
}
