package rules

import (
	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
	"github.com/sqlmorph/sqlmorph/pkg/scope"
)

func init() {
	optimizer.Register(eliminateCTEsRule{})
}

type eliminateCTEsRule struct{}

func (eliminateCTEsRule) ID() string   { return "eliminate_ctes" }
func (eliminateCTEsRule) Name() string { return "EliminateCTEs" }

// Apply removes CTEs with zero live references from a Select's With
// clause, cascading until the remaining set is stable within this single
// node. Cross-pass cascades (a CTE that only became unreferenced because
// an earlier pass removed another one) are handled by the pipeline
// re-running this rule on the next pass.
func (r eliminateCTEsRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok || sel.With == nil {
		return n
	}

	root := scope.Build(sel)
	live := make([]*ast.CTE, 0, len(sel.With.CTEs))
	for {
		changed := false
		live = live[:0]
		for _, cte := range sel.With.CTEs {
			if root.CTERefCount[cte.Name] > 0 {
				live = append(live, cte)
			} else {
				changed = true
			}
		}
		if !changed {
			break
		}
		// Recompute against the surviving set so a CTE that only
		// referenced a just-removed CTE is itself re-evaluated.
		sel = withCTEs(sel, live)
		root = scope.Build(sel)
	}

	if len(live) == 0 {
		nv := *sel
		nv.With = nil
		return &nv
	}
	if len(live) == len(sel.With.CTEs) {
		return sel
	}
	return withCTEs(sel, live)
}

func withCTEs(sel *ast.Select, ctes []*ast.CTE) *ast.Select {
	nv := *sel
	nv.With = &ast.With{Recursive: sel.With.Recursive, CTEs: ctes}
	return &nv
}
