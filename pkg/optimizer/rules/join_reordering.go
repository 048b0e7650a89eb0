package rules

import (
	"sort"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
)

func init() {
	optimizer.Register(joinReorderingRule{})
}

type joinReorderingRule struct{}

func (joinReorderingRule) ID() string   { return "join_reordering" }
func (joinReorderingRule) Name() string { return "JoinReordering" }

// Apply stable-sorts a Select's Joins (≥2 of them) so INNER/CROSS joins
// precede LEFT/RIGHT/FULL ones, with an equality-ON join winning ties
// within the same rank. Stable sort keeps the heuristic idempotent:
// re-running it on already-sorted joins is a no-op.
func (r joinReorderingRule) Apply(n ast.Node, ctx *optimizer.Context) ast.Node {
	sel, ok := n.(*ast.Select)
	if !ok || len(sel.Joins) < 2 {
		return n
	}

	sorted := make([]*ast.Join, len(sel.Joins))
	copy(sorted, sel.Joins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return joinRank(sorted[i]) < joinRank(sorted[j])
	})

	unchanged := true
	for i := range sorted {
		if sorted[i] != sel.Joins[i] {
			unchanged = false
			break
		}
	}
	if unchanged {
		return n
	}

	nv := *sel
	nv.Joins = sorted
	return &nv
}

// joinRank orders INNER/CROSS ahead of outer joins; within a rank, a
// pure-equality ON clause sorts first as "more selective".
func joinRank(j *ast.Join) int {
	base := 0
	switch j.Kind {
	case ast.InnerJoin, ast.CrossJoin:
		base = 0
	default:
		base = 2
	}
	if _, eq := j.On.(*ast.EQ); eq {
		return base
	}
	return base + 1
}
