package optimizer

import (
	"sync"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
)

// Rule rewrites a single node, having already been called post-order by
// the pipeline (via ast.Transform), so any children it sees are already
// in their final, rewritten shape. Implementations are pure functions of
// (node, ctx); none hold state across invocations.
type Rule interface {
	// ID is the stable, lower_snake_case identifier an OptimizerConfig
	// knob gates (e.g. "simplify").
	ID() string
	// Name is a short human-readable label for logging.
	Name() string
	// Apply rewrites n, returning n unchanged when the rule does not
	// apply.
	Apply(n ast.Node, ctx *Context) ast.Node
}

var registry = struct {
	mu    sync.RWMutex
	rules map[string]Rule
}{rules: make(map[string]Rule)}

// Register adds a rule to the global registry, keyed by its ID. Call this
// from an init() function in the rule's defining file, mirroring the
// teacher's lint rule registration pattern.
func Register(r Rule) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.rules[r.ID()] = r
}

// Get looks up a registered rule by ID.
func Get(id string) (Rule, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	r, ok := registry.rules[id]
	return r, ok
}

// List returns every registered rule, unordered. Pipeline ordering is
// driven by ruleOrder in config.go, not by this function.
func List() []Rule {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]Rule, 0, len(registry.rules))
	for _, r := range registry.rules {
		out = append(out, r)
	}
	return out
}
