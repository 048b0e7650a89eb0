package optimizer

import (
	"crypto/rand"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/generator"
)

const defaultMaxPasses = 8

var (
	passEntropy     = ulid.Monotonic(rand.Reader, 0)
	passEntropyLock sync.Mutex
)

func newPassID() ulid.ULID {
	passEntropyLock.Lock()
	defer passEntropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), passEntropy)
}

// Pipeline applies an ordered, configurable set of rules to a statement
// until a full pass produces no structural change, or maxPasses is hit.
type Pipeline struct {
	cfg       OptimizerConfig
	maxPasses int
	logger    *slog.Logger
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithMaxPasses overrides the default pass cap of 8.
func WithMaxPasses(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxPasses = n
		}
	}
}

// WithLogger attaches a *slog.Logger; each rule application is logged at
// Debug level when set. Nil (the default) keeps the pipeline silent.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// NewPipeline constructs a Pipeline from cfg and any Options.
func NewPipeline(cfg OptimizerConfig, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg, maxPasses: defaultMaxPasses}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Optimize repeatedly applies every enabled rule, in ruleOrder, to stmt
// until a pass leaves the canonical-form rendering unchanged or maxPasses
// passes have run. It returns the rewritten statement and the Context
// from the final pass (carrying any AnnotateTypes findings).
func (p *Pipeline) Optimize(stmt ast.Stmt, dialect DialectInfo) (ast.Stmt, *Context) {
	current := stmt
	var ctx *Context

	for pass := 0; pass < p.maxPasses; pass++ {
		ctx = newContext(dialect, p.cfg, p.logger, newPassID())

		before := generator.Canonical(current)
		current = p.runPass(current, ctx)
		after := generator.Canonical(current)

		if before == after {
			break
		}
	}

	return current, ctx
}

func (p *Pipeline) runPass(stmt ast.Stmt, ctx *Context) ast.Stmt {
	result := ast.Node(stmt)
	for _, id := range ruleOrder {
		if !p.cfg.enabled(id) {
			continue
		}
		rule, ok := Get(id)
		if !ok {
			continue
		}
		result = ast.Transform(result, func(n ast.Node) ast.Node {
			rewritten := rule.Apply(n, ctx)
			if rewritten != n {
				ctx.log(rule.Name(), "rule rewrote node")
			}
			return rewritten
		})
	}
	return result.(ast.Stmt)
}
