package optimizer

// OptimizerConfig gates which of the eleven rules a Pipeline runs. Field
// order matches ruleOrder, the fixed declared sequence every pass applies
// rules in.
type OptimizerConfig struct {
	Simplify            bool
	Canonicalize        bool
	QuoteIdentifiers    bool
	EliminateCTEs       bool
	NormalizePredicates bool
	PushdownPredicates  bool
	MergeSubqueries     bool
	JoinReordering      bool
	ProjectionPushdown  bool
	AnnotateTypes       bool
	QualifyColumns      bool
}

// ruleOrder is the declared application order within a single pass,
// referenced by rule ID. A Pipeline skips an entry when its corresponding
// OptimizerConfig field is false, but never reorders the enabled subset.
var ruleOrder = []string{
	"simplify",
	"canonicalize",
	"quote_identifiers",
	"eliminate_ctes",
	"normalize_predicates",
	"pushdown_predicates",
	"merge_subqueries",
	"join_reordering",
	"projection_pushdown",
	"annotate_types",
	"qualify_columns",
}

// enabled reports whether id's gating knob is set in cfg.
func (cfg OptimizerConfig) enabled(id string) bool {
	switch id {
	case "simplify":
		return cfg.Simplify
	case "canonicalize":
		return cfg.Canonicalize
	case "quote_identifiers":
		return cfg.QuoteIdentifiers
	case "eliminate_ctes":
		return cfg.EliminateCTEs
	case "normalize_predicates":
		return cfg.NormalizePredicates
	case "pushdown_predicates":
		return cfg.PushdownPredicates
	case "merge_subqueries":
		return cfg.MergeSubqueries
	case "join_reordering":
		return cfg.JoinReordering
	case "projection_pushdown":
		return cfg.ProjectionPushdown
	case "annotate_types":
		return cfg.AnnotateTypes
	case "qualify_columns":
		return cfg.QualifyColumns
	default:
		return false
	}
}

// MinimalConfig enables only Simplify.
func MinimalConfig() OptimizerConfig {
	return OptimizerConfig{Simplify: true}
}

// Phase5AConfig enables Simplify, Canonicalize, QuoteIdentifiers, and
// EliminateCTEs.
func Phase5AConfig() OptimizerConfig {
	return OptimizerConfig{
		Simplify:         true,
		Canonicalize:     true,
		QuoteIdentifiers: true,
		EliminateCTEs:    true,
	}
}

// AggressiveConfig (PHASE_5B) enables all eleven rules.
func AggressiveConfig() OptimizerConfig {
	return OptimizerConfig{
		Simplify:            true,
		Canonicalize:        true,
		QuoteIdentifiers:    true,
		EliminateCTEs:       true,
		NormalizePredicates: true,
		PushdownPredicates:  true,
		MergeSubqueries:     true,
		JoinReordering:      true,
		ProjectionPushdown:  true,
		AnnotateTypes:       true,
		QualifyColumns:      true,
	}
}
