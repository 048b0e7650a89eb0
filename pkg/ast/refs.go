package ast

// Column is a (possibly qualified) column reference, e.g. t.id or id.
type Column struct {
	base
	Qualifier string // table or alias prefix; empty if unqualified
	Name      string
	// Quoted records whether Name was delimited by the source dialect's
	// identifier quote character, so a generator can preserve that
	// quoting instead of silently folding case under a Lowercase- or
	// Uppercase-normalizing dialect.
	Quoted bool
}

func (Column) exprNode() {}

// Table is a table reference in a FROM or JOIN clause, optionally
// qualified by database/schema and carrying its own alias.
type Table struct {
	base
	Catalog string
	Schema  string
	Name    string
	Alias   string
	// Quoted records whether Name was delimited by the source dialect's
	// identifier quote character, mirroring Column.Quoted.
	Quoted bool
}

func (Table) exprNode() {}

// WorkspacePath is a dotted path into an external namespace (a Snowflake
// stage, a BigQuery dataset.table, a Databricks workspace object) that a
// dialect resolves to a Table at generation time rather than at parse time.
type WorkspacePath struct {
	base
	Parts []string
}

func (WorkspacePath) exprNode() {}

// Alias wraps an expression with an AS binding, e.g. "expr AS name".
type Alias struct {
	base
	Expr Expr
	Name string
}

func (Alias) exprNode() {}
