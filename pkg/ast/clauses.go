package ast

// JoinKind enumerates the supported join types; dialects that don't
// support a given kind reject it at generation time rather than the AST
// refusing to represent it.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
	NaturalJoin
)

// From is a FROM clause source: a Table, Subquery, or the right side of a
// Join chain.
type From struct {
	base
	Source Expr
}

func (From) exprNode() {}

// Join chains an additional source onto a FROM clause.
type Join struct {
	base
	Kind  JoinKind
	Left  Expr
	Right Expr
	On    Expr // nil for NATURAL/CROSS joins
	Using []string
}

func (Join) exprNode() {}

// Where wraps a SELECT/UPDATE/DELETE's filter predicate.
type Where struct {
	base
	Condition Expr
}

func (Where) exprNode() {}

// GroupBy is a GROUP BY clause; Rollup/Cube flag the grouping-sets variant
// a dialect may render differently.
type GroupBy struct {
	base
	Exprs  []Expr
	Rollup bool
	Cube   bool
}

func (GroupBy) exprNode() {}

// Having wraps a GROUP BY's post-aggregation filter.
type Having struct {
	base
	Condition Expr
}

func (Having) exprNode() {}

// SortDirection is ASC or DESC.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// NullsOrder controls NULLS FIRST/LAST placement; NullsDefault leaves it
// to the dialect.
type NullsOrder int

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

// OrderItem is one element of an ORDER BY list.
type OrderItem struct {
	base
	Expr      Expr
	Direction SortDirection
	Nulls     NullsOrder
}

func (OrderItem) exprNode() {}

// Limit caps the number of returned rows.
type Limit struct {
	base
	Count Expr
}

func (Limit) exprNode() {}

// Offset skips a number of rows before returning results.
type Offset struct {
	base
	Count Expr
}

func (Offset) exprNode() {}
