package ast

// binary is the shared shape of every two-operand expression. It is not
// exported: callers type-switch on the concrete Add/Sub/EQ/And/... types,
// never on binary itself, preserving the closed-variant model while
// avoiding field duplication across a dozen near-identical structs.
type binary struct {
	base
	Left  Expr
	Right Expr
}

// unary is the shared shape of every one-operand expression.
type unary struct {
	base
	Expr Expr
}

// Arithmetic operators.

type Add struct{ binary }
type Sub struct{ binary }
type Mul struct{ binary }
type Div struct{ binary }
type Mod struct{ binary }

func (Add) exprNode() {}
func (Sub) exprNode() {}
func (Mul) exprNode() {}
func (Div) exprNode() {}
func (Mod) exprNode() {}

// Comparison operators.

type EQ struct{ binary }
type NEQ struct{ binary }
type GT struct{ binary }
type LT struct{ binary }
type GTE struct{ binary }
type LTE struct{ binary }

// Is models IS and IS NOT (Negated field true for the negated form); right
// holds the compared-to expression (Null{}, True{}, False{}, or a value
// for dialects that allow IS DISTINCT FROM-style comparisons).
type Is struct {
	binary
	Negated bool
}

func (EQ) exprNode()  {}
func (NEQ) exprNode() {}
func (GT) exprNode()  {}
func (LT) exprNode()  {}
func (GTE) exprNode() {}
func (LTE) exprNode() {}
func (Is) exprNode()  {}

// Boolean connectives.

type And struct{ binary }
type Or struct{ binary }

func (And) exprNode() {}
func (Or) exprNode()  {}

// Not negates a boolean expression.
type Not struct{ unary }

func (Not) exprNode() {}

// Neg is unary minus, e.g. "-x".
type Neg struct{ unary }

func (Neg) exprNode() {}

// Paren preserves an explicit parenthesization the generator should
// reproduce even when the optimizer would otherwise drop redundant
// grouping (e.g. user-authored precedence the dialect's printer wants to
// keep legible).
type Paren struct{ unary }

func (Paren) exprNode() {}

// In tests membership: Expr IN (List...) or Expr IN Subquery.
type In struct {
	base
	Expr    Expr
	List    []Expr
	Query   *Subquery // non-nil for "expr IN (SELECT ...)"
	Negated bool
}

func (In) exprNode() {}

// Between tests Expr BETWEEN Low AND High.
type Between struct {
	base
	Expr    Expr
	Low     Expr
	High    Expr
	Negated bool
}

func (Between) exprNode() {}

// Like tests Expr LIKE Pattern [ESCAPE Escape].
type Like struct {
	base
	Expr    Expr
	Pattern Expr
	Escape  Expr // nil if no ESCAPE clause
	Negated bool
}

func (Like) exprNode() {}

// Exists tests whether a subquery returns any rows.
type Exists struct {
	base
	Query   *Subquery
	Negated bool
}

func (Exists) exprNode() {}

// NewBinary helpers let the parser build a binary node without repeating
// the base/binary embedding boilerplate at every call site.

func NewAdd(l, r Expr) *Add { return &Add{binary{Left: l, Right: r}} }
func NewSub(l, r Expr) *Sub { return &Sub{binary{Left: l, Right: r}} }
func NewMul(l, r Expr) *Mul { return &Mul{binary{Left: l, Right: r}} }
func NewDiv(l, r Expr) *Div { return &Div{binary{Left: l, Right: r}} }
func NewMod(l, r Expr) *Mod { return &Mod{binary{Left: l, Right: r}} }

func NewEQ(l, r Expr) *EQ   { return &EQ{binary{Left: l, Right: r}} }
func NewNEQ(l, r Expr) *NEQ { return &NEQ{binary{Left: l, Right: r}} }
func NewGT(l, r Expr) *GT   { return &GT{binary{Left: l, Right: r}} }
func NewLT(l, r Expr) *LT   { return &LT{binary{Left: l, Right: r}} }
func NewGTE(l, r Expr) *GTE { return &GTE{binary{Left: l, Right: r}} }
func NewLTE(l, r Expr) *LTE { return &LTE{binary{Left: l, Right: r}} }

func NewAnd(l, r Expr) *And { return &And{binary{Left: l, Right: r}} }
func NewOr(l, r Expr) *Or   { return &Or{binary{Left: l, Right: r}} }
func NewNot(e Expr) *Not     { return &Not{unary{Expr: e}} }
func NewNeg(e Expr) *Neg     { return &Neg{unary{Expr: e}} }
func NewParen(e Expr) *Paren { return &Paren{unary{Expr: e}} }

// NewIs builds an IS [NOT] comparison, e.g. "expr IS NULL" or
// "expr IS NOT TRUE".
func NewIs(l, r Expr, negated bool) *Is {
	return &Is{binary: binary{Left: l, Right: r}, Negated: negated}
}
