// Package ast defines the SQL abstract syntax tree: a closed, tagged-variant
// node model produced by pkg/parser, rewritten by pkg/optimizer, and
// serialized by pkg/generator.
//
// Every node is a distinct Go struct type so that a type switch acts as an
// exhaustive pattern match over the variant (the closest Go gets to a sum
// type). Nodes carry only semantic children — source positions are
// optional and tracked separately in Span.
package ast

import "github.com/sqlmorph/sqlmorph/pkg/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	// Pos returns the node's starting source position, or the zero
	// Position if the node was constructed synthetically (e.g. by an
	// optimizer rule) and has no source position.
	Pos() token.Position
	// End returns the position immediately after the node's source text.
	End() token.Position
}

// Expr is a marker interface distinguishing expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a marker interface distinguishing statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// base embeds source position tracking into concrete node types. Nodes
// built by the optimizer (rather than the parser) leave this zero.
type base struct {
	span token.Span
}

// Pos returns the node's starting source position.
func (b base) Pos() token.Position { return b.span.Start }

// End returns the position immediately after the node's source text.
func (b base) End() token.Position { return b.span.End }

// withSpan returns a copy of b carrying the given span; used by the parser
// when constructing nodes.
func (b base) withSpan(s token.Span) base {
	b.span = s
	return b
}
