// Package parser implements a recursive-descent, precedence-climbing
// parser that turns a pkg/token.Token stream into a pkg/ast tree.
//
// # Grammar overview
//
//	statement   → [with_clause] (select_body | insert | update | delete) | create | drop | alter
//	select_body → select_core ((UNION|INTERSECT|EXCEPT) [ALL] select_core)*
//	select_core → SELECT [DISTINCT] select_list [FROM from_clause]
//	              [WHERE expr] [GROUP BY expr_list] [HAVING expr]
//	              [ORDER BY order_list] [LIMIT expr] [OFFSET expr]
//
// Each precedence level below has its own parse method, per
// parser_expr.go's ladder (lowest to highest): OR, AND, NOT, comparison,
// addition, multiplication, unary, primary.
package parser

import (
	"fmt"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// Position is an alias kept local so parser files read naturally.
type Position = token.Position

const defaultMaxDepth = 100

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxDepth overrides the recursive-descent depth guard. Parsing a
// pathologically nested expression returns a ParseError instead of
// overflowing the goroutine stack.
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// Parser consumes a token stream (via a three-token lookahead window,
// following the teacher's token/peek/peek2 scheme) and builds ast nodes.
type Parser struct {
	toks []token.Token
	idx  int

	cur   token.Token
	peek  token.Token
	peek2 token.Token

	errors []error

	depth    int
	maxDepth int
}

// New constructs a Parser over sql, tokenized with the given lexer
// Config (ordinarily supplied by a dialect.Dialect).
func New(sql string, cfg lexer.Config, opts ...Option) (*Parser, error) {
	toks, err := lexer.Tokenize(sql, cfg)
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	p.nextToken()
	p.nextToken()
	p.nextToken()
	return p, nil
}

// ParseStatement parses a single top-level statement and returns its AST.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	stmt := p.parseStatement()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

// Errors returns every error accumulated during parsing, in order.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) parseStatement() ast.Stmt {
	if p.check(token.WITH) {
		return p.parseWithPrefixedStatement()
	}
	switch p.cur.Type {
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.DROP:
		return p.parseDrop()
	case token.ALTER:
		return p.parseAlter()
	default:
		return p.parseSelectBody()
	}
}

// ---------- token helpers ----------

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.peek2
	if p.idx < len(p.toks) {
		p.peek2 = p.toks[p.idx]
		p.idx++
	} else {
		p.peek2 = token.Token{Type: token.EOF}
	}
}

func (p *Parser) check(t token.TokenType) bool      { return p.cur.Type == t }
func (p *Parser) checkPeek(t token.TokenType) bool  { return p.peek.Type == t }
func (p *Parser) checkPeek2(t token.TokenType) bool { return p.peek2.Type == t }

func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addErrorf(errUnexpectedToken, p.cur.Type, t)
	return false
}

func (p *Parser) addErrorf(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)})
}

// enterDepth increments the recursion guard and reports whether the
// caller should proceed. Parenthesized expressions (including
// parenthesized subqueries), derived tables and CASE call this; IN and
// EXISTS subqueries, CTE bodies and NOT or unary-minus chains do not.
func (p *Parser) enterDepth() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.addErrorf(errMaxDepthExceeded, p.maxDepth)
		return false
	}
	return true
}

func (p *Parser) leaveDepth() { p.depth-- }

// isReservedForAlias reports whether tok cannot be used as a bare
// (AS-less) alias because it would be ambiguous with a following clause
// or join keyword.
func isReservedForAlias(t token.TokenType) bool {
	switch t {
	case token.FROM, token.WHERE, token.GROUP, token.HAVING, token.ORDER,
		token.LIMIT, token.OFFSET, token.UNION, token.INTERSECT, token.EXCEPT,
		token.LEFT, token.RIGHT, token.INNER, token.OUTER, token.FULL,
		token.CROSS, token.JOIN, token.ON, token.USING, token.NATURAL:
		return true
	}
	return false
}
