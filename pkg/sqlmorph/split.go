package sqlmorph

import (
	"github.com/sqlmorph/sqlmorph/pkg/dialect"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// splitStatements divides sql into top-level statement source slices on
// a dialect's SEMI token, so a semicolon inside a string or quoted
// identifier literal never splits a statement in two. Tokenizing once
// with the dialect's own Config and slicing by byte offset avoids
// re-implementing the lexer's quote handling a second time.
func splitStatements(sql string, d *dialect.Dialect) []string {
	toks, _ := lexer.Tokenize(sql, d.LexerConfig())

	var pieces []string
	start := 0
	for _, tok := range toks {
		switch tok.Type {
		case token.SEMI:
			pieces = append(pieces, sql[start:tok.Pos.Offset])
			start = tok.End().Offset
		case token.EOF:
			pieces = append(pieces, sql[start:])
		}
	}
	return pieces
}
