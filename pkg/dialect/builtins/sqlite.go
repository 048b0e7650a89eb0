package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// SQLite is ANSI-quoted and case-sensitive for identifier comparison.
var SQLite *dialect.Dialect

func init() {
	SQLite = dialect.New("sqlite").
		Identifiers('"', 0, `""`).
		Normalize(dialect.CaseSensitive).
		Build()
	dialect.Register(SQLite)
}
