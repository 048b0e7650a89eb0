package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// MSSQL quotes identifiers with square brackets and is case-insensitive
// by default (modeled here as Lowercase comparison), adding its TOP
// row-limiting clause.
var MSSQL *dialect.Dialect

func init() {
	MSSQL = dialect.New("mssql").
		Identifiers('[', ']', "]]").
		Normalize(dialect.Lowercase).
		Keywords("TOP").
		ReservedWords("TOP").
		Build()
	dialect.Register(MSSQL)
}
