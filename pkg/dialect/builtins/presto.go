package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Presto double-quotes identifiers and adds the UNNEST array-expansion
// clause.
var Presto *dialect.Dialect

// Trino is the community fork that continued Presto's development; it
// inherits Presto's quoting and keyword set unchanged.
var Trino *dialect.Dialect

func init() {
	Presto = dialect.New("presto").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("UNNEST").
		ReservedWords("UNNEST").
		Build()
	dialect.Register(Presto)

	Trino = dialect.New("trino").Extends(Presto).Build()
	dialect.Register(Trino)
}
