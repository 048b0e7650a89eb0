package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Athena is a Presto-derived query engine over the Glue catalog;
// double-quoted identifiers, lower-case comparison.
var Athena *dialect.Dialect

func init() {
	Athena = dialect.New("athena").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("UNNEST").
		ReservedWords("UNNEST").
		Build()
	dialect.Register(Athena)
}
