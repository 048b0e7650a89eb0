package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Teradata double-quotes identifiers, upper-cases unquoted names for
// comparison, and adds its QUALIFY clause.
var Teradata *dialect.Dialect

func init() {
	Teradata = dialect.New("teradata").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Uppercase).
		Keywords("QUALIFY").
		ReservedWords("QUALIFY").
		Build()
	dialect.Register(Teradata)
}
