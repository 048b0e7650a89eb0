package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Snowflake double-quotes identifiers, upper-cases unquoted names for
// comparison (matching its catalog's default folding), and adds QUALIFY
// and the "!:=" not-equal spelling.
var Snowflake *dialect.Dialect

func init() {
	Snowflake = dialect.New("snowflake").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Uppercase).
		Keywords("QUALIFY", "ILIKE").
		Operators("!:=").
		ReservedWords("QUALIFY", "ILIKE").
		Build()
	dialect.Register(Snowflake)
}
