package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// DuckDB double-quotes identifiers, folds to lower case for comparison,
// and adds the QUALIFY post-window-function filter clause alongside its
// own "::" cast operator.
var DuckDB *dialect.Dialect

func init() {
	DuckDB = dialect.New("duckdb").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("QUALIFY").
		Operators("::").
		ReservedWords("QUALIFY").
		Build()
	dialect.Register(DuckDB)
}
