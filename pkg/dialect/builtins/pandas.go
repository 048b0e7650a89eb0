package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Pandas targets pandas DataFrame-backed SQL execution (e.g. via
// pandasql/duckdb-over-dataframes); ANSI-quoted, case-sensitive to match
// Python identifier conventions.
var Pandas *dialect.Dialect

func init() {
	Pandas = dialect.New("pandas").
		Identifiers('"', 0, `""`).
		Normalize(dialect.CaseSensitive).
		Build()
	dialect.Register(Pandas)
}
