package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// BigQuery backtick-quotes identifiers (including fully-qualified
// "project.dataset.table" references) and adds the QUALIFY
// post-window-function filter clause.
var BigQuery *dialect.Dialect

func init() {
	BigQuery = dialect.New("bigquery").
		Identifiers('`', 0, "``").
		Normalize(dialect.CaseSensitive).
		Keywords("QUALIFY").
		ReservedWords("QUALIFY").
		Build()
	dialect.Register(BigQuery)
}
