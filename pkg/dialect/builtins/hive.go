package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Hive backtick-quotes identifiers and adds the LATERAL VIEW clause for
// exploding array/map columns.
var Hive *dialect.Dialect

// Impala shares Hive's metastore and largely the same SQL surface; it
// inherits Hive's quoting and keyword set.
var Impala *dialect.Dialect

func init() {
	Hive = dialect.New("hive").
		Identifiers('`', 0, "``").
		Normalize(dialect.Lowercase).
		Keywords("LATERAL").
		ReservedWords("LATERAL").
		Build()
	dialect.Register(Hive)

	Impala = dialect.New("impala").Extends(Hive).Build()
	dialect.Register(Impala)

	Glue = dialect.New("glue").Extends(Hive).Build()
	dialect.Register(Glue)
}
