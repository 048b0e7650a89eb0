package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Spark backtick-quotes identifiers and adds the LATERAL VIEW clause
// used to explode array/map columns.
var Spark *dialect.Dialect

// Databricks runs Spark SQL under a Unity Catalog namespace; it inherits
// Spark's quoting and keyword set.
var Databricks *dialect.Dialect

func init() {
	Spark = dialect.New("spark").
		Identifiers('`', 0, "``").
		Normalize(dialect.Lowercase).
		Keywords("LATERAL").
		ReservedWords("LATERAL").
		Build()
	dialect.Register(Spark)

	Databricks = dialect.New("databricks").Extends(Spark).Build()
	dialect.Register(Databricks)
}
