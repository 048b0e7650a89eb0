package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Iceberg is a table format rather than a query engine, but sqlmorph
// treats it as a thin ANSI-quoted dialect for DDL generated against
// Iceberg-backed catalogs (engine-agnostic CREATE TABLE ... PARTITIONED
// BY syntax).
var Iceberg *dialect.Dialect

func init() {
	Iceberg = dialect.New("iceberg").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("PARTITIONED").
		ReservedWords("PARTITIONED").
		Build()
	dialect.Register(Iceberg)
}
