package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Drill backtick-quotes identifiers and adds its backtick-friendly
// schema-path FROM clause keyword FLATTEN for exploding repeated
// (array) fields.
var Drill *dialect.Dialect

func init() {
	Drill = dialect.New("drill").
		Identifiers('`', 0, "``").
		Normalize(dialect.Lowercase).
		Keywords("FLATTEN").
		ReservedWords("FLATTEN").
		Build()
	dialect.Register(Drill)
}
