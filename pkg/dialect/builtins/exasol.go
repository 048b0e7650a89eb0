package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Exasol double-quotes identifiers and upper-cases unquoted names for
// comparison, matching its catalog's default folding.
var Exasol *dialect.Dialect

func init() {
	Exasol = dialect.New("exasol").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Uppercase).
		Build()
	dialect.Register(Exasol)
}
