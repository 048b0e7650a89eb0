package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Firebolt double-quotes identifiers and folds unquoted names to lower
// case, matching its Postgres-flavored SQL surface.
var Firebolt *dialect.Dialect

func init() {
	Firebolt = dialect.New("firebolt").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Build()
	dialect.Register(Firebolt)
}
