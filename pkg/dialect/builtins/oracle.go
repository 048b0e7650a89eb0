package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Oracle double-quotes identifiers and upper-cases unquoted names for
// comparison, matching its catalog's default folding; adds the legacy
// CONNECT BY hierarchical-query keyword.
var Oracle *dialect.Dialect

func init() {
	Oracle = dialect.New("oracle").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Uppercase).
		Keywords("CONNECT", "START", "PRIOR", "MINUS").
		ReservedWords("CONNECT", "START", "PRIOR", "MINUS").
		Build()
	dialect.Register(Oracle)
}
