// Package builtins registers the dialects named in spec.md §6, one file
// per dialect family, each adding its init() registration to
// pkg/dialect's global registry.
package builtins

import (
	"github.com/sqlmorph/sqlmorph/pkg/dialect"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// ANSI is the base dialect every other builtin either matches or
// extends: double-quoted identifiers, lower-case normalization, no
// dialect-specific keywords or operators beyond the core.
var ANSI *dialect.Dialect

func init() {
	names := make([]string, 0, len(token.Keywords))
	for kw := range token.Keywords {
		names = append(names, kw)
	}
	ANSI = dialect.New("ansi").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		ReservedWords(names...).
		Build()
	dialect.Register(ANSI)
}
