package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Vertica is a Postgres-heritage MPP warehouse; it extends Postgres's
// quoting and keyword set and adds its own QUALIFY clause.
var Vertica *dialect.Dialect

func init() {
	Vertica = dialect.New("vertica").
		Extends(Postgres).
		Keywords("QUALIFY").
		ReservedWords("QUALIFY").
		Build()
	dialect.Register(Vertica)
}
