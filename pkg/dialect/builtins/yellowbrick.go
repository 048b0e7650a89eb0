package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Yellowbrick is a Postgres-heritage warehouse; it extends Postgres's
// quoting, normalization, and keyword set unchanged.
var Yellowbrick *dialect.Dialect

func init() {
	Yellowbrick = dialect.New("yellowbrick").Extends(Postgres).Build()
	dialect.Register(Yellowbrick)
}
