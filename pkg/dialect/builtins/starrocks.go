package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// StarRocks backtick-quotes identifiers and adds its FINAL table
// modifier (as in ClickHouse, a family it is architecturally close to).
var StarRocks *dialect.Dialect

func init() {
	StarRocks = dialect.New("starrocks").
		Identifiers('`', 0, "``").
		Normalize(dialect.Lowercase).
		Keywords("FINAL").
		ReservedWords("FINAL").
		Build()
	dialect.Register(StarRocks)
}
