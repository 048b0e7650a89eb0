package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// ClickHouse backtick-quotes identifiers, is case-sensitive, and adds
// its FINAL and SAMPLE table modifiers.
var ClickHouse *dialect.Dialect

func init() {
	ClickHouse = dialect.New("clickhouse").
		Identifiers('`', 0, "``").
		Normalize(dialect.CaseSensitive).
		Keywords("FINAL", "SAMPLE").
		ReservedWords("FINAL", "SAMPLE").
		Build()
	dialect.Register(ClickHouse)
}
