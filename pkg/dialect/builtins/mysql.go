package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// MySQL is backtick-quoted and case-sensitive for identifiers (actual
// table-name case sensitivity is filesystem-dependent, but treating
// identifiers as CaseSensitive avoids silently folding mixed-case names
// the way Lowercase/Uppercase would).
var MySQL *dialect.Dialect

// MariaDB is a MySQL-protocol-compatible fork; it inherits MySQL's
// quoting and keyword set and adds its own RETURNING clause support.
var MariaDB *dialect.Dialect

// Aurora (MySQL-compatible mode) is a thin alias over MySQL.
var Aurora *dialect.Dialect

func init() {
	MySQL = dialect.New("mysql").
		Identifiers('`', 0, "``").
		Normalize(dialect.CaseSensitive).
		Keywords("IGNORE", "REPLACE").
		ReservedWords("IGNORE", "REPLACE").
		Build()
	dialect.Register(MySQL)

	MariaDB = dialect.New("mariadb").
		Extends(MySQL).
		Keywords("RETURNING").
		ReservedWords("RETURNING").
		Build()
	dialect.Register(MariaDB)

	Aurora = dialect.New("aurora").Extends(MySQL).Build()
	dialect.Register(Aurora)
}
