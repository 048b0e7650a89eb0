package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Postgres double-quotes identifiers, folds unquoted identifiers to
// lower case, and adds the "::" cast operator and ILIKE/RETURNING
// keywords over the ANSI core.
var Postgres *dialect.Dialect

// CockroachDB speaks the Postgres wire protocol and SQL dialect closely
// enough to be a thin Extends(Postgres).
var CockroachDB *dialect.Dialect

// Redshift is Postgres-derived with its own bulk UNLOAD statement.
var Redshift *dialect.Dialect

// AuroraPostgres (Aurora's Postgres-compatible mode) is a thin alias
// over Postgres.
var AuroraPostgres *dialect.Dialect

func init() {
	Postgres = dialect.New("postgres").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("ILIKE", "RETURNING").
		Operators("::").
		ReservedWords("ILIKE", "RETURNING").
		Build()
	dialect.Register(Postgres)

	CockroachDB = dialect.New("cockroachdb").Extends(Postgres).Build()
	dialect.Register(CockroachDB)

	Redshift = dialect.New("redshift").
		Extends(Postgres).
		Keywords("UNLOAD").
		ReservedWords("UNLOAD").
		Build()
	dialect.Register(Redshift)

	AuroraPostgres = dialect.New("aurora-postgres").Extends(Postgres).Build()
	dialect.Register(AuroraPostgres)
}
