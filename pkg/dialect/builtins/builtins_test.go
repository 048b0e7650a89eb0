package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/dialect"
	_ "github.com/sqlmorph/sqlmorph/pkg/dialect/builtins"
)

func TestBuiltins_AllNamesRegistered(t *testing.T) {
	names := []string{
		"ansi", "mysql", "mariadb", "aurora",
		"postgres", "cockroachdb", "redshift", "aurora-postgres",
		"bigquery", "snowflake", "sqlite", "mssql", "oracle", "duckdb",
		"spark", "databricks", "clickhouse", "presto", "trino",
		"hive", "impala", "athena", "starrocks", "iceberg", "teradata",
		"vertica", "yellowbrick", "firebolt", "exasol", "pandas", "wasm",
		"glue", "drill",
	}
	for _, name := range names {
		_, ok := dialect.Get(name)
		assert.True(t, ok, "expected dialect %q to be registered", name)
	}
}

func TestBuiltins_MySQLFamilyQuotesWithBackticks(t *testing.T) {
	mysql, ok := dialect.Get("mysql")
	require.True(t, ok)
	assert.Equal(t, "`a`", mysql.QuoteIdentifier("a"))

	mariadb, ok := dialect.Get("mariadb")
	require.True(t, ok)
	assert.True(t, mariadb.IsReservedKeyword("RETURNING"))
	assert.True(t, mariadb.IsReservedKeyword("IGNORE"))
}

func TestBuiltins_MSSQLQuotesWithBrackets(t *testing.T) {
	mssql, ok := dialect.Get("mssql")
	require.True(t, ok)
	assert.Equal(t, "[a]", mssql.QuoteIdentifier("a"))
}

func TestBuiltins_PostgresFamilyInheritsReservedWords(t *testing.T) {
	redshift, ok := dialect.Get("redshift")
	require.True(t, ok)
	assert.True(t, redshift.IsReservedKeyword("unload"))
	assert.True(t, redshift.IsReservedKeyword("ilike"))
}

func TestBuiltins_DialectExposesNameAndReservedKeywordCheck(t *testing.T) {
	d, ok := dialect.Get("snowflake")
	require.True(t, ok)
	assert.Equal(t, "snowflake", d.Name)
	assert.True(t, d.IsReservedKeyword("QUALIFY"))
}
