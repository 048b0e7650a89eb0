// Package generator serializes an AST back into SQL text, with
// configurable keyword case, identifier quoting, and pretty-printing.
package generator

// Config controls how a Generator renders SQL.
type Config struct {
	// Pretty multi-lines major clauses with indentation. When false,
	// everything is rendered on a single line separated by spaces.
	Pretty bool
	// LowerCaseKeywords renders keywords in lower case instead of upper.
	LowerCaseKeywords bool
	// UseAnsiQuotes is carried in the configuration but the generator does
	// not read it: without a dialect override, DefaultIdentifierFormatter
	// quotes with double quotes whatever its value.
	UseAnsiQuotes bool
	// IndentWidth is the number of spaces per indent level in Pretty mode.
	IndentWidth int
}

// DefaultConfig returns a pretty-printed, upper-case-keyword, ANSI-quoted
// configuration with a two-space indent.
func DefaultConfig() Config {
	return Config{
		Pretty:            true,
		LowerCaseKeywords: false,
		UseAnsiQuotes:     true,
		IndentWidth:       2,
	}
}

// CompactConfig returns a single-line rendering suitable for canonical-form
// comparison (e.g. the optimizer's fixpoint check).
func CompactConfig() Config {
	return Config{
		Pretty:            false,
		LowerCaseKeywords: false,
		UseAnsiQuotes:     true,
		IndentWidth:       0,
	}
}

// IdentifierFormatter renders an identifier, deciding whether (and how) to
// quote it. A dialect supplies its own (backticks for MySQL-family,
// brackets for MSSQL, double quotes for ANSI) via WithIdentifierFormatter;
// the zero value uses DefaultIdentifierFormatter.
type IdentifierFormatter func(name string, quoted bool) string

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithIdentifierFormatter overrides how identifiers are quoted.
func WithIdentifierFormatter(f IdentifierFormatter) Option {
	return func(g *Generator) { g.formatIdentifier = f }
}
