// Package dialect provides the SQL dialect registry and plugin contract:
// per-dialect keyword sets, identifier/string quoting, and the factory
// closures (NewTokenizer, NewParser, NewGenerator) that parameterize the
// dialect-agnostic pkg/lexer, pkg/parser, and pkg/generator for one
// concrete SQL variant. Concrete dialects are registered from
// pkg/dialect/builtins in their init() functions.
package dialect

import (
	"regexp"
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/parser"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

var bareIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func identifierBareSafe(name string) bool {
	return bareIdentifier.MatchString(name)
}

// EngineVersion is the engine's own semver, checked against a plugin's
// MinEngineVersion constraint at registration time.
const EngineVersion = "1.0.0"

// NormalizationStrategy controls how an unquoted identifier is compared
// and rendered. Collapses the teacher's four-way enum (Lowercase,
// Uppercase, CaseSensitive, CaseInsensitive) to the three names spec.md's
// closed enum names, folding CaseInsensitive into Lowercase comparison.
type NormalizationStrategy int

const (
	// Lowercase folds unquoted identifiers to lower case for comparison
	// and display (ANSI default, Postgres, Hive, DuckDB).
	Lowercase NormalizationStrategy = iota
	// Uppercase folds unquoted identifiers to upper case (Snowflake, Oracle).
	Uppercase
	// CaseSensitive preserves identifier case exactly (MySQL, ClickHouse,
	// BigQuery).
	CaseSensitive
)

// IdentifierConfig controls quoting of identifiers for one dialect.
type IdentifierConfig struct {
	Quote    byte // opening/closing quote byte, e.g. '"', '`', '['
	QuoteEnd byte // closing byte when it differs from Quote (']' for '[')
	Escape   string
}

// Dialect is a registered SQL variant: its keyword set, quoting rules,
// and the factories that build a Tokenizer/Parser/Generator configured
// for it.
type Dialect struct {
	Name          string
	Identifiers   IdentifierConfig
	Normalization NormalizationStrategy

	// MinEngineVersion, if set, is the lowest EngineVersion this dialect
	// plugin supports; RegisterDialect rejects registration otherwise.
	MinEngineVersion string

	keywords      map[string]token.TokenType // ANSI core merged with the dialect's extras
	extraSymbols  map[string]token.TokenType
	reservedWords map[string]struct{}
	parent        *Dialect
}

// NormalizeName folds name according to the dialect's NormalizationStrategy.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Normalization {
	case Uppercase:
		return strings.ToUpper(name)
	case CaseSensitive:
		return name
	default:
		return strings.ToLower(name)
	}
}

// IsReservedKeyword reports whether word needs quoting to be used as an
// identifier in this dialect. Dialect has a Name field rather than a
// Name method, so it does not itself satisfy pkg/optimizer's DialectInfo;
// pkg/sqlmorph wraps it in an adapter that does.
func (d *Dialect) IsReservedKeyword(word string) bool {
	normalized := d.NormalizeName(word)
	if _, ok := d.reservedWords[normalized]; ok {
		return true
	}
	if d.parent != nil {
		return d.parent.IsReservedKeyword(word)
	}
	return false
}

// QuoteIdentifier wraps name in this dialect's identifier quote
// characters, escaping any embedded quote-end byte.
func (d *Dialect) QuoteIdentifier(name string) string {
	end := d.Identifiers.QuoteEnd
	if end == 0 {
		end = d.Identifiers.Quote
	}
	escaped := strings.ReplaceAll(name, string(end), d.Identifiers.Escape)
	return string(d.Identifiers.Quote) + escaped + string(end)
}

// formatIdentifier adapts QuoteIdentifier to generator.IdentifierFormatter.
func (d *Dialect) formatIdentifier(name string, quoted bool) string {
	if quoted || d.IsReservedKeyword(name) || !identifierBareSafe(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// LexerConfig returns the pkg/lexer.Config this dialect parameterizes
// New/Tokenize with, for callers (such as pkg/sqlmorph's statement
// splitter) that need to tokenize with the same dialect-aware quoting
// NewTokenizer/NewParser use internally.
func (d *Dialect) LexerConfig() lexer.Config {
	return d.lexerConfig()
}

// lexerConfig builds the pkg/lexer.Config this dialect parameterizes
// New/Tokenize with: the ANSI core keyword set merged with the dialect's
// own additions, plus its extra operator symbols and quote bytes.
func (d *Dialect) lexerConfig() lexer.Config {
	return lexer.Config{
		Keywords:        d.keywords,
		ExtraSymbols:    d.extraSymbols,
		IdentifierQuote: d.Identifiers.Quote,
		StringQuote:     '\'',
	}
}

// NewTokenizer builds a pkg/lexer.Tokenizer over input, configured for
// this dialect's keyword set and quoting.
func (d *Dialect) NewTokenizer(input string) *lexer.Tokenizer {
	return lexer.New(input, d.lexerConfig())
}

// NewParser builds a pkg/parser.Parser over sql, configured for this
// dialect.
func (d *Dialect) NewParser(sql string, opts ...parser.Option) (*parser.Parser, error) {
	return parser.New(sql, d.lexerConfig(), opts...)
}

// NewGenerator builds a pkg/generator.Generator that renders under cfg,
// quoting identifiers the way this dialect requires.
func (d *Dialect) NewGenerator(cfg generator.Config) *generator.Generator {
	return generator.New(cfg, generator.WithIdentifierFormatter(d.formatIdentifier))
}
