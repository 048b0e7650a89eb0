package dialect

import (
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/token"
)

// Builder provides a fluent API for constructing a Dialect, grounded on
// the teacher's own dialect Builder: one chained call per concern, a
// terminal Build().
type Builder struct {
	d *Dialect
}

// New starts a Builder for a dialect named name, seeded with the ANSI
// core keyword set, double-quote identifiers, and Lowercase
// normalization. A builtin overrides whichever of these it needs.
func New(name string) *Builder {
	keywords := make(map[string]token.TokenType, len(token.Keywords))
	for k, v := range token.Keywords {
		keywords[k] = v
	}
	return &Builder{
		d: &Dialect{
			Name:          name,
			Identifiers:   IdentifierConfig{Quote: '"', Escape: `""`},
			Normalization: Lowercase,
			keywords:      keywords,
			extraSymbols:  make(map[string]token.TokenType),
			reservedWords: make(map[string]struct{}),
		},
	}
}

// Extends inherits from parent: reserved-word lookups and keyword/symbol
// maps fall back to parent for anything this builder does not itself
// set, mirroring how MariaDB/Aurora/CockroachDB/Trino/Impala/Databricks
// are thin variants of a base dialect.
func (b *Builder) Extends(parent *Dialect) *Builder {
	b.d.parent = parent
	b.d.Identifiers = parent.Identifiers
	b.d.Normalization = parent.Normalization
	for k, v := range parent.keywords {
		if _, ok := b.d.keywords[k]; !ok {
			b.d.keywords[k] = v
		}
	}
	for k, v := range parent.extraSymbols {
		if _, ok := b.d.extraSymbols[k]; !ok {
			b.d.extraSymbols[k] = v
		}
	}
	return b
}

// Identifiers overrides the dialect's identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd byte, escape string) *Builder {
	b.d.Identifiers = IdentifierConfig{Quote: quote, QuoteEnd: quoteEnd, Escape: escape}
	return b
}

// Normalize overrides the dialect's NormalizationStrategy.
func (b *Builder) Normalize(strategy NormalizationStrategy) *Builder {
	b.d.Normalization = strategy
	return b
}

// Keywords registers additional dialect-specific keywords, allocating a
// dynamic token.TokenType for each name not already known.
func (b *Builder) Keywords(names ...string) *Builder {
	for _, name := range names {
		upper := strings.ToUpper(name)
		if _, ok := b.d.keywords[upper]; ok {
			continue
		}
		t, ok := token.LookupDynamic(upper)
		if !ok {
			t = token.Register(upper)
		}
		b.d.keywords[upper] = t
	}
	return b
}

// ExtraSymbols registers additional multi-character operator symbols
// (e.g. Postgres "::", Snowflake "!:=") matched by the tokenizer before
// falling back to single-character operators.
func (b *Builder) ExtraSymbols(symbols map[string]token.TokenType) *Builder {
	for sym, t := range symbols {
		b.d.extraSymbols[sym] = t
	}
	return b
}

// Operators registers each symbol as a dialect-specific operator,
// allocating a dynamic token.TokenType for any not already known. This
// is the common case for a single custom operator (Postgres "::",
// Snowflake "!:="); ExtraSymbols covers the rare case of reusing an
// already-allocated TokenType across more than one spelling.
func (b *Builder) Operators(symbols ...string) *Builder {
	for _, sym := range symbols {
		t, ok := token.LookupDynamic(sym)
		if !ok {
			t = token.Register(sym)
		}
		b.d.extraSymbols[sym] = t
	}
	return b
}

// ReservedWords registers words that must be quoted when used as bare
// identifiers in this dialect.
func (b *Builder) ReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.d.reservedWords[b.d.NormalizeName(w)] = struct{}{}
	}
	return b
}

// MinEngineVersion sets the semver constraint RegisterDialect checks
// against EngineVersion before admitting this dialect into the registry.
func (b *Builder) MinEngineVersion(constraint string) *Builder {
	b.d.MinEngineVersion = constraint
	return b
}

// Build returns the constructed Dialect.
func (b *Builder) Build() *Dialect {
	return b.d
}
