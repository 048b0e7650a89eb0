package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlmorph/sqlmorph/pkg/lexer"
	"github.com/sqlmorph/sqlmorph/pkg/token"
)

func ansiConfig() lexer.Config {
	return lexer.Config{Keywords: token.Keywords}
}

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeSimpleSelect(t *testing.T) {
	toks, err := lexer.Tokenize("SELECT a, b FROM t WHERE a = 1", ansiConfig())
	require.NoError(t, err)
	assert.Equal(t, []token.TokenType{
		token.SELECT, token.IDENTIFIER, token.COMMA, token.IDENTIFIER,
		token.FROM, token.IDENTIFIER, token.WHERE, token.IDENTIFIER,
		token.EQ, token.NUMBER, token.EOF,
	}, types(toks))
}

func TestTokenizeIsCaseInsensitive(t *testing.T) {
	toks, err := lexer.Tokenize("select * from t", ansiConfig())
	require.NoError(t, err)
	assert.Equal(t, token.SELECT, toks[0].Type)
	assert.Equal(t, token.STAR, toks[1].Type)
}

func TestTokenizeStringWithEscapedQuote(t *testing.T) {
	toks, err := lexer.Tokenize(`SELECT 'it''s ok'`, ansiConfig())
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.STRING, toks[1].Type)
	assert.Equal(t, "it's ok", toks[1].Literal)
}

func TestTokenizeQuotedIdentifier(t *testing.T) {
	toks, err := lexer.Tokenize(`SELECT "weird col""name"`, ansiConfig())
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.Equal(t, `weird col"name`, toks[1].Literal)
	assert.True(t, toks[1].Quoted)
}

func TestTokenizeBareIdentifierIsNotQuoted(t *testing.T) {
	toks, err := lexer.Tokenize("SELECT a", ansiConfig())
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.False(t, toks[1].Quoted)
}

func TestTokenizeNumberWithExponent(t *testing.T) {
	toks, err := lexer.Tokenize("SELECT 1.5e-10", ansiConfig())
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.NUMBER, toks[1].Type)
	assert.Equal(t, "1.5e-10", toks[1].Literal)
}

func TestTokenizeUnterminatedStringReportsLexError(t *testing.T) {
	_, err := lexer.Tokenize(`SELECT 'oops`, ansiConfig())
	require.Error(t, err)
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestTokenizeAttachesLeadingComments(t *testing.T) {
	toks, err := lexer.Tokenize("-- a comment\nSELECT 1", ansiConfig())
	require.NoError(t, err)
	require.NotEmpty(t, toks[0].Comments)
	assert.Equal(t, token.LineComment, toks[0].Comments[0].Kind)
}

func TestTokenizeKeywordPrefixOfLongerKeyword(t *testing.T) {
	// "IN" must not be mistaken for the start of an identifier named
	// "interval" — identifiers are read whole before keyword lookup, so
	// this exercises the trie against the full lexeme, not a partial scan.
	toks, err := lexer.Tokenize("SELECT interval, in_count FROM t", ansiConfig())
	require.NoError(t, err)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.Equal(t, token.IDENTIFIER, toks[3].Type)
}

func TestTokenizeExtraSymbols(t *testing.T) {
	cfg := ansiConfig()
	castTok := token.Register("CAST_OP_TEST")
	cfg.ExtraSymbols = map[string]token.TokenType{"::": castTok}

	toks, err := lexer.Tokenize("SELECT a::int", cfg)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, castTok, toks[2].Type)
	assert.Equal(t, "::", toks[2].Literal)
}

func TestTokenizeMySQLBacktickIdentifier(t *testing.T) {
	cfg := ansiConfig()
	cfg.IdentifierQuote = '`'
	toks, err := lexer.Tokenize("SELECT `col` FROM t", cfg)
	require.NoError(t, err)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.Equal(t, "col", toks[1].Literal)
}
