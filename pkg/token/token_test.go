package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlmorph/sqlmorph/pkg/token"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, token.IsKeyword(token.SELECT))
	assert.True(t, token.IsKeyword(token.FROM))
	assert.False(t, token.IsKeyword(token.IDENTIFIER))
	assert.False(t, token.IsKeyword(token.PLUS))
}

func TestIsOperatorAndPunctuation(t *testing.T) {
	assert.True(t, token.IsOperator(token.PLUS))
	assert.True(t, token.IsOperator(token.GTE))
	assert.False(t, token.IsOperator(token.COMMA))

	assert.True(t, token.IsPunctuation(token.LPAREN))
	assert.False(t, token.IsPunctuation(token.PLUS))
}

func TestRegisterDynamicKeyword(t *testing.T) {
	tt := token.Register("QUALIFY_TEST")
	assert.True(t, token.IsDynamic(tt))
	assert.True(t, token.IsKeyword(tt))
	assert.Equal(t, "QUALIFY_TEST", tt.String())

	got, ok := token.LookupDynamic("QUALIFY_TEST")
	assert.True(t, ok)
	assert.Equal(t, tt, got)
}

func TestTokenEnd(t *testing.T) {
	tok := token.Token{Type: token.IDENTIFIER, Literal: "abc", Pos: token.Position{Line: 1, Column: 5, Offset: 4}}
	end := tok.End()
	assert.Equal(t, 8, end.Column)
	assert.Equal(t, 7, end.Offset)
}
