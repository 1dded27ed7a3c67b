package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenTypeString(t *testing.T) {
	require.Equal(t, "KEYWORD_IF", TokenTypeKeywordIf.String())
	require.Equal(t, "OP_GE", TokenTypeGreaterOrEqual.String())
	require.Equal(t, "PUNCT_RBRACE", TokenTypeRBrace.String())
	require.Equal(t, "UNKNOWN", TokenType(999).String())
}

func TestEveryTokenTypeHasAName(t *testing.T) {
	for tokType := TokenTypeKeywordIf; tokType <= TokenTypeRBrace; tokType++ {
		require.NotEqual(t, "UNKNOWN", tokType.String())
	}
}

func TestReservedWordsMapToDistinctKinds(t *testing.T) {
	seen := map[TokenType]string{}
	for word, tokType := range reservedWords {
		previous, dup := seen[tokType]
		require.False(t, dup, "%s and %s share a kind", previous, word)
		seen[tokType] = word
	}
}
