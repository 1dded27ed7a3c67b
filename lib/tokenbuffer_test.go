package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	buf := newTokenBuffer()

	buf.Write(Token{Type: TokenTypeIdentifier, Lexeme: "hello"})

	tok, done, err := buf.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeIdentifier, tok.Type)
	require.Equal(t, "hello", tok.Lexeme)
}

func TestNextDone(t *testing.T) {
	buf := newTokenBuffer()

	buf.Write(Token{Type: TokenTypeIdentifier, Lexeme: "hello"})
	buf.Done()

	tok, done, err := buf.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "hello", tok.Lexeme)

	_, done, err = buf.Next()
	require.NoError(t, err)
	require.True(t, done)

	_, done, err = buf.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestNextTimeout(t *testing.T) {
	oldTimeout := TokenReadTimeout
	TokenReadTimeout = 1 * time.Microsecond
	defer func() {
		TokenReadTimeout = oldTimeout
	}()

	buf := newTokenBuffer()
	_, done, err := buf.Next()
	require.Error(t, err)
	require.False(t, done)
}

func TestPeek(t *testing.T) {
	buf := newTokenBuffer()

	buf.Write(Token{Type: TokenTypeSemicolon, Lexeme: ";"})
	buf.Done()

	tok, done, err := buf.Peek()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeSemicolon, tok.Type)

	tok, done, err = buf.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeSemicolon, tok.Type)

	_, done, err = buf.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func readAll(t *testing.T, r *Reader) []Token {
	tokens := []Token{}
	for {
		tok, done, err := r.Next()
		require.NoError(t, err)
		if done {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestReaderStreamsSameTokensAsLex(t *testing.T) {
	source := "int x = 3.14; return x;"
	want, errs := Lex(source)
	require.Empty(t, errs)

	r := NewReader(source)
	got := readAll(t, r)

	require.Equal(t, want, got)
	require.Empty(t, r.Errors())
}

func TestReaderPeekDoesNotConsume(t *testing.T) {
	r := NewReader("if x")

	peeked, done, err := r.Peek()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeKeywordIf, peeked.Type)

	next, done, err := r.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, peeked, next)
}

func TestReaderCollectsErrors(t *testing.T) {
	r := NewReader("a & b")
	tokens := readAll(t, r)

	require.Len(t, tokens, 2)
	require.Len(t, r.Errors(), 1)
	require.Equal(t, `unrecognized character '&'`, r.Errors()[0].Message)
}
