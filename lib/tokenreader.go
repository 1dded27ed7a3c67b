package lib

// TokenReader is the consumption contract for a token stream. Next returns
// done=true once the stream is exhausted; Peek looks at the upcoming result
// without consuming it.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}
