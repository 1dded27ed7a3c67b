package lib

import (
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  Token
	done bool
	err  error
}

type tokenBuffer struct {
	tokChan      chan Token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan:      make(chan Token, TOKEN_BUF_SIZE),
		doneChan:     make(chan struct{}, 1),
		peeked:       nil,
		doneReceived: false,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	timeout := TokenReadTimeout
	if tb.doneReceived {
		timeout = 0
	}

	select {
	case tok := <-tb.tokChan:
		return tok, false, nil
	case <-tb.doneChan:
		tb.doneReceived = true
		return tb.Next()
	case <-time.After(timeout):
		if tb.doneReceived {
			// drain anything buffered ahead of the done signal
			select {
			case tok := <-tb.tokChan:
				return tok, false, nil
			default:
				return Token{}, true, nil
			}
		}
		return Token{}, false, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (Token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokChan <- tok
}

func (tb *tokenBuffer) Done() {
	tb.doneChan <- struct{}{}
}

// Reader streams the tokens of a source text as they are scanned, without
// materializing the full slice. Lexical errors are collected on the side and
// become available from Errors once Next has reported done.
type Reader struct {
	buf  *tokenBuffer
	errs []LexError
}

func NewReader(source string) *Reader {
	r := &Reader{buf: newTokenBuffer()}
	go func() {
		lexInto(source, r.buf.Write, func(lexErr LexError) {
			r.errs = append(r.errs, lexErr)
		})
		r.buf.Done()
	}()
	return r
}

func (r *Reader) Next() (Token, bool, error) {
	return r.buf.Next()
}

func (r *Reader) Peek() (Token, bool, error) {
	return r.buf.Peek()
}

// Errors is only safe to call after Next has returned done.
func (r *Reader) Errors() []LexError {
	return r.errs
}
