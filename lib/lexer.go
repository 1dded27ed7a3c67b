package lib

import (
	"fmt"
)

// LexError is a recoverable lexical failure. The scanner records it,
// resynchronizes, and keeps going, so a scan always reaches end of input.
type LexError struct {
	Message  string
	Location Location
}

func (e LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d:%d: %s", e.Location.Line, e.Location.Col, e.Message)
}

// Lex scans the whole source in a single pass and returns every token and
// every lexical error in the order encountered.
func Lex(source string) ([]Token, []LexError) {
	tokens := []Token{}
	errs := []LexError{}
	lexInto(source, func(tok Token) {
		tokens = append(tokens, tok)
	}, func(lexErr LexError) {
		errs = append(errs, lexErr)
	})
	return tokens, errs
}

func lexInto(source string, emit func(Token), fail func(LexError)) {
	l := newLexer(source, emit, fail)
	l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  Location
	emitCallback     func(Token)
	failCallback     func(LexError)
}

func newLexer(source string, emit func(Token), fail func(LexError)) *lexer {
	src := []rune(source)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		currentLocation:  Location{Line: 1, Col: 1},
		emitCallback:     emit,
		failCallback:     fail,
	}
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.src[i], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek(0)
	if !ok {
		return 0, false
	}
	l.currentCharIndex++
	if ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return ch, ok
}

func (l *lexer) match(expected rune) bool {
	ch, ok := l.peek(0)
	if ok && ch == expected {
		_, _ = l.advance()
		return true
	}
	return false
}

func (l *lexer) emit(tokType TokenType, start int, loc Location) {
	l.emitCallback(Token{
		Type:     tokType,
		Lexeme:   string(l.src[start:l.currentCharIndex]),
		Location: loc,
	})
}

func (l *lexer) fail(msg string, loc Location) {
	l.failCallback(LexError{Message: msg, Location: loc})
}

func (l *lexer) scan() {
	for {
		l.skipWhitespaceAndComments()
		ch, ok := l.peek(0)
		if !ok {
			return
		}
		switch {
		case isLetter(ch):
			l.scanWord()
		case isDigit(ch):
			l.scanNumber()
		case ch == '"':
			l.scanString()
		default:
			l.scanOperator()
		}
	}
}

// skipWhitespaceAndComments eats whitespace plus // and /* */ comments. An
// unclosed block comment swallows the rest of the input and is reported at
// the comment's opening position.
func (l *lexer) skipWhitespaceAndComments() {
	for {
		ch, ok := l.peek(0)
		if !ok {
			return
		}

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			_, _ = l.advance()
			continue
		}

		if ch == '/' {
			ahead, _ := l.peek(1)
			if ahead == '/' {
				for {
					next, more := l.peek(0)
					if !more || next == '\n' {
						break
					}
					_, _ = l.advance()
				}
				continue
			}
			if ahead == '*' {
				startLoc := l.currentLocation
				_, _ = l.advance()
				_, _ = l.advance()
				closed := false
				for {
					next, more := l.peek(0)
					if !more {
						break
					}
					following, _ := l.peek(1)
					if next == '*' && following == '/' {
						_, _ = l.advance()
						_, _ = l.advance()
						closed = true
						break
					}
					_, _ = l.advance()
				}
				if !closed {
					l.fail("unterminated block comment", startLoc)
					return
				}
				continue
			}
		}

		return
	}
}

func (l *lexer) scanWord() {
	start := l.currentCharIndex
	startLoc := l.currentLocation
	for {
		ch, ok := l.peek(0)
		if !ok || (!isLetter(ch) && !isDigit(ch)) {
			break
		}
		_, _ = l.advance()
	}

	lexeme := string(l.src[start:l.currentCharIndex])
	if tokType, reserved := reservedWords[lexeme]; reserved {
		l.emit(tokType, start, startLoc)
		return
	}
	l.emit(TokenTypeIdentifier, start, startLoc)
}

func (l *lexer) scanNumber() {
	start := l.currentCharIndex
	startLoc := l.currentLocation
	l.eatDigits()

	// A dot only belongs to the number when at least one digit follows it,
	// so "123." lexes as the integer 123 and then a separate dot.
	dot, _ := l.peek(0)
	following, _ := l.peek(1)
	if dot == '.' && isDigit(following) {
		_, _ = l.advance()
		l.eatDigits()
		l.emit(TokenTypeReal, start, startLoc)
		return
	}
	l.emit(TokenTypeInteger, start, startLoc)
}

func (l *lexer) eatDigits() {
	for {
		ch, ok := l.peek(0)
		if !ok || !isDigit(ch) {
			return
		}
		_, _ = l.advance()
	}
}

// scanString consumes a double-quoted literal. A backslash escapes the next
// character, so \" does not close the literal. The emitted lexeme keeps the
// surrounding quotes. Hitting a newline or end of input first reports an
// unterminated string at the opening quote and leaves the newline unread.
func (l *lexer) scanString() {
	start := l.currentCharIndex
	startLoc := l.currentLocation
	_, _ = l.advance() // opening quote

	for {
		ch, ok := l.peek(0)
		if !ok || ch == '\n' {
			l.fail("unterminated string", startLoc)
			return
		}
		if ch == '"' {
			_, _ = l.advance()
			l.emit(TokenTypeString, start, startLoc)
			return
		}
		if ch == '\\' {
			_, _ = l.advance()
			if _, more := l.peek(0); more {
				_, _ = l.advance()
			}
			continue
		}
		_, _ = l.advance()
	}
}

func (l *lexer) scanOperator() {
	start := l.currentCharIndex
	startLoc := l.currentLocation
	ch, _ := l.advance()

	switch ch {
	case '+':
		l.emit(TokenTypePlus, start, startLoc)
	case '-':
		l.emit(TokenTypeMinus, start, startLoc)
	case '*':
		l.emit(TokenTypeAsterisk, start, startLoc)
	case '/':
		// only reached when the slash starts no comment
		l.emit(TokenTypeSlash, start, startLoc)
	case '<':
		if l.match('=') {
			l.emit(TokenTypeLessOrEqual, start, startLoc)
		} else {
			l.emit(TokenTypeLess, start, startLoc)
		}
	case '>':
		if l.match('=') {
			l.emit(TokenTypeGreaterOrEqual, start, startLoc)
		} else {
			l.emit(TokenTypeGreater, start, startLoc)
		}
	case '=':
		if l.match('=') {
			l.emit(TokenTypeEqual, start, startLoc)
		} else {
			l.emit(TokenTypeAssign, start, startLoc)
		}
	case '!':
		if l.match('=') {
			l.emit(TokenTypeNotEqual, start, startLoc)
		} else {
			l.emit(TokenTypeNot, start, startLoc)
		}
	case '&':
		if l.match('&') {
			l.emit(TokenTypeAnd, start, startLoc)
		} else {
			l.fail(fmt.Sprintf("unrecognized character %q", ch), startLoc)
		}
	case '|':
		if l.match('|') {
			l.emit(TokenTypeOr, start, startLoc)
		} else {
			l.fail(fmt.Sprintf("unrecognized character %q", ch), startLoc)
		}
	case ';':
		l.emit(TokenTypeSemicolon, start, startLoc)
	case ',':
		l.emit(TokenTypeComma, start, startLoc)
	case '(':
		l.emit(TokenTypeLParen, start, startLoc)
	case ')':
		l.emit(TokenTypeRParen, start, startLoc)
	case '{':
		l.emit(TokenTypeLBrace, start, startLoc)
	case '}':
		l.emit(TokenTypeRBrace, start, startLoc)
	default:
		l.fail(fmt.Sprintf("unrecognized character %q", ch), startLoc)
	}
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
