package clauser

// Tokenizer produces a lazy stream of [Token] values from an immutable
// input string. It is a pure position machine: Next advances monotonically,
// Peek and PeekAhead restore the position exactly.
type Tokenizer struct {
	text     string
	position int
}

// NewTokenizer creates a tokenizer over text, skipping a leading UTF-8 BOM
// if present.
func NewTokenizer(text string) *Tokenizer {
	t := &Tokenizer{text: text}

	if len(text) >= 3 && text[0] == '\xEF' && text[1] == '\xBB' && text[2] == '\xBF' {
		t.position = 3
	}

	return t
}

// Position returns the tokenizer's current byte offset into its source.
func (t *Tokenizer) Position() int { return t.position }

// IsDone reports whether the end of input has been reached.
func (t *Tokenizer) IsDone() bool { return t.position >= len(t.text) }

// Segment returns the byte slice of the source text a token spans.
func (t *Tokenizer) Segment(tok Token) string {
	return t.text[tok.Start : tok.Start+tok.Length]
}

// Next advances one token. ok=false,err=nil is clean end-of-input;
// ok=false,err!=nil is a tokenizer error.
func (t *Tokenizer) Next() (tok Token, ok bool, err *ParseError) {
	t.skipWhitespaceAndComments()

	if t.IsDone() {
		return Token{}, false, nil
	}

	c := t.text[t.position]

	switch {
	case c == '=':
		return t.single(TokenEquals), true, nil
	case c == ':':
		return t.single(TokenColon), true, nil
	case c == '{':
		return t.single(TokenOpenBracket), true, nil
	case c == '}':
		return t.single(TokenCloseBracket), true, nil
	case c == '>':
		return t.maybeDouble('=', TokenGreaterThan, TokenGreaterThanEq), true, nil
	case c == '<':
		return t.maybeDouble('=', TokenLessThan, TokenLessThanEq), true, nil
	case c == '?':
		return t.existenceCheck()
	case c == '-' || isDigit(c):
		return t.number()
	case c == '"':
		return t.string()
	case c == '_' || isAlnum(c):
		return t.identifierOrBoolean()
	default:
		return Token{}, false, newError(ErrKindTokenizer, t.position,
			"unexpected character %q in input", c)
	}
}

// Peek is equivalent to Next but restores the tokenizer's position
// afterward.
func (t *Tokenizer) Peek() (Token, bool, *ParseError) {
	pos := t.position
	tok, ok, err := t.Next()
	t.position = pos

	return tok, ok, err
}

// PeekAhead advances n tokens and returns the last one reached, then
// restores the position to where it started. n must be at least 1.
func (t *Tokenizer) PeekAhead(n int) (Token, bool, *ParseError) {
	pos := t.position

	var (
		tok Token
		ok  bool
		err *ParseError
	)

	for range n {
		tok, ok, err = t.Next()
		if !ok {
			break
		}
	}

	t.position = pos

	return tok, ok, err
}

func (t *Tokenizer) skipWhitespaceAndComments() {
	for !t.IsDone() {
		c := t.text[t.position]
		if c == '#' {
			for !t.IsDone() && t.text[t.position] != '\n' {
				t.position++
			}

			continue
		}

		if !isSpace(c) {
			return
		}

		t.position++
	}
}

func (t *Tokenizer) single(typ TokenType) Token {
	tok := Token{Type: typ, Start: t.position, Length: 1}
	t.position++

	return tok
}

func (t *Tokenizer) maybeDouble(second byte, single, double TokenType) Token {
	if t.position+1 < len(t.text) && t.text[t.position+1] == second {
		tok := Token{Type: double, Start: t.position, Length: 2}
		t.position += 2

		return tok
	}

	return t.single(single)
}

func (t *Tokenizer) existenceCheck() (Token, bool, *ParseError) {
	if t.position+1 < len(t.text) && t.text[t.position+1] == '=' {
		tok := Token{Type: TokenExistenceCheck, Start: t.position, Length: 2}
		t.position += 2

		return tok, true, nil
	}

	return Token{}, false, newError(ErrKindTokenizer, t.position, "unexpected char ?")
}

// number lexes an optional leading '-', digits, and an optional '.' plus
// digits. At least one digit must precede the decimal point (a bare '-'
// is rejected) and at least one digit must follow it (so "15." is
// rejected); only one '.' is permitted.
func (t *Tokenizer) number() (Token, bool, *ParseError) {
	start := t.position

	numDigits := 0
	if t.text[t.position] == '-' {
		t.position++
	} else {
		numDigits = 1
		t.position++
	}

	decimalAt := -1

	for !t.IsDone() {
		c := t.text[t.position]

		switch {
		case c == '.':
			if decimalAt != -1 || numDigits < 1 {
				return Token{}, false, newError(ErrKindTokenizer, t.position, "unexpected char .")
			}

			decimalAt = t.position
		case isDigit(c):
			numDigits++
		default:
			goto done
		}

		t.position++
	}

done:
	if numDigits < 1 || (decimalAt != -1 && t.position-decimalAt < 2) {
		return Token{}, false, newError(ErrKindTokenizer, t.position, "unexpected end of number")
	}

	return Token{Type: TokenNumber, Start: start, Length: t.position - start}, true, nil
}

func (t *Tokenizer) string() (Token, bool, *ParseError) {
	start := t.position
	t.position++

	for !t.IsDone() && t.text[t.position] != '"' {
		t.position++
	}

	if t.IsDone() {
		return Token{}, false, newError(ErrKindTokenizer, t.position,
			"unexpected end of file while reading string")
	}

	tok := Token{Type: TokenString, Start: start + 1, Length: t.position - start - 1}
	t.position++

	return tok, true, nil
}

func (t *Tokenizer) identifierOrBoolean() (Token, bool, *ParseError) {
	start := t.position

	for !t.IsDone() && (t.text[t.position] == '_' || isAlnum(t.text[t.position])) {
		t.position++
	}

	lexeme := t.text[start:t.position]

	typ := TokenIdentifier
	if lexeme == "yes" || lexeme == "no" {
		typ = TokenBoolean
	}

	return Token{Type: typ, Start: start, Length: t.position - start}, true, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
