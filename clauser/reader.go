package clauser

import "strconv"

// ReaderState is the kind of grouping context the [Reader] is currently
// inside.
type ReaderState int

const (
	ReaderObject ReaderState = iota
	ReaderArray
)

func (s ReaderState) String() string {
	if s == ReaderArray {
		return "Array"
	}

	return "Object"
}

// Reader drives a [Tokenizer] while enforcing the Clausewitz
// object/array grammar via an explicit state stack, and exposes typed
// read primitives on top of it. The root of the file is treated as an
// implicit, bracketless object.
type Reader struct {
	tokenizer *Tokenizer
	current   ReaderState
	stack     []ReaderState
}

// NewReader creates a Reader over state's source text.
func NewReader(state *ParseState) *Reader {
	return &Reader{
		tokenizer: NewTokenizer(state.Source()),
		current:   ReaderObject,
	}
}

// Position returns the underlying tokenizer's current byte offset.
func (r *Reader) Position() int { return r.tokenizer.Position() }

func (r *Reader) pushState(next ReaderState) {
	r.stack = append(r.stack, r.current)
	r.current = next
}

func (r *Reader) popState(expected ReaderState) *ParseError {
	if r.current != expected {
		return newError(ErrKindStateMismatch, r.Position(),
			"tried to end %s but state was %s", expected, r.current)
	}

	if len(r.stack) == 0 {
		return newError(ErrKindStateMismatch, r.Position(),
			"end%s called without a matching begin%s", expected, expected)
	}

	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]

	return nil
}

func (r *Reader) expectState(state ReaderState) *ParseError {
	if r.current != state {
		return newError(ErrKindStateMismatch, r.Position(),
			"expected state %s, found state %s", state, r.current)
	}

	return nil
}

func (r *Reader) expectToken(want TokenType) (Token, *ParseError) {
	tok, ok, err := r.tokenizer.Next()
	if err != nil {
		return Token{}, err
	}

	if !ok {
		return Token{}, newError(ErrKindUnexpectedToken, r.Position(),
			"unexpected end of input, expected %s", want)
	}

	if tok.Type != want {
		return Token{}, newError(ErrKindUnexpectedToken, tok.Start,
			"unexpected token type %s, expected %s", tok.Type, want)
	}

	return tok, nil
}

// BeginReadObject requires the reader to currently be in an Object
// context, consumes a "{", and pushes a new Object context.
func (r *Reader) BeginReadObject() *ParseError {
	if err := r.expectState(ReaderObject); err != nil {
		return err
	}

	if _, err := r.expectToken(TokenOpenBracket); err != nil {
		return err
	}

	r.pushState(ReaderObject)

	return nil
}

// EndReadObject consumes a "}" and pops back to the enclosing context.
func (r *Reader) EndReadObject() *ParseError {
	if _, err := r.expectToken(TokenCloseBracket); err != nil {
		return err
	}

	return r.popState(ReaderObject)
}

// BeginReadArray requires the reader to currently be in an Object
// context (arrays are only introduced as property values), consumes a
// "{", and pushes a new Array context.
func (r *Reader) BeginReadArray() *ParseError {
	if err := r.expectState(ReaderObject); err != nil {
		return err
	}

	if _, err := r.expectToken(TokenOpenBracket); err != nil {
		return err
	}

	r.pushState(ReaderArray)

	return nil
}

// EndReadArray consumes a "}" and pops back to the enclosing context.
func (r *Reader) EndReadArray() *ParseError {
	if _, err := r.expectToken(TokenCloseBracket); err != nil {
		return err
	}

	return r.popState(ReaderArray)
}

// NextProperty requires an Object context and consumes the next
// property's key and "=", leaving the value token unconsumed. hasMore
// is false at a clean end of the current object (root end-of-input, or
// a "}" closing a nested object); the caller must not treat that as an
// error.
func (r *Reader) NextProperty(ps *ParseState) (key StringID, propType RealType, hasMore bool, err *ParseError) {
	if err := r.expectState(ReaderObject); err != nil {
		return 0, 0, false, err
	}

	tok, ok, tokErr := r.tokenizer.Next()
	if tokErr != nil {
		return 0, 0, false, tokErr
	}

	if !ok {
		if len(r.stack) == 0 {
			// EOF on the root object is a valid end.
			return 0, 0, false, nil
		}

		return 0, 0, false, newError(ErrKindUnexpectedToken, r.Position(),
			"unexpected end of input inside object")
	}

	if tok.Type == TokenCloseBracket && len(r.stack) != 0 {
		// The caller (ClassMapping) only reaches here when reading
		// nested object properties; EndReadObject still consumes the
		// matching "}" itself, so push the token back by rewinding.
		r.tokenizer.position = tok.Start

		return 0, 0, false, nil
	}

	if tok.Type != TokenIdentifier {
		return 0, 0, false, newError(ErrKindUnexpectedToken, tok.Start,
			"unexpected token type %s, expected Identifier", tok.Type)
	}

	key = ps.AddString(r.tokenizer.Segment(tok))

	if _, err := r.expectToken(TokenEquals); err != nil {
		return 0, 0, false, err
	}

	peeked, ok, tokErr := r.tokenizer.Peek()
	if tokErr != nil {
		return 0, 0, false, tokErr
	}

	if !ok {
		return 0, 0, false, newError(ErrKindUnexpectedToken, r.Position(),
			"unexpected end of input, expected a property value")
	}

	rt, valid := realTypeFromToken(peeked.Type)
	if !valid {
		return 0, 0, false, newError(ErrKindUnexpectedToken, peeked.Start,
			"invalid token %s in property value", peeked.Type)
	}

	return key, rt, true, nil
}

// NextArrayValue requires an Array context. It peeks (without
// consuming) the next token; hasMore is false when the array's closing
// "}" is next.
func (r *Reader) NextArrayValue() (valType RealType, hasMore bool, err *ParseError) {
	if err := r.expectState(ReaderArray); err != nil {
		return 0, false, err
	}

	tok, ok, tokErr := r.tokenizer.Peek()
	if tokErr != nil {
		return 0, false, tokErr
	}

	if !ok {
		return 0, false, newError(ErrKindUnexpectedToken, r.Position(),
			"unexpected end of input inside array")
	}

	if tok.Type == TokenCloseBracket {
		return 0, false, nil
	}

	rt, valid := realTypeFromToken(tok.Type)
	if !valid {
		return 0, false, newError(ErrKindUnexpectedToken, tok.Start,
			"invalid token %s in array value", tok.Type)
	}

	return rt, true, nil
}

// ReadInteger consumes a Number token and parses it as an int32.
func (r *Reader) ReadInteger() (int32, *ParseError) {
	segment, start, err := r.readNumberSegment()
	if err != nil {
		return 0, err
	}

	v, perr := strconv.ParseInt(segment, 10, 32)
	if perr != nil {
		return 0, newError(ErrKindInvalidNumber, start, "failed to parse integer from token %q", segment)
	}

	return int32(v), nil
}

// ReadInteger64 consumes a Number token and parses it as an int64.
func (r *Reader) ReadInteger64() (int64, *ParseError) {
	segment, start, err := r.readNumberSegment()
	if err != nil {
		return 0, err
	}

	v, perr := strconv.ParseInt(segment, 10, 64)
	if perr != nil {
		return 0, newError(ErrKindInvalidNumber, start, "failed to parse integer64 from token %q", segment)
	}

	return v, nil
}

// ReadDecimal consumes a Number token and parses it as a float32.
func (r *Reader) ReadDecimal() (float32, *ParseError) {
	segment, start, err := r.readNumberSegment()
	if err != nil {
		return 0, err
	}

	v, perr := strconv.ParseFloat(segment, 32)
	if perr != nil {
		return 0, newError(ErrKindInvalidNumber, start, "failed to parse decimal from token %q", segment)
	}

	return float32(v), nil
}

// ReadDecimal64 consumes a Number token and parses it as a float64.
func (r *Reader) ReadDecimal64() (float64, *ParseError) {
	segment, start, err := r.readNumberSegment()
	if err != nil {
		return 0, err
	}

	v, perr := strconv.ParseFloat(segment, 64)
	if perr != nil {
		return 0, newError(ErrKindInvalidNumber, start, "failed to parse decimal64 from token %q", segment)
	}

	return v, nil
}

func (r *Reader) readNumberSegment() (segment string, start int, err *ParseError) {
	tok, tokErr := r.expectToken(TokenNumber)
	if tokErr != nil {
		return "", 0, tokErr
	}

	return r.tokenizer.Segment(tok), tok.Start, nil
}

// ReadString consumes a String token and interns its content (without
// the surrounding quotes).
func (r *Reader) ReadString(ps *ParseState) (StringID, *ParseError) {
	tok, err := r.expectToken(TokenString)
	if err != nil {
		return 0, err
	}

	return ps.AddString(r.tokenizer.Segment(tok)), nil
}

// ReadIdentifier consumes an Identifier token and interns it.
func (r *Reader) ReadIdentifier(ps *ParseState) (StringID, *ParseError) {
	tok, err := r.expectToken(TokenIdentifier)
	if err != nil {
		return 0, err
	}

	return ps.AddString(r.tokenizer.Segment(tok)), nil
}

// ReadBoolean consumes a Boolean token. "yes" maps to true, "no" to
// false.
func (r *Reader) ReadBoolean() (bool, *ParseError) {
	tok, err := r.expectToken(TokenBoolean)
	if err != nil {
		return false, err
	}

	segment := r.tokenizer.Segment(tok)

	return segment[0] == 'y', nil
}

// PeekIdentifier looks ahead one token and interns it as an identifier
// without consuming it. It is an error if the next token isn't an
// Identifier.
func (r *Reader) PeekIdentifier(ps *ParseState) (StringID, *ParseError) {
	tok, ok, err := r.tokenizer.Peek()
	if err != nil {
		return 0, err
	}

	if !ok || tok.Type != TokenIdentifier {
		pos := r.Position()
		if ok {
			pos = tok.Start
		}

		return 0, newError(ErrKindUnexpectedToken, pos, "unexpected token, expected Identifier")
	}

	return ps.AddString(r.tokenizer.Segment(tok)), nil
}

// TryPeekIdentifier looks ahead one token. It returns false without an
// error when the next token isn't an identifier (including at clean
// end-of-input).
func (r *Reader) TryPeekIdentifier(ps *ParseState) (id StringID, ok bool) {
	tok, present, err := r.tokenizer.Peek()
	if err != nil || !present || tok.Type != TokenIdentifier {
		return 0, false
	}

	return ps.AddString(r.tokenizer.Segment(tok)), true
}
