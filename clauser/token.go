// Package clauser implements a tokenizer, reader, and class-mapping engine
// for the Clausewitz configuration grammar: "key = value" pairs with
// "{ ... }" grouping used for both records and lists.
package clauser

import "fmt"

// TokenType identifies the lexical category of a [Token].
type TokenType int

const (
	// TokenInvalid marks a zero-value token. Tokens produced by the
	// tokenizer are never Invalid.
	TokenInvalid TokenType = iota
	TokenIdentifier
	TokenNumber
	TokenString
	TokenEquals
	TokenColon
	TokenOpenBracket
	TokenCloseBracket
	TokenGreaterThan
	TokenLessThan
	TokenGreaterThanEq
	TokenLessThanEq
	TokenExistenceCheck
	TokenBoolean
)

func (t TokenType) String() string {
	switch t {
	case TokenInvalid:
		return "Invalid"
	case TokenIdentifier:
		return "Identifier"
	case TokenNumber:
		return "Number"
	case TokenString:
		return "String"
	case TokenEquals:
		return "Equals"
	case TokenColon:
		return "Colon"
	case TokenOpenBracket:
		return "OpenBracket"
	case TokenCloseBracket:
		return "CloseBracket"
	case TokenGreaterThan:
		return "GreaterThan"
	case TokenLessThan:
		return "LessThan"
	case TokenGreaterThanEq:
		return "GreaterThanEq"
	case TokenLessThanEq:
		return "LessThanEq"
	case TokenExistenceCheck:
		return "ExistenceCheck"
	case TokenBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a lexical token: a type plus a (start, length) span into the
// source text. For [TokenString], the span excludes the surrounding quotes.
type Token struct {
	Type   TokenType
	Start  int
	Length int
}

// RealType is the coarse value kind derivable from a single token, used
// before a [ClassMapping] schema is consulted.
type RealType int

const (
	RealObjectOrArray RealType = iota
	RealNumber
	RealBoolean
	RealString
	RealIdentifier
)

func (r RealType) String() string {
	switch r {
	case RealObjectOrArray:
		return "ObjectOrArray"
	case RealNumber:
		return "Number"
	case RealBoolean:
		return "Boolean"
	case RealString:
		return "String"
	case RealIdentifier:
		return "Identifier"
	default:
		return fmt.Sprintf("RealType(%d)", int(r))
	}
}

// realTypeFromToken derives the RealType for a token kind that may appear
// as a property or array-element value. Returns false for tokens that can
// never start a value (Equals, Colon, CloseBracket, ...).
func realTypeFromToken(t TokenType) (RealType, bool) {
	switch t {
	case TokenBoolean:
		return RealBoolean, true
	case TokenNumber:
		return RealNumber, true
	case TokenIdentifier:
		return RealIdentifier, true
	case TokenString:
		return RealString, true
	case TokenOpenBracket:
		return RealObjectOrArray, true
	default:
		return 0, false
	}
}

// ValueType is the finer schema-level type tag used by [ValueMapping].
type ValueType uint8

const (
	ValueInvalid ValueType = iota
	ValueString
	ValueIdentifier
	ValueInteger
	ValueInteger64
	ValueDecimal
	ValueDecimal64
	ValueObject
	ValueArray
	ValueBoolean
)

func (v ValueType) String() string {
	switch v {
	case ValueInvalid:
		return "Invalid"
	case ValueString:
		return "String"
	case ValueIdentifier:
		return "Identifier"
	case ValueInteger:
		return "Integer"
	case ValueInteger64:
		return "Integer64"
	case ValueDecimal:
		return "Decimal"
	case ValueDecimal64:
		return "Decimal64"
	case ValueObject:
		return "Object"
	case ValueArray:
		return "Array"
	case ValueBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("ValueType(%d)", int(v))
	}
}

// ValueTypes is a bitmask over [ValueType].
type ValueTypes uint32

func typeMask(t ValueType) ValueTypes { return 1 << ValueTypes(t) }

// NewValueTypes builds a [ValueTypes] set from individual types.
func NewValueTypes(types ...ValueType) ValueTypes {
	var v ValueTypes
	for _, t := range types {
		v.Add(t)
	}

	return v
}

// Add sets t in the bitmask.
func (v *ValueTypes) Add(t ValueType) { *v |= typeMask(t) }

// Has reports whether t is a member of the set.
func (v ValueTypes) Has(t ValueType) bool {
	m := typeMask(t)

	return v&m == m
}

// HasRealType reports whether any member ValueType maps to rt.
func (v ValueTypes) HasRealType(rt RealType) bool {
	switch rt {
	case RealObjectOrArray:
		return v.Has(ValueObject) || v.Has(ValueArray)
	case RealNumber:
		return v.Has(ValueInteger) || v.Has(ValueInteger64) || v.Has(ValueDecimal) || v.Has(ValueDecimal64)
	case RealString:
		return v.Has(ValueString)
	case RealIdentifier:
		return v.Has(ValueIdentifier)
	case RealBoolean:
		return v.Has(ValueBoolean)
	default:
		return false
	}
}
