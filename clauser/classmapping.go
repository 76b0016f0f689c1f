package clauser

import "fmt"

// ClassMapping is a schema: a map from interned key to [ValueMapping],
// driving population of a target record straight from the token stream.
type ClassMapping struct {
	state *ParseState
	table map[StringID]ValueMapping
}

// NewClassMapping creates an empty schema over state's string table.
func NewClassMapping(state *ParseState) *ClassMapping {
	return &ClassMapping{
		state: state,
		table: make(map[StringID]ValueMapping),
	}
}

// AddMapping interns key and binds it to m. Returns an error if key is
// already present in this schema.
func (c *ClassMapping) AddMapping(key string, m ValueMapping) error {
	id := c.state.AddString(key)
	if _, exists := c.table[id]; exists {
		return fmt.Errorf("duplicate mapping for key %q", key)
	}

	c.table[id] = m

	return nil
}

// ReadObject reads properties from r until the matching object close or
// end of input, dispatching each one through this schema.
func (c *ClassMapping) ReadObject(r *Reader, ps *ParseState) *ParseError {
	return c.readObjectProperties(r, ps)
}

func (c *ClassMapping) readObjectProperties(r *Reader, ps *ParseState) *ParseError {
	for {
		key, propType, hasMore, err := r.NextProperty(ps)
		if err != nil {
			return err
		}

		if !hasMore {
			return nil
		}

		mapping, ok := c.table[key]
		if !ok {
			return newError(ErrKindUnknownKey, r.Position(),
				"found unknown identifier %q, don't know how to handle", ps.MustLookup(key))
		}

		if !mapping.AcceptedTypes.HasRealType(propType) {
			return newError(ErrKindTypeMismatch, r.Position(),
				"parsed type %s is invalid for property %q", propType, ps.MustLookup(key))
		}

		if err := c.readValue(r, ps, mapping, propType); err != nil {
			return err
		}
	}
}

func (c *ClassMapping) readValue(r *Reader, ps *ParseState, mapping ValueMapping, propType RealType) *ParseError {
	switch propType {
	case RealNumber:
		return c.readNumberValue(r, mapping)
	case RealString:
		return c.readStringValue(r, ps, mapping)
	case RealIdentifier:
		return c.readIdentifierValue(r, ps, mapping)
	case RealBoolean:
		return c.readBooleanValue(r, mapping)
	case RealObjectOrArray:
		if mapping.AcceptedTypes.Has(ValueObject) {
			return c.readObjectValue(r, ps, mapping)
		}

		if mapping.AcceptedTypes.Has(ValueArray) {
			return c.readArrayValue(r, ps, mapping)
		}

		return newError(ErrKindUnsupported, r.Position(), "can't read value of type %s", propType)
	default:
		return newError(ErrKindUnsupported, r.Position(), "can't read value of type %s", propType)
	}
}

// numberTypePriority is the order in which a Number token is matched
// against a slot's accepted types: Integer, Integer64, Decimal,
// Decimal64.
var numberTypePriority = []ValueType{ValueInteger, ValueInteger64, ValueDecimal, ValueDecimal64}

func (c *ClassMapping) readNumberValue(r *Reader, mapping ValueMapping) *ParseError {
	for _, t := range numberTypePriority {
		if !mapping.AcceptedTypes.Has(t) {
			continue
		}

		switch t {
		case ValueInteger:
			v, err := r.ReadInteger()
			if err != nil {
				return err
			}

			*mapping.Target.Int32 = v
		case ValueInteger64:
			v, err := r.ReadInteger64()
			if err != nil {
				return err
			}

			*mapping.Target.Int64 = v
		case ValueDecimal:
			v, err := r.ReadDecimal()
			if err != nil {
				return err
			}

			*mapping.Target.Float32 = v
		case ValueDecimal64:
			v, err := r.ReadDecimal64()
			if err != nil {
				return err
			}

			*mapping.Target.Float64 = v
		}

		return nil
	}

	return newError(ErrKindTypeMismatch, r.Position(), "no valid number types for value")
}

func (c *ClassMapping) readStringValue(r *Reader, ps *ParseState, mapping ValueMapping) *ParseError {
	id, err := r.ReadString(ps)
	if err != nil {
		return err
	}

	*mapping.Target.Text = ps.MustLookup(id)

	return nil
}

func (c *ClassMapping) readIdentifierValue(r *Reader, ps *ParseState, mapping ValueMapping) *ParseError {
	id, err := r.ReadIdentifier(ps)
	if err != nil {
		return err
	}

	*mapping.Target.Text = ps.MustLookup(id)

	return nil
}

func (c *ClassMapping) readBooleanValue(r *Reader, mapping ValueMapping) *ParseError {
	v, err := r.ReadBoolean()
	if err != nil {
		return err
	}

	*mapping.Target.Bool = v

	return nil
}

// arrayElementPriority is the order in which the first matching element
// scalar type is picked from a slot's inner types.
var arrayElementPriority = []ValueType{
	ValueInteger, ValueInteger64, ValueDecimal, ValueDecimal64, ValueBoolean, ValueString, ValueIdentifier,
}

func (c *ClassMapping) readArrayValue(r *Reader, ps *ParseState, mapping ValueMapping) *ParseError {
	if err := r.BeginReadArray(); err != nil {
		return err
	}

	elementType, ok := firstInnerType(mapping.InnerTypes)
	if !ok {
		return newError(ErrKindUnsupported, r.Position(), "unsupported value type for array")
	}

	if err := c.readArrayElements(r, ps, mapping, elementType); err != nil {
		return err
	}

	return r.EndReadArray()
}

func firstInnerType(types ValueTypes) (ValueType, bool) {
	for _, t := range arrayElementPriority {
		if types.Has(t) {
			return t, true
		}
	}

	return 0, false
}

func (c *ClassMapping) readArrayElements(r *Reader, ps *ParseState, mapping ValueMapping, elementType ValueType) *ParseError {
	isText := elementType == ValueString || elementType == ValueIdentifier

	for {
		valType, hasMore, err := r.NextArrayValue()
		if err != nil {
			return err
		}

		if !hasMore {
			return nil
		}

		if valType == RealObjectOrArray {
			return newError(ErrKindUnsupported, r.Position(),
				"object or array without mapping")
		}

		if isText {
			if valType != RealString && valType != RealIdentifier {
				return newError(ErrKindTypeMismatch, r.Position(),
					"expected array value type %s but found %s", elementType, valType)
			}
		} else {
			expected, _ := realTypeForValueType(elementType)
			if valType != expected {
				return newError(ErrKindTypeMismatch, r.Position(),
					"expected array value type %s but found %s", elementType, valType)
			}
		}

		if err := c.appendArrayElement(r, ps, mapping, valType); err != nil {
			return err
		}
	}
}

func realTypeForValueType(t ValueType) (RealType, bool) {
	switch t {
	case ValueInteger, ValueInteger64, ValueDecimal, ValueDecimal64:
		return RealNumber, true
	case ValueBoolean:
		return RealBoolean, true
	case ValueString:
		return RealString, true
	case ValueIdentifier:
		return RealIdentifier, true
	default:
		return 0, false
	}
}

func (c *ClassMapping) appendArrayElement(r *Reader, ps *ParseState, mapping ValueMapping, valType RealType) *ParseError {
	switch mapping.Target.Kind {
	case SlotInt32Slice:
		v, err := r.ReadInteger()
		if err != nil {
			return err
		}

		*mapping.Target.Int32Slice = append(*mapping.Target.Int32Slice, v)
	case SlotInt64Slice:
		v, err := r.ReadInteger64()
		if err != nil {
			return err
		}

		*mapping.Target.Int64Slice = append(*mapping.Target.Int64Slice, v)
	case SlotFloat32Slice:
		v, err := r.ReadDecimal()
		if err != nil {
			return err
		}

		*mapping.Target.Float32Slice = append(*mapping.Target.Float32Slice, v)
	case SlotFloat64Slice:
		v, err := r.ReadDecimal64()
		if err != nil {
			return err
		}

		*mapping.Target.Float64Slice = append(*mapping.Target.Float64Slice, v)
	case SlotBoolSlice:
		v, err := r.ReadBoolean()
		if err != nil {
			return err
		}

		*mapping.Target.BoolSlice = append(*mapping.Target.BoolSlice, v)
	case SlotTextSlice:
		var (
			id  StringID
			err *ParseError
		)

		if valType == RealString {
			id, err = r.ReadString(ps)
		} else {
			id, err = r.ReadIdentifier(ps)
		}

		if err != nil {
			return err
		}

		*mapping.Target.TextSlice = append(*mapping.Target.TextSlice, ps.MustLookup(id))
	default:
		return newError(ErrKindInvalidState, r.Position(), "array mapping has no slice target")
	}

	return nil
}

func (c *ClassMapping) readObjectValue(r *Reader, ps *ParseState, mapping ValueMapping) *ParseError {
	if err := r.BeginReadObject(); err != nil {
		return err
	}

	if mapping.InnerSchema == nil {
		return newError(ErrKindInvalidState, r.Position(), "missing inner schema for object value")
	}

	if err := mapping.InnerSchema.readObjectProperties(r, ps); err != nil {
		return err
	}

	return r.EndReadObject()
}
