package clauser

// SlotKind identifies which field of a [TargetSlot] is populated.
type SlotKind int

const (
	SlotInt32 SlotKind = iota
	SlotInt64
	SlotFloat32
	SlotFloat64
	SlotBool
	SlotText
	SlotInt32Slice
	SlotInt64Slice
	SlotFloat32Slice
	SlotFloat64Slice
	SlotBoolSlice
	SlotTextSlice
	SlotObject
)

// TargetSlot is a closed sum type over every destination a [ValueMapping]
// can write through. For every Kind except SlotObject exactly one pointer
// field is populated, selected by Kind; a SlotObject slot has none, since
// object values are written through the [ValueMapping]'s InnerSchema.
// This is the exhaustive-match replacement for the original C++ engine's
// void-pointer reinterpretation of the target field.
type TargetSlot struct {
	Kind SlotKind

	Int32   *int32
	Int64   *int64
	Float32 *float32
	Float64 *float64
	Bool    *bool
	Text    *string

	Int32Slice   *[]int32
	Int64Slice   *[]int64
	Float32Slice *[]float32
	Float64Slice *[]float64
	BoolSlice    *[]bool
	TextSlice    *[]string
}

// ValueMapping binds one schema key to a target field, the set of
// [ValueType]s it accepts, and (for arrays/objects) the inner element
// type or nested schema.
type ValueMapping struct {
	AcceptedTypes ValueTypes
	InnerTypes    ValueTypes
	InnerSchema   *ClassMapping
	Target        TargetSlot
}

// MapInt32 binds key to an int32 field.
func MapInt32(target *int32) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueInteger),
		Target:        TargetSlot{Kind: SlotInt32, Int32: target},
	}
}

// MapInt64 binds key to an int64 field.
func MapInt64(target *int64) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueInteger64),
		Target:        TargetSlot{Kind: SlotInt64, Int64: target},
	}
}

// MapFloat32 binds key to a float32 field.
func MapFloat32(target *float32) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueDecimal),
		Target:        TargetSlot{Kind: SlotFloat32, Float32: target},
	}
}

// MapFloat64 binds key to a float64 field.
func MapFloat64(target *float64) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueDecimal64),
		Target:        TargetSlot{Kind: SlotFloat64, Float64: target},
	}
}

// MapBool binds key to a bool field.
func MapBool(target *bool) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueBoolean),
		Target:        TargetSlot{Kind: SlotBool, Bool: target},
	}
}

// MapString binds key to a string field. Text slots accept both quoted
// strings and bare identifiers, since the Clausewitz grammar treats
// those as interchangeable for free-form text.
func MapString(target *string) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueString, ValueIdentifier),
		Target:        TargetSlot{Kind: SlotText, Text: target},
	}
}

// MapInt32Slice binds key to an array of integers.
func MapInt32Slice(target *[]int32) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueInteger),
		Target:        TargetSlot{Kind: SlotInt32Slice, Int32Slice: target},
	}
}

// MapInt64Slice binds key to an array of 64-bit integers.
func MapInt64Slice(target *[]int64) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueInteger64),
		Target:        TargetSlot{Kind: SlotInt64Slice, Int64Slice: target},
	}
}

// MapFloat32Slice binds key to an array of decimals.
func MapFloat32Slice(target *[]float32) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueDecimal),
		Target:        TargetSlot{Kind: SlotFloat32Slice, Float32Slice: target},
	}
}

// MapFloat64Slice binds key to an array of 64-bit decimals.
func MapFloat64Slice(target *[]float64) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueDecimal64),
		Target:        TargetSlot{Kind: SlotFloat64Slice, Float64Slice: target},
	}
}

// MapBoolSlice binds key to an array of booleans, stored as an ordered
// []bool. The spec leaves the storage representation to the
// implementation; a plain slice is the idiomatic Go choice.
func MapBoolSlice(target *[]bool) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueBoolean),
		Target:        TargetSlot{Kind: SlotBoolSlice, BoolSlice: target},
	}
}

// MapStringSlice binds key to an array of text values. Elements may be
// quoted strings or bare identifiers interchangeably, within the same
// array.
func MapStringSlice(target *[]string) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueArray),
		InnerTypes:    NewValueTypes(ValueString, ValueIdentifier),
		Target:        TargetSlot{Kind: SlotTextSlice, TextSlice: target},
	}
}

// MapObject binds key to a nested record described by schema. schema's
// own ValueMappings already point at the fields of the destination
// record it was built over.
func MapObject(schema *ClassMapping) ValueMapping {
	return ValueMapping{
		AcceptedTypes: NewValueTypes(ValueObject),
		InnerSchema:   schema,
		Target:        TargetSlot{Kind: SlotObject},
	}
}
