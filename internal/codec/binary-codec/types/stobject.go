package types

import (
	"fmt"
	"sort"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
)

// STObject serializes and parses a canonically field-ordered object: the
// recursive building block every transaction, ledger entry, and nested
// inner object (Memo, Signer) is built from.
type STObject struct {
	serializer *serdes.BinarySerializer
}

// NewSTObject returns an STObject that writes through serializer.
func NewSTObject(serializer *serdes.BinarySerializer) *STObject {
	return &STObject{serializer: serializer}
}

type namedField struct {
	inst  *definitions.FieldInstance
	value any
}

// FromJSON writes every field in value, in ascending field-ordinal order
// (the wire format's canonical order), and returns the accumulated bytes.
func (o *STObject) FromJSON(value map[string]any) ([]byte, error) {
	defs := definitions.Get()

	fields := make([]namedField, 0, len(value))
	for name, v := range value {
		inst, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, namedField{inst: inst, value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].inst.Ordinal < fields[j].inst.Ordinal })

	for _, f := range fields {
		encoded, err := encodeFieldValue(*f.inst, f.value)
		if err != nil {
			return nil, fmt.Errorf("types: field %s: %w", f.inst.FieldName, err)
		}
		if err := o.serializer.WriteFieldAndValue(*f.inst, encoded); err != nil {
			return nil, fmt.Errorf("types: field %s: %w", f.inst.FieldName, err)
		}
	}
	return o.serializer.GetSink(), nil
}

// ToJSON reads fields from parser until it runs out of bytes or hits an
// object end marker, and returns the decoded field map. A field whose
// ordinal is not greater than the previous field's (out of canonical
// order, or repeated) is an error.
func (o *STObject) ToJSON(parser *serdes.BinaryParser) (any, error) {
	out := map[string]any{}
	var prev *definitions.FieldInstance
	for parser.HasMore() {
		inst, err := parser.ReadField()
		if err != nil {
			return nil, err
		}
		if inst.Header == definitions.ObjectEndMarker {
			return out, nil
		}
		if prev != nil && inst.Ordinal <= prev.Ordinal {
			return nil, fmt.Errorf("types: field order: %s after %s", inst.FieldName, prev.FieldName)
		}
		prev = inst
		decoded, err := decodeFieldValue(parser, *inst)
		if err != nil {
			return nil, fmt.Errorf("types: field %s: %w", inst.FieldName, err)
		}
		out[inst.FieldName] = decoded
	}
	return out, nil
}

// encodeFieldValue dispatches value to the type codec fi.Type names, with
// special-casing for the two fields whose JSON representation is a string
// enum name rather than the wire integer it maps to.
func encodeFieldValue(fi definitions.FieldInstance, value any) ([]byte, error) {
	switch fi.Type {
	case definitions.TypeUInt8:
		return (&UInt8{}).FromJSON(value)
	case definitions.TypeUInt16:
		switch fi.FieldName {
		case "TransactionType":
			name, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("TransactionType value must be a string")
			}
			code, err := transactionTypeCode(name)
			if err != nil {
				return nil, err
			}
			return (&UInt16{}).FromJSON(code)
		case "LedgerEntryType":
			name, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("LedgerEntryType value must be a string")
			}
			code, err := ledgerEntryTypeCode(name)
			if err != nil {
				return nil, err
			}
			return (&UInt16{}).FromJSON(code)
		default:
			return (&UInt16{}).FromJSON(value)
		}
	case definitions.TypeUInt32:
		return (&UInt32{}).FromJSON(value)
	case definitions.TypeUInt64:
		return (&UInt64{}).FromJSON(value)
	case definitions.TypeHash128:
		return (&Hash128{}).FromJSON(value)
	case definitions.TypeHash160:
		return (&Hash160{}).FromJSON(value)
	case definitions.TypeHash256:
		return (&Hash256{}).FromJSON(value)
	case definitions.TypeAmount:
		return (&Amount{}).FromJSON(value)
	case definitions.TypeBlob:
		return (&Blob{}).FromJSON(value)
	case definitions.TypeAccountID:
		return (&AccountID{}).FromJSON(value)
	case definitions.TypeVector256:
		return (&Vector256{}).FromJSON(value)
	case definitions.TypePathSet:
		return (&PathSet{}).FromJSON(value)
	case definitions.TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("object field value must be an object")
		}
		return encodeNestedObject(obj)
	case definitions.TypeArray:
		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("array field value must be a list")
		}
		return encodeArray(items)
	default:
		return nil, fmt.Errorf("unsupported field type %s", fi.Type)
	}
}

func newInnerSTObject() *STObject {
	defs := definitions.Get()
	return NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))
}

func encodeNestedObject(obj map[string]any) ([]byte, error) {
	encoded, err := newInnerSTObject().FromJSON(obj)
	if err != nil {
		return nil, err
	}
	return append(encoded, serdes.EncodeFieldHeader(definitions.ObjectEndMarker)...), nil
}

func encodeArray(items []any) ([]byte, error) {
	var out []byte
	for i, item := range items {
		wrapper, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("array element %d must be an object", i)
		}
		// The wrapper's key (e.g. "Memo") is an Object-typed field, so
		// writing it already emits the inner fields and their end marker.
		encoded, err := newInnerSTObject().FromJSON(wrapper)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		out = append(out, encoded...)
	}
	return append(out, serdes.EncodeFieldHeader(definitions.ArrayEndMarker)...), nil
}

// decodeFieldValue dispatches the field just read by parser.ReadField to the
// matching type codec, threading through the VL length prefix for
// VL-encoded types and recursing into STObject for Object/Array fields.
func decodeFieldValue(parser *serdes.BinaryParser, fi definitions.FieldInstance) (any, error) {
	if fi.IsVLEncoded {
		length, err := parser.ReadVariableLength()
		if err != nil {
			return nil, err
		}
		switch fi.Type {
		case definitions.TypeBlob:
			return (&Blob{}).ToJSON(parser, length)
		case definitions.TypeAccountID:
			return (&AccountID{}).ToJSON(parser, length)
		case definitions.TypeVector256:
			return (&Vector256{}).ToJSON(parser, length)
		default:
			return nil, fmt.Errorf("unsupported VL-encoded field type %s", fi.Type)
		}
	}

	switch fi.Type {
	case definitions.TypePathSet:
		return (&PathSet{}).ToJSON(parser)
	case definitions.TypeUInt8:
		return (&UInt8{}).ToJSON(parser)
	case definitions.TypeUInt16:
		raw, err := (&UInt16{}).ToJSON(parser)
		if err != nil {
			return nil, err
		}
		code := uint16(raw.(int))
		switch fi.FieldName {
		case "TransactionType":
			return transactionTypeName(code)
		case "LedgerEntryType":
			return ledgerEntryTypeName(code)
		default:
			return raw, nil
		}
	case definitions.TypeUInt32:
		return (&UInt32{}).ToJSON(parser)
	case definitions.TypeUInt64:
		return (&UInt64{}).ToJSON(parser)
	case definitions.TypeHash128:
		return (&Hash128{}).ToJSON(parser)
	case definitions.TypeHash160:
		return (&Hash160{}).ToJSON(parser)
	case definitions.TypeHash256:
		return (&Hash256{}).ToJSON(parser)
	case definitions.TypeAmount:
		return (&Amount{}).ToJSON(parser)
	case definitions.TypeObject:
		return newInnerSTObject().ToJSON(parser)
	case definitions.TypeArray:
		return decodeArray(parser)
	default:
		return nil, fmt.Errorf("unsupported field type %s", fi.Type)
	}
}

func decodeArray(parser *serdes.BinaryParser) (any, error) {
	var out []any
	for {
		inst, err := parser.ReadField()
		if err != nil {
			return nil, err
		}
		if inst.Header == definitions.ArrayEndMarker {
			return out, nil
		}
		if inst.Type != definitions.TypeObject {
			return nil, fmt.Errorf("types: array element %s is not an object field", inst.FieldName)
		}
		// The field just read (e.g. "Memo") names the array element's sole
		// wrapper key; the nested object that follows is its value, up to
		// its own ObjectEndMarker.
		inner, err := newInnerSTObject().ToJSON(parser)
		if err != nil {
			return nil, err
		}
		out = append(out, map[string]any{inst.FieldName: inner})
	}
}
