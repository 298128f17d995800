// Package serdes implements the wire-level serialization/deserialization
// primitives shared by every typed field: variable-length prefixes, field ID
// encoding, and the BinaryParser/BinarySerializer pair the typed codecs in
// the sibling types package are built on.
package serdes

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
)

// ErrLengthPrefixTooLong is returned when a value's length exceeds the
// largest length the three-byte VL prefix can express (918744 bytes).
var ErrLengthPrefixTooLong = errors.New("serdes: length exceeds maximum VL-encodable length (918744)")

// ErrParserOutOfBound is returned by any BinaryParser read past the end of
// its buffer.
var ErrParserOutOfBound = errors.New("serdes: read past end of buffer")

const maxVariableLength = 918744

// encodeVariableLength encodes length as a 1, 2, or 3-byte VL prefix:
//
//	0-192:       one byte, the length itself
//	193-12480:   two bytes
//	12481-918744: three bytes
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, fmt.Errorf("serdes: negative length %d", length)
	case length <= 192:
		return []byte{byte(length)}, nil
	case length <= 12480:
		v := length - 193
		return []byte{byte(193 + (v >> 8)), byte(v & 0xff)}, nil
	case length <= maxVariableLength:
		v := length - 12481
		return []byte{byte(241 + (v >> 16)), byte((v >> 8) & 0xff), byte(v & 0xff)}, nil
	default:
		return nil, ErrLengthPrefixTooLong
	}
}

// FieldIDCodec encodes and decodes field IDs: the 1-3 byte prefix, derived
// from a field's (type-code, field-code) pair, that precedes every field's
// value on the wire.
type FieldIDCodec struct {
	defs *definitions.Registry
}

// NewFieldIDCodec builds a FieldIDCodec backed by the given field registry.
func NewFieldIDCodec(defs *definitions.Registry) *FieldIDCodec {
	return &FieldIDCodec{defs: defs}
}

// Encode returns the wire bytes for fieldName's field ID.
func (c *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	inst, err := c.defs.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return encodeFieldHeader(inst.Header), nil
}

// Decode parses a hex-encoded field ID and returns the field name it names.
func (c *FieldIDCodec) Decode(hexInput string) (string, error) {
	data, err := decodeHex(hexInput)
	if err != nil {
		return "", err
	}
	parser := NewBinaryParser(data, c.defs)
	header, err := parser.readFieldHeader()
	if err != nil {
		return "", err
	}
	return c.defs.GetFieldNameByFieldHeader(header)
}

// EncodeFieldHeader returns the wire bytes for an arbitrary FieldHeader,
// for callers (such as types.STObject) that need to write sentinel headers
// like the object/array end markers directly.
func EncodeFieldHeader(h definitions.FieldHeader) []byte {
	return encodeFieldHeader(h)
}

// encodeFieldHeader implements the field ID packing rule:
//
//	type<16, field<16:  1 byte  (type<<4)|field
//	type>=16, field<16: 2 bytes (field, type)
//	type<16, field>=16: 2 bytes (type<<4, field)
//	type>=16, field>=16: 3 bytes (0, type, field)
func encodeFieldHeader(h definitions.FieldHeader) []byte {
	t, f := h.TypeCode, h.FieldCode
	switch {
	case t < 16 && f < 16:
		return []byte{byte((t << 4) | f)}
	case t >= 16 && f < 16:
		return []byte{byte(f), byte(t)}
	case t < 16 && f >= 16:
		return []byte{byte(t << 4), byte(f)}
	default:
		return []byte{0, byte(t), byte(f)}
	}
}

func decodeHex(s string) ([]byte, error) {
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, err := hexNibble(s[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s[i*2+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("serdes: invalid hex character %q", c)
	}
}

// BinaryParser reads a sequence of wire-encoded fields out of a byte buffer,
// tracking a read cursor.
type BinaryParser struct {
	data []byte
	pos  int
	defs *definitions.Registry
}

// NewBinaryParser wraps data for sequential reads, resolving field IDs
// against defs.
func NewBinaryParser(data []byte, defs *definitions.Registry) *BinaryParser {
	return &BinaryParser{data: data, defs: defs}
}

// HasMore reports whether any unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// ReadByte consumes and returns the next byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// Peek returns the next byte without advancing the cursor.
func (p *BinaryParser) Peek() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadBytes consumes and returns the next n bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.data) {
		return nil, ErrParserOutOfBound
	}
	b := p.data[p.pos : p.pos+n]
	p.pos += n
	return b, nil
}

// ReadVariableLength reads and decodes a 1-3 byte VL length prefix.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b1, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case b1 <= 192:
		return int(b1), nil
	case b1 <= 240:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 193 + (int(b1)-193)*256 + int(b2), nil
	case b1 <= 254:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		b3, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 12481 + (int(b1)-241)*65536 + int(b2)*256 + int(b3), nil
	default:
		return 0, fmt.Errorf("serdes: invalid VL length prefix byte 0x%02x", b1)
	}
}

// readFieldHeader reads a 1-3 byte field ID and returns its FieldHeader,
// without resolving it to a name.
func (p *BinaryParser) readFieldHeader() (definitions.FieldHeader, error) {
	b0, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}
	typeCode := int32(b0 >> 4)
	fieldCode := int32(b0 & 0x0f)
	if typeCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		typeCode = int32(b)
	}
	if fieldCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		fieldCode = int32(b)
	}
	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, nil
}

// ReadField reads the next field ID and resolves it to a FieldInstance via
// the parser's registry.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	header, err := p.readFieldHeader()
	if err != nil {
		return nil, err
	}
	return p.defs.GetFieldInstanceByFieldHeader(header)
}

// BinarySerializer accumulates the wire bytes of a sequence of fields,
// writing each field's ID, VL length prefix (when applicable), and value in
// canonical order.
type BinarySerializer struct {
	codec *FieldIDCodec
	sink  []byte
}

// NewBinarySerializer returns an empty serializer using codec to encode field
// IDs.
func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{codec: codec, sink: []byte{}}
}

// WriteFieldAndValue appends fieldInstance's field ID, a VL length prefix if
// the field is VL-encoded, and value to the sink.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	s.sink = append(s.sink, encodeFieldHeader(fieldInstance.Header)...)
	if fieldInstance.IsVLEncoded {
		vl, err := encodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.sink = append(s.sink, vl...)
	}
	s.sink = append(s.sink, value...)
	return nil
}

// GetSink returns the bytes accumulated so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}
