//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"fmt"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// toUint64 coerces the JSON values FromJSON methods commonly receive
// (float64 from decoded JSON numbers, or Go-native integer types from
// hand-built test fixtures) into a uint64.
func toUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case int:
		return uint64(v), nil
	case int8:
		return uint64(v), nil
	case int16:
		return uint64(v), nil
	case int32:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float64:
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("types: value %v (%T) is not a valid integer", value, value)
	}
}

// UInt8 represents an 8-bit unsigned integer field.
type UInt8 struct{}

func (u *UInt8) FromJSON(value any) ([]byte, error) {
	n, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	if n > 0xff {
		return nil, fmt.Errorf("types: UInt8 value %d out of range", n)
	}
	return []byte{byte(n)}, nil
}

func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return int(b), nil
}

// UInt16 represents a 16-bit unsigned integer field.
type UInt16 struct{}

func (u *UInt16) FromJSON(value any) ([]byte, error) {
	n, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	if n > 0xffff {
		return nil, fmt.Errorf("types: UInt16 value %d out of range", n)
	}
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(n))
	return buf, nil
}

func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return int(binary.BigEndian.Uint16(b)), nil
}

// UInt32 represents a 32-bit unsigned integer field.
type UInt32 struct{}

func (u *UInt32) FromJSON(value any) ([]byte, error) {
	n, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	if n > 0xffffffff {
		return nil, fmt.Errorf("types: UInt32 value %d out of range", n)
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(n))
	return buf, nil
}

func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.Uint32(b), nil
}
