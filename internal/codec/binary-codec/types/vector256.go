package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Vector256 represents a VL-encoded array of 32-byte hashes (e.g. the
// Amendments field), written to JSON as a list of uppercase hex strings.
type Vector256 struct{}

func (v *Vector256) FromJSON(value any) ([]byte, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("types: Vector256 value must be a list")
	}
	out := make([]byte, 0, len(items)*32)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("types: Vector256 element must be a hex string")
		}
		b, err := hex.DecodeString(s)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("types: Vector256 element %q must be 32 bytes of hex", s)
		}
		out = append(out, b...)
	}
	return out, nil
}

func (v *Vector256) ToJSON(p interfaces.BinaryParser, lengths ...int) (any, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("types: Vector256.ToJSON requires a VL length")
	}
	total := lengths[0]
	if total%32 != 0 {
		return nil, fmt.Errorf("types: Vector256 byte length %d is not a multiple of 32", total)
	}
	out := make([]any, 0, total/32)
	for read := 0; read < total; read += 32 {
		b, err := p.ReadBytes(32)
		if err != nil {
			return nil, err
		}
		out = append(out, strings.ToUpper(hex.EncodeToString(b)))
	}
	return out, nil
}
