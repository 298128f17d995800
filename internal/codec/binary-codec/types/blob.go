package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Blob represents a variable-length byte field, written to JSON as an
// uppercase hex string. The wire-level length prefix is added by the
// serializer, not by this type, since only the field instance (not the
// value) knows whether a field is VL-encoded.
type Blob struct{}

// FromJSON decodes value (a hex string) into raw bytes.
func (b *Blob) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("types: Blob value must be a hex string")
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("types: Blob invalid hex: %w", err)
	}
	return decoded, nil
}

// ToJSON reads length bytes (the caller must supply the VL length it already
// read from the stream) and returns them as an uppercase hex string.
func (b *Blob) ToJSON(p interfaces.BinaryParser, lengths ...int) (any, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("types: Blob.ToJSON requires a VL length")
	}
	data, err := p.ReadBytes(lengths[0])
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}
