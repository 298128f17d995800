package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

func fixedHashFromJSON(value any, byteLen int, typeName string) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("types: %s value must be a hex string", typeName)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("types: %s invalid hex: %w", typeName, err)
	}
	if len(b) != byteLen {
		return nil, fmt.Errorf("types: %s must be %d bytes, got %d", typeName, byteLen, len(b))
	}
	return b, nil
}

func fixedHashToJSON(p interfaces.BinaryParser, byteLen int) (any, error) {
	b, err := p.ReadBytes(byteLen)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// Hash128 represents a fixed 16-byte hash field (e.g. EmailHash).
type Hash128 struct{}

func (h *Hash128) FromJSON(value any) ([]byte, error) {
	return fixedHashFromJSON(value, 16, "Hash128")
}

func (h *Hash128) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHashToJSON(p, 16)
}

// Hash160 represents a fixed 20-byte hash field (e.g. currency/issuer legs
// of an order-book directory key).
type Hash160 struct{}

func (h *Hash160) FromJSON(value any) ([]byte, error) {
	return fixedHashFromJSON(value, 20, "Hash160")
}

func (h *Hash160) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHashToJSON(p, 20)
}

// Hash256 represents a fixed 32-byte hash field (e.g. LedgerHash,
// TransactionHash, NFTokenID).
type Hash256 struct{}

func (h *Hash256) FromJSON(value any) ([]byte, error) {
	return fixedHashFromJSON(value, 32, "Hash256")
}

func (h *Hash256) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return fixedHashToJSON(p, 32)
}
