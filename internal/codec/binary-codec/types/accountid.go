package types

import (
	"encoding/hex"
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// AccountID represents a 20-byte account identifier field, written to and
// read from JSON as a base58check classic address ('r...').
type AccountID struct{}

// FromJSON accepts either a classic address or a bare 40-character hex
// account ID and returns the 20 raw bytes.
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("types: AccountID value must be a string")
	}
	if len(s) == 40 {
		if b, err := hex.DecodeString(s); err == nil && len(b) == addresscodec.AccountIDLength {
			return b, nil
		}
	}
	return addresscodec.DecodeAccountID(s)
}

// ToJSON reads the VL-prefixed account ID bytes the serializer already
// peeled off and returns the base58check classic address.
func (a *AccountID) ToJSON(p interfaces.BinaryParser, lengths ...int) (any, error) {
	n := addresscodec.AccountIDLength
	if len(lengths) > 0 {
		n = lengths[0]
	}
	b, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return addresscodec.EncodeAccountID(b)
}
