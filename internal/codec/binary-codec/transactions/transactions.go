// Package transactions implements the dispatcher layer (C6) over the
// generic Object Protocol: validating a transaction field map against its
// declared TransactionType before handing the whole map to STObject, which
// already knows how to serialize any named field set in canonical order.
//
// There is no per-variant wire layout here — a Payment and an OfferCreate
// serialize through exactly the same STObject machinery as any other
// object. This package's only job is recognizing the supported variants
// and checking each one's required fields are present.
package transactions

import (
	"fmt"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types"
)

// Recognized TransactionType values.
const (
	Payment       = "Payment"
	OfferCreate   = "OfferCreate"
	OfferCancel   = "OfferCancel"
	TrustSet      = "TrustSet"
	AccountSet    = "AccountSet"
	AccountDelete = "AccountDelete"
)

// requiredFields names the fields each recognized variant must carry. Any
// other field present (Fee, Sequence, SigningPubKey, ...) is serialized by
// STObject regardless of variant.
var requiredFields = map[string][]string{
	Payment:       {"Account", "Destination", "Amount"},
	OfferCreate:   {"Account", "TakerGets", "TakerPays"},
	OfferCancel:   {"Account", "OfferSequence"},
	TrustSet:      {"Account", "LimitAmount"},
	AccountSet:    {"Account"},
	AccountDelete: {"Account", "Destination"},
}

// FromJSON validates value's TransactionType and required fields, then
// serializes the whole field map via the generic Object Protocol.
func FromJSON(value map[string]any) ([]byte, error) {
	txType, ok := value["TransactionType"].(string)
	if !ok {
		return nil, fmt.Errorf("transactions: TransactionType is required")
	}
	required, known := requiredFields[txType]
	if !known {
		return nil, fmt.Errorf("transactions: unrecognized TransactionType %q", txType)
	}
	for _, name := range required {
		if _, present := value[name]; !present {
			return nil, fmt.Errorf("transactions: %s requires field %q", txType, name)
		}
	}

	obj := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get())))
	return obj.FromJSON(value)
}

// ToJSON decodes a transaction from parser and confirms its TransactionType
// is one this package recognizes. The TransactionType field itself is read
// by the same generic STObject loop every other field goes through —
// dispatcher-validated-then-skip means validation happens here, after the
// fact, rather than via a per-variant visitor branch.
func ToJSON(parser *serdes.BinaryParser) (map[string]any, error) {
	obj := types.NewSTObject(nil)
	decoded, err := obj.ToJSON(parser)
	if err != nil {
		return nil, err
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transactions: decoded value is not an object")
	}
	txType, ok := m["TransactionType"].(string)
	if !ok {
		return nil, fmt.Errorf("transactions: decoded object has no TransactionType")
	}
	if _, known := requiredFields[txType]; !known {
		return nil, fmt.Errorf("transactions: unrecognized TransactionType %q", txType)
	}
	return m, nil
}
