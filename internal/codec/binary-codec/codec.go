// Package binarycodec implements the XRP Ledger's canonical binary wire
// format: encoding/decoding transaction and ledger-object field maps to/from
// their serialized hex form, and producing the hash-prefixed signing blobs
// used for transaction signatures, multi-signatures, payment channel claims,
// and batch transactions.
package binarycodec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types"
)

// Hash prefixes, matching rippled's HashPrefix.h, prepended to the
// serialized bytes before hashing/signing so that different message
// purposes can never collide under the same signature.
const (
	txSigPrefix               = "53545800" // STX: single-signed transaction
	txMultiSigPrefix          = "534D5400" // SMT: multi-signed transaction
	paymentChannelClaimPrefix = "434C4D00" // CLM: payment channel claim
	batchPrefix               = "42434800" // BCH: batch transaction
)

// Encode serializes a transaction or ledger-object field map into its
// canonical uppercase hex wire form.
func Encode(value map[string]any) (string, error) {
	obj := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get())))
	data, err := obj.FromJSON(value)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// Decode parses a canonical hex wire blob back into a field map.
func Decode(blob string) (map[string]any, error) {
	data, err := hex.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("binarycodec: invalid hex blob: %w", err)
	}
	parser := serdes.NewBinaryParser(data, definitions.Get())
	obj := types.NewSTObject(nil)
	decoded, err := obj.ToJSON(parser)
	if err != nil {
		return nil, err
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("binarycodec: decoded value is not an object")
	}
	return m, nil
}

// EncodeForSigning returns the STX-prefixed bytes a single signer signs:
// the hash prefix followed by the transaction's canonical serialization.
func EncodeForSigning(value map[string]any) (string, error) {
	encoded, err := Encode(value)
	if err != nil {
		return "", err
	}
	return txSigPrefix + encoded, nil
}

// EncodeForMultisigning returns the SMT-prefixed bytes one signer in a
// multi-signed transaction signs: the hash prefix, the transaction
// serialized with an empty SigningPubKey, and the signer's raw 20-byte
// account ID.
func EncodeForMultisigning(value map[string]any, signingAccountID string) (string, error) {
	withEmptyKey := make(map[string]any, len(value)+1)
	for k, v := range value {
		withEmptyKey[k] = v
	}
	withEmptyKey["SigningPubKey"] = ""

	encoded, err := Encode(withEmptyKey)
	if err != nil {
		return "", err
	}

	accountBytes, err := addresscodec.DecodeAccountID(signingAccountID)
	if err != nil {
		return "", fmt.Errorf("binarycodec: invalid signing account %q: %w", signingAccountID, err)
	}

	return txMultiSigPrefix + encoded + strings.ToUpper(hex.EncodeToString(accountBytes)), nil
}

// EncodeForSigningClaim returns the CLM-prefixed bytes a payment channel
// claim signs: the hash prefix, the 32-byte channel ID, and the claimed
// drops as a raw 8-byte big-endian integer (not the tagged Amount wire
// form — a payment channel claim's value is always native XRP).
func EncodeForSigningClaim(value map[string]any) (string, error) {
	channelHex, ok := value["Channel"].(string)
	if !ok {
		return "", fmt.Errorf("binarycodec: Channel must be a string")
	}
	channelBytes, err := hex.DecodeString(channelHex)
	if err != nil || len(channelBytes) != 32 {
		return "", fmt.Errorf("binarycodec: Channel must be 32 bytes of hex")
	}

	amountStr, ok := value["Amount"].(string)
	if !ok {
		return "", fmt.Errorf("binarycodec: Amount must be a string")
	}
	drops, err := strconv.ParseUint(amountStr, 10, 64)
	if err != nil {
		return "", fmt.Errorf("binarycodec: invalid Amount %q: %w", amountStr, err)
	}

	dropsBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(dropsBytes, drops)

	out := append(append([]byte{}, channelBytes...), dropsBytes...)
	return paymentChannelClaimPrefix + strings.ToUpper(hex.EncodeToString(out)), nil
}

// EncodeForSigningBatch returns the BCH-prefixed bytes a batch transaction's
// outer signature covers: the hash prefix, the batch's flags, and the
// ordered list of inner transaction hashes.
func EncodeForSigningBatch(value map[string]any) (string, error) {
	flags, err := toUint32Flags(value["flags"])
	if err != nil {
		return "", fmt.Errorf("binarycodec: batch flags: %w", err)
	}
	txIDs, ok := value["txIDs"].([]string)
	if list, isList := value["txIDs"].([]any); isList {
		// A list decoded from JSON arrives as []any of strings.
		ok = true
		for _, item := range list {
			id, isString := item.(string)
			ok = ok && isString
			txIDs = append(txIDs, id)
		}
	}
	if !ok {
		return "", fmt.Errorf("binarycodec: txIDs must be a list of hex hashes")
	}

	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, flags)

	count := make([]byte, 4)
	binary.BigEndian.PutUint32(count, uint32(len(txIDs)))
	out = append(out, count...)

	for i, id := range txIDs {
		b, err := hex.DecodeString(id)
		if err != nil || len(b) != 32 {
			return "", fmt.Errorf("binarycodec: txIDs[%d] must be 32 bytes of hex", i)
		}
		out = append(out, b...)
	}

	return batchPrefix + strings.ToUpper(hex.EncodeToString(out)), nil
}

func toUint32Flags(value any) (uint32, error) {
	switch v := value.(type) {
	case uint32:
		return v, nil
	case int:
		return uint32(v), nil
	case int64:
		return uint32(v), nil
	case uint64:
		return uint32(v), nil
	case float64:
		return uint32(v), nil
	default:
		return 0, fmt.Errorf("unsupported flags type %T", value)
	}
}
