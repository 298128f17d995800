// Package addresscodec implements base58check encoding for XRP Ledger
// classic addresses, family seeds, and node/validator public keys.
//
// This package is the human-readable counterpart of the AccountId wire
// primitive in binary-codec: the same 20 bytes, presented as a checksummed
// base58 string instead of raw bytes on the wire. Key derivation, signing,
// and other key-management concerns live in internal/crypto; this package
// only encodes and decodes, it never generates key material.
package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/LeJamon/goXRPLd/internal/crypto"
)

// Type-prefix bytes for the various base58check payloads the XRP Ledger
// defines. Values are fixed by the protocol and must not be renumbered.
const (
	// AccountAddressPrefix is the type prefix for classic addresses ('r...').
	AccountAddressPrefix byte = 0x00
	// AccountPublicKeyPrefix is the type prefix for account public keys ('a...').
	AccountPublicKeyPrefix byte = 0x23
	// AccountSecretKeyPrefix is the type prefix for account secret/private keys ('p...').
	AccountSecretKeyPrefix byte = 0x22
	// FamilySeedPrefix is the type prefix for secp256k1 family seeds ('s...').
	FamilySeedPrefix byte = 0x21
	// NodePublicKeyPrefix is the type prefix for validator/node public keys ('n...').
	NodePublicKeyPrefix byte = 0x1C
	// NodePrivateKeyPrefix is the type prefix for validator/node private keys.
	NodePrivateKeyPrefix byte = 0x20
)

// ed25519SeedPrefix is the three-byte prefix rippled uses so that ed25519
// family seeds decode to strings starting with "sEd" instead of plain "s".
var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

// PrivateKeyLength is the length in bytes of a bare (un-prefixed) private key.
const PrivateKeyLength = 32

// AccountIDLength is the length in bytes of an XRPL account ID.
const AccountIDLength = 20

var (
	// ErrInvalidChecksum is returned when a base58check payload fails its
	// 4-byte double-SHA256 checksum verification.
	ErrInvalidChecksum = errors.New("addresscodec: invalid checksum")
	// ErrInvalidLength is returned when a decoded payload has an unexpected length.
	ErrInvalidLength = errors.New("addresscodec: invalid payload length")
	// ErrInvalidPrefix is returned when a decoded payload's type-prefix byte
	// does not match any recognized seed or key family.
	ErrInvalidPrefix = errors.New("addresscodec: unrecognized type prefix")
	// ErrInvalidCharacter is returned when an input string contains a
	// character outside the XRPL base58 alphabet.
	ErrInvalidCharacter = errors.New("addresscodec: invalid base58 character")
	// ErrInvalidSeed is the single error DecodeSeed returns for every seed
	// decode failure mode, matching rippled's treatment of seed validation
	// as a single pass/fail decision rather than a diagnosable taxonomy.
	ErrInvalidSeed = errors.New("addresscodec: invalid seed")
)

// Sha256RipeMD160 computes RIPEMD160(SHA256(data)), the hash XRPL uses to
// derive account IDs and node IDs from public keys. Grounded on
// internal/crypto.CalcAccountID, which performs the identical computation.
func Sha256RipeMD160(data []byte) []byte {
	id := crypto.CalcAccountID(data)
	return id[:]
}

// checksum returns the first 4 bytes of SHA256(SHA256(payload)).
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// Base58CheckEncode prepends prefix to payload, appends a 4-byte double-SHA256
// checksum, and base58-encodes the result using the XRPL alphabet.
func Base58CheckEncode(payload []byte, prefix ...byte) string {
	buf := make([]byte, 0, len(prefix)+len(payload)+4)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return encodeXRPLAlphabet(buf)
}

// Base58CheckDecode reverses Base58CheckEncode, verifying the checksum and
// splitting off a prefix of prefixLen bytes. Returns the prefix bytes and
// the remaining payload.
func Base58CheckDecode(encoded string, prefixLen int) (prefixBytes []byte, payload []byte, err error) {
	decoded, err := decodeXRPLAlphabet(encoded)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) < prefixLen+4 {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(decoded))
	}
	body := decoded[:len(decoded)-4]
	sum := decoded[len(decoded)-4:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, nil, ErrInvalidChecksum
	}
	return body[:prefixLen], body[prefixLen:], nil
}

// xrplAlphabet is the base58 dictionary used throughout the XRP Ledger,
// deliberately excluding the visually ambiguous characters 0, O, I, l.
const xrplAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var xrplAlphabetIndex = func() map[byte]int {
	m := make(map[byte]int, len(xrplAlphabet))
	for i := 0; i < len(xrplAlphabet); i++ {
		m[xrplAlphabet[i]] = i
	}
	return m
}()

var bigRadix = big.NewInt(58)

// encodeXRPLAlphabet base58-encodes data, preserving leading zero bytes as
// leading alphabet[0] characters, using the XRPL alphabet.
func encodeXRPLAlphabet(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, bigRadix, mod)
		out = append(out, xrplAlphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, xrplAlphabet[0])
	}
	reverseBytes(out)
	if len(out) == 0 {
		return string(xrplAlphabet[0])
	}
	return string(out)
}

// decodeXRPLAlphabet inverts encodeXRPLAlphabet.
func decodeXRPLAlphabet(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidLength)
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == xrplAlphabet[0] {
		zeros++
	}

	num := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx, ok := xrplAlphabetIndex[s[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, s[i])
		}
		num.Mul(num, bigRadix)
		num.Add(num, big.NewInt(int64(idx)))
	}

	body := num.Bytes()
	out := make([]byte, 0, zeros+len(body))
	for i := 0; i < zeros; i++ {
		out = append(out, 0)
	}
	out = append(out, body...)
	return out, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
