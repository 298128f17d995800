package addresscodec

import (
	"encoding/hex"
	"fmt"

	ed25519crypto "github.com/LeJamon/goXRPLd/internal/crypto/algorithms/ed25519"
	secp256k1crypto "github.com/LeJamon/goXRPLd/internal/crypto/algorithms/secp256k1"
)

// EncodeAccountID base58check-encodes a 20-byte account ID as a classic
// address ('r...').
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidLength, AccountIDLength, len(accountID))
	}
	return Base58CheckEncode(accountID, AccountAddressPrefix), nil
}

// DecodeAccountID reverses EncodeAccountID.
func DecodeAccountID(address string) ([]byte, error) {
	prefix, payload, err := Base58CheckDecode(address, 1)
	if err != nil {
		return nil, err
	}
	if prefix[0] != AccountAddressPrefix {
		return nil, fmt.Errorf("%w: expected account address prefix, got 0x%02x", ErrInvalidPrefix, prefix[0])
	}
	if len(payload) != AccountIDLength {
		return nil, fmt.Errorf("%w: decoded account id is %d bytes", ErrInvalidLength, len(payload))
	}
	return payload, nil
}

// EncodeClassicAddressFromPublicKeyHex derives the account ID from a
// hex-encoded public key (computing RIPEMD160(SHA256(pubkey))) and encodes
// it as a classic address.
func EncodeClassicAddressFromPublicKeyHex(publicKeyHex string) (string, error) {
	pubKeyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return "", fmt.Errorf("addresscodec: invalid public key hex: %w", err)
	}
	accountID := Sha256RipeMD160(pubKeyBytes)
	return EncodeAccountID(accountID)
}

// IsValidClassicAddress reports whether address decodes to a well-formed,
// checksum-valid classic address.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeAccountID(address)
	return err == nil
}

// EncodeAccountPublicKey base58check-encodes a 33-byte account public key
// ('a...').
func EncodeAccountPublicKey(publicKey []byte) (string, error) {
	return Base58CheckEncode(publicKey, AccountPublicKeyPrefix), nil
}

// DecodeAccountPublicKey reverses EncodeAccountPublicKey.
func DecodeAccountPublicKey(encoded string) ([]byte, error) {
	prefix, payload, err := Base58CheckDecode(encoded, 1)
	if err != nil {
		return nil, err
	}
	if prefix[0] != AccountPublicKeyPrefix {
		return nil, fmt.Errorf("%w: expected account public key prefix, got 0x%02x", ErrInvalidPrefix, prefix[0])
	}
	return payload, nil
}

// EncodeNodePublicKey base58check-encodes a node/validator public key ('n...').
func EncodeNodePublicKey(publicKey []byte) (string, error) {
	return Base58CheckEncode(publicKey, NodePublicKeyPrefix), nil
}

// DecodeNodePublicKey reverses EncodeNodePublicKey.
func DecodeNodePublicKey(encoded string) ([]byte, error) {
	prefix, payload, err := Base58CheckDecode(encoded, 1)
	if err != nil {
		return nil, err
	}
	if prefix[0] != NodePublicKeyPrefix {
		return nil, fmt.Errorf("%w: expected node public key prefix, got 0x%02x", ErrInvalidPrefix, prefix[0])
	}
	return payload, nil
}

// seedAlgorithm is implemented by the two XRPL key-type families; it mirrors
// internal/crypto.Algorithm, which the concrete SECP256K1/ED25519 algorithm
// values already satisfy.
type seedAlgorithm interface {
	FamilySeedPrefix() byte
}

// EncodeSeed base58check-encodes 16 bytes of seed entropy, tagging it with
// algo's family prefix so DecodeSeed can recover which algorithm produced it.
// ed25519 seeds use the reserved 3-byte prefix that decodes to strings
// starting with "sEd"; every other family uses the single-byte family seed
// prefix rippled calls FamilySeedPrefix.
func EncodeSeed(entropy []byte, algo seedAlgorithm) (string, error) {
	if len(entropy) != 16 {
		return "", fmt.Errorf("%w: seed entropy must be 16 bytes, got %d", ErrInvalidLength, len(entropy))
	}
	if _, ok := algo.(ed25519crypto.ED25519SignatureProvider); ok {
		return Base58CheckEncode(entropy, ed25519SeedPrefix...), nil
	}
	return Base58CheckEncode(entropy, algo.FamilySeedPrefix()), nil
}

// DecodeSeed reverses EncodeSeed, returning the 16 bytes of entropy and the
// algorithm the seed's prefix identifies. Every failure mode (malformed
// base58, wrong length, bad checksum, unrecognized prefix) surfaces as
// ErrInvalidSeed; decodeSeedRaw carries the more specific error for callers
// that want it.
func DecodeSeed(encoded string) ([]byte, seedAlgorithm, error) {
	payload, algo, err := decodeSeedRaw(encoded)
	if err != nil {
		return nil, nil, ErrInvalidSeed
	}
	return payload, algo, nil
}

// decodeSeedRaw is the specific-error implementation DecodeSeed wraps.
func decodeSeedRaw(encoded string) ([]byte, seedAlgorithm, error) {
	decoded, err := decodeXRPLAlphabet(encoded)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) < 4 {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(decoded))
	}
	body := decoded[:len(decoded)-4]
	sum := decoded[len(decoded)-4:]

	// Try the 3-byte ed25519 prefix first since it is longer and more specific.
	if len(body) >= len(ed25519SeedPrefix)+16 {
		candidatePrefix := body[:len(ed25519SeedPrefix)]
		if bytesEqual(candidatePrefix, ed25519SeedPrefix) {
			payload := body[len(ed25519SeedPrefix):]
			if len(payload) != 16 {
				return nil, nil, fmt.Errorf("%w: ed25519 seed entropy is %d bytes", ErrInvalidLength, len(payload))
			}
			if !bytesEqual(checksum(body), sum) {
				return nil, nil, ErrInvalidChecksum
			}
			return payload, ed25519crypto.ED25519(), nil
		}
	}

	if len(body) != 17 {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(body))
	}
	if !bytesEqual(checksum(body), sum) {
		return nil, nil, ErrInvalidChecksum
	}
	prefix := body[0]
	payload := body[1:]
	if prefix != FamilySeedPrefix {
		return nil, nil, fmt.Errorf("%w: 0x%02x", ErrInvalidPrefix, prefix)
	}
	return payload, secp256k1crypto.SECP256K1(), nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
