package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"github.com/LeJamon/goXRPLd/internal/crypto/common"
	"strings"
)

// ED25519SignatureProvider implements digital signature operations using the ED25519 algorithm
type ED25519SignatureProvider struct {
	keyPrefix byte // Prefix used to identify ED25519 keys in XRPL
}

// Common error definitions
var (
	ErrValidatorNotSupported = errors.New("validator keypairs cannot use Ed25519")
	ErrInvalidPrivateKey     = errors.New("invalid private key format")
	ErrInvalidSignature      = errors.New("invalid signature format")
)

func NewED25519Provider() *ED25519SignatureProvider {
	return &ED25519SignatureProvider{
		keyPrefix: 0xED,
	}
}

// ed25519FamilySeedPrefix is unused on the wire (ed25519 seeds use the
// 3-byte prefix 0x01E14B instead of a single family-seed byte) but is kept
// so ED25519SignatureProvider satisfies the same KeyType-shaped interface
// SECP256K1CryptoAlgorithm does.
const ed25519FamilySeedPrefix byte = 0x01

// ED25519 returns a value-typed ED25519SignatureProvider, for callers (such
// as address-codec) that want to treat the algorithm as an immutable value
// rather than going through NewED25519Provider's pointer.
func ED25519() ED25519SignatureProvider {
	return ED25519SignatureProvider{keyPrefix: 0xED}
}

// Prefix returns the single-byte discriminant ed25519 keys are tagged with.
func (p ED25519SignatureProvider) Prefix() byte {
	return p.keyPrefix
}

// FamilySeedPrefix returns the nominal family-seed prefix byte. ed25519
// seeds are actually encoded with the longer reserved prefix handled
// directly by address-codec's EncodeSeed/DecodeSeed; this method exists so
// ED25519SignatureProvider satisfies the same shape as
// SECP256K1CryptoAlgorithm.
func (p ED25519SignatureProvider) FamilySeedPrefix() byte {
	return ed25519FamilySeedPrefix
}

// DeriveKeypair derives an ed25519 keypair from seed entropy. ed25519 has
// no separate root/account derivation step: the same key serves both node
// and account roles under different encodings.
func (p ED25519SignatureProvider) DeriveKeypair(seed []byte, validator bool) (string, string, error) {
	provider := NewED25519Provider()
	return provider.GenerateKeypair(seed, validator)
}

func (p *ED25519SignatureProvider) GenerateKeypair(seed []byte, isValidator bool) (string, string, error) {
	if isValidator {
		return "", "", ErrValidatorNotSupported
	}

	keyMaterial := crypto.Sha512Half(seed)
	pubKey, privKey, err := ed25519.GenerateKey(bytes.NewBuffer(keyMaterial[:]))
	if err != nil {
		return "", "", err
	}

	prefixedPubKey := append([]byte{p.keyPrefix}, pubKey...)
	prefixedPrivKey := append([]byte{p.keyPrefix}, privKey...)

	public := strings.ToUpper(hex.EncodeToString(prefixedPubKey))
	private := strings.ToUpper(hex.EncodeToString(prefixedPrivKey[:32+1]))

	return private, public, nil
}

func (p *ED25519SignatureProvider) SignMessage(message, privateKeyHex string) (string, error) {
	privKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return "", ErrInvalidPrivateKey
	}

	signingKey := ed25519.NewKeyFromSeed(privKeyBytes[1:])
	signature := ed25519.Sign(signingKey, []byte(message))

	return strings.ToUpper(hex.EncodeToString(signature)), nil
}

func (p *ED25519SignatureProvider) VerifySignature(message, publicKeyHex, signatureHex string) bool {
	pubKeyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false
	}

	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(pubKeyBytes[1:]), []byte(message), sigBytes)
}
