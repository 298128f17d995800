package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Amount-encoding constants, matching rippled's STAmount binary layout
// exactly: a 64-bit native/IOU value word, optionally followed by a 20-byte
// currency code and 20-byte issuer account ID.
const (
	MinIOUExponent = -96
	MaxIOUExponent = 80
	MaxIOUPrecision = 16

	MinIOUMantissa = 1000000000000000
	MaxIOUMantissa = 9999999999999999

	NotXRPBitMask = 0x80

	NativeAmountByteLength   = 8
	CurrencyAmountByteLength = 48
)

const (
	// PosSignBitMask marks a positive (or, for native XRP, any) amount.
	PosSignBitMask uint64 = 0x4000000000000000
	// ZeroCurrencyAmountHex is the wire value of a zero issued-currency
	// amount: not native, magnitude zero, sign bit unset.
	ZeroCurrencyAmountHex uint64 = 0x8000000000000000

	maxDrops        uint64 = 100000000000000000
	mantissaBits            = 54
	exponentBias            = 97
)

// OutOfRangeError reports that an IOU amount's precision or exponent fell
// outside the range the wire format can represent.
type OutOfRangeError struct {
	Type string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("types: %s out of range", e.Type)
}

// isNative reports whether firstByte's high bit marks a native XRP amount.
func isNative(firstByte byte) bool {
	return firstByte&NotXRPBitMask == 0
}

// isPositive reports whether firstByte's sign bit is set.
func isPositive(firstByte byte) bool {
	return firstByte&0x40 != 0
}

// Amount represents the polymorphic Amount field: either a native XRP drops
// value (a decimal string) or an issued-currency value (a
// {value,currency,issuer} object).
type Amount struct{}

// FromJSON serializes value, dispatching on its JSON shape: a string is a
// native XRP drops amount, a map is an issued-currency amount.
func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		if err := verifyXrpValue(v); err != nil {
			return nil, err
		}
		drops, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("types: invalid XRP drops value %q: %w", v, err)
		}
		word := PosSignBitMask | drops
		buf := make([]byte, NativeAmountByteLength)
		binary.BigEndian.PutUint64(buf, word)
		return buf, nil
	case map[string]any:
		return serializeIssuedAmount(v)
	default:
		return nil, fmt.Errorf("types: unsupported amount value type %T", value)
	}
}

// ToJSON reads a 64-bit value word and, if the high bit marks it as an
// issued currency, the following 20-byte currency code and 20-byte issuer.
func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}
	valueBytes, err := p.ReadBytes(NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	word := binary.BigEndian.Uint64(valueBytes)

	if isNative(first) {
		drops := word &^ PosSignBitMask
		return strconv.FormatUint(drops, 10), nil
	}

	currencyBytes, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	currency, err := parseCurrencyCode(currencyBytes)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeAccountID(issuerBytes)
	if err != nil {
		return nil, fmt.Errorf("types: invalid amount issuer: %w", err)
	}

	var valueStr string
	if word == ZeroCurrencyAmountHex {
		valueStr = "0"
	} else {
		positive := isPositive(first)
		storedExp := int((word >> mantissaBits) & 0xff)
		exponent := storedExp - exponentBias
		mantissa := word & ((uint64(1) << mantissaBits) - 1)
		valueStr = formatIOUValue(strconv.FormatUint(mantissa, 10), exponent, !positive)
	}

	return map[string]any{
		"value":    valueStr,
		"currency": currency,
		"issuer":   issuer,
	}, nil
}

// verifyXrpValue checks that value is a non-negative integer string within
// the XRP supply's maximum drops.
func verifyXrpValue(value string) error {
	if !isNumeric(value) {
		return fmt.Errorf("types: XRP drops value %q must be a non-negative integer", value)
	}
	drops, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("types: XRP drops value %q out of range: %w", value, err)
	}
	if drops > maxDrops {
		return fmt.Errorf("types: XRP drops value %q exceeds maximum supply", value)
	}
	return nil
}

// verifyIOUValue checks that value's normalized (mantissa, exponent) pair
// fits the wire format: at most 16 significant digits, adjusted exponent in
// [MinIOUExponent, MaxIOUExponent].
func verifyIOUValue(value string) error {
	_, _, precision, scale, err := parseDecimalComponents(value)
	if err != nil {
		return err
	}
	if precision > MaxIOUPrecision {
		return &OutOfRangeError{Type: "Precision"}
	}
	adjustedExp := scale + precision - MaxIOUPrecision
	if adjustedExp < MinIOUExponent || adjustedExp > MaxIOUExponent {
		return &OutOfRangeError{Type: "Exponent"}
	}
	return nil
}

// parseDecimalComponents splits a decimal string (optionally with a
// fractional part and/or an "e" exponent suffix) into its sign, significant
// digits (leading zeros stripped), digit count (precision), and scale — the
// power of ten the digit string must be multiplied by to recover the
// original value.
func parseDecimalComponents(value string) (negative bool, digits string, precision, scale int, err error) {
	s := value
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	mantissa := s
	exp := 0
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa = s[:idx]
		exp, err = strconv.Atoi(s[idx+1:])
		if err != nil {
			return false, "", 0, 0, fmt.Errorf("types: invalid exponent in %q: %w", value, err)
		}
	}

	intPart := mantissa
	fracPart := ""
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		intPart = mantissa[:idx]
		fracPart = mantissa[idx+1:]
	}

	rawDigits := intPart + fracPart
	if rawDigits == "" || !isNumeric(rawDigits) {
		return false, "", 0, 0, fmt.Errorf("types: %q is not a valid decimal amount", value)
	}

	trimmed := strings.TrimLeft(rawDigits, "0")
	if trimmed == "" {
		return negative, "0", 1, 0, nil
	}
	precision = len(trimmed)
	scale = exp - len(fracPart)
	return negative, trimmed, precision, scale, nil
}

// encodeIOUValue packs a decimal string into the 8-byte IOU value word
// (sign, biased exponent, 54-bit mantissa), per rippled's STAmount format.
func encodeIOUValue(value string) ([]byte, error) {
	negative, digits, precision, scale, err := parseDecimalComponents(value)
	if err != nil {
		return nil, err
	}

	var word uint64
	if digits == "0" {
		word = ZeroCurrencyAmountHex
	} else {
		padCount := MaxIOUPrecision - precision
		mantissaStr := digits + strings.Repeat("0", padCount)
		exponent := scale - padCount
		mantissa, err := strconv.ParseUint(mantissaStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("types: mantissa overflow for %q: %w", value, err)
		}
		storedExp := exponent + exponentBias
		if storedExp < 0 || storedExp > 0xff {
			return nil, &OutOfRangeError{Type: "Exponent"}
		}
		word = ZeroCurrencyAmountHex
		if !negative {
			word |= PosSignBitMask
		}
		word |= uint64(storedExp) << mantissaBits
		word |= mantissa
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, word)
	return buf, nil
}

// formatIOUValue reconstructs the minimal decimal-string representation of
// mantissaDigits * 10^exponent, the inverse of encodeIOUValue's
// normalization.
func formatIOUValue(mantissaDigits string, exponent int, negative bool) string {
	trimmed := strings.TrimRight(mantissaDigits, "0")
	removed := len(mantissaDigits) - len(trimmed)
	if trimmed == "" {
		trimmed = "0"
		removed = len(mantissaDigits) - 1
	}
	exponent += removed

	var s string
	if exponent >= 0 {
		s = trimmed + strings.Repeat("0", exponent)
	} else {
		numDigits := len(trimmed)
		decimalPos := numDigits + exponent
		switch {
		case decimalPos <= 0:
			s = "0." + strings.Repeat("0", -decimalPos) + trimmed
		case decimalPos >= numDigits:
			s = trimmed + strings.Repeat("0", decimalPos-numDigits)
		default:
			s = trimmed[:decimalPos] + "." + trimmed[decimalPos:]
		}
	}
	if negative && s != "0" {
		s = "-" + s
	}
	return s
}

// serializeIssuedAmount encodes a {value, currency, issuer} map as the
// 48-byte issued-currency amount.
func serializeIssuedAmount(fields map[string]any) ([]byte, error) {
	value, ok := fields["value"].(string)
	if !ok {
		return nil, fmt.Errorf("types: amount value must be a string")
	}
	currency, ok := fields["currency"].(string)
	if !ok {
		return nil, fmt.Errorf("types: amount currency must be a string")
	}
	issuer, ok := fields["issuer"].(string)
	if !ok {
		return nil, fmt.Errorf("types: amount issuer must be a string")
	}

	if err := verifyIOUValue(value); err != nil {
		return nil, err
	}

	currencyBytes, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}

	issuerBytes, err := addresscodec.DecodeAccountID(issuer)
	if err != nil {
		return nil, fmt.Errorf("types: invalid amount issuer %q: %w", issuer, err)
	}

	valueBytes, err := encodeIOUValue(value)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, CurrencyAmountByteLength)
	out = append(out, valueBytes...)
	out = append(out, currencyBytes...)
	out = append(out, issuerBytes...)
	return out, nil
}

// serializeIssuedCurrencyCode encodes a currency code (a 3-character ISO
// code or a 40-character hex custom code) into its 20-byte wire form. "XRP"
// is reserved and rejected: it is only valid as the native-amount
// discriminant, never as an issued-currency code.
func serializeIssuedCurrencyCode(currency string) ([]byte, error) {
	switch len(currency) {
	case 3:
		if strings.EqualFold(currency, "XRP") {
			return nil, fmt.Errorf("types: \"XRP\" is not a valid issued-currency code")
		}
		buf := make([]byte, 20)
		copy(buf[12:15], currency)
		return buf, nil
	case 40:
		b, err := hex.DecodeString(currency)
		if err != nil {
			return nil, fmt.Errorf("types: invalid currency hex %q: %w", currency, err)
		}
		if len(b) != 20 {
			return nil, fmt.Errorf("types: currency code must decode to 20 bytes")
		}
		if isReservedXRPCurrencyBytes(b) {
			return nil, fmt.Errorf("types: \"XRP\" is not a valid issued-currency code")
		}
		return b, nil
	default:
		return nil, fmt.Errorf("types: currency code %q must be 3 characters or 40 hex characters", currency)
	}
}

func isReservedXRPCurrencyBytes(b []byte) bool {
	return len(b) == 20 && string(b[12:15]) == "XRP"
}

// parseCurrencyCode decodes a 20-byte wire currency code back into its
// 3-character ISO form (when the standard-form bytes are all zero except
// the ISO-code slot) or an uppercase 40-character hex string otherwise.
func parseCurrencyCode(b []byte) (string, error) {
	if isReservedXRPCurrencyBytes(b) {
		return "", fmt.Errorf("types: issued amount carries reserved \"XRP\" currency code")
	}
	isStandardForm := true
	for i := 0; i < 12 && isStandardForm; i++ {
		if b[i] != 0 {
			isStandardForm = false
		}
	}
	for i := 15; i < 20 && isStandardForm; i++ {
		if b[i] != 0 {
			isStandardForm = false
		}
	}
	if isStandardForm {
		return string(b[12:15]), nil
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
