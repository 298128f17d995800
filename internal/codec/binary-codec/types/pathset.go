package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Path-step type flags, packed into the single type byte preceding each
// step's account/currency/issuer fields.
const (
	pathStepTypeAccount  byte = 0x01
	pathStepTypeCurrency byte = 0x10
	pathStepTypeIssuer   byte = 0x20

	pathSeparatorByte byte = 0xFF
	pathSetEndByte    byte = 0x00
)

// PathSet represents the Paths field: an ordered list of alternative
// payment paths, each a list of steps naming an intermediate account and/or
// an order-book (currency, issuer) pair to cross.
type PathSet struct{}

func (ps *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("types: PathSet value must be a list of paths")
	}

	var out []byte
	for pathIdx, rawPath := range paths {
		steps, ok := rawPath.([]any)
		if !ok {
			return nil, fmt.Errorf("types: PathSet path %d must be a list of steps", pathIdx)
		}
		if pathIdx > 0 {
			out = append(out, pathSeparatorByte)
		}
		for stepIdx, rawStep := range steps {
			step, ok := rawStep.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("types: PathSet step %d must be an object", stepIdx)
			}
			stepBytes, err := encodePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, stepBytes...)
		}
	}
	out = append(out, pathSetEndByte)
	return out, nil
}

func encodePathStep(step map[string]any) ([]byte, error) {
	var typeByte byte
	var body []byte

	if account, ok := step["account"]; ok {
		typeByte |= pathStepTypeAccount
		s, ok := account.(string)
		if !ok {
			return nil, fmt.Errorf("types: PathSet step account must be a string")
		}
		b, err := addresscodec.DecodeAccountID(s)
		if err != nil {
			return nil, fmt.Errorf("types: PathSet step account %q: %w", s, err)
		}
		body = append(body, b...)
	}
	if currency, ok := step["currency"]; ok {
		typeByte |= pathStepTypeCurrency
		s, ok := currency.(string)
		if !ok {
			return nil, fmt.Errorf("types: PathSet step currency must be a string")
		}
		b, err := serializeIssuedCurrencyCode(s)
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if issuer, ok := step["issuer"]; ok {
		typeByte |= pathStepTypeIssuer
		s, ok := issuer.(string)
		if !ok {
			return nil, fmt.Errorf("types: PathSet step issuer must be a string")
		}
		b, err := addresscodec.DecodeAccountID(s)
		if err != nil {
			return nil, fmt.Errorf("types: PathSet step issuer %q: %w", s, err)
		}
		body = append(body, b...)
	}

	return append([]byte{typeByte}, body...), nil
}

func (ps *PathSet) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	var paths []any
	var current []any

	for {
		b, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case pathSetEndByte:
			paths = append(paths, current)
			return paths, nil
		case pathSeparatorByte:
			paths = append(paths, current)
			current = nil
		default:
			step, err := decodePathStep(p, b)
			if err != nil {
				return nil, err
			}
			current = append(current, step)
		}
	}
}

func decodePathStep(p interfaces.BinaryParser, typeByte byte) (map[string]any, error) {
	step := map[string]any{}
	if typeByte&pathStepTypeAccount != 0 {
		b, err := p.ReadBytes(addresscodec.AccountIDLength)
		if err != nil {
			return nil, err
		}
		addr, err := addresscodec.EncodeAccountID(b)
		if err != nil {
			return nil, err
		}
		step["account"] = addr
	}
	if typeByte&pathStepTypeCurrency != 0 {
		b, err := p.ReadBytes(20)
		if err != nil {
			return nil, err
		}
		currency, err := parseCurrencyCode(b)
		if err != nil {
			return nil, err
		}
		step["currency"] = currency
	}
	if typeByte&pathStepTypeIssuer != 0 {
		b, err := p.ReadBytes(addresscodec.AccountIDLength)
		if err != nil {
			return nil, err
		}
		issuer, err := addresscodec.EncodeAccountID(b)
		if err != nil {
			return nil, err
		}
		step["issuer"] = issuer
	}
	return step, nil
}
