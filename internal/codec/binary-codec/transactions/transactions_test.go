package transactions

import (
	"testing"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_RejectsUnknownTransactionType(t *testing.T) {
	_, err := FromJSON(map[string]any{
		"TransactionType": "NotARealTransactionType",
		"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	})
	assert.Error(t, err)
}

func TestFromJSON_RejectsMissingRequiredField(t *testing.T) {
	_, err := FromJSON(map[string]any{
		"TransactionType": Payment,
		"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		// missing Destination and Amount
	})
	assert.Error(t, err)
}

func TestPaymentRoundtrip(t *testing.T) {
	input := map[string]any{
		"TransactionType": Payment,
		"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		"Destination":     "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		"Amount":          "1000000",
		"Fee":             "10",
		"Sequence":        uint32(1),
	}

	encoded, err := FromJSON(input)
	require.NoError(t, err)

	parser := serdes.NewBinaryParser(encoded, definitions.Get())
	decoded, err := ToJSON(parser)
	require.NoError(t, err)

	assert.Equal(t, Payment, decoded["TransactionType"])
	assert.Equal(t, "1000000", decoded["Amount"])
	assert.Equal(t, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys", decoded["Destination"])
}

func TestOfferCancelRoundtrip(t *testing.T) {
	input := map[string]any{
		"TransactionType": OfferCancel,
		"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		"OfferSequence":   uint32(1752791),
		"Fee":             "10",
	}

	encoded, err := FromJSON(input)
	require.NoError(t, err)

	parser := serdes.NewBinaryParser(encoded, definitions.Get())
	decoded, err := ToJSON(parser)
	require.NoError(t, err)

	assert.Equal(t, OfferCancel, decoded["TransactionType"])
	assert.EqualValues(t, 1752791, decoded["OfferSequence"])
}
