package types

import "fmt"

// transactionTypeCodes maps TransactionType field names to their rippled
// wire codes, serialized as a UInt16.
var transactionTypeCodes = map[string]uint16{
	"Payment":              0,
	"EscrowCreate":         1,
	"EscrowFinish":         2,
	"AccountSet":           3,
	"EscrowCancel":         4,
	"SetRegularKey":        5,
	"NickNameSet":          6,
	"OfferCreate":          7,
	"OfferCancel":          8,
	"TicketCreate":         10,
	"SignerListSet":        12,
	"PaymentChannelCreate": 13,
	"PaymentChannelFund":   14,
	"PaymentChannelClaim":  15,
	"CheckCreate":          16,
	"CheckCash":            17,
	"CheckCancel":          18,
	"DepositPreauth":       19,
	"TrustSet":             20,
	"AccountDelete":        21,
	"NFTokenMint":          25,
	"NFTokenBurn":          26,
	"NFTokenCreateOffer":   27,
	"NFTokenCancelOffer":   28,
	"NFTokenAcceptOffer":   29,
	"EnableAmendment":      100,
	"SetFee":               101,
	"UNLModify":            102,
}

var transactionTypeNames = reverseUint16Map(transactionTypeCodes)

// ledgerEntryTypeCodes maps LedgerEntryType field names to their rippled
// wire codes, serialized as a UInt16.
var ledgerEntryTypeCodes = map[string]uint16{
	"AccountRoot":     0x0061,
	"DirectoryNode":   0x0064,
	"RippleState":     0x0072,
	"Ticket":          0x0054,
	"SignerList":      0x0053,
	"Offer":           0x006f,
	"LedgerHashes":    0x0068,
	"Amendments":      0x0066,
	"FeeSettings":     0x0073,
	"Escrow":          0x0075,
	"PayChannel":      0x0078,
	"Check":           0x0043,
	"DepositPreauth":  0x0070,
	"NegativeUNL":     0x004e,
	"NFTokenPage":     0x0050,
	"NFTokenOffer":    0x0037,
}

var ledgerEntryTypeNames = reverseUint16Map(ledgerEntryTypeCodes)

func reverseUint16Map(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

func transactionTypeCode(name string) (uint16, error) {
	code, ok := transactionTypeCodes[name]
	if !ok {
		return 0, fmt.Errorf("types: unknown TransactionType %q", name)
	}
	return code, nil
}

func transactionTypeName(code uint16) (string, error) {
	name, ok := transactionTypeNames[code]
	if !ok {
		return "", fmt.Errorf("types: unknown TransactionType code %d", code)
	}
	return name, nil
}

func ledgerEntryTypeCode(name string) (uint16, error) {
	code, ok := ledgerEntryTypeCodes[name]
	if !ok {
		return 0, fmt.Errorf("types: unknown LedgerEntryType %q", name)
	}
	return code, nil
}

func ledgerEntryTypeName(code uint16) (string, error) {
	name, ok := ledgerEntryTypeNames[code]
	if !ok {
		return "", fmt.Errorf("types: unknown LedgerEntryType code %d", code)
	}
	return name, nil
}
