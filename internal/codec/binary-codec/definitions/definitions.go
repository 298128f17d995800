// Package definitions holds the XRP Ledger field registry (C1): a static,
// process-wide, bijective mapping between symbolic field names ("Account",
// "TakerGets", ...) and their wire-level FieldHeader (type-code, field-code
// pair). The table is taken verbatim from the public protocol definition and
// must never be renumbered; it is the single source of truth every other
// binary-codec package looks up names and headers through.
package definitions

import (
	"fmt"
	"sort"
	"sync"
)

// TypeCode identifies a field's wire type. Discriminants are fixed by the
// protocol.
type TypeCode int32

const (
	TypeUInt16    TypeCode = 1
	TypeUInt32    TypeCode = 2
	TypeUInt64    TypeCode = 3
	TypeHash128   TypeCode = 4
	TypeHash256   TypeCode = 5
	TypeAmount    TypeCode = 6
	TypeBlob      TypeCode = 7
	TypeAccountID TypeCode = 8
	TypeObject    TypeCode = 14
	TypeArray     TypeCode = 15
	TypeUInt8     TypeCode = 16
	TypeHash160   TypeCode = 17
	TypePathSet   TypeCode = 18
	TypeVector256 TypeCode = 19
)

// String returns the registry's type-name spelling for code, matching the
// names used in definitions.json-derived tables ("UInt8", "AccountId", ...).
func (c TypeCode) String() string {
	switch c {
	case TypeUInt8:
		return "UInt8"
	case TypeUInt16:
		return "UInt16"
	case TypeUInt32:
		return "UInt32"
	case TypeUInt64:
		return "UInt64"
	case TypeHash128:
		return "Hash128"
	case TypeHash160:
		return "Hash160"
	case TypeHash256:
		return "Hash256"
	case TypeAmount:
		return "Amount"
	case TypeBlob:
		return "Blob"
	case TypeAccountID:
		return "AccountId"
	case TypeObject:
		return "Object"
	case TypeArray:
		return "Array"
	case TypePathSet:
		return "PathSet"
	case TypeVector256:
		return "Vector256"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(c))
	}
}

// FieldHeader is the pair (type-code, field-code) that identifies a field on
// the wire. It has a total order: primary key type-code, secondary key
// field-code, per invariant 1 of the wire format.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// Less reports whether h sorts strictly before other under the canonical
// FieldId total order.
func (h FieldHeader) Less(other FieldHeader) bool {
	if h.TypeCode != other.TypeCode {
		return h.TypeCode < other.TypeCode
	}
	return h.FieldCode < other.FieldCode
}

// FieldInstance is everything the codec needs to know about one field: its
// name, its wire header, whether its value is length-prefixed, and a single
// sortable ordinal combining type-code and field-code.
type FieldInstance struct {
	FieldName   string
	Type        TypeCode
	Header      FieldHeader
	Ordinal     int32
	IsVLEncoded bool
}

// ObjectEndMarker and ArrayEndMarker are the sentinel FieldIds framing
// nested objects and arrays: FieldId(Object, 1) and FieldId(Array, 1).
var (
	ObjectEndMarker = FieldHeader{TypeCode: int32(TypeObject), FieldCode: 1}
	ArrayEndMarker  = FieldHeader{TypeCode: int32(TypeArray), FieldCode: 1}
)

// isVLEncodedType reports whether a field of this type is written as a
// variable-length prefix followed by raw bytes. Blob, AccountId, and
// Vector256 are length-prefixed on the wire; PathSet is self-delimited by
// its own path-separator/end-of-set sentinel bytes (no outer VL prefix),
// and Object/Array are self-delimited by the Object/ArrayEndMarker
// sentinels.
func isVLEncodedType(t TypeCode) bool {
	return t == TypeBlob || t == TypeAccountID || t == TypeVector256
}

type entry struct {
	name string
	code int32
	typ  TypeCode
}

// fieldTable is the ~180-entry registry, transcribed verbatim from the
// public protocol field definitions (the same table rippled, xrpl.js, and
// every conforming codec ship).
var fieldTable = []entry{
	{"CloseResolution", 1, TypeUInt8},
	{"Method", 2, TypeUInt8},
	{"TransactionResult", 3, TypeUInt8},
	{"TickSize", 16, TypeUInt8},
	{"UNLModifyDisabling", 17, TypeUInt8},
	{"HookResult", 18, TypeUInt8},

	{"LedgerEntryType", 1, TypeUInt16},
	{"TransactionType", 2, TypeUInt16},
	{"SignerWeight", 3, TypeUInt16},
	{"TransferFee", 4, TypeUInt16},
	{"Version", 16, TypeUInt16},
	{"HookStateChangeCount", 17, TypeUInt16},
	{"HookEmitCount", 18, TypeUInt16},
	{"HookExecutionIndex", 19, TypeUInt16},
	{"HookApiVersion", 20, TypeUInt16},

	{"NetworkID", 1, TypeUInt32},
	{"Flags", 2, TypeUInt32},
	{"SourceTag", 3, TypeUInt32},
	{"Sequence", 4, TypeUInt32},
	{"PreviousTxnLgrSeq", 5, TypeUInt32},
	{"LedgerSequence", 6, TypeUInt32},
	{"CloseTime", 7, TypeUInt32},
	{"ParentCloseTime", 8, TypeUInt32},
	{"SigningTime", 9, TypeUInt32},
	{"Expiration", 10, TypeUInt32},
	{"TransferRate", 11, TypeUInt32},
	{"WalletSize", 12, TypeUInt32},
	{"OwnerCount", 13, TypeUInt32},
	{"DestinationTag", 14, TypeUInt32},
	{"HighQualityIn", 16, TypeUInt32},
	{"HighQualityOut", 17, TypeUInt32},
	{"LowQualityIn", 18, TypeUInt32},
	{"LowQualityOut", 19, TypeUInt32},
	{"QualityIn", 20, TypeUInt32},
	{"QualityOut", 21, TypeUInt32},
	{"StampEscrow", 22, TypeUInt32},
	{"BondAmount", 23, TypeUInt32},
	{"LoadFee", 24, TypeUInt32},
	{"OfferSequence", 25, TypeUInt32},
	{"FirstLedgerSequence", 26, TypeUInt32},
	{"LastLedgerSequence", 27, TypeUInt32},
	{"TransactionIndex", 28, TypeUInt32},
	{"OperationLimit", 29, TypeUInt32},
	{"ReferenceFeeUnits", 30, TypeUInt32},
	{"ReserveBase", 31, TypeUInt32},
	{"ReserveIncrement", 32, TypeUInt32},
	{"SetFlag", 33, TypeUInt32},
	{"ClearFlag", 34, TypeUInt32},
	{"SignerQuorum", 35, TypeUInt32},
	{"CancelAfter", 36, TypeUInt32},
	{"FinishAfter", 37, TypeUInt32},
	{"SignerListID", 38, TypeUInt32},
	{"SettleDelay", 39, TypeUInt32},
	{"TicketCount", 40, TypeUInt32},
	{"TicketSequence", 41, TypeUInt32},
	{"NFTokenTaxon", 42, TypeUInt32},
	{"MintedNFTokens", 43, TypeUInt32},
	{"BurnedNFTokens", 44, TypeUInt32},
	{"HookStateCount", 45, TypeUInt32},
	{"EmitGeneration", 46, TypeUInt32},

	{"IndexNext", 1, TypeUInt64},
	{"IndexPrevious", 2, TypeUInt64},
	{"BookNode", 3, TypeUInt64},
	{"OwnerNode", 4, TypeUInt64},
	{"BaseFee", 5, TypeUInt64},
	{"ExchangeRate", 6, TypeUInt64},
	{"LowNode", 7, TypeUInt64},
	{"HighNode", 8, TypeUInt64},
	{"DestinationNode", 9, TypeUInt64},
	{"Cookie", 10, TypeUInt64},
	{"ServerVersion", 11, TypeUInt64},
	{"NFTokenOfferNode", 12, TypeUInt64},
	{"EmitBurden", 13, TypeUInt64},
	{"HookOn", 16, TypeUInt64},
	{"HookInstructionCount", 17, TypeUInt64},
	{"HookReturnCode", 18, TypeUInt64},
	{"ReferenceCount", 19, TypeUInt64},

	{"EmailHash", 1, TypeHash128},

	{"TakerPaysCurrency", 1, TypeHash160},
	{"TakerPaysIssuer", 2, TypeHash160},
	{"TakerGetsCurrency", 3, TypeHash160},
	{"TakerGetsIssuer", 4, TypeHash160},

	{"LedgerHash", 1, TypeHash256},
	{"ParentHash", 2, TypeHash256},
	{"TransactionHash", 3, TypeHash256},
	{"AccountHash", 4, TypeHash256},
	{"PreviousTxnID", 5, TypeHash256},
	{"LedgerIndex", 6, TypeHash256},
	{"WalletLocator", 7, TypeHash256},
	{"RootIndex", 8, TypeHash256},
	{"AccountTxnID", 9, TypeHash256},
	{"NFTokenID", 10, TypeHash256},
	{"EmitParentTxnID", 11, TypeHash256},
	{"EmitNonce", 12, TypeHash256},
	{"EmitHookHash", 13, TypeHash256},
	{"BookDirectory", 16, TypeHash256},
	{"InvoiceID", 17, TypeHash256},
	{"Nickname", 18, TypeHash256},
	{"Amendment", 19, TypeHash256},
	{"Digest", 21, TypeHash256},
	{"Channel", 22, TypeHash256},
	{"ConsensusHash", 23, TypeHash256},
	{"CheckID", 24, TypeHash256},
	{"ValidatedHash", 25, TypeHash256},
	{"PreviousPageMin", 26, TypeHash256},
	{"NextPageMin", 27, TypeHash256},
	{"NFTokenBuyOffer", 28, TypeHash256},
	{"NFTokenSellOffer", 29, TypeHash256},
	{"HookStateKey", 30, TypeHash256},
	{"HookHash", 31, TypeHash256},
	{"HookNamespace", 32, TypeHash256},
	{"HookSetTxnID", 33, TypeHash256},

	{"Amount", 1, TypeAmount},
	{"Balance", 2, TypeAmount},
	{"LimitAmount", 3, TypeAmount},
	{"TakerPays", 4, TypeAmount},
	{"TakerGets", 5, TypeAmount},
	{"LowLimit", 6, TypeAmount},
	{"HighLimit", 7, TypeAmount},
	{"Fee", 8, TypeAmount},
	{"SendMax", 9, TypeAmount},
	{"DeliverMin", 10, TypeAmount},
	{"MinimumOffer", 16, TypeAmount},
	{"RippleEscrow", 17, TypeAmount},
	{"DeliveredAmount", 18, TypeAmount},
	{"NFTokenBrokerFee", 19, TypeAmount},

	{"PublicKey", 1, TypeBlob},
	{"MessageKey", 2, TypeBlob},
	{"SigningPubKey", 3, TypeBlob},
	{"TxnSignature", 4, TypeBlob},
	{"URI", 5, TypeBlob},
	{"Signature", 6, TypeBlob},
	{"Domain", 7, TypeBlob},
	{"FundCode", 8, TypeBlob},
	{"RemoveCode", 9, TypeBlob},
	{"ExpireCode", 10, TypeBlob},
	{"CreateCode", 11, TypeBlob},
	{"MemoType", 12, TypeBlob},
	{"MemoData", 13, TypeBlob},
	{"MemoFormat", 14, TypeBlob},
	{"Fulfillment", 16, TypeBlob},
	{"Condition", 17, TypeBlob},
	{"MasterSignature", 18, TypeBlob},
	{"UNLModifyValidator", 19, TypeBlob},
	{"ValidatorToDisable", 20, TypeBlob},
	{"ValidatorToReEnable", 21, TypeBlob},
	{"HookStateData", 22, TypeBlob},
	{"HookReturnString", 23, TypeBlob},
	{"HookParameterName", 24, TypeBlob},
	{"HookParameterValue", 25, TypeBlob},

	{"Account", 1, TypeAccountID},
	{"Owner", 2, TypeAccountID},
	{"Destination", 3, TypeAccountID},
	{"Issuer", 4, TypeAccountID},
	{"Authorize", 5, TypeAccountID},
	{"Unauthorize", 6, TypeAccountID},
	{"RegularKey", 8, TypeAccountID},
	{"NFTokenMinter", 9, TypeAccountID},
	{"EmitCallback", 10, TypeAccountID},
	{"HookAccount", 16, TypeAccountID},

	{"TransactionMetaData", 2, TypeObject},
	{"CreatedNode", 3, TypeObject},
	{"DeletedNode", 4, TypeObject},
	{"ModifiedNode", 5, TypeObject},
	{"PreviousFields", 6, TypeObject},
	{"FinalFields", 7, TypeObject},
	{"NewFields", 8, TypeObject},
	{"TemplateEntry", 9, TypeObject},
	{"Memo", 10, TypeObject},
	{"SignerEntry", 11, TypeObject},
	{"NFToken", 12, TypeObject},
	{"EmitDetails", 13, TypeObject},
	{"Hook", 14, TypeObject},
	{"Signer", 16, TypeObject},
	{"Majority", 18, TypeObject},
	{"DisabledValidator", 19, TypeObject},
	{"EmittedTxn", 20, TypeObject},
	{"HookExecution", 21, TypeObject},
	{"HookDefinition", 22, TypeObject},
	{"HookParameter", 23, TypeObject},
	{"HookGrant", 24, TypeObject},
	{"ObjectEndMarker", 1, TypeObject},

	{"Paths", 1, TypePathSet},

	{"Amendments", 19, TypeVector256},

	{"Signers", 3, TypeArray},
	{"SignerEntries", 4, TypeArray},
	{"Template", 5, TypeArray},
	{"Necessary", 6, TypeArray},
	{"Sufficient", 7, TypeArray},
	{"AffectedNodes", 8, TypeArray},
	{"Memos", 9, TypeArray},
	{"NFTokens", 10, TypeArray},
	{"Hooks", 11, TypeArray},
	{"Majorities", 16, TypeArray},
	{"DisabledValidators", 17, TypeArray},
	{"HookExecutions", 18, TypeArray},
	{"HookParameters", 19, TypeArray},
	{"HookGrants", 20, TypeArray},
	{"ArrayEndMarker", 1, TypeArray},
}

// Registry is the immutable, concurrency-safe field registry (C1): a
// bijective mapping between field names and FieldHeaders, built once from
// fieldTable.
type Registry struct {
	byName   map[string]*FieldInstance
	byHeader map[FieldHeader]*FieldInstance
}

func newRegistry() *Registry {
	r := &Registry{
		byName:   make(map[string]*FieldInstance, len(fieldTable)),
		byHeader: make(map[FieldHeader]*FieldInstance, len(fieldTable)),
	}
	for _, e := range fieldTable {
		header := FieldHeader{TypeCode: int32(e.typ), FieldCode: e.code}
		inst := &FieldInstance{
			FieldName:   e.name,
			Type:        e.typ,
			Header:      header,
			Ordinal:     int32(e.typ)<<16 | e.code,
			IsVLEncoded: isVLEncodedType(e.typ),
		}
		if _, dup := r.byName[e.name]; dup {
			panic(fmt.Sprintf("definitions: field %q inserted twice", e.name))
		}
		if _, dup := r.byHeader[header]; dup {
			panic(fmt.Sprintf("definitions: field header %+v inserted twice (name %q)", header, e.name))
		}
		r.byName[e.name] = inst
		r.byHeader[header] = inst
	}
	return r
}

// GetFieldInstanceByFieldName looks up a field by its symbolic name.
func (r *Registry) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	inst, ok := r.byName[fieldName]
	if !ok {
		return nil, fmt.Errorf("definitions: unknown field name %q", fieldName)
	}
	return inst, nil
}

// GetFieldHeaderByFieldName looks up a field's header by its symbolic name.
func (r *Registry) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	inst, err := r.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	h := inst.Header
	return &h, nil
}

// GetFieldNameByFieldHeader looks up a field's symbolic name by its header.
func (r *Registry) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	inst, ok := r.byHeader[fh]
	if !ok {
		return "", fmt.Errorf("definitions: unknown field header %+v", fh)
	}
	return inst.FieldName, nil
}

// GetFieldInstanceByFieldHeader looks up a field's full instance by header.
func (r *Registry) GetFieldInstanceByFieldHeader(fh FieldHeader) (*FieldInstance, error) {
	inst, ok := r.byHeader[fh]
	if !ok {
		return nil, fmt.Errorf("definitions: unknown field header %+v", fh)
	}
	return inst, nil
}

// CreateFieldHeader builds a FieldHeader from raw type/field codes, mirroring
// the abstract Definitions.CreateFieldHeader contract.
func (r *Registry) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

// AllFieldNames returns every registered field name, sorted alphabetically.
func (r *Registry) AllFieldNames() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	instance     *Registry
	instanceOnce sync.Once
)

// Get returns the process-wide field registry, initializing it exactly once
// on first access. Safe for concurrent use; the registry is immutable after
// construction.
func Get() *Registry {
	instanceOnce.Do(func() {
		instance = newRegistry()
	})
	return instance
}
