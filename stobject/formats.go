package stobject

import (
	"fmt"
	"sort"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// TransactionType discriminates transaction formats.
type TransactionType uint16

// transaction types
const (
	PAYMENT         TransactionType = 0
	ESCROW_CREATE   TransactionType = 1
	ESCROW_FINISH   TransactionType = 2
	ACCOUNT_SET     TransactionType = 3
	ESCROW_CANCEL   TransactionType = 4
	SET_REGULAR_KEY TransactionType = 5
	OFFER_CREATE    TransactionType = 7
	OFFER_CANCEL    TransactionType = 8
	SIGNER_LIST_SET TransactionType = 12
	TRUST_SET       TransactionType = 20
)

// LedgerEntryType discriminates ledger entry formats.
type LedgerEntryType uint16

// ledger entry types
const (
	ACCOUNT_ROOT LedgerEntryType = 0x61
	OFFER        LedgerEntryType = 0x6f
	RIPPLE_STATE LedgerEntryType = 0x72
	ESCROW       LedgerEntryType = 0x75
	SIGNER_LIST  LedgerEntryType = 0x53
)

// Format is a named template selected by a type discriminator value.
type Format struct {
	Name     string
	Code     uint16
	Template *Template
}

// Formats is a family of formats sharing a discriminator field and a set
// of common elements.
type Formats struct {
	kind      string
	typeField *sfield.Field
	common    []Element
	byName    map[string]*Format
	byCode    map[uint16]*Format
}

func newFormats(kind string, typeField *sfield.Field, common ...Element) *Formats {
	return &Formats{
		kind:      kind,
		typeField: typeField,
		common:    common,
		byName:    make(map[string]*Format),
		byCode:    make(map[uint16]*Format),
	}
}

func (fs *Formats) add(name string, code uint16, elems ...Element) {
	all := append(append([]Element(nil), fs.common...), elems...)
	f := &Format{Name: name, Code: code, Template: MustTemplate(name, all...)}
	fs.byName[name] = f
	fs.byCode[code] = f
}

// ByCode looks a format up by discriminator value.
func (fs *Formats) ByCode(code uint16) (*Format, bool) {
	f, ok := fs.byCode[code]
	return f, ok
}

// ByName looks a format up by name.
func (fs *Formats) ByName(name string) (*Format, bool) {
	f, ok := fs.byName[name]
	return f, ok
}

// Names lists the format names in alphabetical order.
func (fs *Formats) Names() []string {
	names := make([]string, 0, len(fs.byName))
	for name := range fs.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a typed record of the named format with its discriminator
// already set.
func (fs *Formats) New(name string) (*Record, error) {
	f, ok := fs.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownFormat, fs.kind, name)
	}
	r := NewTypedRecord(f.Template, nil)
	if err := r.SetU16(fs.typeField, f.Code); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode decodes b and binds the result to the format named by its
// discriminator field.
func (fs *Formats) Decode(b []byte) (*Record, error) {
	return fs.DecodeWith(NewDecoder(), b)
}

// DecodeWith is Decode using d.
func (fs *Formats) DecodeWith(d *Decoder, b []byte) (*Record, error) {
	r, err := d.DecodeFrom(serialize.NewSerialIter(b), sfield.Generic, nil)
	if err != nil {
		return nil, err
	}
	code, err := r.GetU16(fs.typeField)
	if err != nil {
		return nil, malformed(fs.typeField, err)
	}
	f, ok := fs.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownFormat, fs.kind, code)
	}
	if err := r.SetTemplate(f.Template); err != nil {
		return nil, malformed(nil, err)
	}
	return r, nil
}

// DecodeTransaction decodes a transaction of any known type.
func DecodeTransaction(b []byte) (*Record, error) {
	return TxFormats.Decode(b)
}

// DecodeLedgerEntry decodes a ledger entry of any known type.
func DecodeLedgerEntry(b []byte) (*Record, error) {
	return LedgerFormats.Decode(b)
}

// TxFormats holds the transaction formats.
var TxFormats = newFormats("transaction", sfield.TransactionType,
	Req(sfield.TransactionType),
	Opt(sfield.Flags),
	Opt(sfield.SourceTag),
	Req(sfield.Account),
	Req(sfield.Sequence),
	Opt(sfield.PreviousTxnID),
	Opt(sfield.LastLedgerSequence),
	Opt(sfield.AccountTxnID),
	Req(sfield.Fee),
	Opt(sfield.OperationLimit),
	Opt(sfield.Memos),
	Req(sfield.SigningPubKey),
	Opt(sfield.TxnSignature),
	Opt(sfield.Signers),
)

// LedgerFormats holds the ledger entry formats.
var LedgerFormats = newFormats("ledger entry", sfield.LedgerEntryType,
	Opt(sfield.LedgerIndex),
	Req(sfield.LedgerEntryType),
	Req(sfield.Flags),
)

func init() {
	TxFormats.add("Payment", uint16(PAYMENT),
		Req(sfield.Destination),
		Req(sfield.Amount),
		Opt(sfield.SendMax),
		Opt(sfield.Paths),
		Opt(sfield.InvoiceID),
		Opt(sfield.DestinationTag),
		Opt(sfield.DeliverMin),
	)
	TxFormats.add("EscrowCreate", uint16(ESCROW_CREATE),
		Req(sfield.Destination),
		Req(sfield.Amount),
		Opt(sfield.Condition),
		Opt(sfield.CancelAfter),
		Opt(sfield.FinishAfter),
		Opt(sfield.DestinationTag),
	)
	TxFormats.add("EscrowFinish", uint16(ESCROW_FINISH),
		Req(sfield.Owner),
		Req(sfield.OfferSequence),
		Opt(sfield.Fulfillment),
		Opt(sfield.Condition),
	)
	TxFormats.add("AccountSet", uint16(ACCOUNT_SET),
		Opt(sfield.EmailHash),
		Opt(sfield.WalletLocator),
		Opt(sfield.WalletSize),
		Opt(sfield.MessageKey),
		Opt(sfield.Domain),
		Opt(sfield.TransferRate),
		Opt(sfield.SetFlag),
		Opt(sfield.ClearFlag),
		Opt(sfield.TickSize),
	)
	TxFormats.add("EscrowCancel", uint16(ESCROW_CANCEL),
		Req(sfield.Owner),
		Req(sfield.OfferSequence),
	)
	TxFormats.add("SetRegularKey", uint16(SET_REGULAR_KEY),
		Opt(sfield.RegularKey),
	)
	TxFormats.add("OfferCreate", uint16(OFFER_CREATE),
		Req(sfield.TakerPays),
		Req(sfield.TakerGets),
		Opt(sfield.Expiration),
		Opt(sfield.OfferSequence),
	)
	TxFormats.add("OfferCancel", uint16(OFFER_CANCEL),
		Req(sfield.OfferSequence),
	)
	TxFormats.add("SignerListSet", uint16(SIGNER_LIST_SET),
		Req(sfield.SignerQuorum),
		Opt(sfield.SignerEntries),
	)
	TxFormats.add("TrustSet", uint16(TRUST_SET),
		Opt(sfield.LimitAmount),
		Opt(sfield.QualityIn),
		Opt(sfield.QualityOut),
	)

	LedgerFormats.add("AccountRoot", uint16(ACCOUNT_ROOT),
		Req(sfield.Account),
		Req(sfield.Sequence),
		Req(sfield.Balance),
		Req(sfield.OwnerCount),
		Req(sfield.PreviousTxnID),
		Req(sfield.PreviousTxnLgrSeq),
		Opt(sfield.AccountTxnID),
		Opt(sfield.RegularKey),
		Opt(sfield.EmailHash),
		Opt(sfield.WalletLocator),
		Opt(sfield.WalletSize),
		Opt(sfield.MessageKey),
		Opt(sfield.TransferRate),
		Opt(sfield.Domain),
		Opt(sfield.TickSize),
	)
	LedgerFormats.add("Offer", uint16(OFFER),
		Req(sfield.Account),
		Req(sfield.Sequence),
		Req(sfield.TakerPays),
		Req(sfield.TakerGets),
		Req(sfield.BookDirectory),
		Req(sfield.BookNode),
		Req(sfield.OwnerNode),
		Req(sfield.PreviousTxnID),
		Req(sfield.PreviousTxnLgrSeq),
		Opt(sfield.Expiration),
	)
	LedgerFormats.add("RippleState", uint16(RIPPLE_STATE),
		Req(sfield.Balance),
		Req(sfield.LowLimit),
		Req(sfield.HighLimit),
		Req(sfield.PreviousTxnID),
		Req(sfield.PreviousTxnLgrSeq),
		Opt(sfield.LowNode),
		Opt(sfield.LowQualityIn),
		Opt(sfield.LowQualityOut),
		Opt(sfield.HighNode),
		Opt(sfield.HighQualityIn),
		Opt(sfield.HighQualityOut),
	)
	LedgerFormats.add("Escrow", uint16(ESCROW),
		Req(sfield.Account),
		Req(sfield.Destination),
		Req(sfield.Amount),
		Opt(sfield.Condition),
		Opt(sfield.CancelAfter),
		Opt(sfield.FinishAfter),
		Opt(sfield.SourceTag),
		Opt(sfield.DestinationTag),
		Req(sfield.OwnerNode),
		Req(sfield.PreviousTxnID),
		Req(sfield.PreviousTxnLgrSeq),
	)
	LedgerFormats.add("SignerList", uint16(SIGNER_LIST),
		Req(sfield.OwnerNode),
		Req(sfield.SignerQuorum),
		Req(sfield.SignerEntries),
		Req(sfield.SignerListID),
		Req(sfield.PreviousTxnID),
		Req(sfield.PreviousTxnLgrSeq),
	)
}

// inner object templates
var (
	MemoTemplate = MustTemplate("Memo",
		Opt(sfield.MemoType),
		Opt(sfield.MemoData),
		Opt(sfield.MemoFormat),
	)
	SignerEntryTemplate = MustTemplate("SignerEntry",
		Req(sfield.Account),
		Req(sfield.SignerWeight),
	)
	SignerTemplate = MustTemplate("Signer",
		Req(sfield.Account),
		Req(sfield.SigningPubKey),
		Req(sfield.TxnSignature),
	)
	MetadataTemplate = MustTemplate("TransactionMetaData",
		Req(sfield.TransactionIndex),
		Req(sfield.AffectedNodes),
		Req(sfield.TransactionResult),
		Opt(sfield.DeliveredAmount),
	)
)

var innerTemplates = map[sfield.SortKey]*Template{
	sfield.Memo.SortKey():        MemoTemplate,
	sfield.SignerEntry.SortKey(): SignerEntryTemplate,
	sfield.Signer.SortKey():      SignerTemplate,
}

// InnerTemplate returns the template of a standard inner object, or nil.
func InnerTemplate(name *sfield.Field) *Template {
	return innerTemplates[name.SortKey()]
}
