package sfield

// Default is the process wide registry of the network's fields. It is sealed
// once package initialisation completes.
var Default = NewRegistry()

// Generic names records that are not stored under any field, such as a
// top level transaction.
var Generic = Default.MustRegister("Generic", ST_NOTPRESENT, 0)

// Standard fields. Codes are fixed by the network protocol.
var (
	// 16-bit unsigned integers (common)
	LedgerEntryType = Default.MustRegister("LedgerEntryType", ST_UINT16, 1)
	TransactionType = Default.MustRegister("TransactionType", ST_UINT16, 2)
	SignerWeight    = Default.MustRegister("SignerWeight", ST_UINT16, 3)

	// 16-bit unsigned integers (uncommon)
	Version = Default.MustRegister("Version", ST_UINT16, 16)

	// 32-bit unsigned integers (common)
	Flags             = Default.MustRegister("Flags", ST_UINT32, 2)
	SourceTag         = Default.MustRegister("SourceTag", ST_UINT32, 3)
	Sequence          = Default.MustRegister("Sequence", ST_UINT32, 4)
	PreviousTxnLgrSeq = Default.MustRegister("PreviousTxnLgrSeq", ST_UINT32, 5)
	LedgerSequence    = Default.MustRegister("LedgerSequence", ST_UINT32, 6)
	CloseTime         = Default.MustRegister("CloseTime", ST_UINT32, 7)
	ParentCloseTime   = Default.MustRegister("ParentCloseTime", ST_UINT32, 8)
	SigningTime       = Default.MustRegister("SigningTime", ST_UINT32, 9)
	Expiration        = Default.MustRegister("Expiration", ST_UINT32, 10)
	TransferRate      = Default.MustRegister("TransferRate", ST_UINT32, 11)
	WalletSize        = Default.MustRegister("WalletSize", ST_UINT32, 12)
	OwnerCount        = Default.MustRegister("OwnerCount", ST_UINT32, 13)
	DestinationTag    = Default.MustRegister("DestinationTag", ST_UINT32, 14)

	// 32-bit unsigned integers (uncommon)
	HighQualityIn       = Default.MustRegister("HighQualityIn", ST_UINT32, 16)
	HighQualityOut      = Default.MustRegister("HighQualityOut", ST_UINT32, 17)
	LowQualityIn        = Default.MustRegister("LowQualityIn", ST_UINT32, 18)
	LowQualityOut       = Default.MustRegister("LowQualityOut", ST_UINT32, 19)
	QualityIn           = Default.MustRegister("QualityIn", ST_UINT32, 20)
	QualityOut          = Default.MustRegister("QualityOut", ST_UINT32, 21)
	StampEscrow         = Default.MustRegister("StampEscrow", ST_UINT32, 22)
	BondAmount          = Default.MustRegister("BondAmount", ST_UINT32, 23)
	LoadFee             = Default.MustRegister("LoadFee", ST_UINT32, 24)
	OfferSequence       = Default.MustRegister("OfferSequence", ST_UINT32, 25)
	FirstLedgerSequence = Default.MustRegister("FirstLedgerSequence", ST_UINT32, 26)
	LastLedgerSequence  = Default.MustRegister("LastLedgerSequence", ST_UINT32, 27)
	TransactionIndex    = Default.MustRegister("TransactionIndex", ST_UINT32, 28)
	OperationLimit      = Default.MustRegister("OperationLimit", ST_UINT32, 29)
	ReferenceFeeUnits   = Default.MustRegister("ReferenceFeeUnits", ST_UINT32, 30)
	ReserveBase         = Default.MustRegister("ReserveBase", ST_UINT32, 31)
	ReserveIncrement    = Default.MustRegister("ReserveIncrement", ST_UINT32, 32)
	SetFlag             = Default.MustRegister("SetFlag", ST_UINT32, 33)
	ClearFlag           = Default.MustRegister("ClearFlag", ST_UINT32, 34)
	SignerQuorum        = Default.MustRegister("SignerQuorum", ST_UINT32, 35)
	CancelAfter         = Default.MustRegister("CancelAfter", ST_UINT32, 36)
	FinishAfter         = Default.MustRegister("FinishAfter", ST_UINT32, 37)
	SignerListID        = Default.MustRegister("SignerListID", ST_UINT32, 38)
	SettleDelay         = Default.MustRegister("SettleDelay", ST_UINT32, 39)

	// 64-bit unsigned integers (common)
	IndexNext       = Default.MustRegister("IndexNext", ST_UINT64, 1)
	IndexPrevious   = Default.MustRegister("IndexPrevious", ST_UINT64, 2)
	BookNode        = Default.MustRegister("BookNode", ST_UINT64, 3)
	OwnerNode       = Default.MustRegister("OwnerNode", ST_UINT64, 4)
	BaseFee         = Default.MustRegister("BaseFee", ST_UINT64, 5)
	ExchangeRate    = Default.MustRegister("ExchangeRate", ST_UINT64, 6)
	LowNode         = Default.MustRegister("LowNode", ST_UINT64, 7)
	HighNode        = Default.MustRegister("HighNode", ST_UINT64, 8)
	DestinationNode = Default.MustRegister("DestinationNode", ST_UINT64, 9)
	Cookie          = Default.MustRegister("Cookie", ST_UINT64, 10)

	// 128-bit (common)
	EmailHash = Default.MustRegister("EmailHash", ST_HASH128, 1)

	// 256-bit (common)
	LedgerHash      = Default.MustRegister("LedgerHash", ST_HASH256, 1)
	ParentHash      = Default.MustRegister("ParentHash", ST_HASH256, 2)
	TransactionHash = Default.MustRegister("TransactionHash", ST_HASH256, 3)
	AccountHash     = Default.MustRegister("AccountHash", ST_HASH256, 4)
	PreviousTxnID   = Default.MustRegister("PreviousTxnID", ST_HASH256, 5)
	LedgerIndex     = Default.MustRegister("LedgerIndex", ST_HASH256, 6)
	WalletLocator   = Default.MustRegister("WalletLocator", ST_HASH256, 7)
	RootIndex       = Default.MustRegister("RootIndex", ST_HASH256, 8)
	AccountTxnID    = Default.MustRegister("AccountTxnID", ST_HASH256, 9)

	// 256-bit (uncommon)
	BookDirectory = Default.MustRegister("BookDirectory", ST_HASH256, 16)
	InvoiceID     = Default.MustRegister("InvoiceID", ST_HASH256, 17)
	Nickname      = Default.MustRegister("Nickname", ST_HASH256, 18)
	Amendment     = Default.MustRegister("Amendment", ST_HASH256, 19)
	TicketID      = Default.MustRegister("TicketID", ST_HASH256, 20)
	Digest        = Default.MustRegister("Digest", ST_HASH256, 21)
	Channel       = Default.MustRegister("Channel", ST_HASH256, 22)
	CheckID       = Default.MustRegister("CheckID", ST_HASH256, 24)

	// currency amount (common)
	Amount      = Default.MustRegister("Amount", ST_AMOUNT, 1)
	Balance     = Default.MustRegister("Balance", ST_AMOUNT, 2)
	LimitAmount = Default.MustRegister("LimitAmount", ST_AMOUNT, 3)
	TakerPays   = Default.MustRegister("TakerPays", ST_AMOUNT, 4)
	TakerGets   = Default.MustRegister("TakerGets", ST_AMOUNT, 5)
	LowLimit    = Default.MustRegister("LowLimit", ST_AMOUNT, 6)
	HighLimit   = Default.MustRegister("HighLimit", ST_AMOUNT, 7)
	Fee         = Default.MustRegister("Fee", ST_AMOUNT, 8)
	SendMax     = Default.MustRegister("SendMax", ST_AMOUNT, 9)
	DeliverMin  = Default.MustRegister("DeliverMin", ST_AMOUNT, 10)

	// currency amount (uncommon)
	MinimumOffer    = Default.MustRegister("MinimumOffer", ST_AMOUNT, 16)
	RippleEscrow    = Default.MustRegister("RippleEscrow", ST_AMOUNT, 17)
	DeliveredAmount = Default.MustRegister("DeliveredAmount", ST_AMOUNT, 18)

	// variable length (common)
	PublicKey     = Default.MustRegister("PublicKey", ST_VL, 1)
	MessageKey    = Default.MustRegister("MessageKey", ST_VL, 2)
	SigningPubKey = Default.MustRegister("SigningPubKey", ST_VL, 3)
	TxnSignature  = Default.MustRegister("TxnSignature", ST_VL, 4, NotSigning())
	Generator     = Default.MustRegister("Generator", ST_VL, 5)
	Signature     = Default.MustRegister("Signature", ST_VL, 6, NotSigning())
	Domain        = Default.MustRegister("Domain", ST_VL, 7)
	FundCode      = Default.MustRegister("FundCode", ST_VL, 8)
	RemoveCode    = Default.MustRegister("RemoveCode", ST_VL, 9)
	ExpireCode    = Default.MustRegister("ExpireCode", ST_VL, 10)
	CreateCode    = Default.MustRegister("CreateCode", ST_VL, 11)
	MemoType      = Default.MustRegister("MemoType", ST_VL, 12)
	MemoData      = Default.MustRegister("MemoData", ST_VL, 13)
	MemoFormat    = Default.MustRegister("MemoFormat", ST_VL, 14)

	// variable length (uncommon)
	Fulfillment     = Default.MustRegister("Fulfillment", ST_VL, 16)
	Condition       = Default.MustRegister("Condition", ST_VL, 17)
	MasterSignature = Default.MustRegister("MasterSignature", ST_VL, 18, NotSigning())

	// account
	Account     = Default.MustRegister("Account", ST_ACCOUNT, 1)
	Owner       = Default.MustRegister("Owner", ST_ACCOUNT, 2)
	Destination = Default.MustRegister("Destination", ST_ACCOUNT, 3)
	Issuer      = Default.MustRegister("Issuer", ST_ACCOUNT, 4)
	Authorize   = Default.MustRegister("Authorize", ST_ACCOUNT, 5)
	Unauthorize = Default.MustRegister("Unauthorize", ST_ACCOUNT, 6)
	Target      = Default.MustRegister("Target", ST_ACCOUNT, 7)
	RegularKey  = Default.MustRegister("RegularKey", ST_ACCOUNT, 8)

	// inner object
	EndOfObject         = Default.MustRegister("EndOfObject", ST_OBJECT, 1)
	TransactionMetaData = Default.MustRegister("TransactionMetaData", ST_OBJECT, 2)
	CreatedNode         = Default.MustRegister("CreatedNode", ST_OBJECT, 3)
	DeletedNode         = Default.MustRegister("DeletedNode", ST_OBJECT, 4)
	ModifiedNode        = Default.MustRegister("ModifiedNode", ST_OBJECT, 5)
	PreviousFields      = Default.MustRegister("PreviousFields", ST_OBJECT, 6)
	FinalFields         = Default.MustRegister("FinalFields", ST_OBJECT, 7)
	NewFields           = Default.MustRegister("NewFields", ST_OBJECT, 8)
	TemplateEntry       = Default.MustRegister("TemplateEntry", ST_OBJECT, 9)
	Memo                = Default.MustRegister("Memo", ST_OBJECT, 10)
	SignerEntry         = Default.MustRegister("SignerEntry", ST_OBJECT, 11)

	// inner object (uncommon)
	Signer   = Default.MustRegister("Signer", ST_OBJECT, 16)
	Majority = Default.MustRegister("Majority", ST_OBJECT, 18)

	// array of objects
	EndOfArray      = Default.MustRegister("EndOfArray", ST_ARRAY, 1)
	SigningAccounts = Default.MustRegister("SigningAccounts", ST_ARRAY, 2)
	Signers         = Default.MustRegister("Signers", ST_ARRAY, 3, NotSigning())
	SignerEntries   = Default.MustRegister("SignerEntries", ST_ARRAY, 4)
	Template        = Default.MustRegister("Template", ST_ARRAY, 5)
	Necessary       = Default.MustRegister("Necessary", ST_ARRAY, 6)
	Sufficient      = Default.MustRegister("Sufficient", ST_ARRAY, 7)
	AffectedNodes   = Default.MustRegister("AffectedNodes", ST_ARRAY, 8)
	Memos           = Default.MustRegister("Memos", ST_ARRAY, 9)

	// array of objects (uncommon)
	Majorities = Default.MustRegister("Majorities", ST_ARRAY, 16)

	// 8-bit unsigned integers (common)
	CloseResolution   = Default.MustRegister("CloseResolution", ST_UINT8, 1)
	Method            = Default.MustRegister("Method", ST_UINT8, 2)
	TransactionResult = Default.MustRegister("TransactionResult", ST_UINT8, 3)

	// 8-bit unsigned integers (uncommon)
	TickSize = Default.MustRegister("TickSize", ST_UINT8, 16)

	// 160-bit (common)
	TakerPaysCurrency = Default.MustRegister("TakerPaysCurrency", ST_HASH160, 1)
	TakerPaysIssuer   = Default.MustRegister("TakerPaysIssuer", ST_HASH160, 2)
	TakerGetsCurrency = Default.MustRegister("TakerGetsCurrency", ST_HASH160, 3)
	TakerGetsIssuer   = Default.MustRegister("TakerGetsIssuer", ST_HASH160, 4)

	// path set
	Paths = Default.MustRegister("Paths", ST_PATHSET, 1)

	// vector of 256-bit
	Indexes    = Default.MustRegister("Indexes", ST_VECTOR256, 1)
	Hashes     = Default.MustRegister("Hashes", ST_VECTOR256, 2)
	Amendments = Default.MustRegister("Amendments", ST_VECTOR256, 3)
)

func init() {
	Default.Seal()
}
