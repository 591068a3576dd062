package stobject

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/juju/testing/checkers"
	. "gopkg.in/check.v1"

	"github.com/anyswap/stobject/sfield"
)

type FormatsSuite struct{}

var _ = Suite(&FormatsSuite{})

func signedPayment(c *C) *Record {
	r := payment(c)
	c.Assert(r.SetVL(sfield.SigningPubKey, h2b("ED"+strings.Repeat("01", 32))), IsNil)
	return r
}

func (s *FormatsSuite) TestNewFromFormat(c *C) {
	r, err := TxFormats.New("Payment")
	c.Assert(err, IsNil)
	c.Check(r.Mode(), Equals, Typed)
	tt, err := r.GetU16(sfield.TransactionType)
	c.Assert(err, IsNil)
	c.Check(tt, Equals, uint16(PAYMENT))
	c.Check(r.IsFieldPresent(sfield.Destination), Equals, true)
	c.Check(r.IsFieldPresent(sfield.SendMax), Equals, false)
	c.Check(r.SetU32(sfield.Sequence, 4), IsNil)
	c.Check(r.SetU32(sfield.OfferSequence, 4), ErrorIs, ErrFieldNotFound)

	_, err = TxFormats.New("Nope")
	c.Check(err, ErrorIs, ErrUnknownFormat)
	c.Check(TxFormats.Names(), HasLen, 10)
	f, ok := LedgerFormats.ByName("AccountRoot")
	c.Assert(ok, Equals, true)
	c.Check(f.Code, Equals, uint16(ACCOUNT_ROOT))
}

func (s *FormatsSuite) TestDecodeTransaction(c *C) {
	r := signedPayment(c)
	tx, err := DecodeTransaction(encode(c, r))
	c.Assert(err, IsNil)
	format, _ := TxFormats.ByName("Payment")
	c.Check(tx.Template(), Equals, format.Template)
	c.Check(tx.IsValidForType(), Equals, true)
	c.Check(tx.Equal(r), Equals, true)

	// missing the required SigningPubKey
	_, err = DecodeTransaction(h2b(paymentHex))
	c.Check(err, ErrorIs, ErrSchemaViolation)

	c.Assert(r.SetU16(sfield.TransactionType, 99), IsNil)
	_, err = DecodeTransaction(encode(c, r))
	c.Check(err, ErrorIs, ErrUnknownFormat)

	_, err = DecodeTransaction(h2b("2400000001"))
	c.Check(err, ErrorIs, ErrMalformedEncoding)
	c.Check(err, ErrorIs, ErrFieldNotFound)
}

func (s *FormatsSuite) TestDecodeLedgerEntry(c *C) {
	r, err := LedgerFormats.New("AccountRoot")
	c.Assert(err, IsNil)
	c.Assert(r.SetAccount(sfield.Account, rootAccount), IsNil)
	c.Assert(r.SetAmount(sfield.Balance, drops(100000000000000000)), IsNil)
	c.Assert(r.SetU32(sfield.Sequence, 1), IsNil)
	entry, err := DecodeLedgerEntry(encode(c, r))
	c.Assert(err, IsNil)
	c.Check(entry.Equal(r), Equals, true)
	c.Check(strings.HasPrefix(entry.Text(), "{LedgerEntryType = AccountRoot, "), Equals, true)
}

func (s *FormatsSuite) TestInnerTemplates(c *C) {
	c.Check(InnerTemplate(sfield.Memo), Equals, MemoTemplate)
	c.Check(InnerTemplate(sfield.FinalFields), IsNil)

	bad := NewRecord(sfield.SignerEntry)
	c.Assert(bad.SetAccount(sfield.Account, rootAccount), IsNil)
	r := NewRecord(nil)
	c.Assert(r.SetArray(sfield.SignerEntries, Array{bad}), IsNil)
	_, err := Decode(encode(c, r), nil)
	c.Check(err, ErrorIs, ErrSchemaViolation)

	d := NewDecoder()
	d.Inner = nil
	_, err = d.Decode(encode(c, r), nil)
	c.Check(err, IsNil)
}

func (s *FormatsSuite) TestText(c *C) {
	r := payment(c)
	text := r.Text()
	c.Check(strings.HasPrefix(text, "{TransactionType = Payment, Flags = 2147483648, Sequence = 1, Amount = 1000, Fee = 10, "), Equals, true)
	c.Check(strings.HasSuffix(text, "Destination = "+oneAccount.Text()+"}"), Equals, true)
	c.Check(strings.HasPrefix(r.FullText(), "Generic = {"), Equals, true)

	m := NewRecord(nil)
	c.Assert(m.SetArray(sfield.Memos, Array{memo(c, "a", "b")}), IsNil)
	c.Check(m.Text(), Equals, "{Memos = [Memo = {MemoType = 61, MemoData = 62}]}")
}

func (s *FormatsSuite) TestJSON(c *C) {
	r := payment(c)
	c.Assert(r.SetArray(sfield.Memos, Array{memo(c, "a", "b")}), IsNil)
	c.Assert(r.SetU64(sfield.OwnerNode, 1), IsNil)
	b, err := json.Marshal(r)
	c.Assert(err, IsNil)

	var obtained map[string]interface{}
	c.Assert(json.Unmarshal(b, &obtained), IsNil)
	expected := map[string]interface{}{
		"TransactionType": "Payment",
		"Flags":           float64(2147483648),
		"Sequence":        float64(1),
		"Amount":          "1000",
		"Fee":             "10",
		"Account":         rootAccount.Text(),
		"Destination":     oneAccount.Text(),
		"OwnerNode":       "0000000000000001",
		"Memos": []interface{}{
			map[string]interface{}{
				"Memo": map[string]interface{}{"MemoType": "61", "MemoData": "62"},
			},
		},
	}
	c.Check(obtained, checkers.DeepEquals, expected)
}

func (s *FormatsSuite) TestEveryTypeHasFormat(c *C) {
	for _, tt := range []TransactionType{
		PAYMENT, ESCROW_CREATE, ESCROW_FINISH, ACCOUNT_SET, ESCROW_CANCEL,
		SET_REGULAR_KEY, OFFER_CREATE, OFFER_CANCEL, SIGNER_LIST_SET, TRUST_SET,
	} {
		_, ok := TxFormats.ByCode(uint16(tt))
		c.Check(ok, Equals, true, Commentf("transaction type %d", tt))
	}
	for _, lt := range []LedgerEntryType{ACCOUNT_ROOT, OFFER, RIPPLE_STATE, ESCROW, SIGNER_LIST} {
		_, ok := LedgerFormats.ByCode(uint16(lt))
		c.Check(ok, Equals, true, Commentf("ledger entry type %d", lt))
	}
	c.Check(LedgerFormats.Names(), HasLen, 5)
}
