package stobject

import (
	. "gopkg.in/check.v1"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

type AmountSuite struct{}

var _ = Suite(&AmountSuite{})

func amountHex(c *C, a Amount) string {
	s := serialize.NewSerializer()
	c.Assert(a.Serialize(s), IsNil)
	return b2h(s.Bytes())
}

func issued(c *C, n int64, exp int) Amount {
	a, err := NewIssuedAmount(n, exp, usd, oneAccount)
	c.Assert(err, IsNil)
	return a
}

const usdHex = "0000000000000000000000005553440000000000"
const oneHex = "0000000000000000000000000000000000000001"

func (s *AmountSuite) TestNative(c *C) {
	c.Check(amountHex(c, drops(0)), Equals, "4000000000000000")
	c.Check(amountHex(c, drops(1000)), Equals, "40000000000003E8")
	c.Check(amountHex(c, drops(-1)), Equals, "0000000000000001")
	c.Check(drops(-1).Drops(), Equals, int64(-1))
	c.Check(drops(1000).Text(), Equals, "1000")

	_, err := NewNativeAmount(int64(maxNative) + 1)
	c.Check(err, ErrorIs, ErrAmountOverflow)
}

func (s *AmountSuite) TestIssued(c *C) {
	one := issued(c, 1, 0)
	c.Check(one.Mantissa(), Equals, uint64(1000000000000000))
	c.Check(one.Exponent(), Equals, -15)
	c.Check(amountHex(c, one), Equals, "D4838D7EA4C68000"+usdHex+oneHex)
	c.Check(one.ValueText(), Equals, "1")

	zero := issued(c, 0, 10)
	c.Check(zero.IsZero(), Equals, true)
	c.Check(amountHex(c, zero), Equals, "8000000000000000"+usdHex+oneHex)

	c.Check(issued(c, 15, -1).ValueText(), Equals, "1.5")
	c.Check(issued(c, -15, -1).ValueText(), Equals, "-1.5")
	c.Check(issued(c, 1, 20).ValueText(), Equals, "1e20")
	c.Check(issued(c, 1, -30).ValueText(), Equals, "1e-30")
	c.Check(issued(c, 15, -1).Text(), Equals, "1.5/USD/"+oneAccount.Text())
	c.Check(issued(c, 1, -200).IsZero(), Equals, true)
	c.Check(issued(c, 12345678901234567, 0).Mantissa(), Equals, uint64(1234567890123456))

	_, err := NewIssuedAmount(1, 100, usd, oneAccount)
	c.Check(err, ErrorIs, ErrAmountOverflow)
	_, err = NewIssuedAmount(1, 0, Currency{}, oneAccount)
	c.Check(err, ErrorIs, ErrInvalidCurrency)
}

func (s *AmountSuite) TestRoundTrip(c *C) {
	r := NewRecord(nil)
	c.Assert(r.SetAmount(sfield.LimitAmount, issued(c, -15, -1)), IsNil)
	c.Assert(r.SetAmount(sfield.Fee, drops(12)), IsNil)
	c.Assert(r.SetAmount(sfield.Balance, issued(c, 0, 0)), IsNil)
	decoded, err := Decode(encode(c, r), nil)
	c.Assert(err, IsNil)
	c.Check(decoded.Equal(r), Equals, true)
	limit, err := decoded.GetAmount(sfield.LimitAmount)
	c.Assert(err, IsNil)
	c.Check(limit.IsNegative(), Equals, true)
	c.Check(limit.Currency(), Equals, usd)
	c.Check(limit.Issuer(), Equals, oneAccount)
}

func (s *AmountSuite) TestDecodeRejects(c *C) {
	for _, t := range []struct {
		hex   string
		cause error
	}{
		// mantissa below the canonical range
		{"638000000000000001" + usdHex + oneHex, ErrAmountOverflow},
		// zero with a non zero exponent
		{"63C000000000000000" + usdHex + oneHex, ErrAmountOverflow},
		// issued amount in the native currency
		{"63D4838D7EA4C68000" + "0000000000000000000000000000000000000000" + oneHex, ErrInvalidCurrency},
		// truncated issuer
		{"63D4838D7EA4C68000" + usdHex + "00", serialize.ErrShortRead},
	} {
		_, err := Decode(h2b(t.hex), nil)
		c.Check(err, ErrorIs, ErrMalformedEncoding, Commentf(t.hex))
		c.Check(err, ErrorIs, t.cause, Commentf(t.hex))
	}
}

func (s *AmountSuite) TestCurrency(c *C) {
	c.Check(usd.String(), Equals, "USD")
	c.Check(Currency{}.String(), Equals, "XRP")
	xrp, err := NewCurrency("XRP")
	c.Assert(err, IsNil)
	c.Check(xrp.IsNative(), Equals, true)
	hexCode := "0158415500000000C1F76FF6ECB0BAC600000000"
	cur, err := NewCurrency(hexCode)
	c.Assert(err, IsNil)
	c.Check(cur.String(), Equals, hexCode)
	_, err = NewCurrency("TOOLONG")
	c.Check(err, ErrorIs, ErrInvalidCurrency)
}

func (s *AmountSuite) TestJSON(c *C) {
	c.Check(drops(25).JSON(), Equals, "25")
	m, ok := issued(c, 15, -1).JSON().(map[string]interface{})
	c.Assert(ok, Equals, true)
	c.Check(m["value"], Equals, "1.5")
	c.Check(m["currency"], Equals, "USD")
	c.Check(m["issuer"], Equals, oneAccount.Text())
}
