package stobject

import (
	"strings"

	. "gopkg.in/check.v1"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

type CodecSuite struct{}

var _ = Suite(&CodecSuite{})

func (s *CodecSuite) TestCanonicalEncoding(c *C) {
	c.Check(b2h(encode(c, payment(c))), Equals, paymentHex)
}

func (s *CodecSuite) TestRoundTrip(c *C) {
	r := payment(c)
	decoded, err := Decode(h2b(paymentHex), nil)
	c.Assert(err, IsNil)
	c.Check(decoded.IsFree(), Equals, true)
	c.Check(decoded.Equal(r), Equals, true)
	c.Check(r.Equal(decoded), Equals, true)
	c.Check(b2h(encode(c, decoded)), Equals, paymentHex)

	seq, err := decoded.GetU32(sfield.Sequence)
	c.Assert(err, IsNil)
	c.Check(seq, Equals, uint32(1))
	dest, err := decoded.GetAccount(sfield.Destination)
	c.Assert(err, IsNil)
	c.Check(dest, Equals, oneAccount)
}

func (s *CodecSuite) TestOrderIndependence(c *C) {
	a := NewRecord(nil)
	c.Assert(a.SetU32(sfield.Sequence, 5), IsNil)
	c.Assert(a.SetU16(sfield.TransactionType, 3), IsNil)
	c.Assert(a.SetVL(sfield.Domain, []byte("example.com")), IsNil)

	b := NewRecord(nil)
	c.Assert(b.SetVL(sfield.Domain, []byte("example.com")), IsNil)
	c.Assert(b.SetU16(sfield.TransactionType, 3), IsNil)
	c.Assert(b.SetU32(sfield.Sequence, 5), IsNil)

	c.Check(b2h(encode(c, a)), Equals, b2h(encode(c, b)))
	c.Check(a.Equal(b), Equals, true)
	c.Check(a.FieldAt(0), Equals, sfield.Sequence)
	c.Check(b.FieldAt(0), Equals, sfield.Domain)
}

func (s *CodecSuite) TestAbsentFieldsAreSkipped(c *C) {
	r := payment(c)
	c.Assert(r.SetAbsent(sfield.Flags), IsNil)
	c.Check(r.Len(), Equals, 7)
	c.Check(strings.Contains(b2h(encode(c, r)), "2280000000"), Equals, false)

	without := payment(c)
	c.Check(without.Delete(sfield.Flags), Equals, true)
	c.Check(b2h(encode(c, r)), Equals, b2h(encode(c, without)))
	c.Check(r.Equal(without), Equals, true)
}

// A two field schema over a private registry: a required amount with
// code 1 and an optional memo with code 2.
func exampleSchema() (*sfield.Registry, *sfield.Field, *sfield.Field, *Template) {
	reg := sfield.NewRegistry()
	amount := reg.MustRegister("Amount", sfield.ST_AMOUNT, 1)
	memo := reg.MustRegister("Memo", sfield.ST_VL, 2)
	reg.Seal()
	return reg, amount, memo, MustTemplate("Example", Req(amount), Opt(memo))
}

func (s *CodecSuite) TestExampleSchema(c *C) {
	reg, amount, memo, tmpl := exampleSchema()
	d := &Decoder{Registry: reg, MaxDepth: DefaultMaxDepth}

	r := NewTypedRecord(tmpl, nil)
	c.Check(r.Len(), Equals, 2)
	c.Check(r.IsFieldPresent(amount), Equals, true)
	c.Check(r.IsFieldPresent(memo), Equals, false)
	c.Check(r.IsValidForType(), Equals, true)

	c.Assert(r.SetAmount(amount, drops(100)), IsNil)
	c.Check(b2h(encode(c, r)), Equals, "614000000000000064")

	decoded, err := d.Decode(encode(c, r), tmpl)
	c.Assert(err, IsNil)
	c.Check(decoded.Mode(), Equals, Typed)
	c.Check(decoded.IsFieldPresent(memo), Equals, false)
	got, err := decoded.GetAmount(amount)
	c.Assert(err, IsNil)
	c.Check(got.Drops(), Equals, int64(100))
	vl, err := decoded.GetVL(memo)
	c.Check(err, IsNil)
	c.Check(vl, IsNil)

	c.Assert(r.SetVL(memo, []byte("hi")), IsNil)
	c.Check(b2h(encode(c, r)), Equals, "614000000000000064"+"72026869")

	_, err = d.Decode(h2b("72026869"), tmpl)
	c.Check(err, ErrorIs, ErrSchemaViolation)
	c.Check(err, ErrorIs, ErrMalformedEncoding)

	_, err = d.Decode(h2b("614000000000000064"), nil)
	c.Check(err, IsNil)

	// the default registry knows code 2 of type 7 as MessageKey
	free, err := Decode(h2b("72026869"), nil)
	c.Assert(err, IsNil)
	c.Check(free.IsFieldPresent(sfield.MessageKey), Equals, true)
}

func (s *CodecSuite) TestDuplicateFields(c *C) {
	r := NewRecord(nil)
	_, err := r.Append(sfield.Sequence, UInt32(1))
	c.Assert(err, IsNil)
	_, err = r.Append(sfield.Sequence, UInt32(2))
	c.Assert(err, IsNil)
	_, err = r.Bytes()
	c.Check(err, ErrorIs, ErrDuplicateField)

	_, err = Decode(h2b("24000000012400000002"), nil)
	c.Check(err, ErrorIs, ErrMalformedEncoding)
	c.Check(err, ErrorIs, ErrDuplicateField)
}

func (s *CodecSuite) TestUnknownField(c *C) {
	// UInt32 with code 200 is not registered
	_, err := Decode(h2b("20C800000001"), nil)
	c.Check(err, ErrorIs, ErrUnknownField)
}

func (s *CodecSuite) TestMalformed(c *C) {
	for _, t := range []struct {
		hex   string
		cause error
	}{
		{"240000", serialize.ErrShortRead},
		{"7305AABB", serialize.ErrShortRead},
		{"81130000000000000000000000000000000000000000", serialize.ErrBadLength},
		{"0101", serialize.ErrNonCanonicalFieldID},
		{"134000000000000000", nil},
		{"F1", nil},
		{"E1", nil},
		{"F9EA7C0101", nil},
		{"F92400000001F1", nil},
		{"610000000000000000", ErrNonCanonicalZero},
		{"01130000", nil},
	} {
		_, err := Decode(h2b(t.hex), nil)
		c.Check(err, ErrorIs, ErrMalformedEncoding, Commentf(t.hex))
		if t.cause != nil {
			c.Check(err, ErrorIs, t.cause, Commentf(t.hex))
		}
	}
}

func nested(c *C, levels int) *Record {
	inner := NewRecord(nil)
	c.Assert(inner.SetU32(sfield.Sequence, 7), IsNil)
	for i := 0; i < levels; i++ {
		outer := NewRecord(nil)
		c.Assert(outer.SetObject(sfield.FinalFields, inner), IsNil)
		inner = outer
	}
	return inner
}

func (s *CodecSuite) TestDepthBound(c *C) {
	r, err := Decode(encode(c, nested(c, DefaultMaxDepth)), nil)
	c.Assert(err, IsNil)
	c.Check(r.Equal(nested(c, DefaultMaxDepth)), Equals, true)

	_, err = Decode(encode(c, nested(c, DefaultMaxDepth+1)), nil)
	c.Check(err, ErrorIs, ErrDepthExceeded)

	d := NewDecoder()
	d.MaxDepth = 2
	_, err = d.Decode(encode(c, nested(c, 3)), nil)
	c.Check(err, ErrorIs, ErrDepthExceeded)
	_, err = d.Decode(encode(c, nested(c, 2)), nil)
	c.Check(err, IsNil)
}

func memo(c *C, typ, data string) *Record {
	m := NewRecord(sfield.Memo)
	c.Assert(m.SetVL(sfield.MemoType, []byte(typ)), IsNil)
	c.Assert(m.SetVL(sfield.MemoData, []byte(data)), IsNil)
	return m
}

func (s *CodecSuite) TestArrays(c *C) {
	r := NewRecord(nil)
	c.Assert(r.SetArray(sfield.Memos, Array{memo(c, "a", "b"), memo(c, "c", "d")}), IsNil)
	b := encode(c, r)
	c.Check(b2h(b), Equals, "F9"+"EA7C01617D0162E1"+"EA7C01637D0164E1"+"F1")

	decoded, err := Decode(b, nil)
	c.Assert(err, IsNil)
	c.Check(decoded.Equal(r), Equals, true)
	memos, err := decoded.GetArray(sfield.Memos)
	c.Assert(err, IsNil)
	c.Assert(memos, HasLen, 2)
	c.Check(memos[0].Name(), Equals, sfield.Memo)
	c.Check(memos[0].Template(), Equals, MemoTemplate)
	data, err := memos[1].GetVL(sfield.MemoData)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "d")

	empty := NewRecord(nil)
	c.Assert(empty.SetArray(sfield.Memos, Array{}), IsNil)
	c.Check(b2h(encode(c, empty)), Equals, "F9F1")
	back, err := Decode(h2b("F9F1"), nil)
	c.Assert(err, IsNil)
	c.Check(back.Equal(empty), Equals, true)
}

func (s *CodecSuite) TestArrayElementsMustBeObjects(c *C) {
	r := NewRecord(nil)
	c.Assert(r.SetArray(sfield.Memos, Array{NewRecord(sfield.Generic)}), IsNil)
	_, err := r.Bytes()
	c.Check(err, ErrorIs, ErrTypeMismatch)
}

func (s *CodecSuite) TestPathSet(c *C) {
	issuer := oneAccount
	ps := PathSet{
		{{Account: &rootAccount}},
		{{Currency: &usd, Issuer: &issuer}, {Account: &rootAccount}},
	}
	r := NewRecord(nil)
	c.Assert(r.SetPathSet(sfield.Paths, ps), IsNil)
	b := encode(c, r)
	root := "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	c.Check(b2h(b), Equals, "0112"+
		"01"+root+
		"FF"+
		"30"+"0000000000000000000000005553440000000000"+"0000000000000000000000000000000000000001"+
		"01"+root+
		"00")

	decoded, err := Decode(b, nil)
	c.Assert(err, IsNil)
	got, err := decoded.GetPathSet(sfield.Paths)
	c.Assert(err, IsNil)
	c.Check(got.Equal(ps), Equals, true)
	c.Check(got[1][0].String(), Equals, "USD/"+oneAccount.Text())

	_, err = Decode(h2b("0112FF00"), nil)
	c.Check(err, ErrorIs, ErrMalformedEncoding)
	_, err = Decode(h2b("011202"), nil)
	c.Check(err, ErrorIs, ErrMalformedEncoding)
}

func (s *CodecSuite) TestVector256(c *C) {
	h1, err := NewHash256("B8244D028981D693AF7B456AF8EFA4CAD63D282E19FF14942C246E50D9351D22")
	c.Assert(err, IsNil)
	r := NewRecord(nil)
	c.Assert(r.SetV256(sfield.Indexes, Vector256{h1, {}}), IsNil)
	b := encode(c, r)
	c.Check(b2h(b[:3]), Equals, "011340")
	decoded, err := Decode(b, nil)
	c.Assert(err, IsNil)
	c.Check(decoded.Equal(r), Equals, true)

	_, err = Decode(h2b("011301AA"), nil)
	c.Check(err, ErrorIs, serialize.ErrBadLength)
}

func (s *CodecSuite) TestVLWrapped(c *C) {
	sr := serialize.NewSerializer()
	c.Assert(payment(c).SerializeVL(sr), IsNil)
	c.Check(sr.Bytes()[0], Equals, byte(len(paymentHex)/2))
	r, err := NewDecoder().DecodeVL(serialize.NewSerialIter(sr.Bytes()), nil)
	c.Assert(err, IsNil)
	c.Check(r.Equal(payment(c)), Equals, true)
}
