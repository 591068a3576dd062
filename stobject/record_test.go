package stobject

import (
	. "gopkg.in/check.v1"

	"github.com/anyswap/stobject/sfield"
)

type RecordSuite struct{}

var _ = Suite(&RecordSuite{})

type sample struct {
	field *sfield.Field
	value Value
}

func samples() []sample {
	return []sample{
		{sfield.TickSize, UInt8(1)},
		{sfield.SignerWeight, UInt16(1)},
		{sfield.Sequence, UInt32(1)},
		{sfield.BookNode, UInt64(1)},
		{sfield.EmailHash, Hash128{1}},
		{sfield.TakerPaysCurrency, Hash160{1}},
		{sfield.LedgerHash, Hash256{1}},
		{sfield.Amount, drops(1)},
		{sfield.Domain, Blob("x")},
		{sfield.Account, rootAccount},
		{sfield.FinalFields, NewRecord(sfield.FinalFields)},
		{sfield.Memos, Array{}},
		{sfield.Paths, PathSet{{{Account: &rootAccount}}}},
		{sfield.Indexes, Vector256{{1}}},
	}
}

var getters = map[sfield.SerializedType]func(r *Record, f *sfield.Field) error{
	sfield.ST_UINT8:     func(r *Record, f *sfield.Field) error { _, err := r.GetU8(f); return err },
	sfield.ST_UINT16:    func(r *Record, f *sfield.Field) error { _, err := r.GetU16(f); return err },
	sfield.ST_UINT32:    func(r *Record, f *sfield.Field) error { _, err := r.GetU32(f); return err },
	sfield.ST_UINT64:    func(r *Record, f *sfield.Field) error { _, err := r.GetU64(f); return err },
	sfield.ST_HASH128:   func(r *Record, f *sfield.Field) error { _, err := r.GetH128(f); return err },
	sfield.ST_HASH160:   func(r *Record, f *sfield.Field) error { _, err := r.GetH160(f); return err },
	sfield.ST_HASH256:   func(r *Record, f *sfield.Field) error { _, err := r.GetH256(f); return err },
	sfield.ST_AMOUNT:    func(r *Record, f *sfield.Field) error { _, err := r.GetAmount(f); return err },
	sfield.ST_VL:        func(r *Record, f *sfield.Field) error { _, err := r.GetVL(f); return err },
	sfield.ST_ACCOUNT:   func(r *Record, f *sfield.Field) error { _, err := r.GetAccount(f); return err },
	sfield.ST_OBJECT:    func(r *Record, f *sfield.Field) error { _, err := r.GetObject(f); return err },
	sfield.ST_ARRAY:     func(r *Record, f *sfield.Field) error { _, err := r.GetArray(f); return err },
	sfield.ST_PATHSET:   func(r *Record, f *sfield.Field) error { _, err := r.GetPathSet(f); return err },
	sfield.ST_VECTOR256: func(r *Record, f *sfield.Field) error { _, err := r.GetV256(f); return err },
}

func (s *RecordSuite) TestTypeMismatch(c *C) {
	r := NewRecord(nil)
	for _, smp := range samples() {
		c.Assert(r.Set(smp.field, smp.value), IsNil)
	}
	c.Assert(getters, HasLen, len(samples()))
	for _, smp := range samples() {
		for typ, get := range getters {
			err := get(r, smp.field)
			if typ == smp.field.Type {
				c.Check(err, IsNil, Commentf("%s as %s", smp.field, typ))
			} else {
				c.Check(err, ErrorIs, ErrTypeMismatch, Commentf("%s as %s", smp.field, typ))
			}
		}
	}
}

func (s *RecordSuite) TestMissingAndAbsent(c *C) {
	r := NewRecord(nil)
	for typ, get := range getters {
		for _, smp := range samples() {
			if smp.field.Type == typ {
				c.Check(get(r, smp.field), ErrorIs, ErrFieldNotFound)
			}
		}
	}

	for _, smp := range samples() {
		_, err := r.Append(smp.field, NotPresent{})
		c.Assert(err, IsNil)
	}
	for _, smp := range samples() {
		c.Check(getters[smp.field.Type](r, smp.field), IsNil, Commentf("%s", smp.field))
	}
	amount, err := r.GetAmount(sfield.Amount)
	c.Assert(err, IsNil)
	c.Check(amount.IsNative(), Equals, true)
	c.Check(amount.IsZero(), Equals, true)
	obj, err := r.GetObject(sfield.FinalFields)
	c.Assert(err, IsNil)
	c.Check(obj.Name(), Equals, sfield.FinalFields)
	c.Check(obj.Len(), Equals, 0)
	c.Check(r.IsDefault(), Equals, true)
	b, err := r.Bytes()
	c.Assert(err, IsNil)
	c.Check(b, HasLen, 0)
}

func (s *RecordSuite) TestSetterTypeChecks(c *C) {
	r := NewRecord(nil)
	c.Check(r.SetU32(sfield.TransactionType, 1), ErrorIs, ErrTypeMismatch)
	c.Check(r.SetVL(sfield.Account, []byte{1}), ErrorIs, ErrTypeMismatch)
	_, err := r.Append(sfield.Fee, UInt64(10))
	c.Check(err, ErrorIs, ErrTypeMismatch)
	c.Check(r.Set(sfield.Fee, nil), ErrorIs, ErrTypeMismatch)
	c.Check(r.Len(), Equals, 0)
}

func (s *RecordSuite) TestCreateIfAbsent(c *C) {
	r := NewRecord(nil)
	c.Check(r.Assign(sfield.Sequence, UInt32(3), false), ErrorIs, ErrFieldNotFound)
	c.Check(r.Assign(sfield.Sequence, UInt32(3), true), IsNil)
	c.Check(r.Assign(sfield.Sequence, UInt32(4), false), IsNil)
	seq, err := r.GetU32(sfield.Sequence)
	c.Assert(err, IsNil)
	c.Check(seq, Equals, uint32(4))

	c.Assert(r.SetAbsent(sfield.Sequence), IsNil)
	c.Check(r.IsFieldPresent(sfield.Sequence), Equals, false)
	c.Check(r.Assign(sfield.Sequence, UInt32(5), false), IsNil)
	c.Check(r.IsFieldPresent(sfield.Sequence), Equals, true)
	c.Check(r.SetAbsent(sfield.Fee), ErrorIs, ErrFieldNotFound)
}

func (s *RecordSuite) TestSetPresent(c *C) {
	r := NewRecord(nil)
	v, err := r.SetPresent(sfield.Balance)
	c.Assert(err, IsNil)
	c.Check(v.Equal(drops(0)), Equals, true)
	c.Check(r.IsFieldPresent(sfield.Balance), Equals, true)

	c.Assert(r.SetAmount(sfield.Balance, drops(5)), IsNil)
	v, err = r.SetPresent(sfield.Balance)
	c.Assert(err, IsNil)
	c.Check(v.Equal(drops(5)), Equals, true)

	t := MustTemplate("T", Opt(sfield.Balance))
	typed := NewTypedRecord(t, nil)
	c.Check(typed.IsFieldPresent(sfield.Balance), Equals, false)
	_, err = typed.SetPresent(sfield.Balance)
	c.Assert(err, IsNil)
	c.Check(typed.IsFieldPresent(sfield.Balance), Equals, true)
	_, err = typed.SetPresent(sfield.Fee)
	c.Check(err, ErrorIs, ErrFieldNotFound)
}

func (s *RecordSuite) TestIndexing(c *C) {
	r := payment(c)
	c.Check(r.Len(), Equals, 7)
	c.Check(r.FieldIndex(sfield.Destination), Equals, 0)
	c.Check(r.FieldIndex(sfield.Flags), Equals, 6)
	c.Check(r.FieldIndex(sfield.Domain), Equals, -1)
	c.Check(r.FieldAt(1), Equals, sfield.TransactionType)
	c.Check(r.ValueAt(3).Equal(UInt32(1)), Equals, true)

	var names []string
	c.Assert(r.Each(func(f *sfield.Field, v Value) error {
		names = append(names, f.Name)
		return nil
	}), IsNil)
	c.Check(names, HasLen, 7)
	c.Check(names[0], Equals, "Destination")

	c.Check(r.DeleteAt(0), Equals, true)
	c.Check(r.DeleteAt(10), Equals, false)
	c.Check(r.Delete(sfield.Destination), Equals, false)
	c.Check(r.Len(), Equals, 6)
	c.Check(r.FieldIndex(sfield.TransactionType), Equals, 0)
}

func (s *RecordSuite) TestEquality(c *C) {
	a, b := payment(c), payment(c)
	c.Check(a.Equal(b), Equals, true)
	c.Check(a.IsEquivalent(b), Equals, true)
	c.Check(a.IsEquivalent(nil), Equals, false)
	c.Check(a.Equal(UInt32(1)), Equals, false)

	c.Assert(b.SetU32(sfield.Sequence, 2), IsNil)
	c.Check(a.Equal(b), Equals, false)

	b = payment(c)
	c.Assert(b.SetU32(sfield.SourceTag, 2), IsNil)
	c.Check(a.Equal(b), Equals, false)
	c.Check(b.Equal(a), Equals, false)

	c.Assert(b.SetAbsent(sfield.SourceTag), IsNil)
	c.Check(a.Equal(b), Equals, true)
}

func (s *RecordSuite) TestCloneIsDeep(c *C) {
	r := NewRecord(nil)
	inner, err := r.PeekObject(sfield.FinalFields)
	c.Assert(err, IsNil)
	c.Assert(inner.SetU32(sfield.Sequence, 1), IsNil)
	c.Assert(r.SetVL(sfield.Domain, []byte("abc")), IsNil)

	clone := r.Copy()
	c.Check(clone.Equal(r), Equals, true)
	peek, err := clone.PeekObject(sfield.FinalFields)
	c.Assert(err, IsNil)
	c.Assert(peek.SetU32(sfield.Sequence, 2), IsNil)
	c.Check(clone.Equal(r), Equals, false)

	orig, err := r.GetObject(sfield.FinalFields)
	c.Assert(err, IsNil)
	seq, err := orig.GetU32(sfield.Sequence)
	c.Assert(err, IsNil)
	c.Check(seq, Equals, uint32(1))

	vl, err := r.GetVL(sfield.Domain)
	c.Assert(err, IsNil)
	vl[0] = 'x'
	again, err := r.GetVL(sfield.Domain)
	c.Assert(err, IsNil)
	c.Check(string(again), Equals, "abc")
}

func (s *RecordSuite) TestPeekObject(c *C) {
	r := NewRecord(nil)
	_, err := r.PeekObject(sfield.Sequence)
	c.Check(err, ErrorIs, ErrTypeMismatch)

	obj, err := r.PeekObject(sfield.NewFields)
	c.Assert(err, IsNil)
	c.Check(obj.Name(), Equals, sfield.NewFields)
	c.Assert(obj.SetU32(sfield.Sequence, 9), IsNil)
	c.Check(b2h(encode(c, r)), Equals, "E8"+"2400000009"+"E1")

	typed := NewTypedRecord(MustTemplate("T", Opt(sfield.Sequence)), nil)
	_, err = typed.PeekObject(sfield.NewFields)
	c.Check(err, ErrorIs, ErrFieldNotFound)
}

func (s *RecordSuite) TestHasMatchingEntry(c *C) {
	r := payment(c)
	c.Check(r.HasMatchingEntry(sfield.Sequence, UInt32(1)), Equals, true)
	c.Check(r.HasMatchingEntry(sfield.Sequence, UInt32(2)), Equals, false)
	c.Check(r.HasMatchingEntry(sfield.Sequence, UInt16(1)), Equals, false)
	c.Check(r.HasMatchingEntry(sfield.SourceTag, UInt32(0)), Equals, false)
	c.Assert(r.SetAbsent(sfield.Sequence), IsNil)
	c.Check(r.HasMatchingEntry(sfield.Sequence, NotPresent{}), Equals, false)
}

func (s *RecordSuite) TestFlags(c *C) {
	r := NewRecord(nil)
	c.Check(r.Flags(), Equals, uint32(0))
	c.Check(r.IsFlag(0x1), Equals, false)
	c.Check(r.SetFlag(0x1), Equals, true)
	c.Check(r.SetFlag(0x80000000), Equals, true)
	c.Check(r.Flags(), Equals, uint32(0x80000001))
	c.Check(r.IsFlag(0x80000001), Equals, true)
	c.Check(r.ClearFlag(0x1), Equals, true)
	c.Check(r.IsFlag(0x1), Equals, false)
	c.Check(r.Flags(), Equals, uint32(0x80000000))

	typed := NewTypedRecord(MustTemplate("NoFlags", Opt(sfield.Sequence)), nil)
	c.Check(typed.SetFlag(0x1), Equals, false)
}

type TemplateSuite struct{}

var _ = Suite(&TemplateSuite{})

func (s *TemplateSuite) TestNewTemplate(c *C) {
	_, err := NewTemplate("Dup", Req(sfield.Account), Opt(sfield.Account))
	c.Check(err, ErrorIs, ErrDuplicateField)

	t := MustTemplate("T", Opt(sfield.Domain), Req(sfield.Account), Req(sfield.Sequence))
	c.Check(t.Name(), Equals, "T")
	c.Check(t.Len(), Equals, 3)
	elems := t.Elements()
	c.Check(elems[0].Field, Equals, sfield.Sequence)
	c.Check(elems[1].Field, Equals, sfield.Domain)
	c.Check(elems[2].Field, Equals, sfield.Account)
	c.Check(t.IsFieldAllowed(sfield.Domain), Equals, true)
	c.Check(t.IsFieldAllowed(sfield.Fee), Equals, false)
	c.Check(t.Index(sfield.Account), Equals, 2)
	style, ok := t.Style(sfield.Domain)
	c.Check(ok, Equals, true)
	c.Check(style, Equals, Optional)

	ext, err := t.Extend("T2", Opt(sfield.Fee))
	c.Assert(err, IsNil)
	c.Check(ext.Len(), Equals, 4)
	c.Check(t.Len(), Equals, 3)

	c.Check(func() { MustTemplate("Dup", Req(sfield.Fee), Req(sfield.Fee)) }, PanicMatches, ".*duplicate field.*")
}

func (s *TemplateSuite) TestValidate(c *C) {
	t := MustTemplate("T", Req(sfield.Account), Opt(sfield.Sequence))

	r := NewRecord(nil)
	err := t.Validate(r)
	c.Check(err, ErrorIs, ErrSchemaViolation)
	c.Check(err, ErrorIs, ErrFieldNotFound)
	verr, ok := err.(*ValidationError)
	c.Assert(ok, Equals, true)
	c.Check(verr.Field, Equals, sfield.Account)

	c.Assert(r.SetAccount(sfield.Account, rootAccount), IsNil)
	c.Check(t.Validate(r), IsNil)

	c.Assert(r.SetU32(sfield.Flags, 0), IsNil)
	err = t.Validate(r)
	c.Check(err, ErrorIs, ErrSchemaViolation)
	c.Check(err, ErrorIs, ErrFieldNotFound)
	c.Check(err, Not(ErrorIs), ErrUnknownField)

	c.Assert(r.Delete(sfield.Flags), Equals, true)
	_, err = r.Append(sfield.Sequence, UInt32(1))
	c.Assert(err, IsNil)
	_, err = r.Append(sfield.Sequence, UInt32(2))
	c.Assert(err, IsNil)
	c.Check(t.Validate(r), ErrorIs, ErrDuplicateField)

	c.Assert(r.SetAbsent(sfield.Account), IsNil)
	c.Assert(r.DeleteAt(r.Len()-1), Equals, true)
	c.Check(t.Validate(r), ErrorIs, ErrSchemaViolation)
}

func (s *TemplateSuite) TestSetTemplate(c *C) {
	t := MustTemplate("T", Req(sfield.Account), Opt(sfield.Sequence), Opt(sfield.Domain))

	bad := NewRecord(nil)
	c.Assert(bad.SetU32(sfield.Sequence, 1), IsNil)
	c.Assert(bad.SetVL(sfield.Domain, []byte("d")), IsNil)
	c.Check(bad.SetTemplate(t), ErrorIs, ErrSchemaViolation)
	c.Check(bad.IsFree(), Equals, true)
	c.Check(bad.Len(), Equals, 2)
	c.Check(bad.FieldAt(0), Equals, sfield.Sequence)
	c.Check(bad.IsValidForType(), Equals, false)

	r := NewRecord(nil)
	c.Assert(r.SetAccount(sfield.Account, rootAccount), IsNil)
	c.Assert(r.SetU32(sfield.Sequence, 1), IsNil)
	before := encode(c, r)
	c.Assert(r.SetTemplate(t), IsNil)
	c.Check(r.Mode(), Equals, Typed)
	c.Check(r.Template(), Equals, t)
	c.Check(r.Len(), Equals, 3)
	c.Check(r.FieldAt(0), Equals, sfield.Sequence)
	c.Check(r.FieldAt(1), Equals, sfield.Domain)
	c.Check(r.FieldAt(2), Equals, sfield.Account)
	c.Check(r.IsFieldPresent(sfield.Domain), Equals, false)
	c.Check(r.IsValidForType(), Equals, true)
	c.Check(b2h(encode(c, r)), Equals, b2h(before))

	_, err := r.Append(sfield.Fee, drops(1))
	c.Check(err, ErrorIs, ErrSchemaViolation)
	_, err = r.Append(sfield.Sequence, UInt32(2))
	c.Check(err, ErrorIs, ErrDuplicateField)
	c.Check(r.Set(sfield.Fee, drops(1)), ErrorIs, ErrSchemaViolation)
	c.Check(r.SetAmount(sfield.Fee, drops(1)), ErrorIs, ErrFieldNotFound)

	c.Assert(r.Delete(sfield.Domain), Equals, true)
	c.Check(r.IsValidForType(), Equals, false)
	c.Check(r.SetVL(sfield.Domain, []byte("d")), ErrorIs, ErrFieldNotFound)
	_, err = r.Append(sfield.Domain, Blob("d"))
	c.Check(err, IsNil)

	r.ClearTemplate()
	c.Check(r.IsFree(), Equals, true)
	c.Check(r.Template(), IsNil)
	c.Check(r.Len(), Equals, 3)
}

func (s *TemplateSuite) TestTypedDefaults(c *C) {
	t := MustTemplate("T", Req(sfield.Account), Req(sfield.Fee), Opt(sfield.Sequence))
	r := NewTypedRecord(t, sfield.FinalFields)
	c.Check(r.Name(), Equals, sfield.FinalFields)
	c.Check(r.IsFieldPresent(sfield.Account), Equals, true)
	c.Check(r.IsFieldPresent(sfield.Fee), Equals, true)
	c.Check(r.IsFieldPresent(sfield.Sequence), Equals, false)
	c.Check(t.Validate(r), IsNil)
	c.Check(b2h(encode(c, r)), Equals, "684000000000000000"+"8114"+"0000000000000000000000000000000000000000")
}

func (s *RecordSuite) TestNilArrayElement(c *C) {
	memo := NewRecord(sfield.Memo)
	c.Assert(memo.SetVL(sfield.MemoData, []byte("x")), IsNil)

	r := NewRecord(nil)
	c.Check(r.SetArray(sfield.Memos, Array{nil}), ErrorIs, ErrTypeMismatch)
	c.Check(r.Set(sfield.Memos, Array{memo, nil}), ErrorIs, ErrTypeMismatch)
	_, err := r.Append(sfield.Memos, Array{nil})
	c.Check(err, ErrorIs, ErrTypeMismatch)
	c.Check(r.Assign(sfield.Memos, Array{nil}, true), ErrorIs, ErrTypeMismatch)
	c.Check(r.Len(), Equals, 0)

	c.Assert(r.SetArray(sfield.Memos, Array{memo}), IsNil)
	_, err = r.Bytes()
	c.Check(err, IsNil)
}

func (s *RecordSuite) TestEqualNilRecord(c *C) {
	r := payment(c)
	c.Check(r.Equal((*Record)(nil)), Equals, false)
	c.Check(r.Equal(nil), Equals, false)
	c.Check(r.IsEquivalent(nil), Equals, false)
}

func (s *TemplateSuite) TestRebindDropsPlaceholders(c *C) {
	a := MustTemplate("A", Req(sfield.Sequence), Opt(sfield.Fee))
	b := MustTemplate("B", Req(sfield.Sequence))

	r := NewTypedRecord(a, nil)
	c.Assert(r.SetU32(sfield.Sequence, 7), IsNil)
	c.Check(r.IsFieldPresent(sfield.Fee), Equals, false)
	c.Assert(r.SetTemplate(b), IsNil)
	c.Check(r.Template(), Equals, b)
	c.Check(r.Len(), Equals, 1)
	c.Check(r.FieldIndex(sfield.Fee), Equals, -1)
	c.Check(r.IsValidForType(), Equals, true)

	r = NewTypedRecord(a, nil)
	c.Assert(r.SetU32(sfield.Sequence, 7), IsNil)
	c.Assert(r.SetAmount(sfield.Fee, drops(10)), IsNil)
	err := r.SetTemplate(b)
	c.Check(err, ErrorIs, ErrSchemaViolation)
	c.Check(err, ErrorIs, ErrFieldNotFound)
	c.Check(r.Template(), Equals, a)
}
