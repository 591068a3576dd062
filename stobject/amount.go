package stobject

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

const (
	minOffset  int = -96
	maxOffset  int = 80
	minValue       = uint64(1000000000000000)
	maxValue       = uint64(9999999999999999)
	maxNative      = uint64(100000000000000000)
	notNative      = uint64(0x8000000000000000)
	positive       = uint64(0x4000000000000000)
	zeroOffset     = -100
)

// amount errors
var (
	ErrAmountOverflow   = errors.New("amount out of range")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrNonCanonicalZero = errors.New("negative zero is not canonical")
)

// Currency is a 160 bit currency code. The all zero code is the native
// currency.
type Currency [20]byte

// NewCurrency accepts a three letter code or a 40 character hex string.
func NewCurrency(s string) (Currency, error) {
	var c Currency
	switch len(s) {
	case 3:
		if s == "XRP" {
			return c, nil
		}
		copy(c[12:], s)
		return c, nil
	case 40:
		b, err := hex.DecodeString(s)
		if err != nil {
			return c, fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
		}
		copy(c[:], b)
		return c, nil
	default:
		return c, fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
	}
}

// IsNative reports whether c is the all zero native code.
func (c Currency) IsNative() bool {
	return c == Currency{}
}

func (c Currency) isStandard() bool {
	for i, b := range c {
		if (i < 12 || i > 14) && b != 0 {
			return false
		}
		if i >= 12 && i <= 14 && (b < 0x20 || b > 0x7e) {
			return false
		}
	}
	return true
}

func (c Currency) String() string {
	switch {
	case c.IsNative():
		return "XRP"
	case c.isStandard():
		return string(c[12:15])
	default:
		return b2h(c[:])
	}
}

// Amount is either a native quantity in drops or an issued quantity
// expressed as mantissa*10^exponent of a currency held at an issuer.
// Issued amounts are always kept canonical.
type Amount struct {
	native   bool
	negative bool
	mantissa uint64
	exponent int
	currency Currency
	issuer   AccountID
}

// NewNativeAmount returns an amount of n drops.
func NewNativeAmount(n int64) (Amount, error) {
	a := Amount{native: true, negative: n < 0, mantissa: abs(n)}
	return a, a.canonicalise()
}

// NewIssuedAmount returns n*10^exponent of currency held at issuer.
func NewIssuedAmount(n int64, exponent int, currency Currency, issuer AccountID) (Amount, error) {
	if currency.IsNative() {
		return Amount{}, fmt.Errorf("%w: issued amount with native currency", ErrInvalidCurrency)
	}
	a := Amount{negative: n < 0, mantissa: abs(n), exponent: exponent, currency: currency, issuer: issuer}
	return a, a.canonicalise()
}

func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

func (a *Amount) canonicalise() error {
	if a.native {
		if a.mantissa == 0 {
			a.negative = false
		}
		a.exponent = 0
		if a.mantissa > maxNative {
			return fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
		}
		return nil
	}
	if a.mantissa == 0 {
		a.exponent = zeroOffset
		a.negative = false
		return nil
	}
	for a.mantissa < minValue && a.exponent > minOffset {
		a.mantissa *= 10
		a.exponent--
	}
	for a.mantissa > maxValue {
		if a.exponent >= maxOffset {
			return fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
		}
		a.mantissa /= 10
		a.exponent++
	}
	if a.exponent < minOffset || a.mantissa < minValue {
		a.mantissa = 0
		a.exponent = zeroOffset
		a.negative = false
	}
	if a.exponent > maxOffset {
		return fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
	}
	return nil
}

func (a Amount) IsNative() bool            { return a.native }
func (a Amount) IsNegative() bool          { return a.negative }
func (a Amount) IsZero() bool              { return a.mantissa == 0 }
func (a Amount) Mantissa() uint64          { return a.mantissa }
func (a Amount) Exponent() int             { return a.exponent }
func (a Amount) Currency() Currency        { return a.currency }
func (a Amount) Issuer() AccountID         { return a.issuer }
func (Amount) Type() sfield.SerializedType { return sfield.ST_AMOUNT }
func (Amount) isValue()                    {}

// Drops returns the signed drop count of a native amount.
func (a Amount) Drops() int64 {
	if a.negative {
		return -int64(a.mantissa)
	}
	return int64(a.mantissa)
}

func (a Amount) bits() uint64 {
	var u uint64
	if !a.negative && (a.mantissa > 0 || a.native) {
		u |= positive
	}
	if a.native {
		return u | a.mantissa&(positive-1)
	}
	u |= notNative
	if a.mantissa > 0 {
		u |= a.mantissa & (1<<54 - 1)
		u |= uint64(a.exponent+97) << 54
	}
	return u
}

// Serialize writes eight bytes for native amounts and a further forty for
// the currency and issuer of issued amounts.
func (a Amount) Serialize(s *serialize.Serializer) error {
	s.Add64(a.bits())
	if !a.native {
		s.AddRaw(a.currency[:])
		s.AddRaw(a.issuer[:])
	}
	return nil
}

func decodeAmount(it *serialize.SerialIter) (Amount, error) {
	u, err := it.Get64()
	if err != nil {
		return Amount{}, err
	}
	if u&notNative == 0 {
		if u&positive != 0 {
			return Amount{native: true, mantissa: u &^ positive}, nil
		}
		if u == 0 {
			return Amount{}, ErrNonCanonicalZero
		}
		return Amount{native: true, negative: true, mantissa: u}, nil
	}
	var a Amount
	if err := it.GetInto(a.currency[:]); err != nil {
		return a, err
	}
	if err := it.GetInto(a.issuer[:]); err != nil {
		return a, err
	}
	if a.currency.IsNative() {
		return a, fmt.Errorf("%w: issued amount with native currency", ErrInvalidCurrency)
	}
	offset := int(u >> 54)
	u &= 1<<54 - 1
	if u == 0 {
		if offset != 512 {
			return a, fmt.Errorf("%w: non canonical zero", ErrAmountOverflow)
		}
		a.exponent = zeroOffset
		return a, nil
	}
	a.negative = offset&256 == 0
	a.exponent = offset&255 - 97
	a.mantissa = u
	if u < minValue || u > maxValue || a.exponent < minOffset || a.exponent > maxOffset {
		return a, fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
	}
	return a, nil
}

func (a Amount) Equal(o Value) bool {
	w, ok := o.(Amount)
	return ok && a == w
}

func (a Amount) Clone() Value { return a }

func (a Amount) IsDefault() bool {
	return a.native && a.mantissa == 0
}

func (a Amount) rat() *big.Rat {
	n := new(big.Int).SetUint64(a.mantissa)
	if a.negative {
		n.Neg(n)
	}
	d := big.NewInt(1)
	switch {
	case a.exponent < 0:
		d.Exp(big.NewInt(10), big.NewInt(int64(-a.exponent)), nil)
	case a.exponent > 0:
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(a.exponent)), nil))
	}
	return new(big.Rat).SetFrac(n, d)
}

// ValueText renders the quantity alone: drops for native amounts and a
// decimal or scientific form for issued ones.
func (a Amount) ValueText() string {
	if a.native {
		return strconv.FormatInt(a.Drops(), 10)
	}
	if a.mantissa == 0 {
		return "0"
	}
	if a.exponent != 0 && (a.exponent < -25 || a.exponent > -5) {
		digits := strconv.FormatUint(a.mantissa, 10)
		trimmed := strings.TrimRight(digits, "0")
		exp := strconv.Itoa(a.exponent + len(digits) - len(trimmed))
		if a.negative {
			return "-" + trimmed + "e" + exp
		}
		return trimmed + "e" + exp
	}
	r := a.rat()
	if r.IsInt() {
		return r.FloatString(0)
	}
	return strings.TrimRight(r.FloatString(-a.exponent), "0")
}

func (a Amount) Text() string {
	if a.native {
		return a.ValueText()
	}
	return a.ValueText() + "/" + a.currency.String() + "/" + a.issuer.Text()
}

func (a Amount) String() string { return a.Text() }

func (a Amount) JSON() interface{} {
	if a.native {
		return a.ValueText()
	}
	return map[string]interface{}{
		"value":    a.ValueText(),
		"currency": a.currency.String(),
		"issuer":   a.issuer.Text(),
	}
}

func (a Amount) debug() string {
	return fmt.Sprintf("native=%t negative=%t mantissa=%d exponent=%d", a.native, a.negative, a.mantissa, a.exponent)
}
