package stobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

type pathEntry uint8

const (
	pathBoundary pathEntry = 0xFF
	pathEnd      pathEntry = 0x00

	pathAccount  pathEntry = 0x01
	pathCurrency pathEntry = 0x10
	pathIssuer   pathEntry = 0x20
)

var errEmptyPath = errors.New("empty path")

// PathStep is one hop of a path. At least one of its parts is set.
type PathStep struct {
	Account  *AccountID
	Currency *Currency
	Issuer   *AccountID
}

// Path is a single route liquidity may take.
type Path []PathStep

// PathSet is the set of alternative paths a payment may use.
type PathSet []Path

func (p PathStep) entry() pathEntry {
	var e pathEntry
	if p.Account != nil {
		e |= pathAccount
	}
	if p.Currency != nil {
		e |= pathCurrency
	}
	if p.Issuer != nil {
		e |= pathIssuer
	}
	return e
}

func (p PathStep) equal(o PathStep) bool {
	return eqAccount(p.Account, o.Account) && eqAccount(p.Issuer, o.Issuer) &&
		((p.Currency == nil) == (o.Currency == nil)) && (p.Currency == nil || *p.Currency == *o.Currency)
}

func eqAccount(a, b *AccountID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (p PathStep) String() string {
	var s []string
	if p.Account != nil {
		s = append(s, p.Account.Text())
	}
	if p.Currency != nil {
		s = append(s, p.Currency.String())
	}
	if p.Issuer != nil {
		s = append(s, p.Issuer.Text())
	}
	return strings.Join(s, "/")
}

func (p Path) String() string {
	s := make([]string, len(p))
	for i, step := range p {
		s[i] = step.String()
	}
	return strings.Join(s, " => ")
}

func (PathSet) Type() sfield.SerializedType { return sfield.ST_PATHSET }
func (PathSet) isValue()                    {}

// Serialize writes each step behind its type byte, separating paths with a
// boundary byte and closing the set with an end byte.
func (ps PathSet) Serialize(s *serialize.Serializer) error {
	for i, path := range ps {
		if len(path) == 0 {
			return errEmptyPath
		}
		if i > 0 {
			s.Add8(uint8(pathBoundary))
		}
		for _, step := range path {
			e := step.entry()
			if e == 0 {
				return fmt.Errorf("path step with no parts")
			}
			s.Add8(uint8(e))
			if step.Account != nil {
				s.AddRaw(step.Account[:])
			}
			if step.Currency != nil {
				s.AddRaw(step.Currency[:])
			}
			if step.Issuer != nil {
				s.AddRaw(step.Issuer[:])
			}
		}
	}
	s.Add8(uint8(pathEnd))
	return nil
}

func decodePathSet(it *serialize.SerialIter) (PathSet, error) {
	var (
		ps   PathSet
		path Path
	)
	for {
		b, err := it.Get8()
		if err != nil {
			return nil, err
		}
		e := pathEntry(b)
		if e == pathEnd || e == pathBoundary {
			if len(path) == 0 {
				if e == pathEnd && len(ps) == 0 {
					return ps, nil
				}
				return nil, errEmptyPath
			}
			ps = append(ps, path)
			path = nil
			if e == pathEnd {
				return ps, nil
			}
			continue
		}
		if e&^(pathAccount|pathCurrency|pathIssuer) != 0 {
			return nil, fmt.Errorf("bad path element type %#02x", b)
		}
		var step PathStep
		if e&pathAccount != 0 {
			step.Account = new(AccountID)
			if err := it.GetInto(step.Account[:]); err != nil {
				return nil, err
			}
		}
		if e&pathCurrency != 0 {
			step.Currency = new(Currency)
			if err := it.GetInto(step.Currency[:]); err != nil {
				return nil, err
			}
		}
		if e&pathIssuer != 0 {
			step.Issuer = new(AccountID)
			if err := it.GetInto(step.Issuer[:]); err != nil {
				return nil, err
			}
		}
		path = append(path, step)
	}
}

func (ps PathSet) Equal(o Value) bool {
	w, ok := o.(PathSet)
	if !ok || len(ps) != len(w) {
		return false
	}
	for i := range ps {
		if len(ps[i]) != len(w[i]) {
			return false
		}
		for j := range ps[i] {
			if !ps[i][j].equal(w[i][j]) {
				return false
			}
		}
	}
	return true
}

func (ps PathSet) Text() string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = "[" + p.String() + "]"
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func (ps PathSet) JSON() interface{} {
	paths := make([]interface{}, len(ps))
	for i, p := range ps {
		steps := make([]interface{}, len(p))
		for j, step := range p {
			m := map[string]interface{}{"type": uint8(step.entry())}
			if step.Account != nil {
				m["account"] = step.Account.Text()
			}
			if step.Currency != nil {
				m["currency"] = step.Currency.String()
			}
			if step.Issuer != nil {
				m["issuer"] = step.Issuer.Text()
			}
			steps[j] = m
		}
		paths[i] = steps
	}
	return paths
}

func (ps PathSet) Clone() Value {
	if ps == nil {
		return PathSet(nil)
	}
	out := make(PathSet, len(ps))
	for i, p := range ps {
		out[i] = make(Path, len(p))
		for j, step := range p {
			var c PathStep
			if step.Account != nil {
				a := *step.Account
				c.Account = &a
			}
			if step.Currency != nil {
				cur := *step.Currency
				c.Currency = &cur
			}
			if step.Issuer != nil {
				is := *step.Issuer
				c.Issuer = &is
			}
			out[i][j] = c
		}
	}
	return out
}

func (ps PathSet) IsDefault() bool { return len(ps) == 0 }
