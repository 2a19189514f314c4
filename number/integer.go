// Package number provides the exact numeric values carried by constant terms:
// an arbitrary-precision Integer and a Number made of a real and an imaginary
// Integer part.
package number

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Integer is an immutable arbitrary-precision signed integer.
// The zero value is 0.
type Integer struct{ v *big.Int }

var bigZero = new(big.Int)

// IntegerOf converts any machine integer exactly.
func IntegerOf[T constraints.Integer](v T) Integer {
	if v == 0 {
		return Integer{}
	}
	if v < 0 {
		return Integer{v: new(big.Int).SetInt64(int64(v))}
	}
	return Integer{v: new(big.Int).SetUint64(uint64(v))}
}

// IntegerFromBig imports v. The result does not share memory with v, so the
// caller may keep mutating it. A nil v is treated as 0.
func IntegerFromBig(v *big.Int) Integer {
	if v == nil || v.Sign() == 0 {
		return Integer{}
	}
	return Integer{v: new(big.Int).Set(v)}
}

// ParseInteger parses s in the given base (2 to 62, or 0 to honour a
// 0x/0o/0b prefix). Malformed input returns a *ConversionError.
func ParseInteger(s string, base int) (Integer, error) {
	if base != 0 && (base < 2 || base > big.MaxBase) {
		return Integer{}, &ConversionError{Input: s, Base: base, Reason: "unsupported base"}
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Integer{}, &ConversionError{Input: s, Base: base, Reason: "malformed digits"}
	}
	return IntegerFromBig(v), nil
}

// ParseRadix36 is the inverse of Integer.Radix36.
func ParseRadix36(s string) (Integer, error) { return ParseInteger(s, 36) }

func (i Integer) big() *big.Int {
	if i.v == nil {
		return bigZero
	}
	return i.v
}

// Big returns a copy of i as a *big.Int.
func (i Integer) Big() *big.Int { return new(big.Int).Set(i.big()) }

// Int64 returns i and true if it fits in an int64.
func (i Integer) Int64() (int64, bool) {
	b := i.big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

func (i Integer) IsZero() bool          { return i.big().Sign() == 0 }
func (i Integer) Sign() int             { return i.big().Sign() }
func (i Integer) Cmp(j Integer) int     { return i.big().Cmp(j.big()) }
func (i Integer) Equal(j Integer) bool  { return i.Cmp(j) == 0 }
func (i Integer) Neg() Integer          { return Integer{v: new(big.Int).Neg(i.big())} }
func (i Integer) Add(j Integer) Integer { return Integer{v: new(big.Int).Add(i.big(), j.big())} }

// Text renders i in the given base, lower-case digits for bases above 10.
func (i Integer) Text(base int) string { return i.big().Text(base) }

// Radix36 is the portable text form used when an Integer crosses a process
// or language boundary.
func (i Integer) Radix36() string { return i.Text(36) }

func (i Integer) String() string { return i.Text(10) }

func (i Integer) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Integer) UnmarshalText(text []byte) error {
	v, err := ParseInteger(string(text), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
