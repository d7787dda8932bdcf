package integer

import (
	"math/big"

	"lukechampine.com/uint128"

	"github.com/calebcase/finmath"
)

// Uint128 is the standard width unsigned integer.
type Uint128 struct {
	u uint128.Uint128
}

// NewUint128 returns v as a Uint128.
func NewUint128(v uint64) Uint128 {
	return Uint128{u: uint128.From64(v)}
}

// MaxUint128 is 2^128 - 1.
var MaxUint128 = Uint128{u: uint128.Max}

// IsZero reports whether x is zero.
func (x Uint128) IsZero() bool {
	return x.u.IsZero()
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Uint128) Cmp(y Uint128) int {
	return x.u.Cmp(y.u)
}

// Add returns x + y, or an ArithmeticOverflow error.
func (x Uint128) Add(y Uint128) (Uint128, error) {
	z := x.u.AddWrap(y.u)
	if z.Cmp(x.u) < 0 {
		return Uint128{}, finmath.ArithmeticOverflow.New("%s + %s", x, y)
	}

	return Uint128{u: z}, nil
}

// Sub returns x - y, or an ArithmeticOverflow error if y > x.
func (x Uint128) Sub(y Uint128) (Uint128, error) {
	if x.u.Cmp(y.u) < 0 {
		return Uint128{}, finmath.ArithmeticOverflow.New("%s - %s", x, y)
	}

	return Uint128{u: x.u.SubWrap(y.u)}, nil
}

// Mul returns x * y, or an ArithmeticOverflow error.
func (x Uint128) Mul(y Uint128) (Uint128, error) {
	if x.IsZero() || y.IsZero() {
		return Uint128{}, nil
	}

	z := x.u.MulWrap(y.u)
	if z.Div(y.u) != x.u {
		return Uint128{}, finmath.ArithmeticOverflow.New("%s * %s", x, y)
	}

	return Uint128{u: z}, nil
}

// Quo returns floor(x / y), or a DivisionByZero error.
func (x Uint128) Quo(y Uint128) (Uint128, error) {
	if y.IsZero() {
		return Uint128{}, finmath.DivisionByZero.New("%s / 0", x)
	}

	return Uint128{u: x.u.Div(y.u)}, nil
}

// Digits returns the number of decimal digits in x.
func (x Uint128) Digits() int {
	return len(x.u.String())
}

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	return x.u.Big()
}

// FromBig converts b, which must be non-negative and fit the width.
func (Uint128) FromBig(b *big.Int) (Uint128, error) {
	err := checkBig(b, 128)
	if err != nil {
		return Uint128{}, err
	}

	return Uint128{u: uint128.FromBig(b)}, nil
}

// FromUint64 returns v at this width.
func (Uint128) FromUint64(v uint64) Uint128 {
	return NewUint128(v)
}

// Uint64 returns the value and whether it fit in 64 bits.
func (x Uint128) Uint64() (uint64, bool) {
	return x.u.Lo, x.u.Hi == 0
}

// String returns x in base 10.
func (x Uint128) String() string {
	return x.u.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Uint128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Uint128) UnmarshalText(text []byte) (err error) {
	*x, err = Parse[Uint128](string(text))

	return err
}
