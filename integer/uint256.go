package integer

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/calebcase/finmath"
)

// Uint256 is the wide unsigned integer.
type Uint256 struct {
	u uint256.Int
}

// NewUint256 returns v as a Uint256.
func NewUint256(v uint64) Uint256 {
	return Uint256{u: *uint256.NewInt(v)}
}

// IsZero reports whether x is zero.
func (x Uint256) IsZero() bool {
	return x.u.IsZero()
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Uint256) Cmp(y Uint256) int {
	return x.u.Cmp(&y.u)
}

// Add returns x + y, or an ArithmeticOverflow error.
func (x Uint256) Add(y Uint256) (z Uint256, err error) {
	if _, overflow := z.u.AddOverflow(&x.u, &y.u); overflow {
		return Uint256{}, finmath.ArithmeticOverflow.New("%s + %s", x, y)
	}

	return z, nil
}

// Sub returns x - y, or an ArithmeticOverflow error if y > x.
func (x Uint256) Sub(y Uint256) (z Uint256, err error) {
	if _, underflow := z.u.SubOverflow(&x.u, &y.u); underflow {
		return Uint256{}, finmath.ArithmeticOverflow.New("%s - %s", x, y)
	}

	return z, nil
}

// Mul returns x * y, or an ArithmeticOverflow error.
func (x Uint256) Mul(y Uint256) (z Uint256, err error) {
	if _, overflow := z.u.MulOverflow(&x.u, &y.u); overflow {
		return Uint256{}, finmath.ArithmeticOverflow.New("%s * %s", x, y)
	}

	return z, nil
}

// Quo returns floor(x / y), or a DivisionByZero error.
func (x Uint256) Quo(y Uint256) (z Uint256, err error) {
	if y.IsZero() {
		return Uint256{}, finmath.DivisionByZero.New("%s / 0", x)
	}

	z.u.Div(&x.u, &y.u)

	return z, nil
}

// Digits returns the number of decimal digits in x.
func (x Uint256) Digits() int {
	return len(x.String())
}

// Big returns x as a big.Int.
func (x Uint256) Big() *big.Int {
	return x.u.ToBig()
}

// FromBig converts b, which must be non-negative and fit the width.
func (Uint256) FromBig(b *big.Int) (z Uint256, err error) {
	err = checkBig(b, 256)
	if err != nil {
		return Uint256{}, err
	}

	z.u.SetFromBig(b)

	return z, nil
}

// FromUint64 returns v at this width.
func (Uint256) FromUint64(v uint64) Uint256 {
	return NewUint256(v)
}

// String returns x in base 10.
func (x Uint256) String() string {
	return x.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Uint256) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Uint256) UnmarshalText(text []byte) (err error) {
	*x, err = Parse[Uint256](string(text))

	return err
}
