package integer

import (
	"math/big"

	"github.com/calebcase/finmath"
)

// Integer is the set of operations the width generic algorithms rely on.
//
// FromBig and FromUint64 ignore their receiver; they are methods so that a
// zero value of T can construct other values of T.
type Integer[T any] interface {
	comparable

	IsZero() bool
	Cmp(y T) int

	Add(y T) (T, error)
	Sub(y T) (T, error)
	Mul(y T) (T, error)
	Quo(y T) (T, error)

	// Digits is the number of decimal digits. Zero has one digit.
	Digits() int

	Big() *big.Int
	FromBig(b *big.Int) (T, error)
	FromUint64(v uint64) T

	String() string
}

// From returns v at width T.
func From[T Integer[T]](v uint64) T {
	var zero T

	return zero.FromUint64(v)
}

// Parse reads a base 10 unsigned integer.
func Parse[T Integer[T]](s string) (T, error) {
	var zero T

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return zero, finmath.MalformedInput.New("integer: %q", s)
	}

	return zero.FromBig(b)
}

// Pow10 returns 10^n.
func Pow10[T Integer[T]](n uint) (T, error) {
	var zero T

	ten := zero.FromUint64(10)
	pow := zero.FromUint64(1)

	for i := uint(0); i < n; i++ {
		next, err := pow.Mul(ten)
		if err != nil {
			return zero, finmath.ArithmeticOverflow.New("10^%d", n)
		}

		pow = next
	}

	return pow, nil
}

// MulDivFloor returns floor(x * y / d).
func MulDivFloor[T Integer[T]](x, y, d T) (T, error) {
	var zero T

	if d.IsZero() {
		return zero, finmath.DivisionByZero.New("%s * %s / 0", x, y)
	}

	p := new(big.Int).Mul(x.Big(), y.Big())
	p.Quo(p, d.Big())

	return zero.FromBig(p)
}

// MulDivCeil returns ceil(x * y / d).
func MulDivCeil[T Integer[T]](x, y, d T) (T, error) {
	var zero T

	if d.IsZero() {
		return zero, finmath.DivisionByZero.New("%s * %s / 0", x, y)
	}

	q, r := new(big.Int).QuoRem(
		new(big.Int).Mul(x.Big(), y.Big()),
		d.Big(),
		new(big.Int),
	)
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}

	return zero.FromBig(q)
}

// Min returns the smaller of x and y.
func Min[T Integer[T]](x, y T) T {
	if x.Cmp(y) <= 0 {
		return x
	}

	return y
}

// SaturatingSub returns x - y, or zero if y > x.
func SaturatingSub[T Integer[T]](x, y T) T {
	z, err := x.Sub(y)
	if err != nil {
		var zero T

		return zero
	}

	return z
}

// Widen converts a standard width integer to the wide width. It cannot fail.
func Widen(x Uint128) Uint256 {
	z, _ := Uint256{}.FromBig(x.Big())

	return z
}

// Narrow converts a wide integer back to standard width.
func Narrow(x Uint256) (Uint128, error) {
	return Uint128{}.FromBig(x.Big())
}

func checkBig(b *big.Int, bits int) error {
	if b.Sign() < 0 {
		return finmath.ArithmeticOverflow.New("negative value %s", b)
	}

	if b.BitLen() > bits {
		return finmath.ArithmeticOverflow.New("%s exceeds %d bits", b, bits)
	}

	return nil
}
