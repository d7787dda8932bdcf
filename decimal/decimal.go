package decimal

import (
	"fmt"

	shopspring "github.com/shopspring/decimal"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/integer"
)

// Places is the number of fractional digits of every decimal.
const Places = 18

// Fixed is a fixed point decimal with numerator width T.
type Fixed[T integer.Integer[T]] struct {
	n T
}

// Decimal is the standard width decimal.
type Decimal = Fixed[integer.Uint128]

// Decimal256 is the wide decimal.
type Decimal256 = Fixed[integer.Uint256]

// scale returns 10^Places, which fits every width.
func scale[T integer.Integer[T]]() T {
	s, err := integer.Pow10[T](Places)
	if err != nil {
		panic(err)
	}

	return s
}

// New returns the decimal numerator/10^18.
func New[T integer.Integer[T]](numerator T) Fixed[T] {
	return Fixed[T]{n: numerator}
}

// Zero returns 0.
func Zero[T integer.Integer[T]]() Fixed[T] {
	return Fixed[T]{}
}

// One returns 1.
func One[T integer.Integer[T]]() Fixed[T] {
	return Fixed[T]{n: scale[T]()}
}

// FromInt returns v as a decimal.
func FromInt[T integer.Integer[T]](v T) (Fixed[T], error) {
	n, err := v.Mul(scale[T]())
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// FromRatio returns floor(num / den) to 18 places.
func FromRatio[T integer.Integer[T]](num, den T) (Fixed[T], error) {
	n, err := integer.MulDivFloor(num, scale[T](), den)
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// Percent returns p/100.
func Percent[T integer.Integer[T]](p uint64) (Fixed[T], error) {
	return FromRatio(integer.From[T](p), integer.From[T](100))
}

// Parse reads a base 10 decimal string such as "12.345".
func Parse[T integer.Integer[T]](s string) (_ Fixed[T], err error) {
	defer finmath.MalformedInput.WrapP(&err)

	v, err := shopspring.NewFromString(s)
	if err != nil {
		return Fixed[T]{}, err
	}

	if v.IsNegative() {
		return Fixed[T]{}, fmt.Errorf("negative decimal %q", s)
	}

	scaled := v.Shift(Places)
	if !scaled.IsInteger() {
		return Fixed[T]{}, fmt.Errorf("more than %d fractional digits in %q", Places, s)
	}

	var zero T

	n, err := zero.FromBig(scaled.BigInt())
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse[T integer.Integer[T]](s string) Fixed[T] {
	d, err := Parse[T](s)
	if err != nil {
		panic(err)
	}

	return d
}

// Numerator returns the unscaled integer.
func (d Fixed[T]) Numerator() T {
	return d.n
}

// Denominator returns 10^18.
func (d Fixed[T]) Denominator() T {
	return scale[T]()
}

// IsZero reports whether d is zero.
func (d Fixed[T]) IsZero() bool {
	return d.n.IsZero()
}

// Cmp returns -1, 0 or +1 as d is less than, equal to or greater than e.
func (d Fixed[T]) Cmp(e Fixed[T]) int {
	return d.n.Cmp(e.n)
}

// Add returns d + e, or an ArithmeticOverflow error.
func (d Fixed[T]) Add(e Fixed[T]) (Fixed[T], error) {
	n, err := d.n.Add(e.n)
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// Sub returns d - e, or an ArithmeticOverflow error if e > d.
func (d Fixed[T]) Sub(e Fixed[T]) (Fixed[T], error) {
	n, err := d.n.Sub(e.n)
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// Mul returns floor(d * e).
func (d Fixed[T]) Mul(e Fixed[T]) (Fixed[T], error) {
	n, err := integer.MulDivFloor(d.n, e.n, scale[T]())
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// Quo returns floor(d / e).
func (d Fixed[T]) Quo(e Fixed[T]) (Fixed[T], error) {
	n, err := integer.MulDivFloor(d.n, scale[T](), e.n)
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// Inv returns floor(1 / d). The inverse of zero is a DivisionByZero error.
func (d Fixed[T]) Inv() (Fixed[T], error) {
	return One[T]().Quo(d)
}

// Pow returns d^exp by repeated squaring, truncating after every product.
func (d Fixed[T]) Pow(exp uint32) (_ Fixed[T], err error) {
	result := One[T]()
	base := d

	for exp > 0 {
		if exp&1 == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return Fixed[T]{}, err
			}
		}

		exp >>= 1
		if exp == 0 {
			break
		}

		base, err = base.Mul(base)
		if err != nil {
			return Fixed[T]{}, err
		}
	}

	return result, nil
}

// MulFloor returns floor(amount * d).
func (d Fixed[T]) MulFloor(amount T) (T, error) {
	return integer.MulDivFloor(amount, d.n, scale[T]())
}

// MulCeil returns ceil(amount * d).
func (d Fixed[T]) MulCeil(amount T) (T, error) {
	return integer.MulDivCeil(amount, d.n, scale[T]())
}

// DivFloor returns floor(amount / d).
func (d Fixed[T]) DivFloor(amount T) (T, error) {
	return integer.MulDivFloor(amount, scale[T](), d.n)
}

// DivCeil returns ceil(amount / d).
func (d Fixed[T]) DivCeil(amount T) (T, error) {
	return integer.MulDivCeil(amount, scale[T](), d.n)
}

// String returns d in base 10 without trailing zeros.
func (d Fixed[T]) String() string {
	return shopspring.NewFromBigInt(d.n.Big(), -Places).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Fixed[T]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Fixed[T]) UnmarshalText(text []byte) (err error) {
	*d, err = Parse[T](string(text))

	return err
}

// Widen converts a standard width decimal to the wide width.
func Widen(d Decimal) Decimal256 {
	return Decimal256{n: integer.Widen(d.n)}
}

// Narrow converts a wide decimal back to standard width.
func Narrow(d Decimal256) (Decimal, error) {
	n, err := integer.Narrow(d.n)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{n: n}, nil
}
