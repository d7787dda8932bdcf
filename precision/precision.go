// Package precision truncates decimals to a number of significant figures or
// decimal places.
//
// Callers use Validate to reject user submitted values that are more
// granular than a market allows, which keeps price ladders from filling up
// with near duplicate levels.
package precision

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
)

// Kind selects how a Precision counts digits.
type Kind uint8

const (
	// DecimalPlacesKind counts digits after the decimal point.
	DecimalPlacesKind Kind = iota

	// SignificantFiguresKind counts leading digits regardless of
	// magnitude.
	SignificantFiguresKind
)

// Precision is a rounding policy. The zero value is DecimalPlaces(0).
type Precision struct {
	Kind Kind
	N    uint8
}

// SignificantFigures keeps the n leading digits.
func SignificantFigures(n uint8) Precision {
	return Precision{Kind: SignificantFiguresKind, N: n}
}

// DecimalPlaces keeps n digits after the decimal point.
func DecimalPlaces(n uint8) Precision {
	return Precision{Kind: DecimalPlacesKind, N: n}
}

// String returns the sf:N or dp:N form.
func (p Precision) String() string {
	switch p.Kind {
	case SignificantFiguresKind:
		return fmt.Sprintf("sf:%d", p.N)
	default:
		return fmt.Sprintf("dp:%d", p.N)
	}
}

// Parse reads "sf:N" or "dp:N".
func Parse(s string) (Precision, error) {
	kind, n, ok := strings.Cut(s, ":")
	if !ok {
		return Precision{}, finmath.MalformedInput.New("precision %q", s)
	}

	v, err := strconv.ParseUint(n, 10, 8)
	if err != nil {
		return Precision{}, finmath.MalformedInput.Wrap(err)
	}

	switch kind {
	case "sf":
		return SignificantFigures(uint8(v)), nil
	case "dp":
		return DecimalPlaces(uint8(v)), nil
	}

	return Precision{}, finmath.MalformedInput.New("precision kind %q", kind)
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) (err error) {
	*p, err = Parse(string(text))

	return err
}

// Round truncates d toward zero according to p.
//
// DecimalPlaces beyond 18 and SignificantFigures beyond the digit count of
// d's numerator are ArithmeticOverflow errors that are also
// InvalidConfiguration.
func Round[T integer.Integer[T]](d decimal.Fixed[T], p Precision) (decimal.Fixed[T], error) {
	n := d.Numerator()

	var exp int

	switch p.Kind {
	case SignificantFiguresKind:
		if p.N == 0 || n.IsZero() {
			return decimal.Zero[T](), nil
		}

		digits := n.Digits()
		if int(p.N) > digits {
			return decimal.Fixed[T]{}, finmath.InvalidConfiguration.Wrap(finmath.ArithmeticOverflow.New(
				"%s: %d significant figures exceeds %d digits",
				d, p.N, digits,
			))
		}

		exp = digits - int(p.N)
	case DecimalPlacesKind:
		if p.N > decimal.Places {
			return decimal.Fixed[T]{}, finmath.InvalidConfiguration.Wrap(finmath.ArithmeticOverflow.New(
				"%d decimal places exceeds %d",
				p.N, decimal.Places,
			))
		}

		exp = decimal.Places - int(p.N)
	default:
		return decimal.Fixed[T]{}, finmath.InvalidConfiguration.New("precision kind %d", p.Kind)
	}

	truncated, err := truncate(n, uint(exp))
	if err != nil {
		return decimal.Fixed[T]{}, err
	}

	return decimal.New(truncated), nil
}

// truncate zeroes the exp least significant decimal digits of n.
func truncate[T integer.Integer[T]](n T, exp uint) (T, error) {
	var zero T

	pow, err := integer.Pow10[T](exp)
	if err != nil {
		return zero, err
	}

	q, err := n.Quo(pow)
	if err != nil {
		return zero, err
	}

	return q.Mul(pow)
}

// Validate reports whether d is already rounded according to p.
func Validate[T integer.Integer[T]](d decimal.Fixed[T], p Precision) (bool, error) {
	r, err := Round(d, p)
	if err != nil {
		return false, err
	}

	return r.Cmp(d) == 0, nil
}
