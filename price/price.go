// Package price normalizes oracle prices to a common decimal basis.
//
// An oracle quotes the price of one whole token. Token amounts, however, are
// counted in base units whose size depends on the denom's decimals (6 for most
// native denoms, 8 or 18 for bridged ones). Multiplying a raw price by a base
// unit amount is therefore off by 10^(decimals-6) for any denom that does not
// use the reference decimals.
//
// NormalizedPrice folds that factor into the price once, so value
// calculations across denoms can use plain multiplication:
//
//  value = amount * NormalizedPrice
//
// Raw prices (HumanPrice) must never be used directly in such calculations.
package price

import (
	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
)

// ReferenceDecimals is the decimal count every price is normalized to.
const ReferenceDecimals uint8 = 6

// ErrNoInverse is returned when dividing by a zero price.
var ErrNoInverse = finmath.DivisionByZero.New("price has no inverse")

// HumanPrice is a raw exchange rate as returned by the oracle, without any
// normalization.
type HumanPrice struct {
	d decimal.Decimal
}

// NewHumanPrice wraps a raw oracle rate.
func NewHumanPrice(d decimal.Decimal) HumanPrice {
	return HumanPrice{d: d}
}

// Normalize rescales the price for a denom with the given decimals.
func (p HumanPrice) Normalize(decimals uint8) (NormalizedPrice, error) {
	return FromRaw(p.d, decimals)
}

// Decimal returns the raw rate.
func (p HumanPrice) Decimal() decimal.Decimal {
	return p.d
}

// String returns the raw rate in base 10.
func (p HumanPrice) String() string {
	return p.d.String()
}

// NormalizedPrice is a price rescaled to ReferenceDecimals.
type NormalizedPrice struct {
	d decimal.Decimal
}

// Unchecked wraps d without normalizing it. The caller asserts that d is
// already expressed at the reference decimals.
func Unchecked(d decimal.Decimal) NormalizedPrice {
	return NormalizedPrice{d: d}
}

// FromRaw rescales a raw price for a denom with the given decimals.
//
// With delta = 6 - decimals the numerator is multiplied by 10^delta when
// delta is positive and divided (floor) by 10^-delta when it is negative.
func FromRaw(raw decimal.Decimal, decimals uint8) (NormalizedPrice, error) {
	delta := int(ReferenceDecimals) - int(decimals)

	n := raw.Numerator()

	switch {
	case delta == 0:
		return NormalizedPrice{d: raw}, nil
	case delta > 0:
		pow, err := integer.Pow10[integer.Uint128](uint(delta))
		if err != nil {
			return NormalizedPrice{}, err
		}

		scaled, err := n.Mul(pow)
		if err != nil {
			return NormalizedPrice{}, finmath.ArithmeticOverflow.New(
				"normalizing %s for %d decimals", raw, decimals,
			)
		}

		return NormalizedPrice{d: decimal.New(scaled)}, nil
	default:
		pow, err := integer.Pow10[integer.Uint128](uint(-delta))
		if err != nil {
			// 10^-delta exceeds every representable numerator.
			return NormalizedPrice{}, nil
		}

		scaled, err := n.Quo(pow)
		if err != nil {
			return NormalizedPrice{}, err
		}

		return NormalizedPrice{d: decimal.New(scaled)}, nil
	}
}

// Decimal returns the normalized rate.
func (p NormalizedPrice) Decimal() decimal.Decimal {
	return p.d
}

// IsZero reports whether the price is zero.
func (p NormalizedPrice) IsZero() bool {
	return p.d.IsZero()
}

// Cmp compares p and q.
func (p NormalizedPrice) Cmp(q NormalizedPrice) int {
	return p.d.Cmp(q.d)
}

// String returns the normalized rate in base 10.
func (p NormalizedPrice) String() string {
	return p.d.String()
}

// Mul returns floor(p * q).
func (p NormalizedPrice) Mul(q NormalizedPrice) (NormalizedPrice, error) {
	d, err := p.d.Mul(q.d)
	if err != nil {
		return NormalizedPrice{}, err
	}

	return NormalizedPrice{d: d}, nil
}

// Quo returns floor(p / q).
func (p NormalizedPrice) Quo(q NormalizedPrice) (NormalizedPrice, error) {
	if q.IsZero() {
		return NormalizedPrice{}, ErrNoInverse
	}

	d, err := p.d.Quo(q.d)
	if err != nil {
		return NormalizedPrice{}, err
	}

	return NormalizedPrice{d: d}, nil
}

// MulAmount returns the value of amount at price p, floor(amount * p).
func (p NormalizedPrice) MulAmount(amount integer.Uint128) (integer.Uint128, error) {
	return p.d.MulFloor(amount)
}

// QuoAmount returns how much of the denom value buys at price p,
// floor(value / p).
func (p NormalizedPrice) QuoAmount(value integer.Uint128) (integer.Uint128, error) {
	if p.IsZero() {
		return integer.Uint128{}, ErrNoInverse
	}

	return p.d.DivFloor(value)
}

// MarshalText implements encoding.TextMarshaler.
func (p NormalizedPrice) MarshalText() ([]byte, error) {
	return p.d.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is taken as an
// already normalized price.
func (p *NormalizedPrice) UnmarshalText(text []byte) error {
	return p.d.UnmarshalText(text)
}

// MarshalText implements encoding.TextMarshaler.
func (p HumanPrice) MarshalText() ([]byte, error) {
	return p.d.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *HumanPrice) UnmarshalText(text []byte) error {
	return p.d.UnmarshalText(text)
}
