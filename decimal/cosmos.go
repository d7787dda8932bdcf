package decimal

import (
	sdkmath "cosmossdk.io/math"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/integer"
)

// FromLegacyDec converts a cosmos-sdk decimal. Both use 18 fractional digits
// so the numerator carries over unchanged.
func FromLegacyDec[T integer.Integer[T]](d sdkmath.LegacyDec) (Fixed[T], error) {
	if d.IsNil() {
		return Fixed[T]{}, finmath.MalformedInput.New("nil decimal")
	}

	if d.IsNegative() {
		return Fixed[T]{}, finmath.MalformedInput.New("negative decimal %s", d)
	}

	var zero T

	n, err := zero.FromBig(d.BigInt())
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{n: n}, nil
}

// LegacyDec converts d to a cosmos-sdk decimal.
func LegacyDec[T integer.Integer[T]](d Fixed[T]) sdkmath.LegacyDec {
	return sdkmath.LegacyNewDecFromBigIntWithPrec(d.n.Big(), Places)
}
