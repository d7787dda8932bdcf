package price_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
	"github.com/calebcase/finmath/price"
)

var d = decimal.MustParse[integer.Uint128]

func TestFromRaw(t *testing.T) {
	type TC struct {
		raw        string
		decimals   uint8
		normalized string
		Mark       error
	}

	tcs := []TC{
		{raw: "4.59", decimals: 6, normalized: "4.59", Mark: oops.New("unexpected")},
		{raw: "2", decimals: 0, normalized: "2000000", Mark: oops.New("unexpected")},
		{raw: "60000", decimals: 8, normalized: "600", Mark: oops.New("unexpected")},
		{raw: "3000", decimals: 18, normalized: "0.000000003", Mark: oops.New("unexpected")},
		{raw: "1", decimals: 24, normalized: "0.000000000000000001", Mark: oops.New("unexpected")},
		{raw: "1", decimals: 25, normalized: "0", Mark: oops.New("unexpected")},
		{raw: "1000", decimals: 255, normalized: "0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s@%d", i, tc.raw, tc.decimals), func(t *testing.T) {
			p, err := price.FromRaw(d(tc.raw), tc.decimals)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.normalized, p.String(), tc.Mark)

			h, err := price.NewHumanPrice(d(tc.raw)).Normalize(tc.decimals)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, p, h, tc.Mark)
		})
	}
}

func TestFromRawOverflow(t *testing.T) {
	huge := decimal.New(integer.MaxUint128)

	_, err := price.FromRaw(huge, 0)
	require.True(t, finmath.ArithmeticOverflow.Has(err), "%+v", err)

	p, err := price.FromRaw(huge, 6)
	require.NoError(t, err)
	require.Equal(t, huge, p.Decimal())
}

func TestIdentity(t *testing.T) {
	for _, raw := range []string{"0", "0.000001", "1", "4.59", "123456.789"} {
		p, err := price.FromRaw(d(raw), price.ReferenceDecimals)
		require.NoError(t, err)
		require.Equal(t, d(raw), p.Decimal(), raw)
	}
}

// The value of an amount at a normalized price matches raw price times raw
// amount expressed in reference units.
func TestCrossCheck(t *testing.T) {
	type TC struct {
		raw      string
		decimals uint8
		amount   uint64
		value    uint64
		Mark     error
	}

	tcs := []TC{
		// 5 whole tokens at 2 = 10 in reference units.
		{raw: "2", decimals: 0, amount: 5, value: 10_000_000, Mark: oops.New("unexpected")},
		// 1 BTC (8 decimals) at 60000.
		{raw: "60000", decimals: 8, amount: 100_000_000, value: 60_000_000_000, Mark: oops.New("unexpected")},
		// 1 ETH (18 decimals) at 3000.
		{raw: "3000", decimals: 18, amount: 1_000_000_000_000_000_000, value: 3_000_000_000, Mark: oops.New("unexpected")},
		// Half a token at the reference decimals.
		{raw: "4.59", decimals: 6, amount: 500_000, value: 2_295_000, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s@%d", i, tc.raw, tc.decimals), func(t *testing.T) {
			p, err := price.FromRaw(d(tc.raw), tc.decimals)
			require.NoError(t, err, tc.Mark)

			v, err := p.MulAmount(integer.NewUint128(tc.amount))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, integer.NewUint128(tc.value), v, tc.Mark)

			// raw * amount * 10^(6 - decimals), computed directly.
			want := new(big.Int).Mul(d(tc.raw).Numerator().Big(), new(big.Int).SetUint64(tc.amount))
			exp := int64(price.ReferenceDecimals) - int64(tc.decimals)
			if exp >= 0 {
				want.Mul(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil))
			} else {
				want.Quo(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(-exp), nil))
			}
			want.Quo(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(decimal.Places), nil))
			require.Equal(t, want.String(), v.String(), tc.Mark)

			// And back again.
			a, err := p.QuoAmount(v)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, integer.NewUint128(tc.amount), a, tc.Mark)
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := price.Unchecked(d("2.5"))
	b := price.Unchecked(d("0.5"))

	m, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "1.25", m.String())

	q, err := a.Quo(b)
	require.NoError(t, err)
	require.Equal(t, "5", q.String())

	require.Equal(t, 1, a.Cmp(b))

	// A ratio chain truncates once per operation, never more.
	third, err := price.Unchecked(d("1")).Quo(price.Unchecked(d("3")))
	require.NoError(t, err)

	v, err := third.MulAmount(integer.NewUint128(3_000_000))
	require.NoError(t, err)
	require.Equal(t, integer.NewUint128(999_999), v)
}

func TestZeroPrice(t *testing.T) {
	zero := price.Unchecked(decimal.Zero[integer.Uint128]())
	one := price.Unchecked(d("1"))

	_, err := one.Quo(zero)
	require.True(t, errors.Is(err, price.ErrNoInverse), "%+v", err)
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)

	_, err = zero.QuoAmount(integer.NewUint128(10))
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)

	v, err := zero.MulAmount(integer.NewUint128(10))
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestText(t *testing.T) {
	var h price.HumanPrice
	require.NoError(t, h.UnmarshalText([]byte("4.59")))
	require.Equal(t, "4.59", h.String())

	data, err := h.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "4.59", string(data))

	var n price.NormalizedPrice
	require.NoError(t, n.UnmarshalText([]byte("4.59")))
	require.Equal(t, price.Unchecked(h.Decimal()), n)

	data, err = n.MarshalText()
	require.NoError(t, err)
	require.Equal(t, `4.59`, string(data))
}
