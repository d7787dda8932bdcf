package decimal_test

import (
	"fmt"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
)

func TestParseString(t *testing.T) {
	type TC struct {
		input     string
		numerator string
		output    string
		Mark      error
	}

	tcs := []TC{
		{
			input:     "0",
			numerator: "0",
			output:    "0",
			Mark:      oops.New("unexpected"),
		},
		{
			input:     "1",
			numerator: "1000000000000000000",
			output:    "1",
			Mark:      oops.New("unexpected"),
		},
		{
			input:     "4.59",
			numerator: "4590000000000000000",
			output:    "4.59",
			Mark:      oops.New("unexpected"),
		},
		{
			input:     "123.4500",
			numerator: "123450000000000000000",
			output:    "123.45",
			Mark:      oops.New("unexpected"),
		},
		{
			input:     "0.000000000000000001",
			numerator: "1",
			output:    "0.000000000000000001",
			Mark:      oops.New("unexpected"),
		},
		{
			input:     "340282366920938463463.374607431768211455",
			numerator: "340282366920938463463374607431768211455",
			output:    "340282366920938463463.374607431768211455",
			Mark:      oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			d, err := decimal.Parse[integer.Uint128](tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.numerator, d.Numerator().String(), tc.Mark)
			require.Equal(t, tc.output, d.String(), tc.Mark)

			w, err := decimal.Parse[integer.Uint256](tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, decimal.Widen(d), w, tc.Mark)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"-1",
		"0.0000000000000000001",
		"340282366920938463463.374607431768211456",
	} {
		_, err := decimal.Parse[integer.Uint128](input)
		require.True(t, finmath.MalformedInput.Has(err), "%q: %+v", input, err)
	}

	// The wide width holds what the standard width cannot.
	_, err := decimal.Parse[integer.Uint256]("340282366920938463463.374607431768211456")
	require.NoError(t, err)
}

func TestArithmetic(t *testing.T) {
	p := decimal.MustParse[integer.Uint128]

	sum, err := p("1.5").Add(p("2.25"))
	require.NoError(t, err)
	require.Equal(t, "3.75", sum.String())

	_, err = p("1").Sub(p("2"))
	require.True(t, finmath.ArithmeticOverflow.Has(err), "%+v", err)

	prod, err := p("1.5").Mul(p("2.25"))
	require.NoError(t, err)
	require.Equal(t, "3.375", prod.String())

	quo, err := p("1").Quo(p("3"))
	require.NoError(t, err)
	require.Equal(t, "0.333333333333333333", quo.String())

	_, err = p("1").Quo(decimal.Zero[integer.Uint128]())
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)

	inv, err := p("4").Inv()
	require.NoError(t, err)
	require.Equal(t, "0.25", inv.String())

	_, err = decimal.Zero[integer.Uint128]().Inv()
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)

	r, err := decimal.FromRatio(integer.NewUint128(2), integer.NewUint128(3))
	require.NoError(t, err)
	require.Equal(t, "0.666666666666666666", r.String())

	_, err = decimal.FromRatio(integer.NewUint128(2), integer.Uint128{})
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)

	pct, err := decimal.Percent[integer.Uint128](459)
	require.NoError(t, err)
	require.Equal(t, "4.59", pct.String())

	i, err := decimal.FromInt(integer.NewUint128(7))
	require.NoError(t, err)
	require.Equal(t, "7", i.String())

	_, err = decimal.FromInt(integer.MaxUint128)
	require.True(t, finmath.ArithmeticOverflow.Has(err), "%+v", err)

	require.Equal(t, -1, p("1").Cmp(p("1.000000000000000001")))
	require.True(t, decimal.Zero[integer.Uint256]().IsZero())
	require.Equal(t, "1000000000000000000", p("7").Denominator().String())
}

func TestPow(t *testing.T) {
	p := decimal.MustParse[integer.Uint128]

	type TC struct {
		base string
		exp  uint32
		want string
		Mark error
	}

	tcs := []TC{
		{base: "2", exp: 0, want: "1", Mark: oops.New("unexpected")},
		{base: "2", exp: 1, want: "2", Mark: oops.New("unexpected")},
		{base: "2", exp: 10, want: "1024", Mark: oops.New("unexpected")},
		{base: "1.1", exp: 2, want: "1.21", Mark: oops.New("unexpected")},
		{base: "0.5", exp: 3, want: "0.125", Mark: oops.New("unexpected")},
		{base: "0", exp: 5, want: "0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s^%d", i, tc.base, tc.exp), func(t *testing.T) {
			got, err := p(tc.base).Pow(tc.exp)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.want, got.String(), tc.Mark)
		})
	}

	_, err := p("10").Pow(30)
	require.True(t, finmath.ArithmeticOverflow.Has(err), "%+v", err)
}

func TestAmountConversions(t *testing.T) {
	third := decimal.MustParse[integer.Uint128]("0.333333333333333333")
	amount := integer.NewUint128(3000)

	floor, err := third.MulFloor(amount)
	require.NoError(t, err)
	require.Equal(t, "999", floor.String())

	ceil, err := third.MulCeil(amount)
	require.NoError(t, err)
	require.Equal(t, "1000", ceil.String())

	price := decimal.MustParse[integer.Uint128]("3")

	q, err := price.DivFloor(integer.NewUint128(10))
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	q, err = price.DivCeil(integer.NewUint128(10))
	require.NoError(t, err)
	require.Equal(t, "4", q.String())

	_, err = decimal.Zero[integer.Uint128]().DivFloor(amount)
	require.True(t, finmath.DivisionByZero.Has(err), "%+v", err)
}

func TestWidenNarrow(t *testing.T) {
	d := decimal.MustParse[integer.Uint128]("12.5")

	w := decimal.Widen(d)
	require.Equal(t, "12.5", w.String())

	n, err := decimal.Narrow(w)
	require.NoError(t, err)
	require.Equal(t, d, n)

	big := decimal.MustParse[integer.Uint256]("1000000000000000000000")

	_, err = decimal.Narrow(big)
	require.True(t, finmath.ArithmeticOverflow.Has(err), "%+v", err)
}

func TestText(t *testing.T) {
	var d decimal.Decimal

	require.NoError(t, d.UnmarshalText([]byte("0.25")))
	require.Equal(t, decimal.MustParse[integer.Uint128]("0.25"), d)

	data, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "0.25", string(data))
}

func TestLegacyDec(t *testing.T) {
	ld := sdkmath.LegacyMustNewDecFromStr("4.59")

	d, err := decimal.FromLegacyDec[integer.Uint128](ld)
	require.NoError(t, err)
	require.Equal(t, "4.59", d.String())
	require.True(t, ld.Equal(decimal.LegacyDec(d)))

	_, err = decimal.FromLegacyDec[integer.Uint128](sdkmath.LegacyMustNewDecFromStr("-1"))
	require.True(t, finmath.MalformedInput.Has(err), "%+v", err)

	_, err = decimal.FromLegacyDec[integer.Uint128](sdkmath.LegacyDec{})
	require.True(t, finmath.MalformedInput.Has(err), "%+v", err)
}
