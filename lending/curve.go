package lending

import (
	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
)

// Curve maps vault utilization to an interest rate.
type Curve interface {
	Rate(utilization decimal.Decimal) (decimal.Decimal, error)
}

// Point is a (utilization, rate) pair.
type Point struct {
	Utilization decimal.Decimal `yaml:"utilization"`
	Rate        decimal.Decimal `yaml:"rate"`
}

// Linear interpolates between Start and End:
//
//  rate = start.rate + slope * (utilization - start.utilization)
//
// The slope is truncated before it is applied. Utilization below
// Start.Utilization is an ArithmeticOverflow error.
type Linear struct {
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

var _ Curve = Linear{}

// Validate rejects curves that decrease or have no width.
func (c Linear) Validate() error {
	if c.End.Utilization.Cmp(c.Start.Utilization) <= 0 {
		return finmath.InvalidConfiguration.New(
			"linear curve ends at utilization %s, not after %s",
			c.End.Utilization, c.Start.Utilization,
		)
	}

	if c.End.Rate.Cmp(c.Start.Rate) < 0 {
		return finmath.InvalidConfiguration.New(
			"linear curve falls from %s to %s", c.Start.Rate, c.End.Rate,
		)
	}

	return nil
}

// Rate implements Curve.
func (c Linear) Rate(utilization decimal.Decimal) (decimal.Decimal, error) {
	zero := decimal.Zero[integer.Uint128]()

	err := c.Validate()
	if err != nil {
		return zero, err
	}

	rise, err := c.End.Rate.Sub(c.Start.Rate)
	if err != nil {
		return zero, err
	}

	run, err := c.End.Utilization.Sub(c.Start.Utilization)
	if err != nil {
		return zero, err
	}

	slope, err := rise.Quo(run)
	if err != nil {
		return zero, err
	}

	dx, err := utilization.Sub(c.Start.Utilization)
	if err != nil {
		return zero, err
	}

	dy, err := slope.Mul(dx)
	if err != nil {
		return zero, err
	}

	return c.Start.Rate.Add(dy)
}

// Exponential is
//
//  rate = (intercept - 1) + (exponent * utilization)^coefficient
//
// Intercept is offset by one so that an intercept of one gives a zero rate at
// zero utilization.
type Exponential struct {
	Intercept   decimal.Decimal `yaml:"intercept"`
	Coefficient uint32          `yaml:"coefficient"`
	Exponent    decimal.Decimal `yaml:"exponent"`
}

var _ Curve = Exponential{}

// Validate rejects an intercept below one.
func (c Exponential) Validate() error {
	if c.Intercept.Cmp(decimal.One[integer.Uint128]()) < 0 {
		return finmath.InvalidConfiguration.New("exponential intercept %s is below 1", c.Intercept)
	}

	return nil
}

// Rate implements Curve.
func (c Exponential) Rate(utilization decimal.Decimal) (decimal.Decimal, error) {
	zero := decimal.Zero[integer.Uint128]()

	err := c.Validate()
	if err != nil {
		return zero, err
	}

	base, err := c.Intercept.Sub(decimal.One[integer.Uint128]())
	if err != nil {
		return zero, err
	}

	x, err := c.Exponent.Mul(utilization)
	if err != nil {
		return zero, err
	}

	x, err = x.Pow(c.Coefficient)
	if err != nil {
		return zero, err
	}

	return base.Add(x)
}
