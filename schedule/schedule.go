// Package schedule computes how much of a time bounded grant has been released
// within a query window.
//
// A Schedule releases Amount between Start and End along one of two curves:
//
//  | Release | Rate r(t)              | Released by t (R)             |
//  |---------|------------------------|-------------------------------|
//  | Fixed   | A / T                  | A * t / T                     |
//  | Decay   | 2A / T * (1 - t / T)   | A * t * (2T - t) / T^2        |
//
// Where A is the amount, T the total duration and t the time elapsed since
// Start. Both curves release exactly A over [0, T]. Decay front loads the
// grant: half of it is out by t = 0.29T.
//
// Every evaluation truncates, so summing the releases of any contiguous
// partition of [Start, End] never exceeds Amount. Nothing is released after
// End; a window that extends past End is clamped to it.
package schedule

import (
	"fmt"
	"time"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/integer"
)

// Release is the shape of the release curve.
type Release uint8

const (
	// Fixed releases linearly.
	Fixed Release = iota

	// Decay releases at a rate falling linearly to zero at End.
	Decay
)

// String returns fixed or decay.
func (r Release) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Decay:
		return "decay"
	}

	return fmt.Sprintf("release(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Release) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Release) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fixed":
		*r = Fixed
	case "decay":
		*r = Decay
	default:
		return finmath.MalformedInput.New("release %q", text)
	}

	return nil
}

// Schedule is a single grant. Times are compared at second granularity.
type Schedule struct {
	Start   time.Time
	End     time.Time
	Amount  integer.Uint128
	Release Release
}

// Validate checks that the schedule can be evaluated.
func (s Schedule) Validate() error {
	if s.End.Unix() < s.Start.Unix() {
		return finmath.InvalidConfiguration.New(
			"schedule ends %s before it starts %s",
			s.End.UTC().Format(time.RFC3339), s.Start.UTC().Format(time.RFC3339),
		)
	}

	switch s.Release {
	case Fixed, Decay:
	default:
		return finmath.InvalidConfiguration.New("unknown %s", s.Release)
	}

	return nil
}

// Released returns the amount released between start and end.
//
// A zero length schedule (Start == End) never releases anything.
func (s Schedule) Released(start, end time.Time) (integer.Uint128, error) {
	err := s.Validate()
	if err != nil {
		return integer.Uint128{}, err
	}

	begin, finish := s.Start.Unix(), s.End.Unix()

	if begin > end.Unix() {
		return integer.Uint128{}, nil
	}

	from := max(begin, start.Unix())
	to := min(finish, end.Unix())
	if to <= from {
		return integer.Uint128{}, nil
	}

	total := uint64(finish - begin)

	switch s.Release {
	case Fixed:
		return integer.MulDivFloor(
			s.Amount,
			integer.NewUint128(uint64(to-from)),
			integer.NewUint128(total),
		)
	default:
		amount := integer.Widen(s.Amount)

		a, err := cumulative(amount, uint64(from-begin), total)
		if err != nil {
			return integer.Uint128{}, err
		}

		b, err := cumulative(amount, uint64(to-begin), total)
		if err != nil {
			return integer.Uint128{}, err
		}

		return integer.Narrow(integer.SaturatingSub(b, a))
	}
}

// Vested returns the amount released from Start up to at.
func (s Schedule) Vested(at time.Time) (integer.Uint128, error) {
	return s.Released(s.Start, at)
}

// cumulative returns floor(amount * t * (2T - t) / T^2), the decay curve's
// release from 0 to t. It requires 0 <= t <= T and T > 0.
func cumulative(amount integer.Uint256, t, total uint64) (integer.Uint256, error) {
	elapsed := integer.NewUint256(t)
	duration := integer.NewUint256(total)

	twice, err := duration.Mul(integer.NewUint256(2))
	if err != nil {
		return integer.Uint256{}, err
	}

	remaining, err := twice.Sub(elapsed)
	if err != nil {
		return integer.Uint256{}, err
	}

	num, err := amount.Mul(elapsed)
	if err != nil {
		return integer.Uint256{}, err
	}

	num, err = num.Mul(remaining)
	if err != nil {
		return integer.Uint256{}, err
	}

	den, err := duration.Mul(duration)
	if err != nil {
		return integer.Uint256{}, err
	}

	return num.Quo(den)
}

// Schedules are the grants accumulated for one denom.
type Schedules []Schedule

// Released sums the releases of every schedule between start and end.
func (ss Schedules) Released(start, end time.Time) (integer.Uint128, error) {
	var total integer.Uint128

	for _, s := range ss {
		r, err := s.Released(start, end)
		if err != nil {
			return integer.Uint128{}, err
		}

		total, err = total.Add(r)
		if err != nil {
			return integer.Uint128{}, err
		}
	}

	return total, nil
}
