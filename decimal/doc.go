// Package decimal provides a fixed point base 10 number with 18 fractional
// digits.
//
// The equation for a decimal number is:
//
//  number = numerator / 10^18
//
// Where numerator is an unsigned integer of one of the widths provided by the
// integer package. For example:
//
//  1.23 = 1_230_000_000_000_000_000 / 10^18
//
// The denominator is implicit and never changes, so two decimals of the same
// width compare and add as plain integers. Negative numbers are not
// representable.
//
// Widths
//
//  | Type       | Numerator       | Largest Value                        |
//  |------------|-----------------|--------------------------------------|
//  | Decimal    | integer.Uint128 | ~340282366920938463463.374607431...  |
//  | Decimal256 | integer.Uint256 | ~1.157920892373161954235709850e59    |
//
// Decimal is the standard width for prices and ratios. Decimal256 exists for
// intermediates that would overflow the standard width; Widen and Narrow move
// between them.
//
// Rounding
//
// Multiplication and division compute the exact ratio with an unbounded
// intermediate and truncate once:
//
//  a * b = floor(a.n * b.n / 10^18)
//  a / b = floor(a.n * 10^18 / b.n)
//
// Conversions that touch integer amounts come in Floor and Ceil variants so
// that callers choose the direction that protects the protocol (e.g. round
// debt up and redemptions down).
//
// Text
//
// Decimals parse from and format to plain base 10 strings ("4.59"). Parsing
// is exact: input with more than 18 fractional digits is rejected rather
// than rounded.
package decimal
