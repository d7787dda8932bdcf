// Package integer provides the fixed width unsigned integers used as
// numerators by the decimal package.
//
// Two widths exist:
//
//  | Type    | Bits | Max Digits | Use                                      |
//  |---------|------|------------|------------------------------------------|
//  | Uint128 | 128  | 39         | Standard. Token amounts and prices.      |
//  | Uint256 | 256  | 78         | Wide. Intermediate products that would   |
//  |         |      |            | overflow the standard width.             |
//
// Both satisfy the Integer constraint so that algorithms (rounding,
// multiply-divide, powers of ten) are written once and instantiated at
// either width:
//
//  func Pow10[T Integer[T]](n uint) (T, error)
//
// Overflow
//
// Every operation is checked. A result that does not fit the width is
// reported as finmath.ArithmeticOverflow and a zero divisor as
// finmath.DivisionByZero. Nothing wraps and nothing panics.
//
// Multiply-divide (MulDivFloor, MulDivCeil) computes the product with an
// unbounded intermediate so that only the final quotient has to fit.
package integer
