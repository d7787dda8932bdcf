// Package finmath holds the error classes shared by the fixed point math
// packages.
//
// Every error produced by this module belongs to at least one class below.
// Errors are terminal: callers are expected to abort the enclosing operation
// rather than retry, since the same inputs always produce the same error.
package finmath

import "github.com/zeebo/errs"

var (
	// MalformedInput is bad hex or an encoded value of the wrong shape.
	MalformedInput = errs.Class("malformed input")

	// ArithmeticOverflow is a result or intermediate that does not fit the
	// integer width, or a precision/exponent beyond what the width holds.
	ArithmeticOverflow = errs.Class("arithmetic overflow")

	// DivisionByZero is a zero divisor, including the inverse of a zero
	// price.
	DivisionByZero = errs.Class("division by zero")

	// VerificationFailed is a merkle root mismatch.
	VerificationFailed = errs.Class("verification failed")

	// InvalidConfiguration is a parameter set that can never produce a
	// valid result (e.g. a schedule ending before it starts).
	InvalidConfiguration = errs.Class("invalid configuration")

	// WrongLength is a hash that decoded to something other than 32 bytes.
	WrongLength = errs.Class("wrong length")
)
