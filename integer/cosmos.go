package integer

import (
	sdkmath "cosmossdk.io/math"
)

// FromSDKUint converts a cosmos-sdk unsigned integer to width T.
func FromSDKUint[T Integer[T]](u sdkmath.Uint) (T, error) {
	var zero T

	return zero.FromBig(u.BigInt())
}

// SDKUint converts x to a cosmos-sdk unsigned integer.
func SDKUint[T Integer[T]](x T) sdkmath.Uint {
	return sdkmath.NewUintFromBigInt(x.Big())
}
