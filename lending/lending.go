// Package lending converts between token amounts and the share units of a
// lending vault.
//
// Every conversion rounds in the vault's favor: debt is maximized and
// redemptions are minimized.
//
//  | Function          | Result                 |
//  |-------------------|------------------------|
//  | AddedDebtShares   | ceil(borrow / price)   |
//  | RemovedDebtShares | floor(repay / price)   |
//  | DebtToLiability   | ceil(shares * rate)    |
//  | ReceiptToOwed     | floor(tokens * rate)   |
//  | AmountToReceipt   | floor(amount / rate)   |
package lending

import (
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
)

// AddedDebtShares returns the debt shares minted for a borrow.
func AddedDebtShares(borrow integer.Uint128, sharePrice decimal.Decimal) (integer.Uint128, error) {
	return sharePrice.DivCeil(borrow)
}

// RemovedDebtShares returns the debt shares burned by a repayment.
func RemovedDebtShares(repay integer.Uint128, sharePrice decimal.Decimal) (integer.Uint128, error) {
	return sharePrice.DivFloor(repay)
}

// DebtToLiability returns the amount owed for debt shares.
func DebtToLiability(shares integer.Uint128, rate decimal.Decimal) (integer.Uint128, error) {
	return rate.MulCeil(shares)
}

// ReceiptToOwed returns the deposit redeemable for receipt tokens.
func ReceiptToOwed(tokens integer.Uint128, rate decimal.Decimal) (integer.Uint128, error) {
	return rate.MulFloor(tokens)
}

// AmountToReceipt returns the receipt tokens minted for a deposit.
func AmountToReceipt(amount integer.Uint128, rate decimal.Decimal) (integer.Uint128, error) {
	return rate.DivFloor(amount)
}

// Utilization returns borrowed / deposited, or zero for an empty vault.
func Utilization(borrowed, deposited integer.Uint128) (decimal.Decimal, error) {
	if deposited.IsZero() {
		return decimal.Zero[integer.Uint128](), nil
	}

	return decimal.FromRatio(borrowed, deposited)
}
