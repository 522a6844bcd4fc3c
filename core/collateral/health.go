// Copyright (C) 2024 Halo Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package collateral

import (
	"code.haloprotocol.io/halo/libs/num"
)

// Fixed-point bases and liquidation parameters. Amounts and prices are
// integers: amounts scaled by 1e18, oracle prices by 1e8. The threshold and
// precision pair encodes a 200% overcollateralization requirement. All
// divisions truncate.
var (
	// precision is the fixed-point base of every amount (18 decimals).
	precision = num.MustUintFromString("1000000000000000000")
	// additionalFeedPrecision scales an 8 decimal oracle price up to the
	// 18 decimal amount base.
	additionalFeedPrecision = num.NewUint(10_000_000_000)
	liquidationThreshold    = num.NewUint(50)
	liquidationPrecision    = num.NewUint(100)
	// liquidationBonus is the liquidator's reward, in units of
	// liquidationPrecision (10 -> 10%).
	liquidationBonus = num.NewUint(10)
	// MinHealthFactor is the solvency floor, 1.0 in fixed point. Accounts
	// with a health factor below it are liquidatable.
	MinHealthFactor = num.MustUintFromString("1000000000000000000")
)

// HealthFactor maps an account's minted debt and USD collateral value to
// its solvency ratio:
//
//	(collateralValueUsd * threshold / thresholdPrecision) * 1e18 / debt
//
// applied left to right with truncating division, so results match the
// reference rounding exactly. A zero debt is unbounded solvency and maps
// to the maximal representable ratio.
func HealthFactor(mintedDebt, collateralValueUsd *num.Uint) *num.Uint {
	if mintedDebt.IsZero() {
		return num.MaxUint()
	}
	adjusted := num.UintZero().Mul(collateralValueUsd, liquidationThreshold)
	adjusted.Div(adjusted, liquidationPrecision)
	adjusted.Mul(adjusted, precision)
	return adjusted.Div(adjusted, mintedDebt)
}

// UsdValue converts an asset amount to its USD value given the oracle
// price for that asset:
//
//	price * 1e10 * amount / 1e18
func UsdValue(price, amount *num.Uint) *num.Uint {
	v := num.UintZero().Mul(price, additionalFeedPrecision)
	v.Mul(v, amount)
	return v.Div(v, precision)
}

// AmountFromUsd is the inverse of UsdValue: the asset amount worth the
// given USD value at the current oracle price:
//
//	usd * 1e18 / (price * 1e10)
func AmountFromUsd(price, usd *num.Uint) *num.Uint {
	scaled := num.UintZero().Mul(price, additionalFeedPrecision)
	v := num.UintZero().Mul(usd, precision)
	return v.Div(v, scaled)
}

// LiquidationBonus returns the extra collateral awarded to a liquidator on
// top of the strict debt-equivalent amount, 10% of it.
func LiquidationBonus(seized *num.Uint) *num.Uint {
	b := num.UintZero().Mul(seized, liquidationBonus)
	return b.Div(b, liquidationPrecision)
}
