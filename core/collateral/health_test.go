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

package collateral_test

import (
	"testing"

	"code.haloprotocol.io/halo/core/collateral"
	"code.haloprotocol.io/halo/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestHealthFactor(t *testing.T) {
	// zero debt is unbounded solvency
	hf := collateral.HealthFactor(num.UintZero(), unit(100))
	assert.True(t, hf.EQ(num.MaxUint()))

	// 200,000 USD collateral vs 10,000 debt: adjusted value 100,000,
	// ratio 10.0 in fixed point
	hf = collateral.HealthFactor(unit(10000), unit(200000))
	assert.True(t, hf.EQ(num.MustUintFromString("10000000000000000000")), hf.String())

	// debt equal to the adjusted value sits exactly on the floor
	hf = collateral.HealthFactor(unit(100000), unit(200000))
	assert.True(t, hf.EQ(collateral.MinHealthFactor))

	// one extra unit of debt drops below the floor
	hf = collateral.HealthFactor(unit(100001), unit(200000))
	assert.True(t, hf.LT(collateral.MinHealthFactor), hf.String())
}

// divisions apply left to right and truncate, 3 USD of collateral against
// 2 units of debt must floor each intermediate step
func TestHealthFactorTruncates(t *testing.T) {
	// 3 * 50 / 100 = 1 (truncated from 1.5), then 1 * 1e18 / 2 = 5e17
	hf := collateral.HealthFactor(num.NewUint(2), num.NewUint(3))
	assert.True(t, hf.EQ(num.MustUintFromString("500000000000000000")), hf.String())
}

func TestUsdValue(t *testing.T) {
	// 15 ETH at 2000 USD (8 decimal feed) -> 30,000 USD
	v := collateral.UsdValue(feedPrice(2000), unit(15))
	assert.True(t, v.EQ(unit(30000)), v.String())

	v = collateral.UsdValue(feedPrice(2000), num.UintZero())
	assert.True(t, v.IsZero())
}

func TestAmountFromUsd(t *testing.T) {
	// 30,000 USD at 2000 USD per token -> 15 tokens
	amt := collateral.AmountFromUsd(feedPrice(2000), unit(30000))
	assert.True(t, amt.EQ(unit(15)), amt.String())

	// round trip through both conversions is the identity for exact values
	v := collateral.UsdValue(feedPrice(2000), amt)
	assert.True(t, v.EQ(unit(30000)))
}

func TestLiquidationBonus(t *testing.T) {
	b := collateral.LiquidationBonus(unit(10))
	assert.True(t, b.EQ(unit(1)), b.String())

	// truncating: 10% of 5 base units is 0
	b = collateral.LiquidationBonus(num.NewUint(5))
	assert.True(t, b.IsZero())
}
