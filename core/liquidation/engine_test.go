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

package liquidation_test

import (
	"context"
	"testing"

	"code.haloprotocol.io/halo/core/assets"
	"code.haloprotocol.io/halo/core/collateral"
	cmocks "code.haloprotocol.io/halo/core/collateral/mocks"
	"code.haloprotocol.io/halo/core/events"
	"code.haloprotocol.io/halo/core/liquidation"
	"code.haloprotocol.io/halo/core/liquidation/mocks"
	"code.haloprotocol.io/halo/core/oracles"
	"code.haloprotocol.io/halo/core/types"
	"code.haloprotocol.io/halo/libs/num"
	"code.haloprotocol.io/halo/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ethAsset = "ETH"
	ethFeed  = "ETH-USD"
)

func unit(n uint64) *num.Uint {
	return num.UintZero().Mul(num.NewUint(n), num.MustUintFromString("1000000000000000000"))
}

func feedPrice(n uint64) *num.Uint {
	return num.UintZero().Mul(num.NewUint(n), num.NewUint(100_000_000))
}

type testEngine struct {
	*liquidation.Engine
	ctrl       *gomock.Controller
	collateral *mocks.MockCollateralEngine
	broker     *mocks.MockBroker
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	col := mocks.NewMockCollateralEngine(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	eng := liquidation.New(logging.NewTestLogger(), liquidation.NewDefaultConfig(), col, broker)
	return &testEngine{
		Engine:     eng,
		ctrl:       ctrl,
		collateral: col,
		broker:     broker,
	}
}

func TestLiquidateZeroAmount(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	_, err := eng.Liquidate(context.Background(), "wolf", "party1", ethAsset, num.UintZero())
	assert.ErrorIs(t, err, collateral.ErrZeroAmount)
}

func TestLiquidateHealthyTarget(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.collateral.EXPECT().HealthFactorOf(gomock.Any(), "party1").Times(1).
		Return(collateral.MinHealthFactor.Clone(), nil)

	_, err := eng.Liquidate(context.Background(), "wolf", "party1", ethAsset, unit(100))
	assert.ErrorIs(t, err, liquidation.ErrHealthFactorOk)
}

// covering 900 USD of debt converts to 50 ETH at the crashed price, plus
// the 10% bonus the liquidator walks away with 55
func TestLiquidateBonus(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	below := num.UintZero().Sub(collateral.MinHealthFactor, num.NewUint(1))
	eng.collateral.EXPECT().HealthFactorOf(gomock.Any(), "party1").Times(1).Return(below, nil)
	eng.collateral.EXPECT().TokenAmountFromUsd(gomock.Any(), ethAsset, gomock.Any()).Times(1).Return(unit(50), nil)
	eng.collateral.EXPECT().RedeemFor(gomock.Any(), "party1", "wolf", ethAsset, gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, _, _, _ string, collateralAmount, debtAmount *num.Uint) error {
			assert.True(t, collateralAmount.EQ(unit(55)), collateralAmount.String())
			assert.True(t, debtAmount.EQ(unit(900)))
			return nil
		})
	eng.broker.EXPECT().Send(gomock.Any()).Times(1).Do(func(evt events.Event) {
		liq, ok := evt.(*events.Liquidation)
		require.True(t, ok)
		assert.Equal(t, "wolf", liq.Liquidator())
		assert.Equal(t, "party1", liq.TargetID())
		assert.True(t, liq.SeizedAmount().EQ(unit(55)))
		assert.True(t, liq.IsParty("wolf"))
		assert.True(t, liq.IsParty("party1"))
	})

	seized, err := eng.Liquidate(context.Background(), "wolf", "party1", ethAsset, unit(900))
	require.NoError(t, err)
	assert.True(t, seized.EQ(unit(55)))
}

func TestLiquidateRedeemFailure(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	below := num.UintZero().Sub(collateral.MinHealthFactor, num.NewUint(1))
	eng.collateral.EXPECT().HealthFactorOf(gomock.Any(), "party1").Times(1).Return(below, nil)
	eng.collateral.EXPECT().TokenAmountFromUsd(gomock.Any(), ethAsset, gomock.Any()).Times(1).Return(unit(50), nil)
	eng.collateral.EXPECT().RedeemFor(gomock.Any(), "party1", "wolf", ethAsset, gomock.Any(), gomock.Any()).Times(1).
		Return(collateral.ErrInsufficientCollateral)

	_, err := eng.Liquidate(context.Background(), "wolf", "party1", ethAsset, unit(900))
	assert.ErrorIs(t, err, collateral.ErrInsufficientCollateral)
}

// full path against a real collateral engine: a price crash makes the
// position liquidatable, the liquidator covers part of the debt and is
// paid out of the target's collateral
func TestLiquidateEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := cmocks.NewMockBroker(ctrl)
	debt := cmocks.NewMockDebtToken(ctrl)
	eth := cmocks.NewMockAssetSource(ctrl)
	prices := oracles.NewStaticSource()
	prices.SetPrice(ethFeed, feedPrice(2000))

	registry, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{{ID: ethAsset, Symbol: "ETH"}}, []string{ethFeed})
	require.NoError(t, err)
	col, err := collateral.New(logging.NewTestLogger(), collateral.NewDefaultConfig(),
		registry, prices, debt, map[string]collateral.AssetSource{ethAsset: eth}, broker)
	require.NoError(t, err)

	lbroker := mocks.NewMockBroker(ctrl)
	eng := liquidation.New(logging.NewTestLogger(), liquidation.NewDefaultConfig(), col, lbroker)

	// party1 deposits 100 ETH at 2000 USD and mints 10,000 debt
	eth.EXPECT().TransferFrom(gomock.Any(), "party1", gomock.Any(), gomock.Any()).Times(1).Return(true, nil)
	debt.EXPECT().Mint(gomock.Any(), "party1", gomock.Any()).Times(1).Return(true, nil)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	ctx := context.Background()
	require.NoError(t, col.Deposit(ctx, "party1", ethAsset, unit(100)))
	require.NoError(t, col.Mint(ctx, "party1", unit(10000)))

	// healthy at 2000, not liquidatable
	_, err = eng.Liquidate(ctx, "wolf", "party1", ethAsset, unit(900))
	assert.ErrorIs(t, err, liquidation.ErrHealthFactorOk)

	// the price crashes to 18 USD: collateral is worth 1800 USD against
	// 10,000 of debt, health factor 0.09
	prices.SetPrice(ethFeed, feedPrice(18))
	hf, err := col.HealthFactorOf(ctx, "party1")
	require.NoError(t, err)
	assert.True(t, hf.LT(collateral.MinHealthFactor), hf.String())

	// wolf covers 900 USD of debt, 900/18 = 50 ETH plus the 10% bonus
	debt.EXPECT().TransferFrom(gomock.Any(), "wolf", gomock.Any(), gomock.Any()).Times(1).Return(true, nil)
	debt.EXPECT().Burn(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eth.EXPECT().Transfer(gomock.Any(), "wolf", gomock.Any()).Times(1).Return(true, nil)
	lbroker.EXPECT().Send(gomock.Any()).Times(1)

	seized, err := eng.Liquidate(ctx, "wolf", "party1", ethAsset, unit(900))
	require.NoError(t, err)
	assert.True(t, seized.EQ(unit(55)), seized.String())
	assert.True(t, col.CollateralOf("party1", ethAsset).EQ(unit(45)))
	assert.True(t, col.DebtOf("party1").EQ(unit(9100)))
}

// a seizure larger than the target's collateral must fail and leave the
// target untouched
func TestLiquidateSeizureExceedsCollateral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := cmocks.NewMockBroker(ctrl)
	debt := cmocks.NewMockDebtToken(ctrl)
	eth := cmocks.NewMockAssetSource(ctrl)
	prices := oracles.NewStaticSource()
	prices.SetPrice(ethFeed, feedPrice(2000))

	registry, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{{ID: ethAsset, Symbol: "ETH"}}, []string{ethFeed})
	require.NoError(t, err)
	col, err := collateral.New(logging.NewTestLogger(), collateral.NewDefaultConfig(),
		registry, prices, debt, map[string]collateral.AssetSource{ethAsset: eth}, broker)
	require.NoError(t, err)

	lbroker := mocks.NewMockBroker(ctrl)
	eng := liquidation.New(logging.NewTestLogger(), liquidation.NewDefaultConfig(), col, lbroker)

	eth.EXPECT().TransferFrom(gomock.Any(), "party1", gomock.Any(), gomock.Any()).Times(1).Return(true, nil)
	debt.EXPECT().Mint(gomock.Any(), "party1", gomock.Any()).Times(1).Return(true, nil)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	ctx := context.Background()
	require.NoError(t, col.Deposit(ctx, "party1", ethAsset, unit(100)))
	require.NoError(t, col.Mint(ctx, "party1", unit(10000)))

	// 1800 USD of cover at 18 USD per token is 100 ETH, with the bonus
	// the seizure is 110, more than the target holds
	prices.SetPrice(ethFeed, feedPrice(18))
	_, err = eng.Liquidate(ctx, "wolf", "party1", ethAsset, unit(1800))
	assert.ErrorIs(t, err, collateral.ErrInsufficientCollateral)
	assert.True(t, col.CollateralOf("party1", ethAsset).EQ(unit(100)))
	assert.True(t, col.DebtOf("party1").EQ(unit(10000)))
}
