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

package assets_test

import (
	"testing"

	"code.haloprotocol.io/halo/core/assets"
	"code.haloprotocol.io/halo/core/types"
	"code.haloprotocol.io/halo/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{
			{ID: "ETH", Symbol: "ETH"},
			{ID: "BTC", Symbol: "BTC"},
		},
		[]string{"ETH-USD", "BTC-USD"},
	)
	require.NoError(t, err)

	assert.True(t, reg.IsAllowed("ETH"))
	assert.True(t, reg.IsAllowed("BTC"))
	assert.False(t, reg.IsAllowed("DOGE"))
	assert.Equal(t, []string{"BTC", "ETH"}, reg.AssetIDs())

	feed, err := reg.PriceFeedOf("ETH")
	require.NoError(t, err)
	assert.Equal(t, "ETH-USD", feed)

	a, err := reg.Asset("BTC")
	require.NoError(t, err)
	assert.Equal(t, "BTC", a.Symbol)
}

func TestRegistryCountMismatch(t *testing.T) {
	_, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{{ID: "ETH"}, {ID: "BTC"}},
		[]string{"ETH-USD"},
	)
	assert.ErrorIs(t, err, assets.ErrAssetCountMismatch)
}

func TestRegistryDuplicateAsset(t *testing.T) {
	_, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{{ID: "ETH"}, {ID: "ETH"}},
		[]string{"ETH-USD", "ETH-USD-2"},
	)
	assert.ErrorIs(t, err, assets.ErrDuplicateAsset)
}

func TestRegistryUnknownAsset(t *testing.T) {
	reg, err := assets.New(logging.NewTestLogger(), assets.NewDefaultConfig(),
		[]types.Asset{{ID: "ETH"}}, []string{"ETH-USD"})
	require.NoError(t, err)

	_, err = reg.PriceFeedOf("DOGE")
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
	_, err = reg.Asset("DOGE")
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
}
