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

package assets

import (
	"errors"
	"sort"

	"code.haloprotocol.io/halo/core/types"
	"code.haloprotocol.io/halo/logging"
)

const namedLogger = "assets"

var (
	// ErrUnknownAsset is returned when an asset was never registered as
	// acceptable collateral.
	ErrUnknownAsset = errors.New("unknown or disallowed asset")
	// ErrAssetCountMismatch is returned at construction when the list of
	// assets and the list of price feeds have different lengths.
	ErrAssetCountMismatch = errors.New("assets and price feeds count mismatch")
	// ErrDuplicateAsset is returned at construction when the same asset ID
	// appears twice.
	ErrDuplicateAsset = errors.New("duplicate asset")
)

type registeredAsset struct {
	asset     types.Asset
	priceFeed string
}

// Registry is the static mapping from a collateral asset identity to the
// reference of the price feed quoting it. It is populated once at
// construction and immutable afterwards, which is what makes it safe to
// read without locking from the engines.
type Registry struct {
	log    *logging.Logger
	cfg    Config
	assets map[string]registeredAsset
	// ids sorted, so every valuation pass walks the assets in a
	// deterministic order.
	ids []string
}

// New creates the asset registry. The assets and priceFeeds slices are
// positional pairs, a length mismatch fails construction.
func New(log *logging.Logger, cfg Config, assets []types.Asset, priceFeeds []string) (*Registry, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	if len(assets) != len(priceFeeds) {
		return nil, ErrAssetCountMismatch
	}

	r := &Registry{
		log:    log,
		cfg:    cfg,
		assets: make(map[string]registeredAsset, len(assets)),
		ids:    make([]string, 0, len(assets)),
	}
	for i, a := range assets {
		if _, ok := r.assets[a.ID]; ok {
			return nil, ErrDuplicateAsset
		}
		r.assets[a.ID] = registeredAsset{
			asset:     a,
			priceFeed: priceFeeds[i],
		}
		r.ids = append(r.ids, a.ID)
		log.Info("collateral asset registered",
			logging.AssetID(a.ID),
			logging.String("price-feed", priceFeeds[i]),
		)
	}
	sort.Strings(r.ids)
	return r, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the registry.
func (r *Registry) ReloadConf(cfg Config) {
	r.log.Info("reloading configuration")
	if r.log.GetLevel() != cfg.Level.Get() {
		r.log.Info("updating log level",
			logging.String("old", r.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		r.log.SetLevel(cfg.Level.Get())
	}
	r.cfg = cfg
}

// IsAllowed returns whether the asset is acceptable collateral.
func (r *Registry) IsAllowed(assetID string) bool {
	_, ok := r.assets[assetID]
	return ok
}

// PriceFeedOf returns the price feed reference for the given asset.
func (r *Registry) PriceFeedOf(assetID string) (string, error) {
	a, ok := r.assets[assetID]
	if !ok {
		return "", ErrUnknownAsset
	}
	return a.priceFeed, nil
}

// Asset returns the full asset definition for the given ID.
func (r *Registry) Asset(assetID string) (types.Asset, error) {
	a, ok := r.assets[assetID]
	if !ok {
		return types.Asset{}, ErrUnknownAsset
	}
	return a.asset, nil
}

// AssetIDs returns all registered asset IDs, sorted.
func (r *Registry) AssetIDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
