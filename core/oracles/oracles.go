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

package oracles

import (
	"context"
	"errors"
	"sync"

	"code.haloprotocol.io/halo/libs/num"
)

// ErrOracleUnavailable is returned when a price feed has no valid price
// for the requested reference.
var ErrOracleUnavailable = errors.New("oracle unavailable")

// PriceSource supplies the current price for a feed reference. Prices are
// 8 decimal place fixed-point values. A false return means the feed has no
// valid price right now, and the calling operation must fail, the engines
// never cache prices across operations.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/price_source_mock.go -package mocks code.haloprotocol.io/halo/core/oracles PriceSource
type PriceSource interface {
	LatestPrice(ctx context.Context, feedRef string) (*num.Uint, bool)
}

// StaticSource is a PriceSource backed by an in-memory table, used in tests
// and by local development tooling. Feeds with no price set report invalid.
type StaticSource struct {
	mu     sync.RWMutex
	prices map[string]*num.Uint
}

func NewStaticSource() *StaticSource {
	return &StaticSource{
		prices: map[string]*num.Uint{},
	}
}

// SetPrice sets the current price for a feed reference.
func (s *StaticSource) SetPrice(feedRef string, price *num.Uint) {
	s.mu.Lock()
	s.prices[feedRef] = price.Clone()
	s.mu.Unlock()
}

// Invalidate removes the price for a feed, subsequent reads report invalid.
func (s *StaticSource) Invalidate(feedRef string) {
	s.mu.Lock()
	delete(s.prices, feedRef)
	s.mu.Unlock()
}

func (s *StaticSource) LatestPrice(_ context.Context, feedRef string) (*num.Uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prices[feedRef]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}
