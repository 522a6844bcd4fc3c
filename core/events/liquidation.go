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

package events

import (
	"context"

	"code.haloprotocol.io/halo/libs/num"
)

// Liquidation is emitted when a third party forcibly closed part of an
// unhealthy account's position. The seized amount includes the
// liquidation bonus.
type Liquidation struct {
	*Base
	liquidator  string
	target      string
	asset       string
	seized      *num.Uint
	debtCovered *num.Uint
}

func NewLiquidationEvent(ctx context.Context, liquidator, target, asset string, seized, debtCovered *num.Uint) *Liquidation {
	return &Liquidation{
		Base:        newBase(ctx, LiquidationEvent),
		liquidator:  liquidator,
		target:      target,
		asset:       asset,
		seized:      seized.Clone(),
		debtCovered: debtCovered.Clone(),
	}
}

// IsParty matches both sides of the liquidation, so party-scoped
// subscribers see it whether they were the liquidator or the target.
func (l Liquidation) IsParty(id string) bool {
	return l.liquidator == id || l.target == id
}

func (l Liquidation) Liquidator() string { return l.liquidator }

func (l Liquidation) TargetID() string { return l.target }

func (l Liquidation) AssetID() string { return l.asset }

func (l Liquidation) SeizedAmount() *num.Uint { return l.seized.Clone() }

func (l Liquidation) DebtCovered() *num.Uint { return l.debtCovered.Clone() }
