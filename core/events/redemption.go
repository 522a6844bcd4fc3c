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

// Redemption is emitted when an account released collateral and burned debt
// in one transaction.
type Redemption struct {
	*Base
	party            string
	asset            string
	collateralAmount *num.Uint
	debtAmount       *num.Uint
}

func NewRedemptionEvent(ctx context.Context, party, asset string, collateralAmount, debtAmount *num.Uint) *Redemption {
	return &Redemption{
		Base:             newBase(ctx, RedemptionEvent),
		party:            party,
		asset:            asset,
		collateralAmount: collateralAmount.Clone(),
		debtAmount:       debtAmount.Clone(),
	}
}

func (r Redemption) IsParty(id string) bool {
	return r.party == id
}

func (r Redemption) PartyID() string { return r.party }

func (r Redemption) AssetID() string { return r.asset }

func (r Redemption) CollateralAmount() *num.Uint { return r.collateralAmount.Clone() }

func (r Redemption) DebtAmount() *num.Uint { return r.debtAmount.Clone() }
