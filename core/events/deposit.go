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

// Deposit is emitted once a deposit operation fully commits: the ledger
// reflects the new collateral balance and the asset source confirmed the
// funds transfer.
type Deposit struct {
	*Base
	party  string
	asset  string
	amount *num.Uint
}

func NewDepositEvent(ctx context.Context, party, asset string, amount *num.Uint) *Deposit {
	return &Deposit{
		Base:   newBase(ctx, DepositEvent),
		party:  party,
		asset:  asset,
		amount: amount.Clone(),
	}
}

func (d Deposit) IsParty(id string) bool {
	return d.party == id
}

func (d Deposit) PartyID() string { return d.party }

func (d Deposit) AssetID() string { return d.asset }

func (d Deposit) Amount() *num.Uint { return d.amount.Clone() }
