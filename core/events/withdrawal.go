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

// Withdrawal is emitted when collateral left the engine's custody back to
// the owning account, with the post-withdrawal solvency check passed.
type Withdrawal struct {
	*Base
	party  string
	asset  string
	amount *num.Uint
}

func NewWithdrawalEvent(ctx context.Context, party, asset string, amount *num.Uint) *Withdrawal {
	return &Withdrawal{
		Base:   newBase(ctx, WithdrawalEvent),
		party:  party,
		asset:  asset,
		amount: amount.Clone(),
	}
}

func (w Withdrawal) IsParty(id string) bool {
	return w.party == id
}

func (w Withdrawal) PartyID() string { return w.party }

func (w Withdrawal) AssetID() string { return w.asset }

func (w Withdrawal) Amount() *num.Uint { return w.amount.Clone() }
