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

// Burn is emitted when an account destroyed part of its minted debt,
// after the debt token confirmed both the transfer and the burn.
type Burn struct {
	*Base
	party  string
	amount *num.Uint
}

func NewBurnEvent(ctx context.Context, party string, amount *num.Uint) *Burn {
	return &Burn{
		Base:   newBase(ctx, BurnEvent),
		party:  party,
		amount: amount.Clone(),
	}
}

func (b Burn) IsParty(id string) bool {
	return b.party == id
}

func (b Burn) PartyID() string { return b.party }

func (b Burn) Amount() *num.Uint { return b.amount.Clone() }
