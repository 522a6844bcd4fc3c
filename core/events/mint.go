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

// Mint is emitted when new debt units were created against an account's
// collateral, after the solvency check passed and the debt token
// acknowledged the mint.
type Mint struct {
	*Base
	party  string
	amount *num.Uint
}

func NewMintEvent(ctx context.Context, party string, amount *num.Uint) *Mint {
	return &Mint{
		Base:   newBase(ctx, MintEvent),
		party:  party,
		amount: amount.Clone(),
	}
}

func (m Mint) IsParty(id string) bool {
	return m.party == id
}

func (m Mint) PartyID() string { return m.party }

func (m Mint) Amount() *num.Uint { return m.amount.Clone() }
