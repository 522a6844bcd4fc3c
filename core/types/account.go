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

package types

import (
	"code.haloprotocol.io/halo/libs/num"
)

// Account is a read-only snapshot of a party's position in the ledger:
// collateral balances per asset and outstanding minted debt. It is a
// copy, mutating it has no effect on the ledger.
type Account struct {
	Party      string
	Collateral map[string]*num.Uint
	Debt       *num.Uint
}

// CollateralFor returns the balance held for the given asset,
// zero if the account never deposited it.
func (a *Account) CollateralFor(asset string) *num.Uint {
	if bal, ok := a.Collateral[asset]; ok {
		return bal.Clone()
	}
	return num.UintZero()
}

func (a *Account) Clone() *Account {
	cpy := &Account{
		Party:      a.Party,
		Collateral: make(map[string]*num.Uint, len(a.Collateral)),
		Debt:       a.Debt.Clone(),
	}
	for asset, bal := range a.Collateral {
		cpy.Collateral[asset] = bal.Clone()
	}
	return cpy
}
