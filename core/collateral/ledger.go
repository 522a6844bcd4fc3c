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

package collateral

import (
	"sort"

	"code.haloprotocol.io/halo/core/types"
	"code.haloprotocol.io/halo/libs/num"
)

type account struct {
	party      string
	collateral map[string]*num.Uint
	debt       *num.Uint
}

func newAccount(party string) *account {
	return &account{
		party:      party,
		collateral: map[string]*num.Uint{},
		debt:       num.UintZero(),
	}
}

func (a *account) clone() *account {
	cpy := newAccount(a.party)
	cpy.debt = a.debt.Clone()
	for asset, bal := range a.collateral {
		cpy.collateral[asset] = bal.Clone()
	}
	return cpy
}

func (a *account) collateralFor(asset string) *num.Uint {
	if bal, ok := a.collateral[asset]; ok {
		return bal
	}
	return num.UintZero()
}

// Ledger is the sole authoritative store of collateral and debt balances.
// Accounts are created implicitly on first deposit and never destroyed.
// All mutations go through a transaction so a failing operation can restore
// the exact pre-operation state.
type Ledger struct {
	accounts map[string]*account
	// maxDebt is the per-account minted debt cap, checked on every
	// debt increase before the health factor is.
	maxDebt *num.Uint
}

// NewLedger creates an empty ledger enforcing the given per-account debt cap.
func NewLedger(maxDebt *num.Uint) *Ledger {
	return &Ledger{
		accounts: map[string]*account{},
		maxDebt:  maxDebt.Clone(),
	}
}

// GetCollateral returns the collateral the party holds in the given asset,
// zero if the party never deposited it.
func (l *Ledger) GetCollateral(party, asset string) *num.Uint {
	acc, ok := l.accounts[party]
	if !ok {
		return num.UintZero()
	}
	return acc.collateralFor(asset).Clone()
}

// GetDebt returns the party's outstanding minted debt.
func (l *Ledger) GetDebt(party string) *num.Uint {
	acc, ok := l.accounts[party]
	if !ok {
		return num.UintZero()
	}
	return acc.debt.Clone()
}

// AccountInfo returns a read-only snapshot of the party's account.
func (l *Ledger) AccountInfo(party string) (*types.Account, error) {
	acc, ok := l.accounts[party]
	if !ok {
		return nil, ErrNoAccount
	}
	out := &types.Account{
		Party:      acc.party,
		Collateral: make(map[string]*num.Uint, len(acc.collateral)),
		Debt:       acc.debt.Clone(),
	}
	for asset, bal := range acc.collateral {
		out.Collateral[asset] = bal.Clone()
	}
	return out, nil
}

// Parties returns all parties with an account, sorted for deterministic
// iteration.
func (l *Ledger) Parties() []string {
	out := make([]string, 0, len(l.accounts))
	for party := range l.accounts {
		out = append(out, party)
	}
	sort.Strings(out)
	return out
}

// TotalDebt returns the sum of all outstanding minted debt.
func (l *Ledger) TotalDebt() *num.Uint {
	total := num.UintZero()
	for _, acc := range l.accounts {
		total.AddSum(acc.debt)
	}
	return total
}

// Begin opens a transaction on the ledger. Accounts are copied on first
// touch, so Rollback restores the exact pre-transaction state and Commit
// is free.
func (l *Ledger) Begin() *Tx {
	return &Tx{
		ledger: l,
		saved:  map[string]*account{},
	}
}

// Tx is an operation-scoped ledger transaction. It is not safe for
// concurrent use, which is fine: the engine serializes operations.
type Tx struct {
	ledger *Ledger
	// saved holds the pre-transaction copy of every touched account,
	// a nil value records that the account did not exist yet.
	saved map[string]*account
	done  bool
}

func (t *Tx) touch(party string) *account {
	acc, ok := t.ledger.accounts[party]
	if _, touched := t.saved[party]; !touched {
		if ok {
			t.saved[party] = acc.clone()
		} else {
			t.saved[party] = nil
		}
	}
	if !ok {
		acc = newAccount(party)
		t.ledger.accounts[party] = acc
	}
	return acc
}

// AddCollateral increases the party's collateral in the given asset,
// creating the account if needed.
func (t *Tx) AddCollateral(party, asset string, amount *num.Uint) {
	acc := t.touch(party)
	bal, ok := acc.collateral[asset]
	if !ok {
		bal = num.UintZero()
		acc.collateral[asset] = bal
	}
	bal.Add(bal, amount)
}

// SubCollateral decreases the party's collateral in the given asset. It
// fails on underflow only, the strict withdrawal rule lives in the engine.
func (t *Tx) SubCollateral(party, asset string, amount *num.Uint) error {
	acc := t.touch(party)
	bal := acc.collateralFor(asset)
	if bal.LT(amount) {
		return ErrInsufficientCollateral
	}
	bal.Sub(bal, amount)
	return nil
}

// AddDebt increases the party's minted debt, enforcing the per-account cap.
func (t *Tx) AddDebt(party string, amount *num.Uint) error {
	acc := t.touch(party)
	newDebt := num.Sum(acc.debt, amount)
	if newDebt.GT(t.ledger.maxDebt) {
		return ErrDebtCapExceeded
	}
	acc.debt.Set(newDebt)
	return nil
}

// SubDebt decreases the party's minted debt, failing on underflow.
func (t *Tx) SubDebt(party string, amount *num.Uint) error {
	acc := t.touch(party)
	if acc.debt.LT(amount) {
		return ErrInsufficientDebtToBurn
	}
	acc.debt.Sub(acc.debt, amount)
	return nil
}

// Commit makes the transaction's mutations final.
func (t *Tx) Commit() {
	t.saved = nil
	t.done = true
}

// Rollback restores every touched account to its pre-transaction state.
// No-op once the transaction committed.
func (t *Tx) Rollback() {
	if t.done {
		return
	}
	for party, acc := range t.saved {
		if acc == nil {
			delete(t.ledger.accounts, party)
			continue
		}
		t.ledger.accounts[party] = acc
	}
	t.saved = nil
	t.done = true
}
