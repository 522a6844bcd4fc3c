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

import "errors"

var (
	// ErrZeroAmount is returned when an operation is called with a zero
	// amount, all operations require a strictly positive amount.
	ErrZeroAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientCollateral is returned when a withdrawal-class
	// operation requests more collateral than the strict rule allows.
	ErrInsufficientCollateral = errors.New("insufficient collateral")
	// ErrInsufficientDebtToBurn is returned when a burn requests more debt
	// than the account has outstanding.
	ErrInsufficientDebtToBurn = errors.New("insufficient debt to burn")
	// ErrDebtCapExceeded is returned when a mint would push the account's
	// debt over the configured per-account cap.
	ErrDebtCapExceeded = errors.New("debt cap exceeded")
	// ErrSolvencyViolation is returned when the operation would leave the
	// account's health factor below the minimum. The operation is fully
	// rolled back.
	ErrSolvencyViolation = errors.New("health factor below minimum")
	// ErrTransferFailed is returned when an asset or debt-token transfer
	// collaborator declined the transfer.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrMintFailed is returned when the debt-token collaborator declined
	// the mint.
	ErrMintFailed = errors.New("debt token mint failed")
	// ErrReentrancyDetected is returned when an operation is invoked while
	// another one is still in progress on the same engine.
	ErrReentrancyDetected = errors.New("reentrant call on collateral engine")
	// ErrMissingAssetSource is returned at construction when a registered
	// asset has no transfer collaborator wired.
	ErrMissingAssetSource = errors.New("missing asset source for registered asset")
	// ErrInvalidDebtCap is returned at construction when the configured
	// per-account debt cap is not a valid amount.
	ErrInvalidDebtCap = errors.New("invalid per-account debt cap")
	// ErrNoAccount is returned by read-only getters for parties that never
	// deposited.
	ErrNoAccount = errors.New("party has no account")
)
