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

// Asset identifies a collateral asset accepted by the engine.
// The engine never holds asset-specific logic, an asset is only
// an identity plus the reference of the price feed quoting it.
type Asset struct {
	// ID opaque unique identifier of the asset (address, symbol...).
	ID string
	// Symbol human readable symbol, used in logs only.
	Symbol string
}

func (a Asset) String() string {
	if a.Symbol != "" {
		return a.Symbol
	}
	return a.ID
}
