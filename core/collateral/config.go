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
	"code.haloprotocol.io/halo/config/encoding"
	"code.haloprotocol.io/halo/logging"
)

// DefaultMaxDebtPerAccount caps any single account's minted debt at
// 100 million units (18 decimal fixed point).
const DefaultMaxDebtPerAccount = "100000000000000000000000000"

// Config represents the collateral engine specific configuration.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// MaxDebtPerAccount is the per-account minted debt cap, an 18 decimal
	// fixed-point amount in its decimal string representation.
	MaxDebtPerAccount string `long:"max-debt-per-account"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level:             encoding.LogLevel{Level: logging.InfoLevel},
		MaxDebtPerAccount: DefaultMaxDebtPerAccount,
	}
}
