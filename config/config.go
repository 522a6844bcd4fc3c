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

package config

import (
	"os"

	"code.haloprotocol.io/halo/core/assets"
	"code.haloprotocol.io/halo/core/broker"
	"code.haloprotocol.io/halo/core/collateral"
	"code.haloprotocol.io/halo/core/liquidation"

	"github.com/BurntSushi/toml"
)

// Config ties together all the engine configurations. It is read from
// config.toml, every field falls back to its engine's default when the
// file omits it.
type Config struct {
	Assets      assets.Config      `group:"Assets"      namespace:"assets"`
	Broker      broker.Config      `group:"Broker"      namespace:"broker"`
	Collateral  collateral.Config  `group:"Collateral"  namespace:"collateral"`
	Liquidation liquidation.Config `group:"Liquidation" namespace:"liquidation"`
}

// NewDefaultConfig returns a fully defaulted configuration.
func NewDefaultConfig() Config {
	return Config{
		Assets:      assets.NewDefaultConfig(),
		Broker:      broker.NewDefaultConfig(),
		Collateral:  collateral.NewDefaultConfig(),
		Liquidation: liquidation.NewDefaultConfig(),
	}
}

// Read loads a configuration from the given toml file, on top of the
// defaults.
func Read(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write serializes the configuration to the given file, used to seed a
// default config.toml on first run.
func Write(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
