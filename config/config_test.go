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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"code.haloprotocol.io/halo/config"
	"code.haloprotocol.io/halo/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.NewDefaultConfig()
	require.NoError(t, config.Write(path, &cfg))

	got, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func TestReadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte("[Collateral]\nLevel = \"Debug\"\nMaxDebtPerAccount = \"12345\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	got, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, got.Collateral.Level.Get())
	assert.Equal(t, "12345", got.Collateral.MaxDebtPerAccount)
	// untouched sections keep their defaults
	def := config.NewDefaultConfig()
	assert.Equal(t, def.Broker, got.Broker)
	assert.Equal(t, def.Liquidation, got.Liquidation)
}

func TestReadMissingFile(t *testing.T) {
	_, err := config.Read(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
