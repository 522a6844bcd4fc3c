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

package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Stringer is implemented by the num types among others, we redeclare it here
// to avoid dragging fmt into every call site type assertion.
type Stringer interface {
	String() string
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

func Error(val error) zap.Field {
	return zap.Error(val)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// BigUint logs an arbitrary precision unsigned integer (num.Uint and friends)
// using its decimal string representation.
func BigUint(key string, val Stringer) zap.Field {
	if val == nil {
		return zap.String(key, "nil")
	}
	return zap.String(key, val.String())
}

func Decimal(key string, val Stringer) zap.Field {
	if val == nil {
		return zap.String(key, "nil")
	}
	return zap.String(key, val.String())
}

func PartyID(id string) zap.Field {
	return zap.String("party", id)
}

func AssetID(id string) zap.Field {
	return zap.String("asset", id)
}

func Reflect(key string, val interface{}) zap.Field {
	return zap.String(key, fmt.Sprintf("%+v", val))
}
