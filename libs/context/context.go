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

package context

import (
	"context"

	vgcrypto "code.haloprotocol.io/halo/libs/crypto"
)

type (
	traceIDKey int
)

const (
	traceIDK traceIDKey = iota
)

// WithTraceID returns a context with the given trace ID set, used to
// correlate the audit events emitted by an operation with the request
// that triggered it.
func WithTraceID(ctx context.Context, tID string) context.Context {
	return context.WithValue(ctx, traceIDK, tID)
}

// TraceIDFromContext returns the trace ID from the context, generating
// and setting a new one if the context carries none.
func TraceIDFromContext(ctx context.Context) (context.Context, string) {
	tID := ctx.Value(traceIDK)
	if tID == nil {
		stID := vgcrypto.RandomHash()
		ctx = WithTraceID(ctx, stID)
		return ctx, stID
	}
	stID, ok := tID.(string)
	if !ok {
		stID = vgcrypto.RandomHash()
		ctx = WithTraceID(ctx, stID)
	}
	return ctx, stID
}
