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

	vgcontext "code.haloprotocol.io/halo/libs/context"

	"github.com/pkg/errors"
)

var ErrInvalidEventType = errors.New("invalid event type")

type Type int

const (
	// All event type -> used by subscribers to just receive all events,
	// has no actual corresponding event payload.
	All Type = iota
	// other event types that DO have corresponding event payloads.
	DepositEvent
	MintEvent
	WithdrawalEvent
	BurnEvent
	RedemptionEvent
	LiquidationEvent
)

var eventStrings = map[Type]string{
	All:              "ALL",
	DepositEvent:     "DepositEvent",
	MintEvent:        "MintEvent",
	WithdrawalEvent:  "WithdrawalEvent",
	BurnEvent:        "BurnEvent",
	RedemptionEvent:  "RedemptionEvent",
	LiquidationEvent: "LiquidationEvent",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event - the base event interface type. The sequence ID is assigned by the
// broker on send, and only set once.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
	SetSequenceID(s uint64)
	// IsParty filtering support for subscribers interested in a single
	// account's activity.
	IsParty(id string) bool
}

// Base common denominator all event-bus events share.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

func newBase(ctx context.Context, t Type) *Base {
	ctx, tID := vgcontext.TraceIDFromContext(ctx)
	return &Base{
		ctx:     ctx,
		traceID: tID,
		et:      t,
	}
}

// TraceID returns the... wait for it... TraceID.
func (b Base) TraceID() string {
	return b.traceID
}

func (b Base) Context() context.Context {
	return b.ctx
}

// Sequence returns event sequence number.
func (b Base) Sequence() uint64 {
	return b.seq
}

// SetSequenceID sets the sequence number, only the broker should use this,
// and only once per event.
func (b *Base) SetSequenceID(s uint64) {
	if b.seq != 0 {
		return
	}
	b.seq = s
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}
