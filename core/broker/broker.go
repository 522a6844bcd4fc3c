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

package broker

import (
	"context"
	"sync"

	"code.haloprotocol.io/halo/core/events"
	"code.haloprotocol.io/halo/logging"
)

const namedLogger = "broker"

// Subscriber interface allows pushing values to subscribers, can be set to
// a Skip state (temporarily not receiving any events), or closed. Otherwise
// events are pushed.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/subscriber_mock.go -package mocks code.haloprotocol.io/halo/core/broker Subscriber
type Subscriber interface {
	Push(val ...events.Event)
	Skip() <-chan struct{}
	Closed() <-chan struct{}
	C() chan<- []events.Event
	Types() []events.Type
	SetID(id int)
	ID() int
	Ack() bool
}

type subscription struct {
	Subscriber
	required bool
}

// Broker - the base broker type, fans engine events out to subscribers
// registered per event type. Sequence IDs are assigned on send, so the
// order subscribers observe matches the order operations committed in.
type Broker struct {
	ctx context.Context

	mu    sync.Mutex
	log   *logging.Logger
	tSubs map[events.Type]map[int]*subscription
	// these fields ensure a unique ID for all subscribers, regardless of
	// what event types they subscribe to.
	subs  map[int]subscription
	keys  []int
	seq   uint64
	quit  chan struct{}
	smu   sync.Mutex
}

// New creates a new base broker.
func New(ctx context.Context, log *logging.Logger, config Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	b := &Broker{
		ctx:   ctx,
		log:   log,
		tSubs: map[events.Type]map[int]*subscription{},
		subs:  map[int]subscription{},
		keys:  []int{},
		quit:  make(chan struct{}),
	}
	go func() {
		<-ctx.Done()
		b.cancelAll()
	}()
	return b
}

func (b *Broker) cancelAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	close(b.quit)
	b.subs = map[int]subscription{}
	b.tSubs = map[events.Type]map[int]*subscription{}
}

// Send a single event to all subscribers interested in its type.
func (b *Broker) Send(event events.Event) {
	b.stampSeq(event)
	b.mu.Lock()
	subs := b.getSubsByType(event.Type())
	b.mu.Unlock()
	for _, sub := range subs {
		b.push(sub, event)
	}
}

// SendBatch sends a slice of events, all of the same type, the type of the
// first event in the batch is used for routing.
func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	for _, e := range evts {
		b.stampSeq(e)
	}
	b.mu.Lock()
	subs := b.getSubsByType(evts[0].Type())
	b.mu.Unlock()
	for _, sub := range subs {
		b.pushBatch(sub, evts)
	}
}

func (b *Broker) stampSeq(event events.Event) {
	b.smu.Lock()
	b.seq++
	event.SetSequenceID(b.seq)
	b.smu.Unlock()
}

func (b *Broker) push(sub *subscription, event events.Event) {
	if sub.required || sub.Ack() {
		sub.Push(event)
		return
	}
	select {
	case <-b.quit:
	case <-sub.Skip():
	case <-sub.Closed():
		b.Unsubscribe(sub.ID())
	case sub.C() <- []events.Event{event}:
	default:
		// skip this event for the subscriber, it's not keeping up
		if b.log.IsDebug() {
			b.log.Debug("dropping event for slow subscriber",
				logging.Int("subscriber-id", sub.ID()),
				logging.String("event-type", event.Type().String()),
			)
		}
	}
}

func (b *Broker) pushBatch(sub *subscription, evts []events.Event) {
	if sub.required || sub.Ack() {
		sub.Push(evts...)
		return
	}
	select {
	case <-b.quit:
	case <-sub.Skip():
	case <-sub.Closed():
		b.Unsubscribe(sub.ID())
	case sub.C() <- evts:
	default:
	}
}

// getSubsByType returns a copy of the subscribers interested in the given
// type, the All type included.
func (b *Broker) getSubsByType(t events.Type) []*subscription {
	subs := []*subscription{}
	for _, tt := range []events.Type{t, events.All} {
		if tSubs, ok := b.tSubs[tt]; ok {
			for _, s := range tSubs {
				subs = append(subs, s)
			}
		}
	}
	return subs
}

// Subscribe registers a new subscriber, returning the key.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	k := b.subscribe(s, s.Ack())
	s.SetID(k)
	b.mu.Unlock()
	return k
}

func (b *Broker) SubscribeBatch(subs ...Subscriber) {
	b.mu.Lock()
	for _, s := range subs {
		k := b.subscribe(s, s.Ack())
		s.SetID(k)
	}
	b.mu.Unlock()
}

func (b *Broker) subscribe(s Subscriber, req bool) int {
	k := b.getKey()
	sub := subscription{
		Subscriber: s,
		required:   req,
	}
	b.subs[k] = sub
	types := sub.Types()
	if len(types) == 0 {
		types = []events.Type{events.All}
	}
	for _, t := range types {
		if _, ok := b.tSubs[t]; !ok {
			b.tSubs[t] = map[int]*subscription{}
		}
		b.tSubs[t][k] = &sub
	}
	return k
}

// Unsubscribe removes subscriber from broker.
// This kills the subscriber routine and closes the channel.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rmSubs(k)
}

func (b *Broker) getKey() int {
	if len(b.keys) > 0 {
		k := b.keys[0]
		b.keys = b.keys[1:]
		return k
	}
	return len(b.subs) + 1
}

func (b *Broker) rmSubs(keys ...int) {
	for _, k := range keys {
		sub, ok := b.subs[k]
		if !ok {
			continue
		}
		types := sub.Types()
		if len(types) == 0 {
			types = []events.Type{events.All}
		}
		for _, t := range types {
			delete(b.tSubs[t], k)
			if len(b.tSubs[t]) == 0 {
				delete(b.tSubs, t)
			}
		}
		delete(b.subs, k)
		b.keys = append(b.keys, k)
	}
}
