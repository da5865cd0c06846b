// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sync"

	"github.com/danielhkuo/pmr-election/models"
)

// Broker fans out stats snapshots to subscribers. Publish never blocks:
// each subscriber holds a one-slot buffer and a slow subscriber only ever
// misses intermediate snapshots, never the latest one.
type Broker struct {
	mu     sync.Mutex
	subs   map[uint64]chan models.Stats
	nextID uint64
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]chan models.Stats)}
}

// Subscribe registers a listener and returns its channel plus a cancel
// func. Cancel closes the channel and releases the subscription; calling
// it more than once is safe.
func (b *Broker) Subscribe() (<-chan models.Stats, func()) {
	ch := make(chan models.Stats, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish pushes a snapshot to every subscriber, replacing any snapshot a
// subscriber has not consumed yet.
func (b *Broker) Publish(stats models.Stats) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- stats:
		default:
			// Drop the stale snapshot, keep the latest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- stats:
			default:
			}
		}
	}
}

// SubscriberCount reports the number of active subscriptions.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
