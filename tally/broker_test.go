// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"testing"
	"time"

	"github.com/danielhkuo/pmr-election/models"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe()
	defer cancel()

	if b.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", b.SubscriberCount())
	}

	b.Publish(models.Stats{Total: 5})

	select {
	case stats := <-ch:
		if stats.Total != 5 {
			t.Errorf("received Total = %d, want 5", stats.Total)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for published stats")
	}
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe()
	cancel()

	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d after cancel, want 0", b.SubscriberCount())
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Expected channel to be closed after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("Channel not closed after cancel")
	}

	// Cancelling twice is a no-op
	cancel()
}

// TestBrokerPublishNeverBlocks drives repeated publishes at a subscriber
// that never reads. Publish must drop the stale value and keep the latest.
func TestBrokerPublishNeverBlocks(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 100; i++ {
			b.Publish(models.Stats{Total: i})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	select {
	case stats := <-ch:
		if stats.Total != 100 {
			t.Errorf("received Total = %d, want the latest value 100", stats.Total)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected the latest value to be buffered")
	}
}

func TestBrokerMultipleSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish(models.Stats{Total: 3})

	for i, ch := range []<-chan models.Stats{ch1, ch2} {
		select {
		case stats := <-ch:
			if stats.Total != 3 {
				t.Errorf("subscriber %d received Total = %d, want 3", i+1, stats.Total)
			}
		case <-time.After(time.Second):
			t.Fatalf("Subscriber %d timed out", i+1)
		}
	}
}
