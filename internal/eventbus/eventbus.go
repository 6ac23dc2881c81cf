// Package eventbus provides an in-process fan-out channel for ranked
// optimization results, decoupling the decision engine from exporters and
// metric recorders.
package eventbus

import (
	"sync"
	"sync/atomic"
)

// Sub is one live subscription. C delivers events until the bus closes it.
type Sub[T any] struct {
	C <-chan T

	ch chan T
}

// Bus is a type-safe publish/subscribe fan-out. Slow subscribers drop
// events rather than blocking the publisher.
type Bus[T any] struct {
	mu      sync.RWMutex
	subs    map[*Sub[T]]struct{}
	dropped atomic.Uint64
	closed  bool
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[*Sub[T]]struct{})}
}

// Publish sends the event to all subscribers. Delivery is non-blocking; a
// full subscriber buffer counts the event as dropped for that subscriber.
func (b *Bus[T]) Publish(e T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for s := range b.subs {
		select {
		case s.ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe registers a subscriber with the given buffer size.
func (b *Bus[T]) Subscribe(buffer int) *Sub[T] {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan T, buffer)
	s := &Sub[T]{C: ch, ch: ch}
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[s] = struct{}{}
	}
	b.mu.Unlock()
	return s
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Bus[T]) Unsubscribe(s *Sub[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[s]; !ok {
		return
	}
	delete(b.subs, s)
	if !b.closed {
		close(s.ch)
	}
}

// Dropped returns the number of events discarded because a subscriber
// buffer was full.
func (b *Bus[T]) Dropped() uint64 {
	return b.dropped.Load()
}

// Close closes all subscriber channels and rejects further publishes.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
	}
	b.subs = nil
}
