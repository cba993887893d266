package event

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// Errors returned by bus operations.
var (
	// ErrNilHandler indicates a subscription was attempted with a nil handler.
	ErrNilHandler = errors.New("nil handler")

	// ErrSubscriptionNotFound indicates the subscription is not registered.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Subscription identifies an active registration on the bus.
type Subscription struct {
	id      string
	channel Name
}

// ID returns the unique subscription identifier.
func (s Subscription) ID() string {
	return s.id
}

// Channel returns the name of the subscribed channel.
func (s Subscription) Channel() Name {
	return s.channel
}

// entry pairs a subscription ID with an untyped dispatch function. The typed
// wrapper is created by Subscribe, which is the only place the payload type
// is known.
type entry struct {
	id string
	fn func(any)
}

// Bus is a process-local publish/subscribe hub. Each editor instance owns
// one; the zero value is not usable, use NewBus.
type Bus struct {
	mu       sync.RWMutex
	channels map[Name][]entry
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{channels: make(map[Name][]entry)}
}

// Subscribe registers fn for events published on ch. Handlers are invoked in
// subscription order on the publisher's goroutine.
func Subscribe[T any](b *Bus, ch Channel[T], fn func(T)) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}

	sub := Subscription{id: generateID(), channel: ch.name}

	b.mu.Lock()
	b.channels[ch.name] = append(b.channels[ch.name], entry{
		id: sub.id,
		fn: func(v any) { fn(v.(T)) },
	})
	b.mu.Unlock()

	return sub, nil
}

// Publish delivers v to every handler subscribed to ch. Publishing to a
// channel with no subscribers is a no-op.
func Publish[T any](b *Bus, ch Channel[T], v T) {
	b.mu.RLock()
	entries := b.channels[ch.name]
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	b.mu.RUnlock()

	for _, e := range snapshot {
		e.fn(v)
	}
}

// Unsubscribe removes a subscription. Returns ErrSubscriptionNotFound if the
// subscription was already removed or never registered on this bus.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.channels[sub.channel]
	for i, e := range entries {
		if e.id == sub.id {
			b.channels[sub.channel] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// SubscriberCount returns the number of handlers registered on a channel.
func (b *Bus) SubscriberCount(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels[name])
}

// generateID creates a unique subscription identifier.
func generateID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(buf)
}
