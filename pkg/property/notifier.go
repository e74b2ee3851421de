package property

import (
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Notifier delivers a value of type A to every subscribed callback.
//
// The zero value is ready to use. A Notifier is safe for concurrent use;
// subscribing and unsubscribing may happen while a notification is running
// on another goroutine or from inside a callback.
type Notifier[A any] struct {
	mu     sync.Mutex
	subs   *linkedhashmap.Map // int64 -> *subscriber[A], insertion ordered
	nextID int64
}

type subscriber[A any] struct {
	fn       func(A)
	canceled atomic.Bool
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       int64
	canceled *atomic.Bool
	remove   func(id int64)
}

// Unsubscribe stops delivery to the subscribed callback. It is safe to call
// more than once and from inside the callback itself.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	if s.canceled.CompareAndSwap(false, true) {
		s.remove(s.id)
	}
}

// Active reports whether the subscription still receives notifications.
func (s *Subscription) Active() bool {
	return s != nil && !s.canceled.Load()
}

// Subscribe registers fn. Callbacks are called in subscription order.
func (n *Notifier[A]) Subscribe(fn func(A)) *Subscription {
	sub := &subscriber[A]{fn: fn}

	n.mu.Lock()
	if n.subs == nil {
		n.subs = linkedhashmap.New()
	}
	n.nextID++
	id := n.nextID
	n.subs.Put(id, sub)
	n.mu.Unlock()

	return &Subscription{id: id, canceled: &sub.canceled, remove: n.remove}
}

// SubscribeVoid registers a callback that does not care about the argument.
func (n *Notifier[A]) SubscribeVoid(fn func()) *Subscription {
	return n.Subscribe(func(A) { fn() })
}

// Notify calls every subscribed callback with arg on the calling goroutine.
//
// Delivery walks a snapshot of the subscribers taken when Notify starts.
// A callback unsubscribed before it is reached is skipped; a callback
// subscribed during delivery is first called by the next Notify.
func (n *Notifier[A]) Notify(arg A) {
	n.mu.Lock()
	if n.subs == nil || n.subs.Empty() {
		n.mu.Unlock()
		return
	}
	snapshot := make([]*subscriber[A], 0, n.subs.Size())
	it := n.subs.Iterator()
	for it.Next() {
		snapshot = append(snapshot, it.Value().(*subscriber[A]))
	}
	n.mu.Unlock()

	for _, sub := range snapshot {
		if !sub.canceled.Load() {
			sub.fn(arg)
		}
	}
}

// UnsubscribeAll removes every subscriber.
func (n *Notifier[A]) UnsubscribeAll() {
	n.mu.Lock()
	if n.subs == nil {
		n.mu.Unlock()
		return
	}
	it := n.subs.Iterator()
	for it.Next() {
		it.Value().(*subscriber[A]).canceled.Store(true)
	}
	n.subs.Clear()
	n.mu.Unlock()
}

// Len returns the number of active subscribers.
func (n *Notifier[A]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		return 0
	}
	return n.subs.Size()
}

func (n *Notifier[A]) remove(id int64) {
	n.mu.Lock()
	if n.subs != nil {
		n.subs.Remove(id)
	}
	n.mu.Unlock()
}
