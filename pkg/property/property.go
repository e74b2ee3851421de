package property

import "sync"

// ReadOnly is the read side of a property.
type ReadOnly[T any] interface {
	// Get returns the current value.
	Get() T
	// OnChange returns the notifier fired after each Set.
	OnChange() *Notifier[ReadOnly[T]]
}

// Option configures a Property.
type Option func(*options)

type options struct {
	changedOnly bool
}

// NotifyOnlyOnChange makes Set skip the change notification when the new
// value equals the stored one. Without it every Set notifies.
func NotifyOnlyOnChange() Option {
	return func(o *options) { o.changedOnly = true }
}

// Property is a thread-safe value cell with change notification.
//
// Get and Set hold the internal lock only while touching the stored value;
// change notifications run after the lock is released, on the goroutine
// that called Set.
type Property[T comparable] struct {
	mu       sync.Mutex
	value    T
	opts     options
	onChange Notifier[ReadOnly[T]]

	bindMu  sync.Mutex
	bindSub *Subscription
}

// New returns a property holding initial.
func New[T comparable](initial T, opts ...Option) *Property[T] {
	p := &Property[T]{value: initial}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Set stores v and notifies subscribers.
//
// Subscribers are notified even when v equals the stored value unless the
// property was created with NotifyOnlyOnChange. Bind chains rely on the
// unconditional notification to resynchronize.
func (p *Property[T]) Set(v T) {
	p.mu.Lock()
	changed := p.value != v
	if changed {
		p.value = v
	}
	p.mu.Unlock()

	if !changed && p.opts.changedOnly {
		return
	}
	p.onChange.Notify(p)
}

// OnChange returns the change notifier.
func (p *Property[T]) OnChange() *Notifier[ReadOnly[T]] {
	return &p.onChange
}

// Bind makes p follow src: p copies src's current value now and again on
// every change of src. A previous binding is dropped first.
func (p *Property[T]) Bind(src ReadOnly[T]) {
	p.bindTo(src, func(s ReadOnly[T]) { p.Set(s.Get()) })
}

// Unbind drops the current binding, if any. The value is left as is.
func (p *Property[T]) Unbind() {
	p.bindMu.Lock()
	sub := p.bindSub
	p.bindSub = nil
	p.bindMu.Unlock()
	sub.Unsubscribe()
}

// Bound reports whether p currently follows another property.
func (p *Property[T]) Bound() bool {
	p.bindMu.Lock()
	defer p.bindMu.Unlock()
	return p.bindSub.Active()
}

// Close tears the property down. The bind subscription is released before
// the subscribers are dropped so the source can no longer notify into a
// half-closed property.
func (p *Property[T]) Close() {
	p.Unbind()
	p.onChange.UnsubscribeAll()
}

func (p *Property[T]) bindTo(src ReadOnly[T], changed func(ReadOnly[T])) {
	sub := src.OnChange().Subscribe(changed)

	p.bindMu.Lock()
	old := p.bindSub
	p.bindSub = sub
	p.bindMu.Unlock()
	old.Unsubscribe()

	changed(src)
}

// BindFunc binds dst to src through transform. dst is set to
// transform(src.Get()) now and on every change of src.
func BindFunc[S any, T comparable](dst *Property[T], src ReadOnly[S], transform func(S) T) {
	sub := src.OnChange().Subscribe(func(s ReadOnly[S]) {
		dst.Set(transform(s.Get()))
	})

	dst.bindMu.Lock()
	old := dst.bindSub
	dst.bindSub = sub
	dst.bindMu.Unlock()
	old.Unsubscribe()

	dst.Set(transform(src.Get()))
}
