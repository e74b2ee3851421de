// Package property provides the reactive cells that carry state between a
// portable view and its native core.
//
// A [Notifier] fans an event out to any number of subscribers in
// subscription order. A [Property] is a mutex-guarded value with a change
// notifier and an optional one-way binding to another property:
//
//	visible := property.New(true)
//	sub := visible.OnChange().Subscribe(func(p property.ReadOnly[bool]) {
//	    fmt.Println("visible:", p.Get())
//	})
//	defer sub.Unsubscribe()
//	visible.Set(false)
//
// Subscribers run synchronously on the goroutine that called Set. A
// subscriber that touches native UI state must redispatch to the UI thread
// itself; this package never does.
package property
