package platform

import "sync"

// DispatchFunc schedules callback on the UI thread.
type DispatchFunc func(callback func())

var (
	dispatchMu   sync.RWMutex
	dispatchFunc DispatchFunc
)

// RegisterDispatch sets the function Dispatch schedules callbacks with.
// It is called once by the toolkit binding during initialization; nil
// removes it.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules callback on the UI thread. It returns false without
// scheduling anything if no dispatch function is registered or callback is
// nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// RunOnUIThread dispatches fn, or runs it on the calling goroutine when
// no dispatch function is registered.
func RunOnUIThread(fn func()) {
	if !Dispatch(fn) && fn != nil {
		fn()
	}
}

// OnUIThread wraps a subscriber so each call is redispatched with
// RunOnUIThread. Property notifications are delivered on the goroutine
// that called Set; subscribers that touch views or widgets use this when
// values may be set from elsewhere.
func OnUIThread[A any](fn func(A)) func(A) {
	return func(a A) {
		RunOnUIThread(func() { fn(a) })
	}
}
