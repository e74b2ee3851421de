package property

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	var n Notifier[int]
	var got []string
	for _, name := range []string{"a", "b", "c", "d"} {
		n.Subscribe(func(v int) { got = append(got, name) })
	}

	n.Notify(1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	var n Notifier[string]
	calls := 0
	sub := n.Subscribe(func(string) { calls++ })

	n.Notify("x")
	sub.Unsubscribe()
	sub.Unsubscribe()
	n.Notify("y")

	assert.Equal(t, 1, calls)
	assert.False(t, sub.Active())
	assert.Equal(t, 0, n.Len())
}

func TestNotifier_UnsubscribeDuringNotify(t *testing.T) {
	var n Notifier[int]
	var got []string
	var second *Subscription

	n.Subscribe(func(int) {
		got = append(got, "first")
		second.Unsubscribe()
	})
	second = n.Subscribe(func(int) { got = append(got, "second") })
	n.Subscribe(func(int) { got = append(got, "third") })

	n.Notify(0)
	assert.Equal(t, []string{"first", "third"}, got)
}

func TestNotifier_SelfUnsubscribeDuringNotify(t *testing.T) {
	var n Notifier[int]
	var got []int
	var self *Subscription
	self = n.Subscribe(func(v int) {
		got = append(got, v)
		self.Unsubscribe()
	})
	n.Subscribe(func(v int) { got = append(got, v*10) })

	n.Notify(1)
	n.Notify(2)
	assert.Equal(t, []int{1, 10, 20}, got)
}

func TestNotifier_SubscribeDuringNotifyWaitsForNextRound(t *testing.T) {
	var n Notifier[int]
	late := 0
	once := sync.Once{}
	n.Subscribe(func(int) {
		once.Do(func() {
			n.Subscribe(func(int) { late++ })
		})
	})

	n.Notify(1)
	assert.Equal(t, 0, late)
	n.Notify(2)
	assert.Equal(t, 1, late)
}

func TestNotifier_UnsubscribeAll(t *testing.T) {
	var n Notifier[int]
	a := n.Subscribe(func(int) { t.Fatal("unexpected delivery") })
	b := n.SubscribeVoid(func() { t.Fatal("unexpected delivery") })

	n.UnsubscribeAll()
	n.Notify(1)

	assert.False(t, a.Active())
	assert.False(t, b.Active())
	assert.Zero(t, n.Len())
}

func TestNotifier_ConcurrentSubscribeAndNotify(t *testing.T) {
	var n Notifier[int]
	var mu sync.Mutex
	total := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := n.Subscribe(func(v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			sub.Unsubscribe()
		}()
		go func() {
			defer wg.Done()
			n.Notify(1)
		}()
	}
	wg.Wait()

	require.Equal(t, 0, n.Len())
}
