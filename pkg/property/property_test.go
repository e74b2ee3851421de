package property

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_SetThenGet(t *testing.T) {
	p := New(1)
	for _, v := range []int{2, -7, 0, 2} {
		p.Set(v)
		assert.Equal(t, v, p.Get())
	}
}

func TestProperty_SetNotifiesWithProperty(t *testing.T) {
	p := New("a")
	var seen []string
	p.OnChange().Subscribe(func(r ReadOnly[string]) {
		seen = append(seen, r.Get())
	})

	p.Set("b")
	assert.Equal(t, []string{"b"}, seen)
}

func TestProperty_SetSameValueStillNotifies(t *testing.T) {
	p := New(5)
	calls := 0
	p.OnChange().SubscribeVoid(func() { calls++ })

	p.Set(5)
	p.Set(5)
	assert.Equal(t, 2, calls)
}

func TestProperty_NotifyOnlyOnChange(t *testing.T) {
	p := New(5, NotifyOnlyOnChange())
	calls := 0
	p.OnChange().SubscribeVoid(func() { calls++ })

	p.Set(5)
	assert.Equal(t, 0, calls)
	p.Set(6)
	assert.Equal(t, 1, calls)
}

func TestProperty_BindCopiesImmediately(t *testing.T) {
	src := New(10)
	dst := New(0)

	dst.Bind(src)
	assert.Equal(t, 10, dst.Get())
	assert.True(t, dst.Bound())
}

func TestProperty_BindFollowsSourceBeforeSetReturns(t *testing.T) {
	src := New("x")
	dst := New("")
	dst.Bind(src)

	src.Set("y")
	assert.Equal(t, "y", dst.Get())
}

func TestProperty_RebindDropsOldSource(t *testing.T) {
	first := New(1)
	second := New(2)
	dst := New(0)

	dst.Bind(first)
	dst.Bind(second)
	require.Equal(t, 2, dst.Get())

	first.Set(100)
	assert.Equal(t, 2, dst.Get())
	assert.Equal(t, 0, first.OnChange().Len())

	second.Set(3)
	assert.Equal(t, 3, dst.Get())
}

func TestProperty_BindChain(t *testing.T) {
	a := New(0)
	b := New(0)
	c := New(0)
	b.Bind(a)
	c.Bind(b)

	a.Set(42)
	assert.Equal(t, 42, c.Get())
}

func TestProperty_BindFunc(t *testing.T) {
	count := New(3)
	label := New("")
	BindFunc[int, string](label, count, strconv.Itoa)
	assert.Equal(t, "3", label.Get())

	count.Set(12)
	assert.Equal(t, "12", label.Get())
}

func TestProperty_CloseUnsubscribesFromSource(t *testing.T) {
	src := New(1)
	dst := New(0)
	dst.Bind(src)
	dst.OnChange().SubscribeVoid(func() { t.Fatal("closed property notified") })

	dst.Close()
	src.Set(2)

	assert.Equal(t, 1, dst.Get())
	assert.Equal(t, 0, src.OnChange().Len())
	assert.False(t, dst.Bound())
}

func TestProperty_Unbind(t *testing.T) {
	src := New(1)
	dst := New(0)
	dst.Bind(src)
	dst.Unbind()

	src.Set(9)
	assert.Equal(t, 1, dst.Get())
}

func TestProperty_ConcurrentSetGet(t *testing.T) {
	p := New(0)
	var notified sync.WaitGroup
	var mu sync.Mutex
	count := 0
	p.OnChange().SubscribeVoid(func() {
		mu.Lock()
		count++
		mu.Unlock()
		notified.Done()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		notified.Add(1)
		go func(v int) {
			defer wg.Done()
			p.Set(v)
			_ = p.Get()
		}(i)
	}
	wg.Wait()
	notified.Wait()

	assert.Equal(t, 50, count)
	assert.NotZero(t, p.Get())
}

func TestOptional(t *testing.T) {
	none := None[int]()
	_, ok := none.Get()
	assert.False(t, ok)
	assert.Equal(t, 7, none.OrElse(7))

	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, some == Some(3))
	assert.False(t, some == none)
}
