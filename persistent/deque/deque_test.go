package deque

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/fpcoll/persistent/list"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequePushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	d := New[int]().PushFront(1).PushBack(2).PushFront(0).PushBack(3)
	require.Equal(t, 4, d.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(d.All()))

	x, d, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, x)
	x, d, ok = d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, x)
	x, d, ok = d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, x)
	x, d, ok = d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 2, x)

	assert.Equal(t, 0, d.Len())
	_, _, ok = d.PopFront()
	assert.False(t, ok)
	_, _, ok = d.PopBack()
	assert.False(t, ok)
}

func TestDequeIter(t *testing.T) {
	d := New[string]().PushFront("World").PushFront("Hello")
	assert.Equal(t, []string{"Hello", "World"}, slices.Collect(d.All()))
	assert.Equal(t, "[Hello World]", d.String())
}

func TestDequeIterRestartable(t *testing.T) {
	d := New[int]()
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			d = d.PushFront(i)
		} else {
			d = d.PushBack(i)
		}
	}
	expected := []int{8, 6, 4, 2, 0, 1, 3, 5, 7, 9}
	assert.Equal(t, expected, slices.Collect(d.All()))
	assert.Equal(t, expected, slices.Collect(d.All()))
	n := 0
	for range d.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestDequeEmpty(t *testing.T) {
	var d Deque[int]
	assert.True(t, d.IsEmpty())
	assert.True(t, d.Front().IsNothing())
	assert.True(t, d.Back().IsNothing())
	_, rest, ok := d.PopFront()
	assert.False(t, ok)
	assert.True(t, rest.IsEmpty())
	assert.Empty(t, slices.Collect(d.All()))
	assert.Equal(t, "[]", d.String())
}

func TestDequePeek(t *testing.T) {
	d := New[int]().PushBack(5)
	assert.Equal(t, 5, d.Front().WithDefault(0))
	assert.Equal(t, 5, d.Back().WithDefault(0))
	d = d.PushBack(6).PushFront(4)
	assert.Equal(t, 4, d.Front().WithDefault(0))
	assert.Equal(t, 6, d.Back().WithDefault(0))
	assert.Equal(t, d.Front(), d.Front())
}

func TestDequeBalanceInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	d := From(1, 2, 3, 4, 5, 6, 7)
	checkInvariant(t, d)
	for !d.IsEmpty() {
		_, d, _ = d.PopFront()
		checkInvariant(t, d)
	}
	d = From(1, 2, 3, 4, 5, 6, 7)
	for !d.IsEmpty() {
		_, d, _ = d.PopBack()
		checkInvariant(t, d)
	}
}

func TestDequeBalanceSplitsEvenly(t *testing.T) {
	d := Deque[int]{tail: list.From(7, 6, 5, 4, 3, 2, 1, 0)}.balance()
	assert.Equal(t, 4, d.head.Len())
	assert.Equal(t, 4, d.tail.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, slices.Collect(d.All()))

	d = Deque[int]{head: list.From(0, 1, 2, 3, 4)}.balance()
	assert.Equal(t, 2, d.head.Len())
	assert.Equal(t, 3, d.tail.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(d.All()))

	balanced := From(1, 2, 3)
	same := balanced.balance()
	assert.Equal(t, balanced, same, "balanced deque is left untouched")
}

func TestDequePersistence(t *testing.T) {
	d1 := From("a", "b", "c")
	d2 := d1.PushFront("z")
	_, d3, _ := d1.PopBack()
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(d1.All()))
	assert.Equal(t, []string{"z", "a", "b", "c"}, slices.Collect(d2.All()))
	assert.Equal(t, []string{"a", "b"}, slices.Collect(d3.All()))
}

func TestDequeAgainstSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	d := New[int]()
	var model []int
	for i := 0; i < 2000; i++ {
		switch rnd.Intn(4) {
		case 0:
			d = d.PushFront(i)
			model = append([]int{i}, model...)
		case 1:
			d = d.PushBack(i)
			model = append(model, i)
		case 2:
			x, rest, ok := d.PopFront()
			require.Equal(t, len(model) > 0, ok)
			if ok {
				require.Equal(t, model[0], x)
				model = model[1:]
			}
			d = rest
		case 3:
			x, rest, ok := d.PopBack()
			require.Equal(t, len(model) > 0, ok)
			if ok {
				require.Equal(t, model[len(model)-1], x)
				model = model[:len(model)-1]
			}
			d = rest
		}
		require.Equal(t, len(model), d.Len())
		checkInvariant(t, d)
	}
	if len(model) == 0 {
		assert.True(t, d.IsEmpty())
	} else {
		assert.Equal(t, model, slices.Collect(d.All()))
	}
}

func TestDequeConcurrentReads(t *testing.T) {
	d := From(1, 2, 3, 4)
	done := make(chan []int)
	for g := 0; g < 4; g++ {
		go func() {
			done <- slices.Collect(d.All())
		}()
	}
	for g := 0; g < 4; g++ {
		assert.Equal(t, []int{1, 2, 3, 4}, <-done)
	}
}

func checkInvariant[T any](t *testing.T, d Deque[T]) {
	t.Helper()
	if d.head.IsEmpty() && d.tail.IsEmpty() && d.Len() != 0 {
		t.Fatalf("inconsistent length %d", d.Len())
	}
	if (d.head.IsEmpty() || d.tail.IsEmpty()) && d.Len() > 1 {
		t.Fatalf("unbalanced deque: head=%s tail=%s", d.head, d.tail)
	}
}
