package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/fpcoll/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	var wasNothing bool
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		wasNothing = true
	}
	if !wasNothing || w != 0 {
		t.Errorf("expected Nothing to match the Nothing-case and leave w=0, w is %#v", w)
	}
}

func TestMaybeMatchNonComparable(t *testing.T) {
	var line []byte
	matched := ""
	switch m := Just([]byte("line")).Match(); m {
	case m.Just(&line):
		matched = "just"
	case m.Nothing():
		matched = "nothing"
	}
	assert.Equal(t, "just", matched)
	assert.Equal(t, []byte("line"), line)

	switch m := Nothing[[]byte]().Match(); m {
	case m.Just(&line):
		matched = "just"
	case m.Nothing():
		matched = "nothing"
	}
	assert.Equal(t, "nothing", matched)
}

func TestMaybeOf(t *testing.T) {
	m := Of("x", true)
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.False(t, m.IsNothing())

	m = Of("y", false)
	_, ok = m.Get()
	assert.False(t, ok)
	assert.True(t, m.IsNothing())
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 14, Just(7).Map(double).WithDefault(0))
	assert.True(t, Nothing[int]().Map(double).IsNothing())

	s := Map(strconv.Itoa, Just(10))
	assert.Equal(t, "10", s.WithDefault(""))
	assert.True(t, Map(strconv.Itoa, Nothing[int]()).IsNothing())
}

func TestMaybeAndThen(t *testing.T) {
	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	assert.True(t, AndThen(positive, Just(7)).WithDefault(false))
	assert.True(t, AndThen(positive, Just(-7)).IsNothing())
	assert.True(t, AndThen(positive, Nothing[int]()).IsNothing())
}
