package borrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellGetReturnsInitial(t *testing.T) {
	c := New(42)
	require.Equal(t, 42, c.Get())
}

func TestCellGetReturnsMostRecentSet(t *testing.T) {
	c := New(1)
	c.Set(2)
	require.Equal(t, 2, c.Get())
	c.Set(3)
	c.Set(4)
	require.Equal(t, 4, c.Get())
}

func TestCellSwap(t *testing.T) {
	c := New("old")
	old := c.Swap("new")
	require.Equal(t, "old", old)
	require.Equal(t, "new", c.Get())
}

func TestCellUpdate(t *testing.T) {
	c := New(10)
	c.Update(func(v int) int { return v * 2 })
	require.Equal(t, 20, c.Get())
}

func TestTake(t *testing.T) {
	s := []int{1, 2, 3}
	taken := Take(&s)
	require.Equal(t, []int{1, 2, 3}, taken)
	require.Nil(t, s)
}

func TestReplace(t *testing.T) {
	v := "before"
	old := Replace(&v, "after")
	require.Equal(t, "before", old)
	require.Equal(t, "after", v)
}

func TestUpdate(t *testing.T) {
	v := 5
	Update(&v, func(n int) int { return n + 1 })
	require.Equal(t, 6, v)
}
