package borrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type account struct {
	name    string
	balance int
}

func TestSplitterDisjointFieldsMutateIndependently(t *testing.T) {
	a := account{name: "alice", balance: 10}
	s := NewSplitter(&a)

	name := Field(s, func(a *account) *string { return &a.name })
	balance := Field(s, func(a *account) *int { return &a.balance })

	*name = "bob"
	*balance = 20

	require.Equal(t, "bob", a.name)
	require.Equal(t, 20, a.balance)
}

func TestSplitterSequentialProjections(t *testing.T) {
	a := account{balance: 1}
	s := NewSplitter(&a)

	for range 3 {
		balance := Field(s, func(a *account) *int { return &a.balance })
		*balance++
	}
	require.Equal(t, 4, a.balance)
}

func TestOverlaps(t *testing.T) {
	a := account{}
	s := NewSplitter(&a)

	first := Field(s, func(a *account) *int { return &a.balance })
	second := Field(s, func(a *account) *int { return &a.balance })
	other := new(int)

	require.True(t, Overlaps(first, second))
	require.False(t, Overlaps(first, other))
}

func TestPairSplit(t *testing.T) {
	p := Pair[int, string]{First: 1, Second: "x"}

	first, second := p.Split()
	*first = 2
	*second = "y"

	require.Equal(t, 2, p.First)
	require.Equal(t, "y", p.Second)
}

func TestTripleSplit(t *testing.T) {
	tr := Triple[int, int, int]{First: 1, Second: 2, Third: 3}

	a, b, c := tr.Split()
	*a, *b, *c = 10, 20, 30

	require.Equal(t, Triple[int, int, int]{First: 10, Second: 20, Third: 30}, tr)
}
