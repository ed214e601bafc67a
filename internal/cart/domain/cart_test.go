package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCart() Cart {
	return Cart{
		{Product: Product{ID: 1, Name: "A", Price: 10}, Amount: 2},
		{Product: Product{ID: 2, Name: "B", Price: 5.5}, Amount: 1},
	}
}

func TestFind(t *testing.T) {
	c := testCart()

	idx, ok := c.Find(2)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = c.Find(99)
	require.False(t, ok)
}

func TestClone_IsIndependent(t *testing.T) {
	c := testCart()
	clone := c.Clone()
	clone[0].Amount = 42

	require.Equal(t, int64(2), c[0].Amount)

	require.Nil(t, Cart(nil).Clone())
}

func TestTotal(t *testing.T) {
	require.InDelta(t, 25.5, testCart().Total(), 1e-9)
	require.Zero(t, Cart{}.Total())
}
