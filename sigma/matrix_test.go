package sigma_test

import (
	"testing"

	"github.com/pryce-method/daestruct/sigma"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNegativeDimension(t *testing.T) {
	_, err := sigma.New(-1)
	require.ErrorIs(t, err, sigma.ErrBadDimension)
}

func TestNew_ZeroDimensionIsValid(t *testing.T) {
	m, err := sigma.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Dimension())
}

func TestInsertGet_RoundTrips(t *testing.T) {
	m, err := sigma.New(3)
	require.NoError(t, err)

	_, ok := m.Get(0, 0)
	require.False(t, ok, "unset cell must be absent")

	require.NoError(t, m.Insert(0, 2, 5))
	v, ok := m.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, int64(5), v)

	// overwrite
	require.NoError(t, m.Insert(0, 2, -7))
	v, ok = m.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, int64(-7), v)
}

func TestInsertGet_OutOfRange(t *testing.T) {
	m, err := sigma.New(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Insert(2, 0, 1), sigma.ErrOutOfRange)
	require.ErrorIs(t, m.Insert(0, -1, 1), sigma.ErrOutOfRange)

	_, ok := m.Get(5, 0)
	require.False(t, ok)
}

func TestEachInRow_AscendingColumnOrder(t *testing.T) {
	m, err := sigma.New(4)
	require.NoError(t, err)

	require.NoError(t, m.Insert(1, 3, 9))
	require.NoError(t, m.Insert(1, 0, 1))
	require.NoError(t, m.Insert(1, 2, 4))

	var cols []int
	m.EachInRow(1, func(col int, val int64) {
		cols = append(cols, col)
	})
	require.Equal(t, []int{0, 2, 3}, cols)
}

func TestEach_SkipsAbsentCells(t *testing.T) {
	m, err := sigma.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0, 1))
	require.NoError(t, m.Insert(2, 1, 2))

	count := 0
	m.Each(func(row, col int, val int64) { count++ })
	require.Equal(t, 2, count)
}

func TestClone_IsIndependent(t *testing.T) {
	m, err := sigma.New(2)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Insert(0, 0, 99))

	v, _ := m.Get(0, 0)
	require.Equal(t, int64(1), v)
	v, _ = c.Get(0, 0)
	require.Equal(t, int64(99), v)
}
