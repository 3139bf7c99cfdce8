// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hseq"
)

func TestPrependAppend(t *testing.T) {
	got, err := hseq.Prepend(0, hseq.New(1, 2))
	require.NoError(t, err)
	require.Equal(t, hseq.New(0, 1, 2), got)

	got, err = hseq.Append(hseq.New(1, 2), 3)
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2, 3), got)

	got, err = hseq.Prepend("x", hseq.New())
	require.NoError(t, err)
	require.Equal(t, hseq.New("x"), got)
}

func TestConcat(t *testing.T) {
	got, err := hseq.Concat(hseq.New(1, 2), hseq.New("a"))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2, "a"), got)
}

func TestFlatten(t *testing.T) {
	got, err := hseq.Flatten(hseq.New(hseq.New(1, 2), hseq.New(), hseq.New(3)))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2, 3), got)

	got, err = hseq.Flatten(hseq.New())
	require.NoError(t, err)
	require.Equal(t, hseq.New(), got)
}

// Scenario: filter [1, 2, 3, 4, 5] on evenness yields [2, 4].
func TestFilterEven(t *testing.T) {
	got, err := hseq.Filter(hseq.New(1, 2, 3, 4, 5), isEven)
	require.NoError(t, err)
	require.Equal(t, hseq.New(2, 4), got)
}

func TestFilterNoneKeptHasLengthZero(t *testing.T) {
	got, err := hseq.Filter(hseq.New(1, 3, 5), isEven)
	require.NoError(t, err)

	n, err := hseq.Length(got)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestGroup(t *testing.T) {
	got, err := hseq.Group(hseq.New(1, 1, 2, 2, 2, 1))
	require.NoError(t, err)
	require.Equal(t, hseq.New(hseq.New(1, 1), hseq.New(2, 2, 2), hseq.New(1)), got)

	got, err = hseq.Group(hseq.New())
	require.NoError(t, err)
	require.Equal(t, hseq.New(), got)
}

func TestGroupBy(t *testing.T) {
	sameParity := func(a, b any) hseq.Cond {
		return hseq.CondC(a.(int)%2 == b.(int)%2)
	}
	got, err := hseq.GroupBy(sameParity, hseq.New(1, 3, 2, 4, 5))
	require.NoError(t, err)
	require.Equal(t, hseq.New(hseq.New(1, 3), hseq.New(2, 4), hseq.New(5)), got)
}

func TestInit(t *testing.T) {
	got, err := hseq.Init(hseq.New(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2), got)

	_, err = hseq.Init(hseq.New())
	require.ErrorIs(t, err, hseq.ErrEmpty)
}

func TestPartition(t *testing.T) {
	got, err := hseq.Partition(hseq.New(1, 2, 3, 4, 5), isEven)
	require.NoError(t, err)
	require.Equal(t, hseq.New(2, 4), got.First)
	require.Equal(t, hseq.New(1, 3, 5), got.Second)
}

func TestRemoveAt(t *testing.T) {
	got, err := hseq.RemoveAt(hseq.SizeC(1), hseq.New(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 3), got)

	_, err = hseq.RemoveAt(hseq.SizeC(3), hseq.New(1, 2, 3))
	require.ErrorIs(t, err, hseq.ErrOutOfRange)
}

func TestReverse(t *testing.T) {
	got, err := hseq.Reverse(hseq.New(1, "a", 2.5))
	require.NoError(t, err)
	require.Equal(t, hseq.New(2.5, "a", 1), got)

	got, err = hseq.Reverse(hseq.New())
	require.NoError(t, err)
	require.Equal(t, hseq.New(), got)
}

func TestSlice(t *testing.T) {
	s := hseq.New(1, 2, 3, 4)

	got, err := hseq.Slice(hseq.SizeC(1), hseq.SizeC(3), s)
	require.NoError(t, err)
	require.Equal(t, hseq.New(2, 3), got)

	empty, err := hseq.Slice(hseq.SizeC(2), hseq.SizeC(2), s)
	require.NoError(t, err)
	require.Equal(t, hseq.New(), empty)
}

func TestSliceOutOfRange(t *testing.T) {
	s := hseq.New(1, 2, 3)

	_, err := hseq.Slice(hseq.SizeC(1), hseq.SizeC(4), s)
	require.ErrorIs(t, err, hseq.ErrOutOfRange)

	_, err = hseq.Slice(hseq.SizeC(2), hseq.SizeC(1), s)
	require.ErrorIs(t, err, hseq.ErrOutOfRange)

	_, err = hseq.Slice(hseq.SizeC(-1), hseq.SizeC(1), s)
	require.ErrorIs(t, err, hseq.ErrOutOfRange)
}

// Scenario: sort [3, 1, 2] under the dispatched ordering yields [1, 2, 3].
func TestSort(t *testing.T) {
	got, err := hseq.Sort(hseq.New(3, 1, 2))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2, 3), got)
}

func TestSortNeedsOrderedElements(t *testing.T) {
	_, err := hseq.Sort(hseq.New(true, false))
	require.ErrorIs(t, err, hseq.ErrNotRegistered)
}

// Equivalent elements keep their original relative order.
func TestSortByIsStable(t *testing.T) {
	byFirst := func(a, b any) hseq.Cond {
		return hseq.CondC(a.(hseq.Pair).First.(int) < b.(hseq.Pair).First.(int))
	}
	got, err := hseq.SortBy(hseq.New(
		hseq.MakePair(1, "b"), hseq.MakePair(1, "a"), hseq.MakePair(0, "c"),
	), byFirst)
	require.NoError(t, err)
	require.Equal(t, hseq.New(
		hseq.MakePair(0, "c"), hseq.MakePair(1, "b"), hseq.MakePair(1, "a"),
	), got)
}

func TestTake(t *testing.T) {
	s := hseq.New(1, 2, 3)

	got, err := hseq.Take(hseq.SizeC(2), s)
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2), got)

	all, err := hseq.Take(hseq.SizeC(3), s)
	require.NoError(t, err)
	require.Equal(t, s, all)
}

func TestTakeZeroHasLengthZero(t *testing.T) {
	got, err := hseq.Take(hseq.SizeC(0), hseq.New(1, 2, 3))
	require.NoError(t, err)

	n, err := hseq.Length(got)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

// Counts beyond the length are rejected, never clamped.
func TestTakeExcessRejected(t *testing.T) {
	_, err := hseq.Take(hseq.SizeC(4), hseq.New(1, 2, 3))
	require.ErrorIs(t, err, hseq.ErrOutOfRange)

	_, err = hseq.Take(hseq.SizeC(-1), hseq.New(1))
	require.ErrorIs(t, err, hseq.ErrOutOfRange)
}

func TestTakeWhile(t *testing.T) {
	isSmall := func(x any) hseq.Cond { return hseq.CondC(x.(int) < 3) }

	got, err := hseq.TakeWhile(isSmall, hseq.New(1, 2, 3, 1))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2), got)

	all, err := hseq.TakeWhile(isSmall, hseq.New(1, 2))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2), all)
}

func TestTakeUntil(t *testing.T) {
	isBig := func(x any) hseq.Cond { return hseq.CondC(x.(int) >= 3) }
	got, err := hseq.TakeUntil(isBig, hseq.New(1, 2, 3, 1))
	require.NoError(t, err)
	require.Equal(t, hseq.New(1, 2), got)
}

// Scenario: zip [1, 2] with [10, 20] yields [(1, 10), (2, 20)].
func TestZip(t *testing.T) {
	got, err := hseq.Zip(hseq.New(1, 2), hseq.New(10, 20))
	require.NoError(t, err)

	eq, err := hseq.Equal(got, hseq.New(hseq.New(1, 10), hseq.New(2, 20)))
	require.NoError(t, err)
	require.True(t, eq)
}

func TestZipLengthMismatch(t *testing.T) {
	_, err := hseq.Zip(hseq.New(1, 2), hseq.New(10))
	require.ErrorIs(t, err, hseq.ErrLengthMismatch)

	_, err = hseq.Zip()
	require.ErrorIs(t, err, hseq.ErrLengthMismatch)
}

func TestZipWith(t *testing.T) {
	got, err := hseq.ZipWith(func(xs ...any) any {
		return xs[0].(int) + xs[1].(int) + xs[2].(int)
	}, hseq.New(1, 2), hseq.New(10, 20), hseq.New(100, 200))
	require.NoError(t, err)
	require.Equal(t, hseq.New(111, 222), got)
}

// The result belongs to the first input's family.
func TestZipResultFamily(t *testing.T) {
	got, err := hseq.ZipWith(func(xs ...any) any { return xs[0] }, stack{items: []any{1, 2}}, hseq.New(10, 20))
	require.NoError(t, err)
	require.Equal(t, stack{items: []any{1, 2}}, got)
}
