// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hseq"
)

func addInts(acc, x any) any { return acc.(int) + x.(int) }

func TestFoldLeft(t *testing.T) {
	sum, err := hseq.FoldLeft(hseq.New(1, 2, 3, 4), 0, addInts)
	require.NoError(t, err)
	require.Equal(t, 10, sum)
}

func TestFoldLeftEmpty(t *testing.T) {
	got, err := hseq.FoldLeft(hseq.New(), 42, addInts)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestFoldLeftOrder(t *testing.T) {
	got, err := hseq.FoldLeft(hseq.New("a", "b", "c"), "", func(acc, x any) any {
		return acc.(string) + x.(string)
	})
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestFoldRightOrder(t *testing.T) {
	got, err := hseq.FoldRight(hseq.New("a", "b", "c"), "", func(x, acc any) any {
		return x.(string) + acc.(string)
	})
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestFoldRightEmpty(t *testing.T) {
	got, err := hseq.FoldRight(hseq.New(), "init", func(x, acc any) any { return nil })
	require.NoError(t, err)
	require.Equal(t, "init", got)
}

func TestForEachOrder(t *testing.T) {
	var seen []any
	err := hseq.ForEach(hseq.New(1, "a", 2.5), func(x any) {
		seen = append(seen, x)
	})
	require.NoError(t, err)
	require.Equal(t, []any{1, "a", 2.5}, seen)
}

func TestLength(t *testing.T) {
	n, err := hseq.Length(hseq.New(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = hseq.Length(hseq.New())
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCount(t *testing.T) {
	n, err := hseq.Count(hseq.New(1, 2, 3, 4, 5), func(x any) hseq.Cond {
		return hseq.CondC(x.(int)%2 == 0)
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUnpack(t *testing.T) {
	got, err := hseq.Unpack(hseq.New(1, 2, 3), func(xs ...any) any {
		return xs[0].(int)*100 + xs[1].(int)*10 + xs[2].(int)
	})
	require.NoError(t, err)
	require.Equal(t, 123, got)
}

func TestMinimumMaximum(t *testing.T) {
	lo, err := hseq.Minimum(hseq.New(3, 1, 2))
	require.NoError(t, err)
	require.Equal(t, 1, lo)

	hi, err := hseq.Maximum(hseq.New(3, 1, 2))
	require.NoError(t, err)
	require.Equal(t, 3, hi)
}

func TestMinimumEmpty(t *testing.T) {
	_, err := hseq.Minimum(hseq.New())
	require.ErrorIs(t, err, hseq.ErrEmpty)

	_, err = hseq.Maximum(hseq.New())
	require.ErrorIs(t, err, hseq.ErrEmpty)
}

func TestMinimumByFirstWinsTies(t *testing.T) {
	byFirst := func(a, b any) hseq.Cond {
		return hseq.CondC(a.(hseq.Pair).First.(int) < b.(hseq.Pair).First.(int))
	}
	lo, err := hseq.MinimumBy(byFirst, hseq.New(
		hseq.MakePair(1, "b"), hseq.MakePair(1, "a"), hseq.MakePair(2, "c"),
	))
	require.NoError(t, err)
	require.Equal(t, hseq.MakePair(1, "b"), lo)

	hi, err := hseq.MaximumBy(byFirst, hseq.New(
		hseq.MakePair(2, "x"), hseq.MakePair(2, "y"), hseq.MakePair(1, "z"),
	))
	require.NoError(t, err)
	require.Equal(t, hseq.MakePair(2, "x"), hi)
}

func TestMinimumNeedsOrderedElements(t *testing.T) {
	_, err := hseq.Minimum(hseq.New(true, false))
	require.ErrorIs(t, err, hseq.ErrNotRegistered)
}
