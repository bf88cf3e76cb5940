package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPagesStopsOnShortPage(t *testing.T) {
	// 23 items drained in pages of 10: full, full, short(3), no fourth call.
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	var calls int
	fetch := func(ctx context.Context, skip, limit int) ([]int, error) {
		calls++
		start, end := SliceWindow(skip, limit, len(items))
		return items[start:end], nil
	}

	got, err := CollectPages(context.Background(), 10, fetch)
	require.NoError(t, err)

	assert.Len(t, got, 23)
	assert.Equal(t, 3, calls)
	assert.Equal(t, items, got)
}

func TestCollectPagesExactMultipleFetchesTrailingEmptyPage(t *testing.T) {
	// 20 items in pages of 10: two full pages plus one empty confirming page.
	items := make([]int, 20)

	var calls int
	fetch := func(ctx context.Context, skip, limit int) ([]int, error) {
		calls++
		start, end := SliceWindow(skip, limit, len(items))
		return items[start:end], nil
	}

	got, err := CollectPages(context.Background(), 10, fetch)
	require.NoError(t, err)

	assert.Len(t, got, 20)
	assert.Equal(t, 3, calls)
}

func TestCollectPagesPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, skip, limit int) ([]int, error) {
		if skip == 0 {
			return make([]int, 10), nil
		}
		return nil, boom
	}

	_, err := CollectPages(context.Background(), 10, fetch)
	assert.ErrorIs(t, err, boom)
}

func TestCollectPagesNormalizesPageSize(t *testing.T) {
	var limits []int
	fetch := func(ctx context.Context, skip, limit int) ([]int, error) {
		limits = append(limits, limit)
		return nil, nil
	}

	_, err := CollectPages(context.Background(), 0, fetch)
	require.NoError(t, err)
	_, err = CollectPages(context.Background(), MaxLimit+1, fetch)
	require.NoError(t, err)

	assert.Equal(t, []int{DefaultLimit, DefaultLimit}, limits)
}

func TestSliceWindow(t *testing.T) {
	start, end := SliceWindow(0, 10, 23)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = SliceWindow(20, 10, 23)
	assert.Equal(t, 20, start)
	assert.Equal(t, 23, end)

	start, end = SliceWindow(30, 10, 23)
	assert.Equal(t, 23, start)
	assert.Equal(t, 23, end)
}
