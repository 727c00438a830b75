package centra

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCursorStopsOnShortPage(t *testing.T) {
	cursor := NewPageCursor(100)
	assert.Equal(t, 1, cursor.Page())

	assert.True(t, cursor.Advance(100))
	assert.Equal(t, 2, cursor.Page())

	assert.False(t, cursor.Advance(99))
	assert.False(t, NewPageCursor(100).Advance(0))
}

func TestForEachPageWalksUntilShortPage(t *testing.T) {
	pageSizes := []int{3, 3, 1}
	var pagesSeen []int

	err := ForEachPage(context.Background(), "test", 3, func(_ context.Context, page int) (int, error) {
		pagesSeen = append(pagesSeen, page)
		return pageSizes[page-1], nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, pagesSeen)
}

func TestForEachPageIssuesExtraRequestAfterExactLimitPage(t *testing.T) {
	// A full final page cannot be distinguished from a non-final one, so one
	// more request goes out and short-circuits on the empty response.
	pageSizes := []int{3, 0}
	var pagesSeen []int

	err := ForEachPage(context.Background(), "test", 3, func(_ context.Context, page int) (int, error) {
		pagesSeen = append(pagesSeen, page)
		return pageSizes[page-1], nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pagesSeen)
}

func TestForEachPageWrapsFailuresWithStageAndPage(t *testing.T) {
	boom := errors.New("boom")

	err := ForEachPage(context.Background(), "orders", 2, func(_ context.Context, page int) (int, error) {
		if page == 2 {
			return 0, boom
		}
		return 2, nil
	})

	require.Error(t, err)
	fe, ok := AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, "orders", fe.Stage)
	assert.Equal(t, 2, fe.Page)
	assert.ErrorIs(t, err, boom)
}

func TestForEachPageHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForEachPage(ctx, "test", 10, func(_ context.Context, _ int) (int, error) {
		t.Fatal("fetch should not run after cancellation")
		return 0, nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
