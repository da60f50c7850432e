package chrono

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/storage"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	s, err := NewSchedule(ctx, store)
	require.NoError(t, err)

	revs, err := s.Revisions(ctx)
	require.NoError(t, err)
	require.Empty(t, revs)

	// enough changes to cross a keyframe boundary
	var added []Entry
	for i := 0; i < KEYFRAME_RATE+4; i++ {
		e, err := s.Add(ctx, fmt.Sprintf("slot-%02d", i), instants(t, fmt.Sprintf("2024-01-%02dT09:00:00Z/2024-01-%02dT10:00:00Z", i+1, i+1)))
		require.NoError(t, err)
		added = append(added, e)
	}
	require.NoError(t, s.Remove(ctx, added[0].ID))

	revs, err = s.Revisions(ctx)
	require.NoError(t, err)
	require.Len(t, revs, KEYFRAME_RATE+5)
	for i, r := range revs {
		require.Equal(t, i+1, r.Number)
	}
	require.Equal(t, KEYFRAME_RATE+3, revs[len(revs)-1].Entries)

	for _, rev := range []int{1, 2, KEYFRAME_RATE, KEYFRAME_RATE + 1, KEYFRAME_RATE + 3} {
		entries, err := s.AsOf(ctx, rev)
		require.NoError(t, err)
		require.Len(t, entries, rev, "revision %d", rev)
		require.Equal(t, added[rev-1].ID, entries[rev-1].ID)
		require.True(t, entries[rev-1].Interval.Equal(added[rev-1].Interval))
	}

	last, err := s.AsOf(ctx, KEYFRAME_RATE+5)
	require.NoError(t, err)
	require.Equal(t, names(s.Entries()), names(last))

	_, err = s.AsOf(ctx, 0)
	require.True(t, errors.Is(err, ErrNoRevision), "got %v", err)
	_, err = s.AsOf(ctx, 100)
	require.True(t, errors.Is(err, ErrNoRevision), "got %v", err)
}

func TestHistoryContinuesAfterReopen(t *testing.T) {
	ctx := context.Background()
	store := storage.NewDiskStorage(t.TempDir())

	first, err := NewSchedule(ctx, store)
	require.NoError(t, err)
	_, err = first.Add(ctx, "a", instants(t, "2024-01-01/2024-01-02"))
	require.NoError(t, err)
	_, err = first.Add(ctx, "b", instants(t, "2024-01-02/2024-01-03"))
	require.NoError(t, err)

	second, err := NewSchedule(ctx, store)
	require.NoError(t, err)
	_, err = second.Add(ctx, "c", instants(t, "2024-01-03/2024-01-04"))
	require.NoError(t, err)

	revs, err := second.Revisions(ctx)
	require.NoError(t, err)
	require.Len(t, revs, 3)

	entries, err := second.AsOf(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, names(entries))
}
