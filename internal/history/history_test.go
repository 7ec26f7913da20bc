package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{Deck: "a.md", Index: i, Offset: i, At: base.Add(time.Duration(i) * time.Second)}))
	}
	require.NoError(t, s.Record(ctx, Entry{Deck: "b.md", Index: 9, Offset: -1, At: base}))

	got, err := s.Recent(ctx, "a.md", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 4, got[0].Index)
	assert.Equal(t, 2, got[2].Index)
	assert.Equal(t, base.Add(4*time.Second), got[0].At)

	all, err := s.Recent(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "b.md", all[0].Deck)
	assert.Equal(t, -1, all[0].Offset)
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	before := time.Now().Add(-time.Second)

	require.NoError(t, s.Record(ctx, Entry{Deck: "x", Index: 1}))
	got, err := s.Recent(ctx, "x", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].At.After(before))
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "h", "history.sqlite")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, Entry{Deck: "d", Index: 2}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(ctx, "d", 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
