package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryStoreRoundTrip(t *testing.T) {
	store, err := OpenHistoryStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	gc := &GeneratedContent{Topic: "street food", Instagram: []string{"a", "b", "c"}}

	require.NoError(t, store.SaveGeneration(ctx, "u1", "dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ", gc, SourceTranscript))
	require.NoError(t, store.SaveGeneration(ctx, "u1", "aaaaaaaaaaa", "", &GeneratedContent{Topic: "cooking"}, SourceMetadata))
	require.NoError(t, store.SaveGeneration(ctx, "u2", "bbbbbbbbbbb", "", &GeneratedContent{Topic: "other user"}, SourceTranscript))

	records, err := store.History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	require.Equal(t, "cooking", records[0].Topic)
	require.Equal(t, "street food", records[1].Topic)
	require.Equal(t, "https://youtu.be/dQw4w9WgXcQ", records[1].SourceURL)
	require.Equal(t, string(SourceMetadata), records[0].Source)
}

func TestHistoryLimit(t *testing.T) {
	store, err := OpenHistoryStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveGeneration(ctx, "u1", "ccccccccccc", "", &GeneratedContent{Topic: "t"}, SourceTranscript))
	}

	records, err := store.History(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
}
