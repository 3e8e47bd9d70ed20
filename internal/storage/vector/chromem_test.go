package vector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/haven/internal/core"
)

// fakeEmbedder maps text deterministically onto a small non-zero vector so
// tests run without a network backend.
type fakeEmbedder struct{}

func (fakeEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, 8)
	vec[0] = 1 // never the zero vector
	for i, r := range text {
		vec[1+(i%7)] += float32(r%13) / 13.0
	}
	return vec, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), fakeEmbedder{})
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndSearch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.Save(ctx, core.Document{
		DocumentID: "doc-1",
		UserID:     "user-a",
		Content:    "I felt drained most of the morning but lighter in the afternoon.",
		Tag:        "journal",
	})
	require.NoError(t, err)
	require.Equal(t, "doc-1", id)

	snippets, err := store.Search(ctx, "user-a", "how were my mornings", 3)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	require.Equal(t, "doc-1", snippets[0].DocumentID)
	require.Equal(t, "journal", snippets[0].Tag)
}

func TestStore_SearchNeverCrossesUsers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Save(ctx, core.Document{
		DocumentID: "doc-a",
		UserID:     "user-a",
		Content:    "my presentation anxiety",
		Tag:        "journal",
	})
	require.NoError(t, err)

	_, err = store.Save(ctx, core.Document{
		DocumentID: "doc-b",
		UserID:     "user-b",
		Content:    "my presentation anxiety",
		Tag:        "journal",
	})
	require.NoError(t, err)

	snippets, err := store.Search(ctx, "user-a", "presentation anxiety", 10)
	require.NoError(t, err)
	for _, s := range snippets {
		require.NotEqual(t, "doc-b", s.DocumentID, "recall must stay inside the user partition")
	}
}

func TestStore_SearchEmptyPartition(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	snippets, err := store.Search(ctx, "nobody", "anything", 3)
	require.NoError(t, err)
	require.Empty(t, snippets)
}

func TestStore_SearchCapsAtK(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	contents := []string{"one bad day", "one good day", "a strange dream", "a long walk"}
	for i, c := range contents {
		_, err := store.Save(ctx, core.Document{
			DocumentID: string(rune('a' + i)),
			UserID:     "user-a",
			Content:    c,
			Tag:        "journal",
		})
		require.NoError(t, err)
	}

	snippets, err := store.Search(ctx, "user-a", "day", 2)
	require.NoError(t, err)
	require.Len(t, snippets, 2)
}
