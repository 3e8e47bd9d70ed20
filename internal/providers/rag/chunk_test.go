package rag

import (
	"strings"
	"testing"
)

func TestChunkText_ShortEntrySingleChunk(t *testing.T) {
	t.Parallel()

	entry := "Today was calmer than yesterday. I went for a walk after lunch."
	chunks := ChunkText(entry, 480)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != entry {
		t.Errorf("chunk text = %q, want %q", chunks[0].Text, entry)
	}
}

func TestChunkText_EmptyEntry(t *testing.T) {
	t.Parallel()

	if chunks := ChunkText("   ", 480); chunks != nil {
		t.Errorf("expected nil for blank entry, got %v", chunks)
	}
}

func TestChunkText_LongEntrySplitsWithinBudget(t *testing.T) {
	t.Parallel()

	sentence := "I kept circling back to the same worry about the meeting. "
	entry := strings.Repeat(sentence, 60)

	maxTokens := 50
	chunks := ChunkText(entry, maxTokens)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if c.TokenSize > maxTokens {
			t.Errorf("chunk %d has %d tokens, budget %d", c.Index, c.TokenSize, maxTokens)
		}
		if strings.TrimSpace(c.Text) == "" {
			t.Errorf("chunk %d is empty", c.Index)
		}
	}
}

func TestChunkText_IndicesAreSequential(t *testing.T) {
	t.Parallel()

	entry := strings.Repeat("Another day, another small step forward. ", 40)
	chunks := ChunkText(entry, 30)

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk at position %d has index %d", i, c.Index)
		}
	}
}
