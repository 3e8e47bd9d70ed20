package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/haven/internal/core"
)

type fakeLogRepo struct {
	records   []core.MemoryRecord
	appendErr error
	recentErr error
}

func (f *fakeLogRepo) Append(_ context.Context, record core.MemoryRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)
	return nil
}

func (f *fakeLogRepo) Recent(_ context.Context, userID string, limit int) ([]core.MemoryRecord, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var scoped []core.MemoryRecord
	for _, r := range f.records {
		if r.UserID == userID {
			scoped = append(scoped, r)
		}
	}
	if len(scoped) > limit {
		scoped = scoped[len(scoped)-limit:]
	}
	return scoped, nil
}

type fakeDocRepo struct {
	docs      []core.Document
	saveErr   error
	searchErr error
}

func (f *fakeDocRepo) Save(_ context.Context, doc core.Document) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.docs = append(f.docs, doc)
	return doc.DocumentID, nil
}

func (f *fakeDocRepo) Search(_ context.Context, userID, _ string, k int) ([]core.Snippet, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var snippets []core.Snippet
	for _, d := range f.docs {
		if d.UserID == userID && len(snippets) < k {
			snippets = append(snippets, core.Snippet{DocumentID: d.DocumentID, Content: d.Content, Tag: d.Tag})
		}
	}
	return snippets, nil
}

func TestManager_AppendUpdatesBufferAndLog(t *testing.T) {
	logRepo := &fakeLogRepo{}
	m := NewManager(logRepo, &fakeDocRepo{}, 480)

	state := core.NewTurnState("user-a", "thread-1", "hello")
	state.Emotion = "calm"
	state.Attack = core.AttackSafe

	m.Append(context.Background(), state, core.RoleUser, "hello")

	require.Len(t, state.Messages, 1)
	require.Len(t, logRepo.records, 1)
	assert.Equal(t, "calm", logRepo.records[0].Emotion)
	assert.Equal(t, string(core.AttackSafe), logRepo.records[0].Attack)
	assert.Empty(t, state.Warnings)
}

func TestManager_AppendFailureIsBestEffort(t *testing.T) {
	logRepo := &fakeLogRepo{appendErr: errors.New("disk full")}
	m := NewManager(logRepo, &fakeDocRepo{}, 480)

	state := core.NewTurnState("user-a", "thread-1", "hello")
	m.Append(context.Background(), state, core.RoleUser, "hello")

	// The in-turn buffer still carries the message for prompt assembly.
	require.Len(t, state.Messages, 1)
	require.Len(t, state.Warnings, 1)
	assert.Contains(t, state.Warnings[0], "disk full")
}

func TestManager_RecentReturnsLastSix(t *testing.T) {
	logRepo := &fakeLogRepo{}
	m := NewManager(logRepo, &fakeDocRepo{}, 480)
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		state := core.NewTurnState("user-a", "thread-1", "")
		m.Append(ctx, state, core.RoleUser, fmt.Sprintf("message %d", i))
	}

	messages, err := m.Recent(ctx, "user-a", 6)
	require.NoError(t, err)
	require.Len(t, messages, 6)
	assert.Equal(t, "message 3", messages[0].Content)
	assert.Equal(t, "message 8", messages[5].Content)
}

func TestManager_SaveJournalSingleChunk(t *testing.T) {
	docRepo := &fakeDocRepo{}
	m := NewManager(&fakeLogRepo{}, docRepo, 480)

	id, err := m.SaveJournal(context.Background(), "user-a", "Today felt lighter than yesterday.")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, docRepo.docs, 1)
	assert.Equal(t, id, docRepo.docs[0].DocumentID)
	assert.Equal(t, "journal", docRepo.docs[0].Tag)
	assert.Equal(t, "user-a", docRepo.docs[0].UserID)
}

func TestManager_SaveJournalChunksLongEntries(t *testing.T) {
	docRepo := &fakeDocRepo{}
	m := NewManager(&fakeLogRepo{}, docRepo, 30)

	entry := strings.Repeat("I wrote a lot about the same looping worry today. ", 30)
	id, err := m.SaveJournal(context.Background(), "user-a", entry)
	require.NoError(t, err)
	require.Greater(t, len(docRepo.docs), 1)

	for _, d := range docRepo.docs {
		assert.True(t, strings.HasPrefix(d.DocumentID, id), "chunks share the parent document id")
		assert.Equal(t, "journal", d.Tag)
	}
}

func TestManager_RecallDegradesToEmpty(t *testing.T) {
	docRepo := &fakeDocRepo{searchErr: errors.New("backend down")}
	m := NewManager(&fakeLogRepo{}, docRepo, 480)

	got := m.Recall(context.Background(), "user-a", "anything", 3)
	assert.Nil(t, got)
}

func TestManager_RecallReturnsContents(t *testing.T) {
	docRepo := &fakeDocRepo{}
	m := NewManager(&fakeLogRepo{}, docRepo, 480)
	ctx := context.Background()

	_, err := m.SaveJournal(ctx, "user-a", "I worry before every presentation.")
	require.NoError(t, err)

	got := m.Recall(ctx, "user-a", "presentations", 3)
	require.Len(t, got, 1)
	assert.Equal(t, "I worry before every presentation.", got[0])
}
