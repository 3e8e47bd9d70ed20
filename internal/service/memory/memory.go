// Package memory manages both sides of conversational memory: the bounded
// short-term log that seeds prompts, and the per-user long-term document
// store queried by similarity.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/internal/providers/rag"
	"github.com/sandevgo/haven/pkg/log"
)

type Manager struct {
	logRepo     core.MemoryLogRepository
	docRepo     core.DocumentRepository
	chunkTokens int
}

func NewManager(logRepo core.MemoryLogRepository, docRepo core.DocumentRepository, chunkTokens int) *Manager {
	return &Manager{
		logRepo:     logRepo,
		docRepo:     docRepo,
		chunkTokens: chunkTokens,
	}
}

// Append records one message durably and mirrors it into the turn's
// short-term buffer. A store failure is best-effort: the in-turn buffer
// still carries the message and the failure surfaces as a warning on the
// state, never as an aborted turn.
func (m *Manager) Append(ctx context.Context, state *core.TurnState, role, content string) {
	state.Messages = append(state.Messages, core.Message{Role: role, Content: content})

	record := core.MemoryRecord{
		UserID:       state.UserID,
		Role:         role,
		Content:      content,
		Emotion:      state.Emotion,
		Mode:         string(state.Mode),
		Attack:       string(state.Attack),
		JournalEntry: state.JournalEntry,
		CreatedAt:    time.Now().UTC(),
	}

	if err := m.logRepo.Append(ctx, record); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", state.UserID).Msg("memory append failed")
		state.Warn(fmt.Sprintf("memory append failed: %v", err))
	}
}

// Recent returns the user's last limit messages in chronological order.
func (m *Manager) Recent(ctx context.Context, userID string, limit int) ([]core.Message, error) {
	records, err := m.logRepo.Recent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: recent: %v", core.ErrStoreUnavailable, err)
	}

	messages := make([]core.Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, core.Message{Role: rec.Role, Content: rec.Content})
	}
	return messages, nil
}

// SaveJournal stores a journal entry in the user's long-term partition.
func (m *Manager) SaveJournal(ctx context.Context, userID, entry string) (string, error) {
	return m.SaveDocument(ctx, userID, entry, "journal")
}

// SaveDocument embeds and stores content in the user's long-term partition.
// Content above the chunk token budget is split into sentence-aligned chunks
// sharing the parent document id.
func (m *Manager) SaveDocument(ctx context.Context, userID, content, tag string) (string, error) {
	parentID := uuid.NewString()
	chunks := rag.ChunkText(content, m.chunkTokens)

	for _, chunk := range chunks {
		docID := parentID
		if len(chunks) > 1 {
			docID = fmt.Sprintf("%s-%d", parentID, chunk.Index)
		}

		if _, err := m.docRepo.Save(ctx, core.Document{
			DocumentID: docID,
			UserID:     userID,
			Content:    chunk.Text,
			Tag:        tag,
		}); err != nil {
			return "", fmt.Errorf("save chunk %d: %w", chunk.Index, err)
		}
	}

	log.FromCtx(ctx).Info().
		Str("user_id", userID).
		Str("document_id", parentID).
		Str("tag", tag).
		Int("chunks", len(chunks)).
		Msg("document saved to long-term memory")

	return parentID, nil
}

// Recall performs semantic search inside the user's partition. A failing
// backend degrades to no recalled context rather than failing the turn.
func (m *Manager) Recall(ctx context.Context, userID, query string, k int) []string {
	snippets, err := m.docRepo.Search(ctx, userID, query, k)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", userID).Msg("long-term recall failed")
		return nil
	}

	contents := make([]string, 0, len(snippets))
	for _, s := range snippets {
		contents = append(contents, s.Content)
	}
	return contents
}
