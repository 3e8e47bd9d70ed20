package core

import "context"

// MemoryLogRepository is the durable, append-only per-user message log.
type MemoryLogRepository interface {
	Append(ctx context.Context, record MemoryRecord) error
	// Recent returns the last limit records for a user in chronological
	// order (oldest first).
	Recent(ctx context.Context, userID string, limit int) ([]MemoryRecord, error)
}

// DocumentRepository is the long-term semantic store. Search is restricted to
// the querying user's partition; results from another user's documents must
// never be returned.
type DocumentRepository interface {
	Save(ctx context.Context, doc Document) (string, error)
	Search(ctx context.Context, userID, query string, k int) ([]Snippet, error)
}
