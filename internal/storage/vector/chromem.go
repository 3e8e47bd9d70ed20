// Package vector implements long-term memory on chromem-go, an embedded
// vector database. Each user gets their own collection so recall can never
// cross the partition boundary.
package vector

import (
	"context"
	"fmt"
	"os"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/pkg/log"
)

type Store struct {
	db       *chromem.DB
	embedder core.Embedder
}

func NewStore(path string, embedder core.Embedder) (*Store, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create vector store directory: %w", err)
	}

	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector store: %w", err)
	}

	return &Store{db: db, embedder: embedder}, nil
}

func (s *Store) embeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return s.embedder.EmbedQuery(ctx, text)
	}
}

func (s *Store) collection(userID string) (*chromem.Collection, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	col, err := s.db.GetOrCreateCollection("user-"+userID, nil, s.embeddingFunc())
	if err != nil {
		return nil, fmt.Errorf("failed to open collection for user %s: %w", userID, err)
	}
	return col, nil
}

func (s *Store) Save(ctx context.Context, doc core.Document) (string, error) {
	col, err := s.collection(doc.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = col.AddDocument(ctx, chromem.Document{
		ID:      doc.DocumentID,
		Content: doc.Content,
		Metadata: map[string]string{
			"user_id":   doc.UserID,
			"tag":       doc.Tag,
			"timestamp": createdAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: add document: %v", core.ErrStoreUnavailable, err)
	}

	log.FromCtx(ctx).Debug().
		Str("document_id", doc.DocumentID).
		Str("tag", doc.Tag).
		Msg("saved long-term document")

	return doc.DocumentID, nil
}

func (s *Store) Search(ctx context.Context, userID, query string, k int) ([]core.Snippet, error) {
	col, err := s.collection(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	// chromem rejects queries asking for more results than stored documents.
	if count := col.Count(); count < k {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := col.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", core.ErrStoreUnavailable, err)
	}

	snippets := make([]core.Snippet, 0, len(results))
	for _, res := range results {
		snippets = append(snippets, core.Snippet{
			DocumentID: res.ID,
			Content:    res.Content,
			Tag:        res.Metadata["tag"],
			Similarity: res.Similarity,
		})
	}
	return snippets, nil
}
