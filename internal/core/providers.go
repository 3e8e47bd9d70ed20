package core

import "context"

// AIProvider is the completion service contract. ChatJSON requests a JSON
// object response (constrained output mode) for classifier calls; providers
// that cannot force the mode fall back to instructing the model and the
// classifier validates the shape either way.
type AIProvider interface {
	Chat(ctx context.Context, messages []Message) (Message, error)
	ChatJSON(ctx context.Context, messages []Message) (Message, error)
}

type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
