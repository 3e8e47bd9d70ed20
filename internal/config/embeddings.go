package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/haven/pkg/log"
)

type EmbeddingsConfig struct {
	BaseURL string `env:"EMBEDDINGS_BASE_URL" envDefault:"https://api.openai.com"`
	APIKey  string `env:"EMBEDDINGS_API_KEY"`
	Model   string `env:"EMBEDDINGS_MODEL" envDefault:"text-embedding-3-small"`

	// Token budget per embedded chunk; journal entries above it are split.
	ChunkTokens int `env:"EMBEDDINGS_CHUNK_TOKENS" envDefault:"480"`
}

func NewEmbeddingsConfig(ctx context.Context) *EmbeddingsConfig {
	c := &EmbeddingsConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Embeddings config")
	}
	return c
}
