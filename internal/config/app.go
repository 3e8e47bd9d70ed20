package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/haven/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"HAVEN_RUNTIME_PATH" envDefault:".haven"`

	// Short-term memory window used to seed prompts.
	ContextWindowSize int `env:"CONTEXT_WINDOW_SIZE" envDefault:"6"`

	// Number of long-term snippets recalled per chat turn.
	RecallK int `env:"RECALL_K" envDefault:"3"`

	// Deadline applied to each model-backed classifier call.
	ClassifierTimeout time.Duration `env:"CLASSIFIER_TIMEOUT" envDefault:"20s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "haven.db")
}

func (c AppConfig) GetVectorStorePath() string {
	return filepath.Join(c.RuntimePath, "vectorstore")
}
