package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/haven/internal/config"
	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/internal/providers/llm"
	"github.com/sandevgo/haven/internal/providers/rag"
	"github.com/sandevgo/haven/internal/service/classify"
	"github.com/sandevgo/haven/internal/service/memory"
	"github.com/sandevgo/haven/internal/service/turn"
	"github.com/sandevgo/haven/internal/storage/sqlite"
	"github.com/sandevgo/haven/internal/storage/vector"
	"github.com/sandevgo/haven/internal/transport/cli"
	"github.com/sandevgo/haven/pkg/log"
	"github.com/sandevgo/haven/pkg/srv"
)

// NewServices wires the whole application. The returned services are the
// background lifecycle (storage cleanups); the ReadLine session runs in the
// foreground and ends the process when the user exits.
func NewServices(ctx context.Context) ([]srv.Service, *cli.ReadLine) {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	embCfg := config.NewEmbeddingsConfig(ctx)

	// 2. Storage
	db, logRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Embedder + long-term store
	embedder, err := rag.NewEmbedder(embCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize embedder")
	}

	docRepo, err := vector.NewStore(appCfg.GetVectorStorePath(), embedder)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize vector store")
	}

	// 4. AI Providers
	// The chat model carries conversations; a smaller model answers the
	// classifier calls.
	chatProvider, err := llm.NewProvider(ctx, llmCfg, llmCfg.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize chat provider")
	}

	classifierProvider, err := llm.NewProvider(ctx, llmCfg, llmCfg.ClassifierModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize classifier provider")
	}

	// 5. Turn pipeline
	mem := memory.NewManager(logRepo, docRepo, embCfg.ChunkTokens)

	engine := turn.NewEngine(
		appCfg,
		chatProvider,
		classify.NewEmotion(classifierProvider),
		classify.NewCrisis(classifierProvider),
		classify.NewIntent(classifierProvider),
		mem,
	)

	// 6. Transport
	readLine, err := cli.NewReadLine(engine, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize CLI transport")
	}

	return services, readLine
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.MemoryLogRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewMemoryLogRepo(db), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
