package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/haven/internal/config"
	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/internal/service/turn"
	"github.com/sandevgo/haven/internal/service/ui"
	"github.com/sandevgo/haven/pkg/log"
)

const (
	defaultUserID   = "cli-local"
	defaultThreadID = "cli-local"
)

type ReadLine struct {
	cfg    *config.AppConfig
	engine *turn.Engine
	rl     *readline.Instance
}

func NewReadLine(engine *turn.Engine, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		engine: engine,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("Haven chat started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		state, err := r.engine.RunTurn(ctx, defaultUserID, defaultThreadID, line)
		if err != nil && !errors.Is(err, core.ErrSafetyCheckFailed) {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}

		r.render(state)
	}
}

func (r *ReadLine) render(state *core.TurnState) {
	out := r.rl.Stdout()

	if state.Attack != core.AttackSafe && state.Attack != "" {
		fmt.Fprintf(out, "%s\n", ui.NoticeStyle.Render(state.Response))
		return
	}

	fmt.Fprintf(out, "%s\n", ui.ResponseStyle.Render(state.Response))

	for _, warning := range state.Warnings {
		fmt.Fprintf(out, "%s\n", ui.NoticeStyle.Render("[warning] "+warning))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
