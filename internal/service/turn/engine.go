// Package turn runs the orchestration engine: one user utterance in, one
// validated response out, through a fixed pipeline of gates, classifiers
// and terminal producers. The stage order is a safety contract: moderation
// before PII, both before any model call, crisis before intent. The engine
// is the only component allowed to mutate a TurnState.
package turn

import (
	"context"
	"fmt"

	"github.com/sandevgo/haven/internal/config"
	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/internal/guardrails"
	"github.com/sandevgo/haven/internal/service/memory"
	"github.com/sandevgo/haven/pkg/log"
)

type EmotionClassifier interface {
	Classify(ctx context.Context, input string) (string, error)
}

type CrisisClassifier interface {
	Classify(ctx context.Context, input string) (core.CrisisVerdict, error)
}

type IntentClassifier interface {
	Classify(ctx context.Context, input string) (core.IntentLabel, error)
}

type Engine struct {
	cfg     *config.AppConfig
	chat    core.AIProvider
	emotion EmotionClassifier
	crisis  CrisisClassifier
	intent  IntentClassifier
	memory  *memory.Manager
	threads *threadLocks
}

func NewEngine(
	cfg *config.AppConfig,
	chat core.AIProvider,
	emotion EmotionClassifier,
	crisis CrisisClassifier,
	intent IntentClassifier,
	mem *memory.Manager,
) *Engine {
	return &Engine{
		cfg:     cfg,
		chat:    chat,
		emotion: emotion,
		crisis:  crisis,
		intent:  intent,
		memory:  mem,
		threads: newThreadLocks(),
	}
}

// RunTurn executes one full turn. It always returns a state carrying a
// Response; a non-nil error means the turn ended abnormally (today only a
// failed crisis assessment, which never fails open).
func (e *Engine) RunTurn(ctx context.Context, userID, threadID, input string) (*core.TurnState, error) {
	unlock := e.threads.lock(threadID)
	defer unlock()

	state := core.NewTurnState(userID, threadID, input)

	history, err := e.memory.Recent(ctx, userID, e.cfg.ContextWindowSize)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", userID).Msg("failed to seed short-term buffer")
		state.Warn(fmt.Sprintf("short-term history unavailable: %v", err))
	} else {
		state.Messages = history
	}

	current := nodeCheckInputModeration
	for steps := 0; current != nodeEnd; steps++ {
		if steps >= maxSteps {
			return state, fmt.Errorf("pipeline did not terminate after %d steps (at %s)", steps, current)
		}

		next, err := e.step(ctx, current, state)
		if err != nil {
			return state, err
		}
		current = next
	}

	return state, nil
}

// step runs a single node and returns the next one. Every branch is an
// exhaustive switch on a typed verdict so an unknown value cannot fall
// through to generation.
func (e *Engine) step(ctx context.Context, n node, state *core.TurnState) (node, error) {
	logger := log.FromCtx(ctx)

	switch n {
	case nodeCheckInputModeration:
		switch guardrails.Moderate(state.Input) {
		case core.ModerationBlocked:
			state.Attack = core.AttackBlocked
			return nodeHandleBlocked, nil
		case core.ModerationInjected:
			state.Attack = core.AttackInjected
			return nodeHandleInjection, nil
		case core.ModerationSafe:
			state.Attack = core.AttackSafe
			return nodeCheckPII, nil
		}
		return "", fmt.Errorf("unknown moderation verdict")

	case nodeHandleBlocked:
		state.Response = blockedMessage
		e.memory.Append(ctx, state, core.RoleAssistant, blockedMessage)
		logger.Info().Str("user_id", state.UserID).Msg("turn blocked by moderation gate")
		return nodeEnd, nil

	case nodeHandleInjection:
		state.Response = injectionMessage
		e.memory.Append(ctx, state, core.RoleAssistant, injectionMessage)
		logger.Info().Str("user_id", state.UserID).Msg("prompt injection blocked")
		return nodeEnd, nil

	case nodeCheckPII:
		if guardrails.DetectPII(state.Input) {
			state.Attack = core.AttackPIIFound
			return nodeHandlePII, nil
		}
		return nodeAnalyzeEmotion, nil

	case nodeHandlePII:
		state.Response = piiResponse
		e.memory.Append(ctx, state, core.RoleAssistant, piiNotice)
		logger.Info().Str("user_id", state.UserID).Msg("turn blocked by PII gate")
		return nodeEnd, nil

	case nodeAnalyzeEmotion:
		cctx, cancel := context.WithTimeout(ctx, e.cfg.ClassifierTimeout)
		label, err := e.emotion.Classify(cctx, state.Input)
		cancel()
		if err != nil {
			// Fail-open: a missing emotion label degrades quality, not safety.
			logger.Warn().Err(err).Msg("emotion classification failed, continuing without label")
		}
		state.Emotion = label
		return nodeCheckCrisis, nil

	case nodeCheckCrisis:
		cctx, cancel := context.WithTimeout(ctx, e.cfg.ClassifierTimeout)
		verdict, err := e.crisis.Classify(cctx, state.Input)
		cancel()
		if err != nil {
			// Never fail open on crisis detection.
			state.Response = safetyUnavailableMessage
			e.memory.Append(ctx, state, core.RoleAssistant, safetyUnavailableMessage)
			logger.Error().Err(err).Str("user_id", state.UserID).Msg("crisis assessment failed")
			return nodeEnd, fmt.Errorf("%w: %v", core.ErrSafetyCheckFailed, err)
		}
		switch verdict {
		case core.CrisisDetected:
			return nodeCrisisResponse, nil
		case core.CrisisSafe:
			return nodeCheckJournalIntent, nil
		}
		return "", fmt.Errorf("unknown crisis verdict %q", verdict)

	case nodeCheckJournalIntent:
		cctx, cancel := context.WithTimeout(ctx, e.cfg.ClassifierTimeout)
		label, err := e.intent.Classify(cctx, state.Input)
		cancel()
		if err != nil {
			// Fail-open toward the supervised, output-validated chat path.
			logger.Warn().Err(err).Msg("intent classification failed, defaulting to chat")
			label = core.IntentChat
		}
		state.Mode = label
		switch label {
		case core.IntentJournal:
			return nodeJournalResponse, nil
		case core.IntentChat:
			return nodeChatResponse, nil
		}
		return "", fmt.Errorf("unknown intent label %q", label)

	case nodeCrisisResponse:
		return e.produceCrisis(ctx, state)

	case nodeJournalResponse:
		return e.produceJournal(ctx, state)

	case nodeChatResponse:
		return e.produceChat(ctx, state)

	case nodeValidateOutput:
		if guardrails.ValidateResponse(state.Response) == core.OutputUnsafe {
			logger.Warn().Str("user_id", state.UserID).Msg("generated response failed output validation")
			e.memory.Append(ctx, state, core.RoleAssistant, unsafeResponseNotice)
			state.Response = unsafeResponseMessage
		}
		return nodeEnd, nil
	}

	return "", fmt.Errorf("unknown pipeline node %q", n)
}
