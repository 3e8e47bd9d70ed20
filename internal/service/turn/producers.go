package turn

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/pkg/log"
)

// produceCrisis is deterministic: a fixed supportive message, no model call.
func (e *Engine) produceCrisis(ctx context.Context, state *core.TurnState) (node, error) {
	e.memory.Append(ctx, state, core.RoleUser, state.Input)
	state.Response = crisisMessage
	e.memory.Append(ctx, state, core.RoleAssistant, crisisMessage)

	log.FromCtx(ctx).Info().Str("user_id", state.UserID).Msg("crisis response issued")
	return nodeEnd, nil
}

// produceJournal reflects on the entry, persists it long-term tagged
// "journal", and ends the turn. Journal reflections deliberately skip the
// output validator.
func (e *Engine) produceJournal(ctx context.Context, state *core.TurnState) (node, error) {
	resp, err := e.chat.Chat(ctx, []core.Message{
		{Role: core.RoleSystem, Content: journalSystemPrompt},
		{Role: core.RoleUser, Content: "Journal Entry:\n" + state.Input},
	})
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("journal reflection failed")
		state.Response = generationFailedMessage
		e.memory.Append(ctx, state, core.RoleAssistant, generationFailedMessage)
		return nodeEnd, nil
	}
	reflection := strings.TrimSpace(resp.Content)

	state.JournalEntry = state.Input
	if _, err := e.memory.SaveJournal(ctx, state.UserID, state.Input); err != nil {
		// The reflection still goes out; only durability degraded.
		log.FromCtx(ctx).Warn().Err(err).Msg("journal entry not persisted to long-term memory")
		state.Warn(fmt.Sprintf("journal not persisted: %v", err))
	}

	e.memory.Append(ctx, state, core.RoleUser, state.Input)
	state.Response = reflection
	e.memory.Append(ctx, state, core.RoleAssistant, reflection)

	return nodeEnd, nil
}

// produceChat assembles the therapy prompt (emotion-aware system message,
// recalled long-term context, recent history, current input), calls the
// model and routes the raw response into output validation.
func (e *Engine) produceChat(ctx context.Context, state *core.TurnState) (node, error) {
	recalled := e.memory.Recall(ctx, state.UserID, state.Input, e.cfg.RecallK)

	system := chatSystemPrompt
	if state.Emotion != "" {
		system = fmt.Sprintf("%s The user currently feels %s.", chatSystemPrompt, state.Emotion)
	}

	prompt := []core.Message{{Role: core.RoleSystem, Content: system}}
	if len(recalled) > 0 {
		prompt = append(prompt, core.Message{
			Role:    core.RoleSystem,
			Content: "The user previously shared the following relevant context:\n" + strings.Join(recalled, "\n"),
		})
	}
	prompt = append(prompt, state.RecentMessages(e.cfg.ContextWindowSize)...)
	prompt = append(prompt, core.Message{Role: core.RoleUser, Content: state.Input})

	resp, err := e.chat.Chat(ctx, prompt)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("chat generation failed")
		state.Response = generationFailedMessage
		e.memory.Append(ctx, state, core.RoleAssistant, generationFailedMessage)
		return nodeEnd, nil
	}

	e.memory.Append(ctx, state, core.RoleUser, state.Input)
	state.Response = resp.Content
	state.RelevantMemories = recalled
	e.memory.Append(ctx, state, core.RoleAssistant, resp.Content)

	return nodeValidateOutput, nil
}
