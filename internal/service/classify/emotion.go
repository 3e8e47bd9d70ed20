package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/haven/internal/core"
)

const emotionSystemPrompt = "You are an expert emotional classifier."

const emotionUserPrompt = `What emotion is being expressed in this message: '%s'?
Respond with ONLY a JSON object holding one lowercase word, like {"emotion": "anxious"}.`

// Emotion labels the user's emotional state with a single word.
type Emotion struct {
	ai core.AIProvider
}

func NewEmotion(ai core.AIProvider) *Emotion {
	return &Emotion{ai: ai}
}

func (e *Emotion) Classify(ctx context.Context, input string) (string, error) {
	resp, err := e.ai.ChatJSON(ctx, []core.Message{
		{Role: core.RoleSystem, Content: emotionSystemPrompt},
		{Role: core.RoleUser, Content: fmt.Sprintf(emotionUserPrompt, input)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: emotion: %v", core.ErrClassifierUnavailable, err)
	}

	raw := extractJSONObject(resp.Content)
	if raw == "" {
		return "", fmt.Errorf("%w: emotion: no JSON object in %q", core.ErrClassifierMalformed, resp.Content)
	}

	var result struct {
		Emotion string `json:"emotion"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("%w: emotion: %v", core.ErrClassifierMalformed, err)
	}

	return strings.ToLower(strings.TrimSpace(result.Emotion)), nil
}
