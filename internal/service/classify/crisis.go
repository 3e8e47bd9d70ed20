// Package classify holds the model-backed classifiers that label a turn:
// emotion, crisis and journal intent. The failure policy differs per
// classifier and is enforced by the turn engine: emotion and intent fail
// open, crisis never does.
package classify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/haven/internal/core"
)

const crisisSystemPrompt = "You are a mental health safety checker."

const crisisUserPrompt = `Analyze this message for signs of crisis:
'%s'

If the message mentions suicide, self-harm, or extreme emotional distress, set "crisis" to true.
If it is safe or neutral, set "crisis" to false.
Respond with ONLY a JSON object: {"crisis": true} or {"crisis": false}.`

// Crisis judges whether a message signals a safety emergency. It is a hard
// boundary: any failure is returned to the caller, never coerced to safe.
type Crisis struct {
	ai core.AIProvider
}

func NewCrisis(ai core.AIProvider) *Crisis {
	return &Crisis{ai: ai}
}

func (c *Crisis) Classify(ctx context.Context, input string) (core.CrisisVerdict, error) {
	resp, err := c.ai.ChatJSON(ctx, []core.Message{
		{Role: core.RoleSystem, Content: crisisSystemPrompt},
		{Role: core.RoleUser, Content: fmt.Sprintf(crisisUserPrompt, input)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: crisis: %v", core.ErrClassifierUnavailable, err)
	}

	raw := extractJSONObject(resp.Content)
	if raw == "" {
		return "", fmt.Errorf("%w: crisis: no JSON object in %q", core.ErrClassifierMalformed, resp.Content)
	}

	var result struct {
		Crisis *bool `json:"crisis"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("%w: crisis: %v", core.ErrClassifierMalformed, err)
	}
	if result.Crisis == nil {
		return "", fmt.Errorf("%w: crisis: missing field in %q", core.ErrClassifierMalformed, raw)
	}

	if *result.Crisis {
		return core.CrisisDetected, nil
	}
	return core.CrisisSafe, nil
}
