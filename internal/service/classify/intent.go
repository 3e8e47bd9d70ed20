package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/haven/internal/core"
)

const intentSystemPrompt = "You classify if a user message is a journal entry or a request for therapy chat. Reply ONLY with 'journal' or 'chat'."

// Intent routes a message to the journal or chat producer. Any response
// other than the literal "journal" counts as chat: the chat path is the
// supervised, output-validated one.
type Intent struct {
	ai core.AIProvider
}

func NewIntent(ai core.AIProvider) *Intent {
	return &Intent{ai: ai}
}

func (i *Intent) Classify(ctx context.Context, input string) (core.IntentLabel, error) {
	resp, err := i.ai.Chat(ctx, []core.Message{
		{Role: core.RoleSystem, Content: intentSystemPrompt},
		{Role: core.RoleUser, Content: "Message: " + input},
	})
	if err != nil {
		return core.IntentChat, fmt.Errorf("%w: intent: %v", core.ErrClassifierUnavailable, err)
	}

	if strings.ToLower(strings.TrimSpace(resp.Content)) == string(core.IntentJournal) {
		return core.IntentJournal, nil
	}
	return core.IntentChat, nil
}
