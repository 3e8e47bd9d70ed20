package guardrails

import (
	"strings"

	"github.com/sandevgo/haven/internal/core"
)

// dangerousPhrases flags generated responses that read as directive harm,
// dismissal or diagnostic claims.
var dangerousPhrases = []string{
	"you should just give up",
	"go ahead and hurt yourself",
	"i diagnose you",
	"take medication",
	"here's how to",
	"no one cares",
	"you are worthless",
}

// ValidateResponse screens a generated chat response before release.
func ValidateResponse(response string) core.OutputVerdict {
	lowered := strings.ToLower(response)
	for _, phrase := range dangerousPhrases {
		if strings.Contains(lowered, phrase) {
			return core.OutputUnsafe
		}
	}
	return core.OutputSafe
}
