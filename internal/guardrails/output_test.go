package guardrails

import (
	"testing"

	"github.com/sandevgo/haven/internal/core"
)

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		expected core.OutputVerdict
	}{
		{
			name:     "supportive response",
			response: "That sounds really hard. What helped you get through today?",
			expected: core.OutputSafe,
		},
		{
			name:     "dismissive response",
			response: "Honestly, no one cares about this.",
			expected: core.OutputUnsafe,
		},
		{
			name:     "diagnostic claim",
			response: "Based on this I diagnose you with depression.",
			expected: core.OutputUnsafe,
		},
		{
			name:     "case insensitive",
			response: "YOU ARE WORTHLESS",
			expected: core.OutputUnsafe,
		},
		{
			name:     "empty response",
			response: "",
			expected: core.OutputSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateResponse(tt.response); got != tt.expected {
				t.Errorf("ValidateResponse(%q) = %q, want %q", tt.response, got, tt.expected)
			}
		})
	}
}
