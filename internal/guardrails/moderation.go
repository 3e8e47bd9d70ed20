// Package guardrails holds the pure, deterministic safety checks that run
// before and after generation. Nothing here performs I/O or model calls.
package guardrails

import (
	"regexp"
	"strings"

	"github.com/sandevgo/haven/internal/core"
)

// unsafeKeywords flags direct references to violence, self-harm and abuse.
// Matching is case-insensitive substring containment.
var unsafeKeywords = []string{
	"kill myself",
	"suicide",
	"abuse",
	"rape",
	"murder",
	"hate speech",
	"bomb",
	"school shooting",
	"cut myself",
	"terrorism",
	"kill",
	"hurt",
	"self-harm",
	"violence",
}

// injectionPatterns flags instruction-override attempts.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ignore (the )?previous`),
	regexp.MustCompile(`disregard (the )?above`),
	regexp.MustCompile(`act as`),
	regexp.MustCompile(`simulate`),
	regexp.MustCompile(`pretend to`),
	regexp.MustCompile(`bypass`),
	regexp.MustCompile(`jailbreak`),
	regexp.MustCompile(`you are now`),
}

// Moderate screens raw user input. Blocked takes priority over injected when
// both match.
func Moderate(input string) core.ModerationVerdict {
	lowered := strings.ToLower(input)

	for _, kw := range unsafeKeywords {
		if strings.Contains(lowered, kw) {
			return core.ModerationBlocked
		}
	}

	for _, p := range injectionPatterns {
		if p.MatchString(lowered) {
			return core.ModerationInjected
		}
	}

	return core.ModerationSafe
}
