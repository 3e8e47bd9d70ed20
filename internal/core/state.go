package core

// ModerationVerdict is the outcome of the input moderation gate.
type ModerationVerdict string

const (
	ModerationSafe     ModerationVerdict = "safe"
	ModerationBlocked  ModerationVerdict = "blocked"
	ModerationInjected ModerationVerdict = "injected"
)

// AttackLabel records how a turn was terminated by the gates. It transitions
// unset -> safe and safe -> pii_found only; it never reverts.
type AttackLabel string

const (
	AttackSafe     AttackLabel = "safe"
	AttackBlocked  AttackLabel = "blocked"
	AttackInjected AttackLabel = "injected"
	AttackPIIFound AttackLabel = "pii_found"
)

// CrisisVerdict is the crisis classifier's judgment.
type CrisisVerdict string

const (
	CrisisSafe     CrisisVerdict = "safe"
	CrisisDetected CrisisVerdict = "crisis"
)

// IntentLabel routes a gated-through turn to its producer.
type IntentLabel string

const (
	IntentJournal IntentLabel = "journal"
	IntentChat    IntentLabel = "chat"
)

// OutputVerdict is the output validator's judgment on a generated response.
type OutputVerdict string

const (
	OutputSafe   OutputVerdict = "safe"
	OutputUnsafe OutputVerdict = "unsafe"
)

// TurnState is the record threaded through one pipeline invocation. It is
// created at turn start, owned exclusively by the engine for the duration of
// the call, and returned to the transport when exactly one terminal node has
// produced a Response.
type TurnState struct {
	UserID   string
	ThreadID string
	Input    string

	// Messages is the short-term buffer: seeded from the memory log at turn
	// start, append-only during the turn, read capped at the most recent
	// entries for prompt construction.
	Messages []Message

	Response         string
	RelevantMemories []string
	Emotion          string
	Mode             IntentLabel
	Attack           AttackLabel
	JournalEntry     string

	// Warnings carries best-effort store failures that did not abort the
	// turn (e.g. a memory-log append that failed after generation).
	Warnings []string
}

func NewTurnState(userID, threadID, input string) *TurnState {
	return &TurnState{
		UserID:   userID,
		ThreadID: threadID,
		Input:    input,
	}
}

func (s *TurnState) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

// RecentMessages returns the last limit entries of the short-term buffer in
// chronological order.
func (s *TurnState) RecentMessages(limit int) []Message {
	if limit <= 0 || len(s.Messages) <= limit {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-limit:]
}
