package core

import "time"

const (
	HavenName    = "Haven"
	HavenVersion = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MemoryRecord is one durable row of the per-user memory log. Records are
// append-only and ordered by CreatedAt within a user.
type MemoryRecord struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	Emotion      string    `json:"emotion,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	Attack       string    `json:"attack,omitempty"`
	JournalEntry string    `json:"journal_entry,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Document is a long-term memory entry stored inside the owning user's
// partition and addressed by DocumentID.
type Document struct {
	DocumentID string
	UserID     string
	Content    string
	Tag        string
	CreatedAt  time.Time
}

// Snippet is one semantic recall result, ranked by similarity descending.
type Snippet struct {
	DocumentID string
	Content    string
	Tag        string
	Similarity float32
}
