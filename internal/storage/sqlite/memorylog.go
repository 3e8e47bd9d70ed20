package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/pkg/log"
)

// MemoryLogRepo persists the append-only per-user message log.
type MemoryLogRepo struct {
	db *sql.DB
}

func NewMemoryLogRepo(db *sql.DB) *MemoryLogRepo {
	return &MemoryLogRepo{db: db}
}

func (r *MemoryLogRepo) Append(ctx context.Context, record core.MemoryRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `INSERT INTO memory_logs (user_id, role, content, emotion, mode, attack, journal_entry, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		record.UserID, record.Role, record.Content,
		record.Emotion, record.Mode, record.Attack, record.JournalEntry,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert memory record: %w", err)
	}
	return nil
}

func (r *MemoryLogRepo) Recent(ctx context.Context, userID string, limit int) ([]core.MemoryRecord, error) {
	// Fetch the LAST limit records by ordering DESC, then reverse below.
	query := `SELECT id, user_id, role, content, emotion, mode, attack, journal_entry, created_at
		FROM memory_logs WHERE user_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory records: %w", err)
	}
	defer rows.Close()

	var records []core.MemoryRecord
	for rows.Next() {
		var rec core.MemoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Role, &rec.Content,
			&rec.Emotion, &rec.Mode, &rec.Attack, &rec.JournalEntry,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan memory record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order (oldest first) for prompt seeding.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(records)).Str("user_id", userID).Msg("loaded memory records")
	return records, nil
}
