package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var sessionFields = []string{
	"session_id", "mode", "difficulty", "score", "total", "stars", "incorrect_attempts", "created_at",
}

// sessionRepo implements SessionRepo on the sessions table.
type sessionRepo struct {
	scope
}

// Save fills in rec.ID and rec.CreatedAt when they are empty.
func (r *sessionRepo) Save(ctx context.Context, rec *SessionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	attempts := rec.IncorrectAttempts
	if attempts == nil {
		attempts = []IncorrectAttempt{}
	}
	raw, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("marshal incorrect attempts: %w", err)
	}

	query, args := r.store.sql.Insert(tableSessions).
		Columns(sessionFields...).
		Values(rec.ID, rec.Mode, rec.Difficulty, rec.Score, rec.Total, rec.Stars, string(raw), rec.CreatedAt).
		Query()
	if _, err := r.conn().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	b := r.store.sql
	sel := b.Select(sessionFields...).
		From(b.Table(tableSessions)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			raw []byte
		)
		err := rows.Scan(&rec.ID, &rec.Mode, &rec.Difficulty, &rec.Score, &rec.Total, &rec.Stars, &raw, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if err := json.Unmarshal(raw, &rec.IncorrectAttempts); err != nil {
			return nil, fmt.Errorf("unmarshal incorrect attempts of %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sessionRepo) Prune(ctx context.Context, keep int) error {
	b := r.store.sql
	query, args := b.Select("id").
		From(b.Table(tableSessions)).
		OrderBy(entsql.Desc("id")).
		Query()

	rows, err := r.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query sessions for prune: %w", err)
	}
	var stale []any
	for i := 0; rows.Next(); i++ {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan session id: %w", err)
		}
		if i >= keep {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate sessions: %w", err)
	}
	if len(stale) == 0 {
		return nil // fewer than keep sessions exist
	}

	query, args = b.Delete(tableSessions).Where(entsql.In("id", stale...)).Query()
	if _, err := r.conn().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	return nil
}
