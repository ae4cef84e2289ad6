package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// profileRepo implements ProfileRepo on the profile and unlocked_sets
// tables.
type profileRepo struct {
	scope
}

func (r *profileRepo) TotalStars(ctx context.Context) (int, error) {
	return r.totalStars(ctx, r.conn())
}

func (r *profileRepo) totalStars(ctx context.Context, q conn) (int, error) {
	b := r.store.sql
	query, args := b.Select("total_stars").
		From(b.Table(tableProfile)).
		Where(entsql.EQ("id", profileID)).
		Query()

	var total int
	err := q.QueryRowContext(ctx, query, args...).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query total stars: %w", err)
	}
	return total, nil
}

func (r *profileRepo) AddStars(ctx context.Context, n int) (int, error) {
	var total int
	err := r.inTx(ctx, func(tx conn) error {
		current, err := r.totalStars(ctx, tx)
		if err != nil {
			return err
		}
		total = current + n

		query, args := r.store.sql.Insert(tableProfile).
			Columns("id", "total_stars", "updated_at").
			Values(profileID, total, time.Now().UTC()).
			OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save total stars: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *profileRepo) UnlockedSets(ctx context.Context) ([]string, error) {
	b := r.store.sql
	query, args := b.Select("set_id").
		From(b.Table(tableUnlockedSets)).
		OrderBy("id").
		Query()

	rows, err := r.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query unlocked sets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unlocked set: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *profileRepo) Unlock(ctx context.Context, setIDs ...string) error {
	if len(setIDs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	insert := r.store.sql.Insert(tableUnlockedSets).Columns("set_id", "unlocked_at")
	for _, id := range setIDs {
		insert.Values(id, now)
	}
	query, args := insert.
		OnConflict(entsql.ConflictColumns("set_id"), entsql.DoNothing()).
		Query()
	if _, err := r.conn().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unlock sets: %w", err)
	}
	return nil
}
