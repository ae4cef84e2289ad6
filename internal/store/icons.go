package store

import (
	"context"
	"fmt"
)

// iconHistoryRepo implements IconHistoryRepo on the recent_icons table.
type iconHistoryRepo struct {
	scope
}

func (r *iconHistoryRepo) RecentIcons(ctx context.Context) ([]string, error) {
	b := r.store.sql
	query, args := b.Select("emoji").
		From(b.Table(tableRecentIcons)).
		OrderBy("position").
		Query()

	rows, err := r.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent icons: %w", err)
	}
	defer rows.Close()

	var icons []string
	for rows.Next() {
		var emoji string
		if err := rows.Scan(&emoji); err != nil {
			return nil, fmt.Errorf("scan recent icon: %w", err)
		}
		icons = append(icons, emoji)
	}
	return icons, rows.Err()
}

// ReplaceRecentIcons keeps the first occurrence of each icon.
func (r *iconHistoryRepo) ReplaceRecentIcons(ctx context.Context, icons []string) error {
	return r.inTx(ctx, func(tx conn) error {
		query, args := r.store.sql.Delete(tableRecentIcons).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear recent icons: %w", err)
		}

		insert := r.store.sql.Insert(tableRecentIcons).Columns("position", "emoji")
		seen := make(map[string]bool, len(icons))
		for _, icon := range icons {
			if icon == "" || seen[icon] {
				continue
			}
			insert.Values(len(seen), icon)
			seen[icon] = true
		}
		if len(seen) == 0 {
			return nil
		}
		query, args = insert.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save recent icons: %w", err)
		}
		return nil
	})
}
