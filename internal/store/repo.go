package store

import (
	"context"
	"time"
)

// IncorrectAttempt records one wrong answer given during a session.
type IncorrectAttempt struct {
	QuestionID string `json:"questionId"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
}

// SessionRecord is a finished round worth reviewing later.
type SessionRecord struct {
	ID                string
	Mode              string
	Difficulty        string
	Score             int
	Total             int
	Stars             int
	IncorrectAttempts []IncorrectAttempt
	CreatedAt         time.Time
}

// ProfileRepo stores the child's star total and unlocked image sets.
type ProfileRepo interface {
	// TotalStars returns the star total, 0 for a fresh profile.
	TotalStars(ctx context.Context) (int, error)

	// AddStars adds n to the star total and returns the new total.
	AddStars(ctx context.Context, n int) (int, error)

	// UnlockedSets returns unlocked set IDs in unlock order.
	UnlockedSets(ctx context.Context) ([]string, error)

	// Unlock records set IDs as unlocked. Already unlocked IDs are ignored.
	Unlock(ctx context.Context, setIDs ...string) error
}

// IconHistoryRepo stores the recently shown icons, newest first.
type IconHistoryRepo interface {
	// RecentIcons returns the stored history, newest first.
	RecentIcons(ctx context.Context) ([]string, error)

	// ReplaceRecentIcons overwrites the history with icons.
	ReplaceRecentIcons(ctx context.Context, icons []string) error
}

// SessionRepo manages reviewable session records.
type SessionRepo interface {
	// Save stores a new record.
	Save(ctx context.Context, rec *SessionRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Prune deletes all but the N most recent records.
	Prune(ctx context.Context, keep int) error
}
