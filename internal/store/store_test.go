package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "mamchoi.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, want := range []string{"profile", "unlocked_sets", "recent_icons", "sessions"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", want,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", want, err)
		}
		if name != want {
			t.Errorf("table name = %q, want %q", name, want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mamchoi.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.ProfileRepo().AddStars(ctx, 7); err != nil {
		t.Fatalf("add stars: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	total, err := s.ProfileRepo().TotalStars(ctx)
	if err != nil {
		t.Fatalf("total stars: %v", err)
	}
	if total != 7 {
		t.Errorf("total stars = %d, want 7", total)
	}
}

func TestStarsAccumulate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	total, err := repo.TotalStars(ctx)
	if err != nil {
		t.Fatalf("total (empty): %v", err)
	}
	if total != 0 {
		t.Fatalf("fresh total = %d, want 0", total)
	}

	for _, n := range []int{3, 5, 0} {
		if _, err := repo.AddStars(ctx, n); err != nil {
			t.Fatalf("add %d: %v", n, err)
		}
	}
	total, err = repo.TotalStars(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 8 {
		t.Errorf("total = %d, want 8", total)
	}
}

func TestUnlockIgnoresDuplicates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Unlock(ctx, "farm_animals"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := repo.Unlock(ctx, "farm_animals", "sea_creatures"); err != nil {
		t.Fatalf("unlock again: %v", err)
	}
	if err := repo.Unlock(ctx); err != nil {
		t.Fatalf("unlock nothing: %v", err)
	}

	ids, err := repo.UnlockedSets(ctx)
	if err != nil {
		t.Fatalf("unlocked sets: %v", err)
	}
	want := []string{"farm_animals", "sea_creatures"}
	if len(ids) != len(want) {
		t.Fatalf("unlocked = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("unlocked[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestRecentIconsReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.IconHistoryRepo()
	ctx := context.Background()

	icons, err := repo.RecentIcons(ctx)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(icons) != 0 {
		t.Fatalf("expected empty history, got %v", icons)
	}

	if err := repo.ReplaceRecentIcons(ctx, []string{"🐶", "🐱"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.ReplaceRecentIcons(ctx, []string{"🚗", "🐶", "🚗", ""}); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	icons, err = repo.RecentIcons(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(icons) != 2 || icons[0] != "🚗" || icons[1] != "🐶" {
		t.Errorf("recent = %v, want [🚗 🐶]", icons)
	}
}

func TestSessionSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	recs, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(recs) != 0 {
		t.Fatal("expected no sessions")
	}

	created := time.Now().UTC().Truncate(time.Second)
	rec := &SessionRecord{
		Mode:       "addition",
		Difficulty: "mam",
		Score:      7,
		Total:      10,
		Stars:      3,
		IncorrectAttempts: []IncorrectAttempt{
			{QuestionID: "q1", Prompt: "Bé hãy tính:", Answer: "4"},
		},
		CreatedAt: created,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected save to assign an ID")
	}

	recs, err = repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	got := recs[0]
	if got.ID != rec.ID || got.Score != 7 || got.Total != 10 || got.Stars != 3 {
		t.Errorf("got %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if len(got.IncorrectAttempts) != 1 || got.IncorrectAttempts[0].Answer != "4" {
		t.Errorf("incorrect attempts = %+v", got.IncorrectAttempts)
	}
}

func TestSessionPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, &SessionRecord{Mode: "counting", Difficulty: "choi", Score: i, Total: 10}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 3); err != nil {
		t.Fatalf("prune: %v", err)
	}

	recs, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("remaining sessions = %d, want 3", len(recs))
	}
	// Newest first.
	for i, want := range []int{4, 3, 2} {
		if recs[i].Score != want {
			t.Errorf("recs[%d].Score = %d, want %d", i, recs[i].Score, want)
		}
	}
	if recs[0].IncorrectAttempts == nil || len(recs[0].IncorrectAttempts) != 0 {
		t.Errorf("expected empty attempts, got %#v", recs[0].IncorrectAttempts)
	}
}

func TestSessionPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, &SessionRecord{Mode: "counting", Difficulty: "mam"}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Prune(ctx, 3); err != nil {
		t.Fatalf("prune: %v", err)
	}
	recs, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("remaining sessions = %d, want 2", len(recs))
	}
}

func TestWithTxCommitsTogether(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(r Repos) error {
		if _, err := r.Profile.AddStars(ctx, 7); err != nil {
			return err
		}
		if err := r.Profile.Unlock(ctx, "farm_animals"); err != nil {
			return err
		}
		if err := r.Icons.ReplaceRecentIcons(ctx, []string{"🐶", "🐱"}); err != nil {
			return err
		}
		if err := r.Sessions.Save(ctx, &SessionRecord{Mode: "counting", Difficulty: "mam"}); err != nil {
			return err
		}
		return r.Sessions.Prune(ctx, 3)
	})
	if err != nil {
		t.Fatalf("with tx: %v", err)
	}

	total, _ := s.ProfileRepo().TotalStars(ctx)
	sets, _ := s.ProfileRepo().UnlockedSets(ctx)
	icons, _ := s.IconHistoryRepo().RecentIcons(ctx)
	recs, _ := s.SessionRepo().Recent(ctx, 0)
	if total != 7 || len(sets) != 1 || len(icons) != 2 || len(recs) != 1 {
		t.Errorf("after commit: stars=%d sets=%v icons=%v sessions=%d", total, sets, icons, len(recs))
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	errLate := errors.New("late failure")

	err := s.WithTx(ctx, func(r Repos) error {
		if err := r.Sessions.Save(ctx, &SessionRecord{Mode: "counting", Difficulty: "mam"}); err != nil {
			return err
		}
		if _, err := r.Profile.AddStars(ctx, 5); err != nil {
			return err
		}
		if total, _ := r.Profile.TotalStars(ctx); total != 5 {
			t.Errorf("stars inside tx = %d, want 5", total)
		}
		return errLate
	})
	if !errors.Is(err, errLate) {
		t.Fatalf("with tx: got %v, want %v", err, errLate)
	}

	total, _ := s.ProfileRepo().TotalStars(ctx)
	recs, _ := s.SessionRepo().Recent(ctx, 0)
	if total != 0 || len(recs) != 0 {
		t.Errorf("after rollback: stars=%d sessions=%d", total, len(recs))
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.ProfileRepo().AddStars(ctx, 30); err != nil {
		t.Fatalf("add stars: %v", err)
	}
	if err := s.ProfileRepo().Unlock(ctx, "farm_animals"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := s.IconHistoryRepo().ReplaceRecentIcons(ctx, []string{"🐶"}); err != nil {
		t.Fatalf("icons: %v", err)
	}
	if err := s.SessionRepo().Save(ctx, &SessionRecord{Mode: "counting", Difficulty: "mam"}); err != nil {
		t.Fatalf("session: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	total, _ := s.ProfileRepo().TotalStars(ctx)
	sets, _ := s.ProfileRepo().UnlockedSets(ctx)
	icons, _ := s.IconHistoryRepo().RecentIcons(ctx)
	recs, _ := s.SessionRepo().Recent(ctx, 0)
	if total != 0 || len(sets) != 0 || len(icons) != 0 || len(recs) != 0 {
		t.Errorf("after reset: stars=%d sets=%v icons=%v sessions=%d", total, sets, icons, len(recs))
	}
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("MAMCHOI_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAMCHOI_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	want := filepath.Join(dir, "mamchoi", "mamchoi.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
