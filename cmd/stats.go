package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/rewards"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stars, unlocked sets and the rounds kept for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		progress, err := newRewardService(st).Progress(ctx)
		if err != nil {
			return err
		}
		sessions, err := st.SessionRepo().Recent(ctx, cfg.History.MaxSessions)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Total stars: %d\n", progress.TotalStars)
		if next, ok := rewards.NextUnlock(progress.TotalStars); ok {
			fmt.Fprintf(w, "Next unlock: %s at %d stars\n", next.Name, next.StarsRequired)
		}

		names := make([]string, 0, len(progress.UnlockedSetIDs))
		for _, id := range progress.UnlockedSetIDs {
			if set, ok := catalog.SetByID(id); ok {
				names = append(names, set.Name)
			}
		}
		if len(names) == 0 {
			names = append(names, "(none)")
		}
		fmt.Fprintf(w, "Unlocked sets: %s\n", strings.Join(names, ", "))
		fmt.Fprintf(w, "Recent icons: %d\n", len(progress.RecentIcons))

		if len(sessions) == 0 {
			fmt.Fprintln(w, "\nNo rounds to review.")
			return nil
		}
		fmt.Fprintln(w, "\nRounds to review:")
		for _, rec := range sessions {
			fmt.Fprintf(w, "  %s  %-22s %-5s  %d/%d  %d★\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				question.Mode(rec.Mode).DisplayName(), question.Difficulty(rec.Difficulty).DisplayName(),
				rec.Score, rec.Total, rec.Stars)
			for _, a := range rec.IncorrectAttempts {
				fmt.Fprintf(w, "      %s  answered %q\n", a.Prompt, a.Answer)
			}
		}
		return nil
	},
}
