package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a round and print it as JSON",
	Long: `Generate a round of questions and write it as a versioned JSON document.

The icon pool is the starter set plus the sets named with --sets, or the
sets unlocked in the local profile with --from-profile.`,
	RunE: runGenerate,
}

func init() {
	addRoundFlags(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	generateCmd.Flags().StringSlice("sets", nil, "Unlocked image set IDs to add to the icon pool")
	generateCmd.Flags().Bool("from-profile", false, "Use the unlocked sets and recent icons of the local profile")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := roundRequest(cmd)
	if err != nil {
		return err
	}

	sets, _ := cmd.Flags().GetStringSlice("sets")
	for _, id := range sets {
		if _, ok := catalog.SetByID(id); !ok {
			return fmt.Errorf("unknown image set %q", id)
		}
	}
	req.UnlockedSetIDs = sets

	if fromProfile, _ := cmd.Flags().GetBool("from-profile"); fromProfile {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		progress, err := newRewardService(st).Progress(cmd.Context())
		if err != nil {
			return err
		}
		req.UnlockedSetIDs = append(req.UnlockedSetIDs, progress.UnlockedSetIDs...)
		req.RecentIcons = progress.RecentIcons
	}

	res, err := newGenerator().Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	if res.Short() {
		fmt.Fprintf(os.Stderr, "warning: only %d of %d questions could be generated\n", len(res.Questions), res.Requested)
	}

	raw, err := export.Marshal(export.NewDocument(req, res, time.Now()))
	if err != nil {
		return err
	}
	raw = append(raw, '\n')

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d questions to %s\n", len(res.Questions), out)
	return nil
}
