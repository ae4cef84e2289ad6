package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mamchoi/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the image sets and their unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		showIcons, _ := cmd.Flags().GetBool("icons")
		noProfile, _ := cmd.Flags().GetBool("no-profile")

		var unlocked []string
		totalStars := 0
		if !noProfile {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			progress, err := newRewardService(st).Progress(cmd.Context())
			if err != nil {
				return err
			}
			unlocked, totalStars = progress.UnlockedSetIDs, progress.TotalStars
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Starter icons: %d\n", len(catalog.StarterIcons))
		if showIcons {
			fmt.Fprintln(w, strings.Join(catalog.StarterIcons, " "))
		}
		fmt.Fprintf(w, "Icon catalog: %d entries\n\n", catalog.Default().Len())

		fmt.Fprintf(w, "%-18s  %-30s  %5s  %5s  %s\n", "ID", "Name", "Stars", "Icons", "State")
		fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, set := range catalog.UnlockableSets {
			state := "locked"
			switch {
			case slices.Contains(unlocked, set.ID):
				state = "unlocked"
			case !noProfile && totalStars < set.StarsRequired:
				state = fmt.Sprintf("locked (%d more)", set.StarsRequired-totalStars)
			}
			fmt.Fprintf(w, "%-18s  %-30s  %5d  %5d  %s\n", set.ID, set.Name, set.StarsRequired, len(set.Icons), state)
			if showIcons {
				fmt.Fprintf(w, "  %s\n", strings.Join(set.Icons, " "))
			}
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("icons", false, "Print the icons of every set")
	catalogCmd.Flags().Bool("no-profile", false, "Skip the unlock state of the local profile")
}
