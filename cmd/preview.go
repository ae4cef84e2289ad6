package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mamchoi/internal/ui/render"
	"github.com/abhisek/mamchoi/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated round without playing it (no database)",
	Long: `Generate a round and print every question as it would be shown.

This is a stateless tool: no database, no stars, no icon history.
Useful for checking question quality of a mode and tier.`,
	RunE: runPreview,
}

func init() {
	addRoundFlags(previewCmd)
	previewCmd.Flags().Bool("answers", false, "Show the expected answer under each question")
}

func runPreview(cmd *cobra.Command, args []string) error {
	req, err := roundRequest(cmd)
	if err != nil {
		return err
	}
	showAnswers, _ := cmd.Flags().GetBool("answers")

	res, err := newGenerator().Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	if res.Short() {
		fmt.Fprintf(os.Stderr, "warning: only %d of %d questions could be generated\n", len(res.Questions), res.Requested)
	}

	w := cmd.OutOrStdout()
	lipgloss.Fprintln(w, theme.Title.Render(fmt.Sprintf("%s · %s · seed %d",
		req.Mode.DisplayName(), req.Difficulty.DisplayName(), res.Seed)))
	for i, q := range res.Questions {
		fmt.Fprintf(w, "\n── Câu %d/%d ──\n", i+1, len(res.Questions))
		lipgloss.Fprintln(w, render.Question(q))
		if !showAnswers {
			continue
		}
		if a := render.Answer(q); a != "" {
			lipgloss.Fprintln(w, theme.Correct.Render("Đáp án: "+a))
		}
		if e := render.Explanation(q); e != "" {
			lipgloss.Fprintln(w, theme.Hint.Render(e))
		}
	}
	return nil
}
