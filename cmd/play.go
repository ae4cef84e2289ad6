package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/rewards"
	"github.com/abhisek/mamchoi/internal/session"
	"github.com/abhisek/mamchoi/internal/ui/render"
	"github.com/abhisek/mamchoi/internal/ui/theme"
)

const progressWidth = 40

var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round in the terminal",
	Long: `Play one round, answering on stdin.

Type the number or the option number asked for. On a matching board pair
two tiles with "a-b". Type q to stop; an unfinished round is not recorded.
A finished round earns stars, unlocks image sets and updates the icon history.`,
	RunE: runPlay,
}

func init() {
	addRoundFlags(playCmd)
	playCmd.Flags().Bool("no-save", false, "Do not read or update the local profile")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	req, err := roundRequest(cmd)
	if err != nil {
		return err
	}
	noSave, _ := cmd.Flags().GetBool("no-save")

	svc := rewards.NewService(nil, nil, nil, rewards.WithLogger(log.Named("rewards")))
	if !noSave {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		svc = newRewardService(st)
	}

	progress, err := svc.Progress(ctx)
	if err != nil {
		return err
	}
	req.UnlockedSetIDs = progress.UnlockedSetIDs
	req.RecentIcons = progress.RecentIcons

	res, err := newGenerator().Generate(ctx, req)
	if err != nil {
		return err
	}
	if len(res.Questions) == 0 {
		return fmt.Errorf("could not generate any %s question", req.Mode)
	}

	out := cmd.OutOrStdout()
	s := session.New(req.Mode, req.Difficulty, res)
	lipgloss.Fprintln(out, theme.Title.Render(req.Mode.DisplayName()+" · "+req.Difficulty.DisplayName()))

	switch err := playRound(cmd.InOrStdin(), out, s); {
	case errors.Is(err, errQuit):
		fmt.Fprintln(out, "Tạm biệt! Hẹn gặp lại bé.")
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(out, "\n(input closed)")
		return nil
	case err != nil:
		return err
	}

	award, err := svc.FinishRound(ctx, s.Outcome())
	if err != nil {
		return err
	}
	if noSave {
		lipgloss.Fprintln(out, render.Summary(s.Summary(), nil))
		fmt.Fprintln(out, award.Message.Text, strings.Join(award.Message.Icons, " "))
		return nil
	}
	lipgloss.Fprintln(out, render.Summary(s.Summary(), award))
	return nil
}

// playRound reads one answer per line until the session is done. It
// returns errQuit when the player stops and io.EOF when input ends early.
func playRound(in io.Reader, out io.Writer, s *session.Session) error {
	scanner := bufio.NewScanner(in)
	for !s.Done() {
		n, total := s.Position()
		q := s.Current()
		lipgloss.Fprintln(out, "\n"+render.ProgressBar{Current: n, Total: total, Width: progressWidth}.View())
		lipgloss.Fprintln(out, render.Question(q))

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return io.EOF
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return errQuit
		}

		if board, ok := q.(*question.MatchingPairsQuestion); ok {
			fb, err := selectPair(s, board, line)
			if err != nil {
				lipgloss.Fprintln(out, theme.Hint.Render(err.Error()))
				continue
			}
			lipgloss.Fprintln(out, render.Feedback(fb))
			continue
		}

		fb, err := s.Submit(line)
		if err != nil {
			return err
		}
		lipgloss.Fprintln(out, render.Feedback(fb))
		if fb.Result == session.ResultIncorrect {
			if a := render.Answer(q); a != "" {
				lipgloss.Fprintln(out, theme.Hint.Render("Đáp án: "+a))
			}
			if e := render.Explanation(q); e != "" {
				lipgloss.Fprintln(out, theme.Hint.Render(e))
			}
		}
	}
	return nil
}

// selectPair selects the two tiles named by "a-b" (1-based) on board.
func selectPair(s *session.Session, board *question.MatchingPairsQuestion, line string) (session.Feedback, error) {
	left, right, ok := strings.Cut(line, "-")
	if !ok {
		return session.Feedback{}, errors.New(`nhập hai ô dạng "1-3"`)
	}
	a, err := tileIndex(board, left)
	if err != nil {
		return session.Feedback{}, err
	}
	b, err := tileIndex(board, right)
	if err != nil {
		return session.Feedback{}, err
	}
	if a == b {
		return session.Feedback{}, errors.New("hãy chọn hai ô khác nhau")
	}

	if _, err := s.SelectItem(board.Items[a].ID); err != nil {
		return session.Feedback{}, err
	}
	return s.SelectItem(board.Items[b].ID)
}

func tileIndex(board *question.MatchingPairsQuestion, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > len(board.Items) {
		return 0, fmt.Errorf("không có ô %q", strings.TrimSpace(v))
	}
	if board.Items[n-1].IsMatched {
		return 0, fmt.Errorf("ô %d đã được nối", n)
	}
	return n - 1, nil
}
