package problemgen

import (
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

type matchPair struct {
	value int
	icon  string
}

// GenerateMatchingPairs builds a board of numerals and icon groups to be
// paired up: 3 pairs up to 5 for Mầm, 5 pairs up to 10 for Chồi.
func GenerateMatchingPairs(rc *RoundContext) (*question.MatchingPairsQuestion, bool) {
	pairs, maxValue, prefix := 5, 10, "mp-c-"
	if rc.mam() {
		pairs, maxValue, prefix = 3, 5, "mp-m-"
	}
	if rc.Pool.Len() < pairs {
		return nil, false
	}
	usedMode := rc.UsedInMode(question.ModeMatchingPairs)

	var sig string
	board, ok := randutil.TryN(matchingAttempts, func() ([]matchPair, bool) {
		icons := rc.candidates(usedMode, pairs)
		if len(icons) < pairs {
			return nil, false
		}
		values := randutil.Shuffle(rc.Rand, intRange(1, maxValue))[:pairs]
		board := make([]matchPair, pairs)
		for i := range board {
			board[i] = matchPair{value: values[i], icon: icons[i]}
		}
		return board, true
	}, func(board []matchPair) bool {
		sig = prefix + matchingSignature(board)
		return !rc.Signatures.Has(sig)
	})
	if !ok {
		return nil, false
	}

	rc.Signatures.Add(sig)
	items := make([]question.MatchableItem, 0, 2*len(board))
	for _, p := range board {
		rc.UsedInRound.Add(p.icon)
		usedMode.Add(p.icon)
		matchID := question.NewID()
		items = append(items,
			question.MatchableItem{ID: question.NewID(), MatchID: matchID, Display: strconv.Itoa(p.value), VisualType: question.VisualDigit},
			question.MatchableItem{ID: question.NewID(), MatchID: matchID, Display: repeatIcon(p.icon, p.value), VisualType: question.VisualEmojiIcon},
		)
	}

	return &question.MatchingPairsQuestion{
		Base:  rc.header(question.ModeMatchingPairs, "Nối các cặp tương ứng:", sig),
		Items: randutil.Shuffle(rc.Rand, items),
	}, true
}

// matchingSignature ignores the order of pairs on the board.
func matchingSignature(board []matchPair) string {
	values := make([]int, len(board))
	icons := make([]string, len(board))
	for i, p := range board {
		values[i], icons[i] = p.value, p.icon
	}
	slices.Sort(values)
	slices.Sort(icons)
	nums := make([]string, len(values))
	for i, v := range values {
		nums[i] = strconv.Itoa(v)
	}
	return strings.Join(nums, "-") + "-" + strings.Join(icons, ",")
}

// intRange returns lo..hi inclusive.
func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
