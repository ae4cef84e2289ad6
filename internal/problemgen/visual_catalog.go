package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

var (
	alternateColors     = []string{"red", "blue", "green", "yellow", "purple", "orange"}
	alternateCategories = []string{"animal", "vehicle", "plant", "food", "clothing"}
	matrixCategories    = []string{"animal", "vehicle", "plant", "food", "shape_color"}
	matrixColors        = []string{"red", "yellow", "blue", "green"}
)

// availableCatalog returns the catalog entries not used this round, in
// random order.
func (rc *RoundContext) availableCatalog() []catalog.IconData {
	return randutil.Shuffle(rc.Rand, rc.Catalog.Filter(func(d catalog.IconData) bool {
		return !rc.UsedInRound.Has(d.Emoji)
	}))
}

func findIcon(icons []catalog.IconData, keep func(catalog.IconData) bool) (catalog.IconData, bool) {
	for _, d := range icons {
		if keep(d) {
			return d, true
		}
	}
	return catalog.IconData{}, false
}

// buildColorOrCategory alternates two real icons that differ by color (and
// category) or by category alone: X, Y, X, then Y.
func buildColorOrCategory(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	avail := rc.availableCatalog()
	var first, second catalog.IconData
	var ok1, ok2 bool
	if rule == question.RuleMamColorPattern {
		colors := randutil.Shuffle(rc.Rand, alternateColors)
		first, ok1 = findIcon(avail, func(d catalog.IconData) bool { return d.HasColor(colors[0]) })
		second, ok2 = findIcon(avail, func(d catalog.IconData) bool {
			return d.HasColor(colors[1]) && d.PrimaryCategory != first.PrimaryCategory
		})
	} else {
		cats := randutil.Shuffle(rc.Rand, alternateCategories)
		first, ok1 = findIcon(avail, func(d catalog.IconData) bool { return d.PrimaryCategory == cats[0] })
		second, ok2 = findIcon(avail, func(d catalog.IconData) bool { return d.PrimaryCategory == cats[1] })
	}
	if !ok1 || !ok2 {
		return nil, false
	}

	var rest []string
	for _, d := range avail {
		if d.Emoji != first.Emoji && d.Emoji != second.Emoji {
			rest = append(rest, d.Emoji)
		}
		if len(rest) == 2 {
			break
		}
	}
	if len(rest) < 2 {
		return nil, false
	}
	distractors := randutil.Shuffle(rc.Rand, []string{rest[0], rest[1], first.Emoji})

	return &patternDraft{
		rule:        rule,
		prompt:      promptNextInSequence,
		displayed:   emojiSteps([]string{first.Emoji, second.Emoji, first.Emoji}),
		correct:     emojiStep(second.Emoji),
		distractors: emojiSteps(distractors),
		explanation: explain(rule),
		icons:       []string{first.Emoji, second.Emoji},
	}, true
}

// buildMatrix fills a 2x2 grid whose rows are categories and columns are
// colors. Three cells are shown; the bottom-right cell is the answer.
func buildMatrix(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	avail := rc.availableCatalog()
	cats := randutil.Shuffle(rc.Rand, matrixCategories)
	colors := randutil.Shuffle(rc.Rand, matrixColors)
	row1, row2, col1, col2 := cats[0], cats[1], colors[0], colors[1]

	taken := randutil.NewSet()
	// cellIcon finds an unused icon of cat in color that is not also in
	// the other column's color.
	cellIcon := func(cat, color, other string) (string, bool) {
		d, ok := findIcon(avail, func(d catalog.IconData) bool {
			return d.PrimaryCategory == cat && d.HasColor(color) && !d.HasColor(other) && !taken.Has(d.Emoji)
		})
		if !ok {
			return "", false
		}
		taken.Add(d.Emoji)
		return d.Emoji, true
	}

	var cells [4]string
	for i, want := range [][3]string{{row1, col1, col2}, {row1, col2, col1}, {row2, col1, col2}, {row2, col2, col1}} {
		icon, ok := cellIcon(want[0], want[1], want[2])
		if !ok {
			return nil, false
		}
		cells[i] = icon
	}
	// Each near miss gets one dimension right.
	wrongColor, ok1 := cellIcon(row2, col1, col2)
	wrongRow, ok2 := cellIcon(row1, col2, col1)
	unrelated, ok3 := findIcon(avail, func(d catalog.IconData) bool {
		return !taken.Has(d.Emoji) && !(d.PrimaryCategory == row2 && d.HasColor(col2))
	})
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}

	return &patternDraft{
		rule:        rule,
		prompt:      promptMatrixBlank,
		displayed:   emojiSteps(cells[:3]),
		correct:     emojiStep(cells[3]),
		distractors: emojiSteps([]string{wrongColor, wrongRow, unrelated.Emoji}),
		explanation: fmt.Sprintf("Vì quy luật là: Hàng trên là %s, hàng dưới là %s. Cột trái là %s, cột phải là %s.",
			catalog.ValueName(row1, row1), catalog.ValueName(row2, row2), catalog.ColorName(col1), catalog.ColorName(col2)),
		icons: cells[:],
	}, true
}
