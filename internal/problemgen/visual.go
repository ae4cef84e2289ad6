package problemgen

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const (
	promptNextInSequence = "Hình nào tiếp theo trong dãy?"
	promptNext           = "Hình nào tiếp theo?"
	promptWhereNext      = "Tiếp theo, hình sẽ ở đâu?"
	promptWhatWhereNext  = "Hình nào và ở đâu tiếp theo?"
	promptMissing        = "Tìm hình còn thiếu trong dãy:"
	promptMatrixBlank    = "Tìm hình còn thiếu trong ô trống:"
)

// patternDraft is a candidate question before the distractor and
// uniqueness checks. icons are written to the round's used set only when
// the draft is accepted.
type patternDraft struct {
	rule        question.PatternRule
	prompt      string
	displayed   []*question.PatternStep
	correct     *question.PatternStep
	distractors []*question.PatternStep
	explanation string
	icons       []string
}

type patternBuilder func(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool)

var patternBuilders = map[question.PatternRule]patternBuilder{
	question.RuleMamABAB:                     buildRepeating,
	question.RuleMamAABB:                     buildRepeating,
	question.RuleMamABC:                      buildRepeating,
	question.RuleMamAAB:                      buildRepeating,
	question.RuleMamABB:                      buildRepeating,
	question.RuleMamABBA:                     buildRepeating,
	question.RuleChoiABAC:                    buildRepeating,
	question.RuleChoiAABCC:                   buildRepeating,
	question.RuleChoiABCD:                    buildRepeating,
	question.RuleChoiABCBA:                   buildRepeating,
	question.RuleChoiInterleavingProgression: buildInterleavingProgression,
	question.RuleMamMissingMiddle:            buildMissingMiddle,
	question.RuleChoiMissingMiddle:           buildMissingMiddle,
	question.RuleChoiProgressiveQty:          buildQuantity,
	question.RuleChoiDoublingQty:             buildQuantity,
	question.RuleChoiFibonacciQty:            buildQuantity,
	question.RuleChoiNonLinearQty:            buildQuantity,
	question.RuleChoiInterleavingQty:         buildInterleavingQuantity,
	question.RuleGridMove:                    buildGridMove,
	question.RuleChoiCenterMirrorX:           buildCenterMirror,
	question.RuleRotate:                      buildRotate,
	question.RuleFlip:                        buildFlip,
	question.RuleScale:                       buildScale,
	question.RuleMamSizePattern:              buildScale,
	question.RuleRotateAndScale:              buildRotateAndScale,
	question.RuleMoveAndRotate:               buildMoveAndRotate,
	question.RuleSequenceAndMove:             buildSequenceAndMove,
	question.RuleMamColorPattern:             buildColorOrCategory,
	question.RuleMamCategoryAlternate:        buildColorOrCategory,
	question.RuleChoiMatrixLogic2x2:          buildMatrix,
}

// GenerateVisualPattern builds a question for rule. It fails when the icon
// supply cannot give three distinct distractors, or when every draw
// repeats a pattern already shown this session. An unknown rule panics.
func GenerateVisualPattern(rc *RoundContext, rule question.PatternRule) (*question.VisualPatternQuestion, bool) {
	build, ok := patternBuilders[rule]
	if !ok {
		panic(fmt.Sprintf("problemgen: no builder for pattern rule %q", rule))
	}
	if rc.Pool.Len() < 4 {
		return nil, false
	}

	var sig string
	draft, ok := randutil.TryN(visualAttempts, func() (*patternDraft, bool) {
		return build(rc, rule)
	}, func(d *patternDraft) bool {
		if !distinctDistractors(d) {
			return false
		}
		sig = patternSignature(rc.Difficulty, d)
		return !rc.Memory.Patterns.Has(sig)
	})
	if !ok {
		return nil, false
	}

	rc.Memory.Patterns.Add(sig)
	rc.UsedInRound.Add(draft.icons...)
	rc.UsedInMode(question.ModeVisualPattern).Add(draft.icons...)

	options := make([]question.PatternOption, 0, 4)
	options = append(options, question.PatternOption{ID: question.NewID(), Display: *draft.correct, IsCorrect: true})
	for _, d := range draft.distractors {
		options = append(options, question.PatternOption{ID: question.NewID(), Display: *d})
	}
	return &question.VisualPatternQuestion{
		Base:              rc.header(question.ModeVisualPattern, draft.prompt, sig),
		RuleType:          draft.rule,
		DisplayedSequence: draft.displayed,
		Options:           randutil.Shuffle(rc.Rand, options),
		Explanation:       draft.explanation,
	}, true
}

// distinctDistractors keeps the first three distractors that look
// different from the answer and from each other. It reports whether three
// were found.
func distinctDistractors(d *patternDraft) bool {
	seen := randutil.NewSet(visualKey(d.correct))
	var kept []*question.PatternStep
	for _, s := range d.distractors {
		if s == nil || !seen.Claim(visualKey(s)) {
			continue
		}
		kept = append(kept, s)
		if len(kept) == 3 {
			break
		}
	}
	d.distractors = kept
	return len(kept) == 3
}

// visualKey identifies what a step looks like. Rotations that land on the
// same orientation share a key.
func visualKey(s *question.PatternStep) string {
	c := *s
	if c.Content != nil {
		v := *c.Content
		v.Rotation = normalizeAngle(v.Rotation)
		c.Content = &v
	}
	if c.Grid != nil {
		g := *c.Grid
		g.Element.Rotation = normalizeAngle(g.Element.Rotation)
		c.Grid = &g
	}
	return stepJSON(&c)
}

func normalizeAngle(a int) int {
	return ((a % 360) + 360) % 360
}

func stepJSON(s *question.PatternStep) string {
	if s == nil {
		return "null"
	}
	b, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("problemgen: encode pattern step: %v", err))
	}
	return string(b)
}

// patternSignature covers the rule, the shown steps and the option set
// regardless of option order.
func patternSignature(d question.Difficulty, draft *patternDraft) string {
	shown := make([]string, len(draft.displayed))
	for i, s := range draft.displayed {
		shown[i] = stepJSON(s)
	}
	opts := []string{stepJSON(draft.correct)}
	for _, s := range draft.distractors {
		opts = append(opts, stepJSON(s))
	}
	slices.Sort(opts)
	return fmt.Sprintf("vp-%s-%s-[%s]-[%s]", d, draft.rule, strings.Join(shown, ","), strings.Join(opts, ","))
}

func emojiStep(emoji string) *question.PatternStep {
	return &question.PatternStep{Content: &question.VisualContent{Emoji: emoji}}
}

func contentStep(c question.VisualContent) *question.PatternStep {
	return &question.PatternStep{Content: &c}
}

type cell struct{ row, col int }

var squareCycle = []cell{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

func gridStep(rows, cols int, at cell, el question.VisualContent) *question.PatternStep {
	return &question.PatternStep{Grid: &question.GridPlacement{Rows: rows, Cols: cols, Row: at.row, Col: at.col, Element: el}}
}

func emojiSteps(emojis []string) []*question.PatternStep {
	out := make([]*question.PatternStep, len(emojis))
	for i, e := range emojis {
		out[i] = emojiStep(e)
	}
	return out
}

var patternPhrases = map[question.PatternRule]string{
	question.RuleMamABAB:                     "lặp lại xen kẽ hai hình (A-B-A-B)",
	question.RuleMamAABB:                     "lặp lại theo cặp hai hình (A-A-B-B)",
	question.RuleMamABC:                      "lặp lại chuỗi ba hình (A-B-C)",
	question.RuleMamAAB:                      "lặp lại chuỗi A-A-B",
	question.RuleMamABB:                      "lặp lại chuỗi A-B-B",
	question.RuleMamABBA:                     "chuỗi đối xứng đơn giản (A-B-B-A)",
	question.RuleMamColorPattern:             "lặp lại xen kẽ theo màu sắc",
	question.RuleMamCategoryAlternate:        "lặp lại xen kẽ theo chủng loại (ví dụ: động vật, xe cộ)",
	question.RuleChoiABAC:                    "lặp lại có hình neo (A-B-A-C)",
	question.RuleChoiAABCC:                   "lặp lại theo cặp phức tạp (A-A-B-C-C)",
	question.RuleChoiABCD:                    "lặp lại chuỗi bốn hình (A-B-C-D)",
	question.RuleChoiABCBA:                   "chuỗi đối xứng (A-B-C-B-A)",
	question.RuleChoiInterleavingProgression: "một hình giữ nguyên và một hình thay đổi theo chuỗi",
	question.RuleMamMissingMiddle:            "tìm hình còn thiếu trong một quy luật đơn giản",
	question.RuleChoiMissingMiddle:           "tìm hình còn thiếu trong một quy luật phức tạp",
	question.RuleMamSizePattern:              "thay đổi kích thước (to - nhỏ - to)",
	question.RuleChoiDoublingQty:             "số lượng nhân đôi ở mỗi bước",
	question.RuleChoiInterleavingQty:         "hai quy luật số lượng xen kẽ nhau",
	question.RuleChoiFibonacciQty:            "số lượng hình sau bằng tổng hai hình trước đó",
	question.RuleChoiNonLinearQty:            "số lượng thay đổi theo quy luật phức tạp (+2, -1, ...)",
	question.RuleGridMove:                    "di chuyển trong các ô theo một hướng nhất định",
	question.RuleChoiCenterMirrorX:           "di chuyển lên và xuống trong một cột",
	question.RuleScale:                       "thay đổi kích thước (to - nhỏ - to)",
	question.RuleMoveAndRotate:               "vừa di chuyển trong các ô, vừa xoay theo một hướng",
	question.RuleRotateAndScale:              "vừa xoay, vừa thay đổi kích thước",
	question.RuleSequenceAndMove:             "một chuỗi các hình khác nhau lần lượt di chuyển trong các ô",
}

// explain returns "Vì quy luật ở đây là {phrase}." for rules with a fixed
// phrase.
func explain(rule question.PatternRule) string {
	phrase, ok := patternPhrases[rule]
	if !ok {
		phrase = "một quy luật đặc biệt"
	}
	return explainPhrase(phrase)
}

func explainPhrase(phrase string) string {
	return "Vì quy luật ở đây là " + phrase + "."
}
