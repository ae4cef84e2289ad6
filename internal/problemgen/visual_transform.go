package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const (
	scaleBig   = 1.0
	scaleSmall = 0.6
	scaleMid   = 0.8
)

var distractorAngles = []int{0, 90, 180, 270, -90, -180, -270}

// pickGlyph draws from a fixed glyph list, preferring glyphs not used this
// round and never one in exclude.
func (rc *RoundContext) pickGlyph(from []string, exclude ...string) (string, bool) {
	var fresh, all []string
	for _, g := range from {
		if slices.Contains(exclude, g) {
			continue
		}
		all = append(all, g)
		if !rc.UsedInRound.Has(g) {
			fresh = append(fresh, g)
		}
	}
	if g, ok := randutil.Pick(rc.Rand, fresh); ok {
		return g, true
	}
	return randutil.Pick(rc.Rand, all)
}

func (rc *RoundContext) pickAngle() int {
	a, _ := randutil.Pick(rc.Rand, []int{90, -90})
	return a
}

func explainRotation(angle int) string {
	dir := "sang phải (theo chiều kim đồng hồ)"
	if angle < 0 {
		dir = "sang trái (ngược chiều kim đồng hồ)"
	}
	return explainPhrase(fmt.Sprintf("xoay %d độ %s ở mỗi bước", max(angle, -angle), dir))
}

// buildGridMove walks one icon around the four cells of a 2x2 grid.
func buildGridMove(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	picked := rc.candidates(nil, 1)
	if len(picked) == 0 {
		return nil, false
	}
	icon := picked[0]
	el := question.VisualContent{Emoji: icon}
	path := randutil.Shuffle(rc.Rand, squareCycle)

	steps := make([]*question.PatternStep, len(path))
	for i, at := range path {
		steps[i] = gridStep(2, 2, at, el)
	}
	return &patternDraft{
		rule:        rule,
		prompt:      promptWhereNext,
		displayed:   steps[:3],
		correct:     steps[3],
		distractors: slices.Clone(steps[:3]),
		explanation: explain(rule),
		icons:       []string{icon},
	}, true
}

// buildCenterMirror bounces one icon between the two cells of a column.
func buildCenterMirror(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	picked := rc.candidates(nil, 1)
	if len(picked) == 0 {
		return nil, false
	}
	icon := picked[0]
	others := rc.candidates(nil, 2, icon)
	if len(others) < 2 {
		return nil, false
	}
	column := []cell{{0, 0}, {1, 0}}
	steps := make([]*question.PatternStep, 5)
	for i := range steps {
		steps[i] = gridStep(2, 1, column[i%2], question.VisualContent{Emoji: icon})
	}
	correct := steps[3]
	return &patternDraft{
		rule:      rule,
		prompt:    promptWhereNext,
		displayed: steps[:3],
		correct:   correct,
		distractors: []*question.PatternStep{
			steps[4],
			gridStep(2, 1, column[1], question.VisualContent{Emoji: others[0]}),
			gridStep(2, 1, column[0], question.VisualContent{Emoji: others[1]}),
		},
		explanation: explain(rule),
		icons:       []string{icon},
	}, true
}

// buildRotate turns an asymmetric glyph by the same angle every step.
func buildRotate(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icon, ok := rc.pickGlyph(catalog.RotationIcons)
	if !ok {
		return nil, false
	}
	angle := rc.pickAngle()
	steps := make([]*question.PatternStep, 4)
	for i := range steps {
		steps[i] = contentStep(question.VisualContent{Emoji: icon, Rotation: angle * i})
	}
	var distractors []*question.PatternStep
	for _, a := range randutil.Shuffle(rc.Rand, distractorAngles) {
		distractors = append(distractors, contentStep(question.VisualContent{Emoji: icon, Rotation: a}))
	}
	return &patternDraft{
		rule:        rule,
		prompt:      promptNextInSequence,
		displayed:   steps[:3],
		correct:     steps[3],
		distractors: distractors,
		explanation: explainRotation(angle),
		icons:       []string{icon},
	}, true
}

// buildFlip alternates a glyph with its mirror image.
func buildFlip(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icon, ok := rc.pickGlyph(catalog.FlipIcons)
	if !ok {
		return nil, false
	}
	other, ok := rc.pickGlyph(catalog.FlipIcons, icon)
	if !ok {
		return nil, false
	}
	horizontal := rc.Rand.Chance(0.5)
	normal := question.VisualContent{Emoji: icon}
	flipped := question.VisualContent{Emoji: icon, FlipHorizontal: horizontal, FlipVertical: !horizontal}

	how := "theo chiều dọc"
	if horizontal {
		how = "theo chiều ngang"
	}
	return &patternDraft{
		rule:      rule,
		prompt:    promptNextInSequence,
		displayed: []*question.PatternStep{contentStep(normal), contentStep(flipped), contentStep(normal)},
		correct:   contentStep(flipped),
		distractors: []*question.PatternStep{
			contentStep(normal),
			contentStep(question.VisualContent{Emoji: icon, Rotation: 180}),
			emojiStep(other),
		},
		explanation: explainPhrase("lật ngược hình " + how),
		icons:       []string{icon},
	}, true
}

// buildScale alternates a big and a small copy of one icon.
func buildScale(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icon, ok := rc.pickGlyph(catalog.ScaleIcons())
	if !ok {
		return nil, false
	}
	other, ok := rc.pickGlyph(catalog.ScaleIcons(), icon)
	if !ok {
		return nil, false
	}
	big := question.VisualContent{Emoji: icon, Scale: scaleBig}
	small := question.VisualContent{Emoji: icon, Scale: scaleSmall}
	return &patternDraft{
		rule:      rule,
		prompt:    promptNextInSequence,
		displayed: []*question.PatternStep{contentStep(big), contentStep(small), contentStep(big)},
		correct:   contentStep(small),
		distractors: []*question.PatternStep{
			contentStep(big),
			contentStep(question.VisualContent{Emoji: icon, Scale: scaleMid}),
			emojiStep(other),
		},
		explanation: explain(rule),
		icons:       []string{icon},
	}, true
}

// buildRotateAndScale turns a glyph every step while its size alternates.
func buildRotateAndScale(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	var both []string
	for _, g := range catalog.RotationIcons {
		if slices.Contains(catalog.ScaleIcons(), g) {
			both = append(both, g)
		}
	}
	icon, ok := rc.pickGlyph(both)
	if !ok {
		return nil, false
	}
	other, ok := rc.pickGlyph(catalog.RotationIcons, icon)
	if !ok {
		return nil, false
	}
	angle := rc.pickAngle()
	scales := []float64{scaleBig, scaleSmall, scaleBig, scaleSmall}
	steps := make([]*question.PatternStep, 4)
	for i := range steps {
		steps[i] = contentStep(question.VisualContent{Emoji: icon, Rotation: angle * i, Scale: scales[i]})
	}
	return &patternDraft{
		rule:      rule,
		prompt:    promptNextInSequence,
		displayed: steps[:3],
		correct:   steps[3],
		distractors: []*question.PatternStep{
			contentStep(question.VisualContent{Emoji: icon, Rotation: 3 * angle, Scale: scaleBig}),
			contentStep(question.VisualContent{Emoji: icon, Rotation: 2 * angle, Scale: scaleSmall}),
			contentStep(question.VisualContent{Emoji: other, Rotation: 3 * angle, Scale: scaleSmall}),
		},
		explanation: explain(rule),
		icons:       []string{icon},
	}, true
}

// buildMoveAndRotate walks a glyph around a 2x2 grid, turning it each step.
func buildMoveAndRotate(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icon, ok := rc.pickGlyph(catalog.RotationIcons)
	if !ok {
		return nil, false
	}
	angle := rc.pickAngle()
	path := randutil.Shuffle(rc.Rand, squareCycle)
	steps := make([]*question.PatternStep, len(path))
	for i, at := range path {
		steps[i] = gridStep(2, 2, at, question.VisualContent{Emoji: icon, Rotation: angle * i})
	}
	correct := steps[3].Grid
	return &patternDraft{
		rule:      rule,
		prompt:    promptWhereNext,
		displayed: steps[:3],
		correct:   steps[3],
		distractors: []*question.PatternStep{
			gridStep(2, 2, path[3], question.VisualContent{Emoji: icon, Rotation: correct.Element.Rotation + angle}),
			gridStep(2, 2, path[0], correct.Element),
			gridStep(2, 2, path[1], question.VisualContent{Emoji: icon}),
		},
		explanation: explain(rule),
		icons:       []string{icon},
	}, true
}

// buildSequenceAndMove places a different icon in each cell of a 2x2 walk.
func buildSequenceAndMove(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icons := rc.candidates(nil, 4)
	if len(icons) < 4 {
		return nil, false
	}
	path := randutil.Shuffle(rc.Rand, squareCycle)
	steps := make([]*question.PatternStep, len(path))
	for i, at := range path {
		steps[i] = gridStep(2, 2, at, question.VisualContent{Emoji: icons[i]})
	}
	return &patternDraft{
		rule:      rule,
		prompt:    promptWhatWhereNext,
		displayed: steps[:2],
		correct:   steps[2],
		distractors: []*question.PatternStep{
			gridStep(2, 2, path[2], question.VisualContent{Emoji: icons[0]}),
			gridStep(2, 2, path[0], question.VisualContent{Emoji: icons[2]}),
			gridStep(2, 2, path[1], question.VisualContent{Emoji: icons[1]}),
		},
		explanation: explain(rule),
		icons:       icons,
	}, true
}
