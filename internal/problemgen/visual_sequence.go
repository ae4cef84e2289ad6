package problemgen

import (
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// repeatingShape is a placeholder template (A, B, C, D stand for distinct
// icons) and how many of its leading steps are shown.
type repeatingShape struct {
	template string
	shown    int
}

var repeatingShapes = map[question.PatternRule]repeatingShape{
	question.RuleMamABAB:   {"AB", 3},
	question.RuleMamAABB:   {"AABB", 3},
	question.RuleMamABC:    {"ABC", 2},
	question.RuleMamAAB:    {"AAB", 4},
	question.RuleMamABB:    {"ABB", 4},
	question.RuleMamABBA:   {"ABBA", 3},
	question.RuleChoiABAC:  {"ABAC", 3},
	question.RuleChoiABCBA: {"ABCBA", 4},
	question.RuleChoiAABCC: {"AABCC", 4},
	question.RuleChoiABCD:  {"ABCD", 3},
}

// Bases a missing-middle question may hide a step of.
var (
	mamMissingBases  = []question.PatternRule{question.RuleMamABAB, question.RuleMamAABB, question.RuleMamABC}
	choiMissingBases = []question.PatternRule{question.RuleChoiABAC, question.RuleChoiABCD, question.RuleChoiABCBA}
)

// distinctPlaceholders counts the different letters of a template.
func distinctPlaceholders(template string) int {
	seen := map[rune]bool{}
	for _, r := range template {
		seen[r] = true
	}
	return len(seen)
}

// fillTemplate maps placeholders onto icons and repeats the template
// until length steps exist.
func fillTemplate(template string, icons []string, length int) []string {
	out := make([]string, length)
	for i := range out {
		out[i] = icons[template[i%len(template)]-'A']
	}
	return out
}

// spareIcons returns up to 5 pool icons outside base that are not answer.
func (rc *RoundContext) spareIcons(base []string, answer string) []string {
	var out []string
	for _, icon := range rc.candidates(nil, 5, base...) {
		if icon != answer {
			out = append(out, icon)
		}
	}
	return out
}

func buildRepeating(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	shape := repeatingShapes[rule]
	n := distinctPlaceholders(shape.template)
	icons := rc.candidates(nil, n)
	if len(icons) < n {
		return nil, false
	}
	full := fillTemplate(shape.template, icons, shape.shown+5)
	answer := full[shape.shown]

	return &patternDraft{
		rule:        rule,
		prompt:      promptNextInSequence,
		displayed:   emojiSteps(full[:shape.shown]),
		correct:     emojiStep(answer),
		distractors: emojiSteps(rc.spareIcons(icons, answer)),
		explanation: explain(rule),
		icons:       icons,
	}, true
}

// buildInterleavingProgression pairs a fixed anchor icon with a changing
// partner: anchor+p1, anchor+p2, then anchor+p3 is next.
func buildInterleavingProgression(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	anchors := rc.candidates(nil, 1)
	if len(anchors) == 0 {
		return nil, false
	}
	anchor := anchors[0]
	progression := rc.candidates(nil, 4, anchor)
	if len(progression) < 4 {
		return nil, false
	}
	others := rc.candidates(nil, 3, append([]string{anchor}, progression...)...)

	steps := make([]*question.PatternStep, len(progression))
	for i, p := range progression {
		steps[i] = emojiStep(anchor + p)
	}
	var distractors []*question.PatternStep
	for _, o := range others {
		distractors = append(distractors, emojiStep(anchor+o))
	}

	return &patternDraft{
		rule:        rule,
		prompt:      promptNextInSequence,
		displayed:   steps[:2],
		correct:     steps[2],
		distractors: distractors,
		explanation: explain(rule),
		icons:       append([]string{anchor}, progression...),
	}, true
}

// buildMissingMiddle hides one inner step of a short repeating run.
func buildMissingMiddle(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	bases, length := choiMissingBases, 5
	if rc.mam() {
		bases, length = mamMissingBases, 4
	}
	base, _ := randutil.Pick(rc.Rand, bases)
	template := repeatingShapes[base].template

	n := distinctPlaceholders(template)
	icons := rc.candidates(nil, n)
	if len(icons) < n {
		return nil, false
	}
	full := fillTemplate(template, icons, length)
	blank := rc.Rand.Between(1, length-2)
	answer := full[blank]

	displayed := emojiSteps(full)
	displayed[blank] = nil

	return &patternDraft{
		rule:        rule,
		prompt:      promptMissing,
		displayed:   displayed,
		correct:     emojiStep(answer),
		distractors: emojiSteps(rc.spareIcons(icons, answer)),
		explanation: explain(rule),
		icons:       icons,
	}, true
}
