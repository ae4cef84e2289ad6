package problemgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const oddOneOutPrompt = "Tìm vật khác biệt:"

// oddDraft is one candidate set: the majority items share value under
// rule and odd does not.
type oddDraft struct {
	rule     catalog.Rule
	value    string
	majority []catalog.IconData
	odd      catalog.IconData
	sig      string
}

func (d *oddDraft) icons() []catalog.IconData {
	return append(slices.Clone(d.majority), d.odd)
}

// GenerateOddOneOut picks three (Mầm) or four (Chồi) unlocked icons of
// which exactly one differs under a rule. Sets where another rule singles
// out a different icon are rejected.
func GenerateOddOneOut(rc *RoundContext) (*question.OddOneOutQuestion, bool) {
	n := 4
	if rc.mam() {
		n = 3
	}
	base := randutil.NewSet(rc.BaseIcons...)
	available := rc.Catalog.Filter(func(d catalog.IconData) bool {
		return base.Has(d.Emoji) && !rc.UsedInRound.Has(d.Emoji)
	})
	if len(available) < n {
		return nil, false
	}

	rules := randutil.Shuffle(rc.Rand, catalog.RulesFor(rc.mam()))
	attempt := 0
	draft, ok := randutil.TryN(oddOneOutAttempts, func() (*oddDraft, bool) {
		rule := rules[attempt%len(rules)]
		attempt++
		return rc.drawOddSet(available, rule, n)
	}, func(d *oddDraft) bool {
		if rc.Signatures.Has(d.sig) {
			return false
		}
		return !IsAmbiguous(d.icons(), d.odd.Emoji, d.rule)
	})
	if !ok {
		return nil, false
	}

	emojis := make([]string, 0, n)
	for _, d := range draft.icons() {
		emojis = append(emojis, d.Emoji)
	}
	rc.Signatures.Add(draft.sig)
	rc.UsedInRound.Add(emojis...)
	rc.UsedInMode(question.ModeOddOneOut).Add(emojis...)

	options := make([]question.OddOneOutOption, len(emojis))
	var correctID string
	for i, e := range emojis {
		options[i] = question.OddOneOutOption{ID: question.NewID(), Emoji: e}
		if e == draft.odd.Emoji {
			correctID = options[i].ID
		}
	}
	return &question.OddOneOutQuestion{
		Base:            rc.header(question.ModeOddOneOut, oddOneOutPrompt, draft.sig),
		Options:         randutil.Shuffle(rc.Rand, options),
		CorrectAnswerID: correctID,
		Rule:            string(draft.rule),
		Explanation:     explainOddOneOut(draft),
	}, true
}

// drawOddSet picks a value under rule that at least n-1 available icons
// have, takes n-1 of them as the majority, and adds one icon that carries
// the attribute but not that value. For color this means the odd icon has
// none of the shared color, whatever its other colors are.
func (rc *RoundContext) drawOddSet(available []catalog.IconData, rule catalog.Rule, n int) (*oddDraft, bool) {
	groups := groupBy(available, rule, false)
	if len(groups) < 2 {
		return nil, false
	}
	var majorities []string
	for _, v := range sortedKeys(groups) {
		if len(groups[v]) >= n-1 {
			majorities = append(majorities, v)
		}
	}
	value, ok := randutil.Pick(rc.Rand, majorities)
	if !ok {
		return nil, false
	}
	others := slices.DeleteFunc(slices.Clone(available), func(d catalog.IconData) bool {
		return len(rule.Values(d)) == 0 || rule.Has(d, value)
	})
	odd, ok := randutil.Pick(rc.Rand, others)
	if !ok {
		return nil, false
	}
	majority := randutil.Shuffle(rc.Rand, groups[value])[:n-1]

	if rule != catalog.RulePrimaryCategory {
		for _, d := range majority[1:] {
			if d.PrimaryCategory != majority[0].PrimaryCategory {
				return nil, false
			}
		}
	}

	d := &oddDraft{rule: rule, value: value, majority: majority, odd: odd}
	d.sig = oddOneOutSignature(d.icons())
	return d, true
}

func oddOneOutSignature(icons []catalog.IconData) string {
	emojis := make([]string, len(icons))
	for i, d := range icons {
		emojis[i] = d.Emoji
	}
	slices.Sort(emojis)
	return "ooo-" + strings.Join(emojis, "_")
}

// explainOddOneOut words the reason the odd item stands out.
func explainOddOneOut(d *oddDraft) string {
	maj := d.value
	oddValue, _ := d.rule.Value(d.odd)
	e, name := d.odd.Emoji, d.odd.Name
	yes := maj == "true"

	switch d.rule {
	case catalog.RulePrimaryCategory, catalog.RuleSubCategory, catalog.RuleTertiaryCategory:
		return fmt.Sprintf("Vì các vật còn lại đều là %s, còn %s là %s.",
			catalog.ValueName(maj, "nhóm chung"), e, catalog.ValueName(oddValue, "nhóm khác"))
	case catalog.RuleEnvironment:
		verb := "sống"
		for _, m := range d.majority {
			if v, _ := catalog.RuleIsLivingOrganism.Value(m); v != "true" {
				verb = "ở"
				break
			}
		}
		return fmt.Sprintf("Vì các vật còn lại %s %s, còn %s (%s) thì khác.",
			verb, catalog.EnvironmentName(maj, "cùng một nơi"), e, name)
	case catalog.RulePowerSource:
		switch maj {
		case "manual":
			return fmt.Sprintf("Vì các vật còn lại hoạt động bằng sức người, còn %s (%s) là vật dụng dùng điện.", e, name)
		case "electric":
			return fmt.Sprintf("Vì các vật còn lại là vật dụng dùng điện, còn %s (%s) hoạt động bằng sức người.", e, name)
		}
	case catalog.RuleIsLivingOrganism:
		if yes {
			return fmt.Sprintf("Vì %s (%s) không phải là sinh vật sống, các vật còn lại thì có.", e, name)
		}
		return fmt.Sprintf("Vì chỉ có %s (%s) là sinh vật sống.", e, name)
	case catalog.RuleIsEdible:
		if yes {
			return fmt.Sprintf("Vì chỉ có %s (%s) không ăn được, các vật còn lại thì ăn được.", e, name)
		}
		return fmt.Sprintf("Vì chỉ có %s (%s) ăn được.", e, name)
	case catalog.RuleCanFly:
		if yes {
			return fmt.Sprintf("Vì chỉ có %s (%s) không biết bay.", e, name)
		}
		return fmt.Sprintf("Vì chỉ có %s (%s) biết bay.", e, name)
	case catalog.RulePropulsion, catalog.RuleDiet, catalog.RuleTemperature, catalog.RuleFunction:
		return fmt.Sprintf("Vì các vật còn lại đều là %s, còn %s (%s) thì khác.",
			catalog.ValueName(maj, "cùng một loại"), e, name)
	case catalog.RuleIsReal:
		if yes {
			return fmt.Sprintf("Vì chỉ có %s (%s) là nhân vật/vật hư cấu.", e, name)
		}
		return fmt.Sprintf("Vì chỉ có %s (%s) là có thật.", e, name)
	case catalog.RuleColor:
		return fmt.Sprintf("Vì các vật còn lại đều có %s, còn %s (%s) thì khác.", catalog.ColorName(maj), e, name)
	}
	return fmt.Sprintf("Vì %s là vật khác biệt.", e)
}
