package problemgen

import (
	"slices"

	"github.com/abhisek/mamchoi/internal/catalog"
)

// groupBy partitions icons by their value under rule. Icons without the
// attribute are dropped unless withDefault is set, in which case missing
// booleans count as false. A multi-colored icon joins every color group
// it has, so groups can overlap.
func groupBy(icons []catalog.IconData, rule catalog.Rule, withDefault bool) map[string][]catalog.IconData {
	groups := make(map[string][]catalog.IconData)
	for _, d := range icons {
		for _, value := range ruleValues(d, rule, withDefault) {
			groups[value] = append(groups[value], d)
		}
	}
	return groups
}

func ruleValues(d catalog.IconData, rule catalog.Rule, withDefault bool) []string {
	if withDefault {
		return rule.ValuesOrDefault(d)
	}
	return rule.Values(d)
}

// sortedKeys returns the group values in a stable order so seeded draws
// are reproducible.
func sortedKeys(groups map[string][]catalog.IconData) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// loners returns the icons rule isolates: for some value, every other icon
// has it and the loner does not. Every icon must carry the attribute.
func loners(icons []catalog.IconData, rule catalog.Rule, withDefault bool) []string {
	n := len(icons)
	for _, d := range icons {
		if len(ruleValues(d, rule, withDefault)) == 0 {
			return nil
		}
	}
	groups := groupBy(icons, rule, withDefault)
	var out []string
	for _, v := range sortedKeys(groups) {
		if len(groups[v]) != n-1 {
			continue
		}
		for _, d := range icons {
			if !slices.Contains(ruleValues(d, rule, withDefault), v) && !slices.Contains(out, d.Emoji) {
				out = append(out, d.Emoji)
			}
		}
	}
	return out
}

// singleOut returns the icon rule isolates when there is exactly one.
func singleOut(icons []catalog.IconData, rule catalog.Rule, withDefault bool) (string, bool) {
	found := loners(icons, rule, withDefault)
	if len(found) != 1 {
		return "", false
	}
	return found[0], true
}

// IsAmbiguous reports whether some rule singles out an icon other than
// odd. mainRule is read on explicit values only; the others read missing
// booleans as false. For color this catches a second color that every
// icon but another one shares.
func IsAmbiguous(icons []catalog.IconData, odd string, mainRule catalog.Rule) bool {
	for _, rule := range catalog.AmbiguityHierarchy {
		for _, loner := range loners(icons, rule, rule != mainRule) {
			if loner != odd {
				return true
			}
		}
	}
	return false
}
