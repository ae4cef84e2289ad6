package catalog

import (
	"slices"
	"strconv"
)

// Rule is an attribute the odd-one-out game can group icons by.
type Rule string

const (
	RulePrimaryCategory  Rule = "primaryCategory"
	RuleSubCategory      Rule = "subCategory"
	RuleTertiaryCategory Rule = "tertiaryCategory"
	RuleEnvironment      Rule = "environment"
	RuleIsLivingOrganism Rule = "is_living_organism"
	RuleIsEdible         Rule = "is_edible"
	RuleCanFly           Rule = "can_fly"
	RuleIsReal           Rule = "is_real"
	RulePropulsion       Rule = "propulsion"
	RuleDiet             Rule = "diet"
	RuleTemperature      Rule = "temperature"
	RulePowerSource      Rule = "power_source"
	RuleFunction         Rule = "function"
	RuleColor            Rule = "color"
)

// MamRules are the main rules drawn for Mầm odd-one-out questions.
var MamRules = []Rule{RulePrimaryCategory, RuleEnvironment}

// ChoiRules are the main rules drawn for Chồi odd-one-out questions.
var ChoiRules = []Rule{
	RulePrimaryCategory, RuleEnvironment, RuleIsEdible, RulePropulsion, RuleCanFly,
	RuleIsReal, RuleIsLivingOrganism, RuleTemperature, RulePowerSource, RuleSubCategory,
	RuleFunction, RuleDiet, RuleColor,
}

// AmbiguityHierarchy is the ordered list of rules a candidate set is
// re-checked against.
var AmbiguityHierarchy = []Rule{
	RulePrimaryCategory, RuleIsLivingOrganism, RuleIsReal, RuleEnvironment,
	RuleSubCategory, RulePowerSource, RuleIsEdible, RuleCanFly, RulePropulsion,
	RuleFunction, RuleTemperature, RuleTertiaryCategory, RuleDiet, RuleColor,
}

// accessor reads one rule's value from an icon.
type accessor func(IconData) (string, bool)

var accessors = map[Rule]accessor{
	RulePrimaryCategory:  func(d IconData) (string, bool) { return present(d.PrimaryCategory) },
	RuleSubCategory:      func(d IconData) (string, bool) { return present(d.SubCategory) },
	RuleTertiaryCategory: func(d IconData) (string, bool) { return present(d.TertiaryCategory) },
	RuleEnvironment:      func(d IconData) (string, bool) { return present(d.Attributes.Environment) },
	RuleIsLivingOrganism: func(d IconData) (string, bool) { return flag(d.Attributes.IsLivingOrganism) },
	RuleIsEdible:         func(d IconData) (string, bool) { return flag(d.Attributes.IsEdible) },
	RuleCanFly:           func(d IconData) (string, bool) { return flag(d.Attributes.CanFly) },
	RuleIsReal:           func(d IconData) (string, bool) { return flag(d.Attributes.IsReal) },
	RulePropulsion:       func(d IconData) (string, bool) { return present(d.Attributes.Propulsion) },
	RuleDiet:             func(d IconData) (string, bool) { return present(d.Attributes.Diet) },
	RuleTemperature:      func(d IconData) (string, bool) { return present(d.Attributes.Temperature) },
	RulePowerSource:      func(d IconData) (string, bool) { return present(d.Attributes.PowerSource) },
	RuleFunction:         func(d IconData) (string, bool) { return present(d.Attributes.Function) },
	RuleColor:            primaryColor,
}

func present(s string) (string, bool) {
	return s, s != ""
}

func flag(b *bool) (string, bool) {
	if b == nil {
		return "", false
	}
	return strconv.FormatBool(*b), true
}

// primaryColor is the first listed color. Grouping and odd-one-out checks
// go through Values, which sees every color.
func primaryColor(d IconData) (string, bool) {
	if len(d.Attributes.Color) == 0 {
		return "", false
	}
	return d.Attributes.Color[0], true
}

// Valid reports whether r is a known rule.
func (r Rule) Valid() bool {
	_, ok := accessors[r]
	return ok
}

// IsBoolean reports whether the rule reads a yes/no attribute.
func (r Rule) IsBoolean() bool {
	switch r {
	case RuleIsLivingOrganism, RuleIsEdible, RuleCanFly, RuleIsReal:
		return true
	default:
		return false
	}
}

// Value returns the icon's value under r. ok is false when the icon does
// not carry the attribute. It panics on an unknown rule.
func (r Rule) Value(d IconData) (value string, ok bool) {
	get, known := accessors[r]
	if !known {
		panic("catalog: unknown rule " + string(r))
	}
	return get(d)
}

// ValueOrDefault is Value with missing boolean attributes read as "false".
func (r Rule) ValueOrDefault(d IconData) (string, bool) {
	v, ok := r.Value(d)
	if !ok && r.IsBoolean() {
		return "false", true
	}
	return v, ok
}

// MultiValued reports whether an icon can carry several values under r at
// once. Only color is.
func (r Rule) MultiValued() bool {
	return r == RuleColor
}

// Values returns every value the icon carries under r. A multi-colored
// icon has each of its colors.
func (r Rule) Values(d IconData) []string {
	if r.MultiValued() {
		return slices.Clone(d.Attributes.Color)
	}
	if v, ok := r.Value(d); ok {
		return []string{v}
	}
	return nil
}

// ValuesOrDefault is Values with missing boolean attributes read as "false".
func (r Rule) ValuesOrDefault(d IconData) []string {
	if v := r.Values(d); len(v) > 0 {
		return v
	}
	if r.IsBoolean() {
		return []string{"false"}
	}
	return nil
}

// Has reports whether the icon carries value under r. A tiger colored
// orange and black has both black and orange.
func (r Rule) Has(d IconData, value string) bool {
	return slices.Contains(r.Values(d), value)
}

// RulesFor returns the Mầm main rules when mam is set, else the Chồi ones.
func RulesFor(mam bool) []Rule {
	if mam {
		return MamRules
	}
	return ChoiRules
}
