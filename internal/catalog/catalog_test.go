package catalog

import (
	"testing"
)

func TestDefault_Loaded(t *testing.T) {
	c := Default()
	if c.Len() < 150 {
		t.Fatalf("got %d icons, want at least 150", c.Len())
	}
	for _, icon := range c.All() {
		if icon.Emoji == "" || icon.Name == "" || icon.PrimaryCategory == "" {
			t.Errorf("incomplete icon %+v", icon)
		}
	}
}

func TestLookup(t *testing.T) {
	d, ok := Default().Lookup("🐹")
	if !ok {
		t.Fatal("expected hamster in catalog")
	}
	if d.PrimaryCategory != "animal" || d.SubCategory != "mammal" || d.TertiaryCategory != "pet" {
		t.Errorf("got %s/%s/%s, want animal/mammal/pet", d.PrimaryCategory, d.SubCategory, d.TertiaryCategory)
	}
	if _, ok := Default().Lookup("no-such-icon"); ok {
		t.Error("expected lookup miss")
	}
}

func TestNew_SkipsBlankAndDuplicate(t *testing.T) {
	c := New([]IconData{
		{Emoji: "🍎", Name: "Táo", PrimaryCategory: "plant"},
		{Emoji: "", Name: "blank", PrimaryCategory: "plant"},
		{Emoji: "🍎", Name: "Táo 2", PrimaryCategory: "food"},
	})
	if c.Len() != 1 {
		t.Fatalf("got %d icons, want 1", c.Len())
	}
	d, _ := c.Lookup("🍎")
	if d.Name != "Táo" {
		t.Errorf("got name %q, want first entry kept", d.Name)
	}
}

func TestParseIcons_RejectsUnknownKey(t *testing.T) {
	_, err := parseIcons([]byte("- emoji: x\n  name: y\n  primary: z\n  colour: red\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseIcons_RequiresFields(t *testing.T) {
	_, err := parseIcons([]byte("- emoji: x\n  name: y\n"))
	if err == nil {
		t.Fatal("expected error for missing primary")
	}
}

func TestParseIcons_RejectsMultipleDocuments(t *testing.T) {
	_, err := parseIcons([]byte("- emoji: x\n  name: y\n  primary: z\n---\n- emoji: a\n"))
	if err == nil {
		t.Fatal("expected error for multiple documents")
	}
}

func TestMatrixCellsCovered(t *testing.T) {
	// Every category/color cell used by the 2x2 matrix pattern has an icon.
	c := Default()
	for _, cat := range []string{"animal", "vehicle", "plant", "food", "shape_color"} {
		for _, color := range []string{"red", "yellow", "blue", "green"} {
			found := c.Filter(func(d IconData) bool {
				return d.PrimaryCategory == cat && d.HasColor(color)
			})
			if len(found) == 0 {
				t.Errorf("no %s icon with color %s", cat, color)
			}
		}
	}
}

func TestRuleValue(t *testing.T) {
	plane, _ := Default().Lookup("✈️")
	tests := []struct {
		rule   Rule
		want   string
		wantOK bool
		dflt   string
		dfltOK bool
	}{
		{RulePrimaryCategory, "vehicle", true, "vehicle", true},
		{RuleEnvironment, "sky", true, "sky", true},
		{RuleCanFly, "true", true, "true", true},
		{RuleIsEdible, "", false, "false", true},
		{RuleDiet, "", false, "", false},
		{RuleColor, "white", true, "white", true},
	}
	for _, tt := range tests {
		got, ok := tt.rule.Value(plane)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s.Value: got (%q, %v), want (%q, %v)", tt.rule, got, ok, tt.want, tt.wantOK)
		}
		got, ok = tt.rule.ValueOrDefault(plane)
		if got != tt.dflt || ok != tt.dfltOK {
			t.Errorf("%s.ValueOrDefault: got (%q, %v), want (%q, %v)", tt.rule, got, ok, tt.dflt, tt.dfltOK)
		}
	}
}

func TestRuleValues_ColorContainment(t *testing.T) {
	tiger := IconData{Emoji: "t", Attributes: Attributes{Color: []string{"orange", "black"}}}
	if got := RuleColor.Values(tiger); len(got) != 2 {
		t.Fatalf("color values: got %v, want both colors", got)
	}
	if !RuleColor.Has(tiger, "black") || !RuleColor.Has(tiger, "orange") {
		t.Error("tiger should have black and orange")
	}
	if RuleColor.Has(tiger, "white") {
		t.Error("tiger has no white")
	}
	if !RuleColor.MultiValued() || RulePrimaryCategory.MultiValued() {
		t.Error("only color is multi-valued")
	}

	bare := IconData{Emoji: "b"}
	if got := RuleCanFly.ValuesOrDefault(bare); len(got) != 1 || got[0] != "false" {
		t.Errorf("can_fly default: got %v", got)
	}
	if got := RuleColor.ValuesOrDefault(bare); got != nil {
		t.Errorf("color default: got %v, want none", got)
	}
}

func TestRuleListsValid(t *testing.T) {
	for _, list := range [][]Rule{MamRules, ChoiRules, AmbiguityHierarchy} {
		for _, r := range list {
			if !r.Valid() {
				t.Errorf("rule %q has no accessor", r)
			}
		}
	}
}

func TestBaseIcons(t *testing.T) {
	base := BaseIcons(nil)
	if len(base) != len(StarterIcons) {
		t.Errorf("got %d base icons, want %d", len(base), len(StarterIcons))
	}

	withFarm := BaseIcons([]string{"farm_animals", "unknown"})
	has := func(icons []string, want string) bool {
		for _, i := range icons {
			if i == want {
				return true
			}
		}
		return false
	}
	if !has(withFarm, "🐄") {
		t.Error("expected cow after unlocking farm_animals")
	}
	if has(base, "🐄") {
		t.Error("cow should be locked by default")
	}

	seen := map[string]bool{}
	for _, i := range withFarm {
		if seen[i] {
			t.Errorf("duplicate icon %q", i)
		}
		seen[i] = true
	}
}

func TestNames(t *testing.T) {
	if got := ValueName("animal", "?"); got != "động vật" {
		t.Errorf("ValueName(animal) = %q", got)
	}
	if got := ValueName("zzz", "nhóm khác"); got != "nhóm khác" {
		t.Errorf("ValueName fallback = %q", got)
	}
	if got := EnvironmentName("sky", "?"); got != "trên trời" {
		t.Errorf("EnvironmentName(sky) = %q", got)
	}
	if got := ColorName("red"); got != "màu đỏ" {
		t.Errorf("ColorName(red) = %q", got)
	}
}
