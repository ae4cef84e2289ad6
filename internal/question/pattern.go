package question

// PatternRule identifies a visual pattern family.
type PatternRule string

// Mầm rules.
const (
	RuleMamABAB              PatternRule = "M_ABAB"
	RuleMamAABB              PatternRule = "M_AABB"
	RuleMamABC               PatternRule = "M_ABC"
	RuleMamAAB               PatternRule = "M_AAB"
	RuleMamABB               PatternRule = "M_ABB"
	RuleMamABBA              PatternRule = "M_ABBA"
	RuleMamColorPattern      PatternRule = "M_COLOR_PATTERN"
	RuleMamCategoryAlternate PatternRule = "M_CATEGORY_ALTERNATE"
	RuleMamMissingMiddle     PatternRule = "M_MISSING_MIDDLE"
	RuleMamSizePattern       PatternRule = "M_SIZE_PATTERN"
)

// Chồi rules.
const (
	RuleChoiABAC                    PatternRule = "C_ABAC"
	RuleChoiAABCC                   PatternRule = "C_AABCC"
	RuleChoiABCD                    PatternRule = "C_ABCD"
	RuleChoiABCBA                   PatternRule = "C_ABCBA"
	RuleChoiInterleavingProgression PatternRule = "C_INTERLEAVING_PROGRESSION"
	RuleChoiProgressiveQty          PatternRule = "C_PROGRESSIVE_QTY"
	RuleChoiDoublingQty             PatternRule = "C_DOUBLING_QTY"
	RuleChoiInterleavingQty         PatternRule = "C_INTERLEAVING_QTY"
	RuleChoiFibonacciQty            PatternRule = "C_FIBONACCI_QTY"
	RuleChoiNonLinearQty            PatternRule = "C_NON_LINEAR_QTY"
	RuleGridMove                    PatternRule = "T_GRID_MOVE"
	RuleRotate                      PatternRule = "T_ROTATE"
	RuleFlip                        PatternRule = "T_FLIP"
	RuleScale                       PatternRule = "T_SCALE"
	RuleChoiCenterMirrorX           PatternRule = "C_CENTER_MIRROR_X"
	RuleMoveAndRotate               PatternRule = "CT_MOVE_AND_ROTATE"
	RuleSequenceAndMove             PatternRule = "CT_SEQUENCE_AND_MOVE"
	RuleRotateAndScale              PatternRule = "CT_ROTATE_AND_SCALE"
	RuleChoiMatrixLogic2x2          PatternRule = "C_MATRIX_LOGIC_2X2"
	RuleChoiMissingMiddle           PatternRule = "C_MISSING_MIDDLE"
)

// MamPatternRules is the rule bank for the Mầm tier.
var MamPatternRules = []PatternRule{
	RuleMamABAB, RuleMamAABB, RuleMamABC, RuleMamAAB, RuleMamABB, RuleMamABBA,
	RuleMamColorPattern, RuleMamCategoryAlternate, RuleMamMissingMiddle, RuleMamSizePattern,
}

// ChoiPatternRules is the rule bank for the Chồi tier.
var ChoiPatternRules = []PatternRule{
	RuleChoiABAC, RuleChoiAABCC, RuleChoiABCD, RuleChoiABCBA, RuleChoiInterleavingProgression,
	RuleChoiProgressiveQty, RuleChoiDoublingQty, RuleChoiInterleavingQty, RuleChoiFibonacciQty, RuleChoiNonLinearQty,
	RuleGridMove, RuleRotate, RuleFlip, RuleScale, RuleChoiCenterMirrorX,
	RuleMoveAndRotate, RuleSequenceAndMove, RuleRotateAndScale,
	RuleChoiMatrixLogic2x2, RuleChoiMissingMiddle,
}

// PatternRulesFor returns the rule bank of a tier.
func PatternRulesFor(d Difficulty) []PatternRule {
	if d == DifficultyMam {
		return MamPatternRules
	}
	return ChoiPatternRules
}
