package rewards

// MaxRecentIcons caps the stored icon history.
const MaxRecentIcons = 300

// MergeRecentIcons puts newIcons ahead of previous, drops duplicates and
// blanks, and keeps at most max entries. max <= 0 means no cap.
func MergeRecentIcons(newIcons, previous []string, max int) []string {
	seen := make(map[string]bool, len(newIcons)+len(previous))
	out := make([]string, 0, len(newIcons)+len(previous))
	for _, list := range [][]string{newIcons, previous} {
		for _, icon := range list {
			if icon == "" || seen[icon] {
				continue
			}
			if max > 0 && len(out) == max {
				return out
			}
			seen[icon] = true
			out = append(out, icon)
		}
	}
	return out
}
