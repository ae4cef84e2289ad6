package catalog

// StarterIcons are available to every player before any set is unlocked.
var StarterIcons = []string{
	"🍎", "🍊", "🍋", "🍉", "🍇", "🍓", "🍑", "🍍", "🥝", "🥭",
	"🥕", "🥦", "🌽", "🍅", "🍆", "🌶️", "🍄", "🐶", "🐱", "🐭",
	"🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🐵", "🦁", "🐘",
	"🦒", "🦓", "🐧", "🦉", "🦋", "🐞", "🐌", "🐢", "🐍", "🐙",
	"🐠", "🦀", "🐳", "🚗", "🚕", "🚌", "🚓", "🚑", "🚒", "🚜",
	"🛵", "🚲", "🚂", "🚢", "🛥️", "✈️", "🚁", "🚀", "🛸", "🛶",
	"⛵", "🎂", "🍰", "🧁", "🍭", "🍬", "🍩", "🍪", "🍦", "🍿",
	"🥧", "⚽", "🏀", "🏈", "⚾", "🎾", "🎸", "⭐", "🎈", "🎁",
	"🔑", "🕰️", "💡", "💎", "📚", "✏️", "☂️", "⚙️", "💰", "🔭",
	"🔬", "🔔", "📣", "💾", "💿", "📞", "🔋", "🔌", "🔴", "🔵",
	"🟢", "🟡", "🟠", "🟣", "❤️", "🔺", "🟦", "🔶", "🟥", "🟩",
	"🟨", "🟧", "🟪", "⚫", "⚪", "👕", "👗", "👟", "🧢", "👑",
	"👓", "👒", "🧣", "🧤", "🧦", "💍", "👜", "🎒", "🌂", "⏰",
	"⏳", "🛁", "🚿", "🧸", "🧮", "🖋️", "📏", "✂️", "🏠", "🚪",
	"🖼️", "🪑", "🕯️", "🧺", "🧼", "🧽", "🔒", "📎", "📌", "📮",
	"🥁", "🎷", "🎺", "🎻", "🎹", "🪗", "🎤", "🔨", "🔧", "🔩",
	"🛠️", "🌳", "🌲", "🌿", "🌸", "🌻", "🍁", "🔥", "🌍", "☀️",
	"🌙", "🌈", "🌊", "🌋", "⛰️", "🌵", "🌷", "🌹", "🌼", "🍕",
	"🍔", "🍟", "🌭", "🥪", "🥨", "🥐", "🥞", "🧇", "🍳", "🧀",
	"🍗", "🍙", "🍜", "🍣", "🍡", "👻", "🤖", "👽", "👾", "🤡",
	"👹", "👺", "🦄", "🐲", "🎳", "🎯", "⛳", "⛸️", "🎣", "🎽",
	"🏅", "🏆", "☁️", "⚡", "❄️", "☃️", "🌬️", "🦌", "🦘", "🐿️",
	"🦔", "🦙", "🐫", "🦏", "🐃", "🐂", "🦢", "🦜", "🕊️", "🦅",
	"🦇", "🐛", "🐜", "🦗", "🦂", "🕷️", "🕸️", "🦞", "🦐", "🦑",
	"🐡", "🦈", "🦦", "🥥", "🥑", "🫑", "🧅", "🧄", "🥬", "🥒",
	"🥔", "🫐", "🍒", "🍞", "🥚", "🥓", "🥛", "🧃", "🧉", "☕",
	"🥤", "🌮", "🌯", "🥗", "🥘", "🍝", "🍚", "🛋️", "🛏️", "🚽",
	"🪞", "🏺", "🪟", "🧱", "📦", "👖", "🩱", "🩲", "🧥", "🥾",
	"👠", "👡", "👢", "🎩", "🎓", "🌱", "🪵", "🌪️", "🌫️", "🌕",
	"🌑", "🌟", "🌠", "⛏️", "🪓", "🦯", "🧹", "🧯", "🪜", "🪁",
	"🪀", "🎮", "🎲", "♟️", "🕹️", "🪕", "🪈", "🪘", "🪇", "🛷",
	"🛹", "🥋", "🥊", "🏹", "🧚", "🧜", "🧞", "🧛", "🧟", "🍈",
	"🍷", "🍺", "🧋", "🥃", "🚇", "🚄", "🚠", "🏍️", "🏃", "🏊",
	"🚣", "🏋️", "🏌️", "🏇", "🧗", "🏄", "🚴", "🪂", "🧘", "🏂",
	"🩴", "🕶️", "🍴", "🥄", "🗄️", "🔪", "🥢", "⌚", "🖨️", "📹",
	"📐", "📖",
}

// ImageSet is a group of icons unlocked by collecting stars.
type ImageSet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StarsRequired int      `json:"starsRequired"`
	Icons         []string `json:"icons"`
}

// UnlockableSets are ordered by star threshold.
var UnlockableSets = []ImageSet{
	{ID: "farm_animals", Name: "Bộ Nông Trại Vui Vẻ", StarsRequired: 20, Icons: []string{"🐄", "🐖", "🐑", "🐓", "🦆", "🐴", "🐐", "🦃", "🦢", "🐇"}},
	{ID: "sea_creatures", Name: "Bộ Sinh Vật Biển Kỳ Thú", StarsRequired: 50, Icons: []string{"🐙", "🦑", "🦐", "🦞", "🦀", "🐡", "🐠", "🐟", "🐬", "🐳", "🌊", "🐚", "🦈", "🦦"}},
	{ID: "space_explorer", Name: "Bộ Khám Phá Vũ Trụ", StarsRequired: 100, Icons: []string{"🪐", "☄️", "🌌", "👽", "🧑‍🚀", "🛰️", "🌠", "🛸"}},
	{ID: "magical_items", Name: "Bộ Vật Phẩm Diệu Kỳ", StarsRequired: 180, Icons: []string{"🪄", "🧪", "📜", "🔮", "🧿", "⚜️", "🗝️", "💍", "✨", "💎"}},
	{ID: "dinosaurs", Name: "Bộ Khủng Long Bạo Chúa", StarsRequired: 250, Icons: []string{"🦖", "🦕", "🐉", "🌋", "🦴"}},
}

// SetByID returns the unlockable set with the given ID.
func SetByID(id string) (ImageSet, bool) {
	for _, s := range UnlockableSets {
		if s.ID == id {
			return s, true
		}
	}
	return ImageSet{}, false
}

// BaseIcons merges the starter icons with every unlocked set, in order,
// dropping duplicates and blanks. Unknown set IDs are ignored.
func BaseIcons(unlockedSetIDs []string) []string {
	unlocked := make(map[string]bool, len(unlockedSetIDs))
	for _, id := range unlockedSetIDs {
		unlocked[id] = true
	}

	all := append([]string(nil), StarterIcons...)
	for _, s := range UnlockableSets {
		if unlocked[s.ID] {
			all = append(all, s.Icons...)
		}
	}
	return dedupe(all)
}

func dedupe(icons []string) []string {
	seen := make(map[string]bool, len(icons))
	out := make([]string, 0, len(icons))
	for _, icon := range icons {
		if icon == "" || seen[icon] {
			continue
		}
		seen[icon] = true
		out = append(out, icon)
	}
	return out
}

// Glyphs whose orientation is visible, used by the transform patterns.
var (
	RotationIcons = []string{
		"➡️", "L", "P", "F", "J", "G", "K", "⤴️", "⤵️", "↩️", "↪️",
		"🏹", "🔑", "👢", "👡", "🛴", "🪓", "⛏️", "🎷", "🎺", "🪝", "🌙",
	}
	FlipIcons = []string{
		"P", "F", "J", "R", "S", "Z", "N", "G", "K", "👍", "👎", "d", "b", "q", "p",
		">", "<", "(", ")", "[", "]", "}", "{", "🎵", "🪧", "💪", "🦵", "🦶", "👂",
	}
)

// ScaleIcons are the candidates for size patterns.
func ScaleIcons() []string {
	return StarterIcons
}
