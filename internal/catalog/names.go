package catalog

// valueNames maps category and attribute values to the Vietnamese phrase
// used in explanations.
var valueNames = map[string]string{
	// primary categories
	"animal":      "động vật",
	"plant":       "thực vật",
	"food":        "đồ ăn",
	"drink":       "đồ uống",
	"vehicle":     "phương tiện",
	"clothing":    "quần áo",
	"tool":        "dụng cụ",
	"household":   "đồ dùng gia đình",
	"sports":      "thể thao",
	"technology":  "đồ công nghệ",
	"toy":         "đồ chơi",
	"instrument":  "nhạc cụ",
	"nature":      "tự nhiên",
	"celestial":   "thiên thể",
	"building":    "công trình",
	"fantasy":     "vật hư cấu",
	"shape_color": "hình khối màu",
	"misc":        "vật khác",

	// sub categories
	"mammal":            "động vật có vú",
	"bird":              "loài chim",
	"reptile":           "loài bò sát",
	"amphibian":         "loài lưỡng cư",
	"fish":              "loài cá",
	"invertebrate":      "động vật không xương sống",
	"insect":            "côn trùng",
	"fruit":             "trái cây",
	"vegetable":         "rau củ",
	"flower":            "loài hoa",
	"tree":              "loại cây",
	"dish":              "món ăn",
	"dessert":           "món tráng miệng",
	"land_vehicle":      "phương tiện đường bộ",
	"water_vehicle":     "phương tiện đường thủy",
	"air_vehicle":       "phương tiện đường không",
	"school_supply":     "dụng cụ học tập",
	"kitchen_tool":      "dụng cụ nhà bếp",
	"construction_tool": "dụng cụ xây dựng",
	"furniture":         "đồ nội thất",
	"sports_equipment":  "dụng cụ thể thao",
	"sports_activity":   "hoạt động thể thao",
	"circle":            "hình tròn",
	"square":            "hình vuông",
	"heart":             "hình trái tim",
	"triangle":          "hình tam giác",
	"diamond":           "hình thoi",

	// tertiary categories
	"pet":         "thú cưng",
	"livestock":   "gia súc",
	"wild_animal": "động vật hoang dã",
	"poultry":     "gia cầm",

	// propulsion
	"road": "chạy trên đường bộ",
	"rail": "chạy trên đường ray",

	// diet
	"carnivore": "động vật ăn thịt",
	"herbivore": "động vật ăn cỏ",
	"omnivore":  "động vật ăn tạp",

	// temperature
	"hot":  "nóng",
	"cold": "lạnh",

	// power source
	"electric": "vật dụng dùng điện",
	"manual":   "vật dụng hoạt động bằng sức người",
	"wind":     "hoạt động bằng sức gió",

	// function
	"write":   "dùng để viết",
	"cut":     "dùng để cắt",
	"cook":    "dùng để nấu",
	"eat":     "dùng để ăn",
	"sit":     "dùng để ngồi/nằm",
	"clean":   "dùng để dọn dẹp",
	"wear":    "dùng để mặc",
	"play":    "dùng để chơi",
	"measure": "dùng để đo",
	"build":   "dùng để xây dựng",
}

var environmentNames = map[string]string{
	"land":       "trên cạn",
	"water":      "ở môi trường nước",
	"sky":        "trên trời",
	"underwater": "sống dưới biển",
	"indoor":     "trong nhà",
	"space":      "ngoài không gian",
}

var colorNames = map[string]string{
	"red":    "màu đỏ",
	"orange": "màu cam",
	"yellow": "màu vàng",
	"green":  "màu xanh lá",
	"blue":   "màu xanh biển",
	"purple": "màu tím",
	"pink":   "màu hồng",
	"brown":  "màu nâu",
	"black":  "màu đen",
	"white":  "màu trắng",
	"gray":   "màu xám",
}

// ValueName returns the Vietnamese phrase for a category or attribute
// value, or fallback when none is known.
func ValueName(value, fallback string) string {
	if n, ok := valueNames[value]; ok {
		return n
	}
	return fallback
}

// EnvironmentName returns the Vietnamese location phrase for an environment.
func EnvironmentName(env, fallback string) string {
	if n, ok := environmentNames[env]; ok {
		return n
	}
	return fallback
}

// ColorName returns the Vietnamese name of a color ("màu đỏ").
func ColorName(color string) string {
	if n, ok := colorNames[color]; ok {
		return n
	}
	return color
}
