package itinerary

import "strings"

type iconKeyword struct {
	keyword string
	icon    string
}

// smartIcons maps name substrings to glyphs. Order is significant: the first
// matching keyword wins when a name contains several.
var smartIcons = []iconKeyword{
	// Attractions
	{"tower", "🗼"}, {"eiffel", "🗼"}, {"monument", "🗽"}, {"statue", "🗽"}, {"bridge", "🌉"}, {"palace", "🏰"},
	{"castle", "🏰"}, {"church", "⛪"}, {"cathedral", "⛪"}, {"temple", "🛕"}, {"mosque", "🕌"}, {"synagogue", "🕍"},
	{"plaza", "🏛️"}, {"square", "🏛️"}, {"fountain", "⛲"}, {"museum", "🏛️"}, {"gallery", "🖼️"},

	// Restaurants
	{"restaurant", "🍽️"}, {"cafe", "☕"}, {"bistro", "🍽️"}, {"pub", "🍺"}, {"bar", "🍺"}, {"tavern", "🍺"},
	{"diner", "🍽️"}, {"eatery", "🍽️"}, {"pizzeria", "🍕"}, {"bakery", "🥐"}, {"ice cream", "🍦"},

	// Hotels
	{"hotel", "🏨"}, {"hostel", "🏨"}, {"inn", "🏨"}, {"lodge", "🏨"}, {"resort", "🏖️"}, {"guesthouse", "🏨"},
	{"motel", "🏨"}, {"apartment", "🏢"}, {"villa", "🏡"},

	// Parks
	{"park", "🌳"}, {"garden", "🌺"}, {"botanical", "🌺"}, {"zoo", "🦁"}, {"aquarium", "🐠"}, {"forest", "🌲"},
	{"beach", "🏖️"}, {"lake", "🏞️"}, {"mountain", "⛰️"}, {"trail", "🥾"},

	// Shopping
	{"mall", "🛍️"}, {"market", "🛒"}, {"shop", "🛍️"}, {"store", "🛍️"}, {"boutique", "👗"}, {"shopping", "🛍️"},
	{"outlet", "🛍️"}, {"department", "🏬"},

	// Transport
	{"airport", "✈️"}, {"station", "🚉"}, {"metro", "🚇"}, {"subway", "🚇"}, {"bus", "🚌"}, {"train", "🚂"},
	{"port", "🚢"}, {"terminal", "🚉"}, {"garage", "🅿️"}, {"parking", "🅿️"},
}

var typeIcons = map[string]string{
	"attraction": "🗽",
	"restaurant": "🍽️",
	"hotel":      "🏨",
	"museum":     "🏛️",
	"park":       "🌳",
	"shopping":   "🛍️",
	"transport":  "🚇",
}

const genericIcon = "📍"

// fallbackIcon picks a glyph for legacy-dialect markers that carry no icon of
// their own: first matching name keyword, then the category table, then a
// generic location marker.
func fallbackIcon(name, poiType string) string {
	lower := strings.ToLower(name)
	for _, entry := range smartIcons {
		if strings.Contains(lower, entry.keyword) {
			return entry.icon
		}
	}
	if icon, ok := typeIcons[poiType]; ok {
		return icon
	}
	return genericIcon
}
