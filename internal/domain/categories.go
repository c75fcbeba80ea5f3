package domain

// DefaultCategory is available in both modes and is the only category
// restricted mode ever requests.
const DefaultCategory = "waifu"

// RestrictedCategory is the fixed category used in restricted mode.
const RestrictedCategory = DefaultCategory

// StandardCategories lists every category the image API serves in standard mode.
var StandardCategories = []string{
	"waifu", "neko", "shinobu", "megumin", "bully", "cuddle", "cry", "hug",
	"awoo", "kiss", "lick", "pat", "smug", "bonk", "yeet", "blush", "smile",
	"wave", "highfive", "handhold", "nom", "bite", "glomp", "slap", "kill",
	"kick", "happy", "wink", "poke", "dance", "cringe",
}

// RestrictedCategories lists the categories offered in restricted mode.
var RestrictedCategories = []string{RestrictedCategory}

// Categories returns the categories offered for a mode.
func Categories(mode Mode) []string {
	if mode == ModeRestricted {
		return RestrictedCategories
	}
	return StandardCategories
}

// IsKnownCategory reports whether category is offered in mode.
func IsKnownCategory(mode Mode, category string) bool {
	for _, c := range Categories(mode) {
		if c == category {
			return true
		}
	}
	return false
}

// ResolveCategory returns the category that is actually requested.
// Restricted mode always resolves to RestrictedCategory regardless of the
// requested value; standard mode falls back to DefaultCategory when empty.
func ResolveCategory(mode Mode, requested string) string {
	if mode == ModeRestricted {
		return RestrictedCategory
	}
	if requested == "" {
		return DefaultCategory
	}
	return requested
}

// NextCategory returns the category after current in the mode's list,
// wrapping around. Unknown values restart from the first entry.
func NextCategory(mode Mode, current string) string {
	cats := Categories(mode)
	for i, c := range cats {
		if c == current {
			return cats[(i+1)%len(cats)]
		}
	}
	return cats[0]
}
