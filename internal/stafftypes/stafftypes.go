// Package stafftypes classifies anime production staff roles into broad
// categories (music, art, animation, writing, and so on) so comparison output
// can group related credits. Role strings usually carry suffixes like
// "(ep 1, 3)" or "(OP/ED)" and qualifier words like "Chief" or "Assistant";
// TrimRole strips those before classification.
package stafftypes

import "strings"

// Category is a broad production area a staff role belongs to.
type Category string

const (
	CategoryMusic     Category = "Music"
	CategorySound     Category = "Sound"
	CategoryArt       Category = "Art"
	CategoryAnimation Category = "Animation"
	CategoryWriting   Category = "Writing"
	CategoryDirecting Category = "Directing"
	CategoryMarketing Category = "Marketing"
	CategoryMisc      Category = "Misc"
	CategoryUnknown   Category = ""
)

// Words that can be dropped from a role without losing which production area
// it belongs to, provided they are not the only word. "of" is included to
// reduce e.g. "Director of Photography" to "Photography".
var ignorableWords = map[string]struct{}{
	"of":         {},
	"Chief":      {},
	"Director":   {},
	"Executive":  {},
	"Producer":   {},
	"Supervisor": {},
	"Manager":    {},
	"Main":       {},
	"Assistant":  {},
	"Assistance": {},
	"Associate":  {},
}

var roleCategories = map[string]Category{}

func register(category Category, roles ...string) {
	for _, role := range roles {
		roleCategories[role] = category
	}
}

func init() {
	register(CategoryMusic,
		"Theme Song Performance", "Theme Song Composition", "Theme Song Arrangement",
		"Music", "Music Production",
		"Insert Song Performance", "Insert Song Composition", "Insert Song Arrangement")
	register(CategorySound,
		"Sound", "Sound Design", "Sound Mixing", "Sound Adjustment", "Sound Production",
		"Sound Effects", "Foley",
		"Recording", "Recording Adjustment")
	register(CategoryArt,
		"Art", "Art Design", "Art Board", "Illustration",
		"Design", "Character Design", "Original Character Design", "Sub Character Design", "Costume Design",
		"Editing",
		"Color Design", "Color Coordination",
		"Finishing", "Finishing Check",
		"Background Art",
		"Photography", "Photography Production",
		"2D Works",
		"CG", "CG Modeling", "3D Works", "3DCG", "Special Effects", "Monitor Graphics",
		"Design Works", "Mechanical Design", "Prop Design", "World Design", "Weapon Design", "Creature Design")
	register(CategoryAnimation,
		"Layout Design",
		"Animator", "Animation", "Key Animation", "2nd Key Animation",
		"In-Between Animation", "In-Betweens Check",
		"CG Animation", "Digital Animation", "Special Animation", "Action Animation", "Weapon Animation")
	register(CategoryWriting,
		"Original Story", "Original Creator",
		"Series Composition", "Script", "Storyboard")
	// Trimmed forms of "Episode Director", "Action Director", etc.
	register(CategoryDirecting,
		"Director", "Episode", "Planning", "Action")
	register(CategoryMarketing,
		"Title Logo Design", "PV Production", "Video Editing", "Online Editing", "Web Design",
		"Advertising", "Program Advertising", "Sales Promotion", "Public Relations",
		"License", "Distribution License", "Domestic License", "Overseas License")
	register(CategoryMisc,
		"Producer", "Production", "Supervisor", "Assistance",
		"Casting",
		"Production Generalization", "Production Office", "Package", "Production Desk", "Lab Coordinator",
		"Brush Design", "Monitor Work",
		"ADR", "ADR Script",
		"Insert Song Lyrics", "Theme Song Lyrics")
}

// TrimRole strips the parts of a role string that do not help classify it:
// trailing parentheticals and ignorable qualifier words. When dropping the
// qualifiers would remove every word, the last word is kept instead, which
// collapses the many Director and Producer variants nicely.
func TrimRole(role string) string {
	if idx := strings.IndexByte(role, '('); idx >= 0 {
		role = role[:idx]
	}
	role = strings.TrimSpace(role)
	words := strings.Fields(role)
	if len(words) == 0 {
		return ""
	}

	kept := make([]string, 0, len(words))
	for _, word := range words {
		if _, ignorable := ignorableWords[word]; !ignorable {
			kept = append(kept, word)
		}
	}
	if len(kept) == 0 {
		return words[len(words)-1]
	}
	return strings.Join(kept, " ")
}

// Categorize maps a raw role string to its production category, trimming it
// first. Unrecognized roles map to CategoryUnknown.
func Categorize(role string) Category {
	trimmed := TrimRole(role)
	if trimmed == "" {
		return CategoryUnknown
	}
	return roleCategories[trimmed]
}
