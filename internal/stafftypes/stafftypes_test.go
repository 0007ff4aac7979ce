package stafftypes_test

import (
	"testing"

	"anilens/internal/stafftypes"
)

func TestTrimRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Storyboard (ep 1, 3)", "Storyboard"},
		{"Theme Song Performance (OP)", "Theme Song Performance"},
		{"Assistant Director", "Director"},
		{"Chief Animation Director", "Animation"},
		{"Director of Photography", "Photography"},
		{"Executive Producer", "Producer"},
		{"Episode Director (eps 2, 5, 9)", "Episode"},
		{"Key Animation", "Key Animation"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stafftypes.TrimRole(tt.role); got != tt.want {
			t.Errorf("TrimRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		role string
		want stafftypes.Category
	}{
		{"Theme Song Performance (OP)", stafftypes.CategoryMusic},
		{"Sound Design", stafftypes.CategorySound},
		{"Chief Animation Director", stafftypes.CategoryAnimation},
		{"Director of Photography", stafftypes.CategoryArt},
		{"Series Composition", stafftypes.CategoryWriting},
		{"Assistant Director", stafftypes.CategoryDirecting},
		{"Episode Director (ep 4)", stafftypes.CategoryDirecting},
		{"Overseas License", stafftypes.CategoryMarketing},
		{"Executive Producer", stafftypes.CategoryMisc},
		{"Underwater Basket Weaving", stafftypes.CategoryUnknown},
		{"", stafftypes.CategoryUnknown},
	}
	for _, tt := range tests {
		if got := stafftypes.Categorize(tt.role); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
