// Package seasons parses release-season selectors and filters a user's
// scored show list down to one season or year.
package seasons

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"anilens/internal/anilist"
)

// Quarter is a release quarter as the API names it. Empty means the whole
// year.
type Quarter string

const (
	Winter Quarter = "WINTER"
	Spring Quarter = "SPRING"
	Summer Quarter = "SUMMER"
	Fall   Quarter = "FALL"
)

// Season selects the shows to compare: a quarter of a year, or a whole year
// when Quarter is empty.
type Season struct {
	Quarter Quarter
	Year    int
}

// Parse accepts selectors like "2021" or "Winter 2021" (quarter name
// case-insensitive).
func Parse(input string) (Season, error) {
	fields := strings.Fields(input)
	switch len(fields) {
	case 1:
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			return Season{}, fmt.Errorf("season %q: expected a year or \"<quarter> <year>\"", input)
		}
		return Season{Year: year}, nil
	case 2:
		quarter, err := parseQuarter(fields[0])
		if err != nil {
			return Season{}, fmt.Errorf("season %q: %w", input, err)
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil {
			return Season{}, fmt.Errorf("season %q: %q is not a year", input, fields[1])
		}
		return Season{Quarter: quarter, Year: year}, nil
	default:
		return Season{}, fmt.Errorf("season %q: expected a year or \"<quarter> <year>\"", input)
	}
}

func parseQuarter(input string) (Quarter, error) {
	switch Quarter(strings.ToUpper(input)) {
	case Winter:
		return Winter, nil
	case Spring:
		return Spring, nil
	case Summer:
		return Summer, nil
	case Fall:
		return Fall, nil
	default:
		return "", fmt.Errorf("unknown quarter %q (use Winter, Spring, Summer, or Fall)", input)
	}
}

// String renders the selector for column headings, e.g. "Winter 2021".
func (s Season) String() string {
	if s.Quarter == "" {
		return strconv.Itoa(s.Year)
	}
	quarter := cases.Title(language.English).String(strings.ToLower(string(s.Quarter)))
	return quarter + " " + strconv.Itoa(s.Year)
}

// Filter returns the entries that aired in the given season, sorted by score
// descending. Entries with equal scores keep their input order. The input is
// not modified.
func Filter(entries []anilist.ListEntry, season Season) []anilist.ListEntry {
	var matched []anilist.ListEntry
	for _, entry := range entries {
		if entry.SeasonYear != season.Year {
			continue
		}
		if season.Quarter != "" && entry.Season != string(season.Quarter) {
			continue
		}
		matched = append(matched, entry)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	return matched
}
