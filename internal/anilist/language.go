package anilist

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StaffLanguage is the API's voice-actor language enum.
type StaffLanguage string

type languageEntry struct {
	code  string // ISO 639-1 (2-letter)
	value StaffLanguage
}

var staffLanguages = []languageEntry{
	{"ja", "JAPANESE"},
	{"en", "ENGLISH"},
	{"ko", "KOREAN"},
	{"it", "ITALIAN"},
	{"es", "SPANISH"},
	{"pt", "PORTUGUESE"},
	{"fr", "FRENCH"},
	{"de", "GERMAN"},
	{"he", "HEBREW"},
	{"hu", "HUNGARIAN"},
	{"zh", "CHINESE"},
	{"ar", "ARABIC"},
	{"fi", "FINNISH"},
	{"tr", "TURKISH"},
	{"nl", "DUTCH"},
	{"sv", "SWEDISH"},
	{"th", "THAI"},
	{"hi", "HINDI"},
}

var (
	languageByCode map[string]StaffLanguage
	languageByName map[string]StaffLanguage
)

func init() {
	languageByCode = make(map[string]StaffLanguage, len(staffLanguages))
	languageByName = make(map[string]StaffLanguage, len(staffLanguages))
	for _, entry := range staffLanguages {
		languageByCode[entry.code] = entry.value
		languageByName[strings.ToLower(string(entry.value))] = entry.value
	}
}

// ParseStaffLanguage maps user input ("ja", "japanese", "JAPANESE") to the
// API enum value.
func ParseStaffLanguage(input string) (StaffLanguage, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", fmt.Errorf("language must not be empty")
	}
	if value, ok := languageByName[normalized]; ok {
		return value, nil
	}
	if value, ok := languageByCode[normalized]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unsupported voice-actor language %q (known: %s)", input, strings.Join(knownLanguages(), ", "))
}

// Display renders the enum value for humans, e.g. "JAPANESE" -> "Japanese".
func (l StaffLanguage) Display() string {
	return cases.Title(language.English).String(strings.ToLower(string(l)))
}

func knownLanguages() []string {
	names := make([]string, 0, len(staffLanguages))
	for _, entry := range staffLanguages {
		names = append(names, strings.ToLower(string(entry.value)))
	}
	sort.Strings(names)
	return names
}
