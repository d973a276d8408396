package domain

import "strings"

// Location is a named oracle location with its default language.
type Location struct {
	Code     int
	Name     string
	Language string
}

// Well-known locations. The oracle accepts any numeric code; these are
// the ones the CLI resolves by name.
var knownLocations = []Location{
	{Code: 2840, Name: "United States", Language: "en"},
	{Code: 2643, Name: "Russia", Language: "ru"},
	{Code: 2826, Name: "United Kingdom", Language: "en"},
	{Code: 2124, Name: "Canada", Language: "en"},
	{Code: 2036, Name: "Australia", Language: "en"},
	{Code: 2144, Name: "Sri Lanka", Language: "en"},
}

// Languages maps supported language codes to display names.
var Languages = map[string]string{
	"en": "English",
	"ru": "Russian",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
	"ja": "Japanese",
	"ar": "Arabic",
}

// Locations returns the known locations in a stable order.
func Locations() []Location {
	out := make([]Location, len(knownLocations))
	copy(out, knownLocations)
	return out
}

// LocationByName resolves a location by case-insensitive name.
func LocationByName(name string) (Location, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, loc := range knownLocations {
		if strings.ToLower(loc.Name) == name {
			return loc, true
		}
	}
	return Location{}, false
}

// LocationByCode resolves a known location by numeric code.
func LocationByCode(code int) (Location, bool) {
	for _, loc := range knownLocations {
		if loc.Code == code {
			return loc, true
		}
	}
	return Location{}, false
}
