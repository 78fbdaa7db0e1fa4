package growify

import "strings"

// ZoneCategory is the broad RCI category a cheat asks for.
type ZoneCategory int

const (
	CategoryInvalid ZoneCategory = iota
	// Supports Low, Medium and High density.
	Residential
	// Supports Low, Medium and High density.
	Commercial
	// Shown as I-Ag in game. Density is ignored.
	Agriculture
	// Supports Medium and High density; the low density industrial zone is Agriculture.
	Industrial
)

// String returns the category's name
func (c ZoneCategory) String() string {
	switch c {
	case Residential:
		return "Residential"
	case Commercial:
		return "Commercial"
	case Agriculture:
		return "Agriculture"
	case Industrial:
		return "Industrial"
	default:
		return "Invalid"
	}
}

// LotName returns the lower-case adjective used when reporting converted lots
func (c ZoneCategory) LotName() string {
	switch c {
	case Residential:
		return "residential"
	case Commercial:
		return "commercial"
	case Agriculture:
		return "agricultural"
	case Industrial:
		return "industrial"
	default:
		return ""
	}
}

// ZoneDensity is the density a cheat asks for.
type ZoneDensity int

const (
	// DensityInvalid doubles as the implied density of Agriculture.
	DensityInvalid ZoneDensity = iota
	Low
	Medium
	High
)

// String returns the density's name
func (d ZoneDensity) String() string {
	switch d {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Invalid"
	}
}

// hasPrefixFold reports whether s starts with prefix, ignoring case
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// ParseZoneCategory matches a category word by its first letter
func ParseZoneCategory(word string) (ZoneCategory, bool) {
	switch {
	case hasPrefixFold(word, "R"):
		return Residential, true
	case hasPrefixFold(word, "C"):
		return Commercial, true
	case hasPrefixFold(word, "A"):
		return Agriculture, true
	case hasPrefixFold(word, "I"):
		return Industrial, true
	default:
		return CategoryInvalid, false
	}
}

// ParseZoneDensity matches a density word by its first letter
func ParseZoneDensity(word string) (ZoneDensity, bool) {
	switch {
	case hasPrefixFold(word, "L"):
		return Low, true
	case hasPrefixFold(word, "M"):
		return Medium, true
	case hasPrefixFold(word, "H"):
		return High, true
	default:
		return DensityInvalid, false
	}
}

// ParseHistoricalFlag accepts true, false (any case), 1 and 0
func ParseHistoricalFlag(word string) (bool, bool) {
	switch {
	case strings.EqualFold(word, "true"), word == "1":
		return true, true
	case strings.EqualFold(word, "false"), word == "0":
		return false, true
	default:
		return false, false
	}
}
