package growify

import (
	"growify/pkg/game/city"
)

// MapToCode returns the host zone type for a category and density.
// Agriculture ignores density. Industrial has no low density zone, and an
// invalid category or density has no zone either; both return false.
func MapToCode(category ZoneCategory, density ZoneDensity) (city.ZoneType, bool) {
	switch category {
	case Residential:
		switch density {
		case Low:
			return city.ZoneResidentialLow, true
		case Medium:
			return city.ZoneResidentialMedium, true
		case High:
			return city.ZoneResidentialHigh, true
		}
	case Commercial:
		switch density {
		case Low:
			return city.ZoneCommercialLow, true
		case Medium:
			return city.ZoneCommercialMedium, true
		case High:
			return city.ZoneCommercialHigh, true
		}
	case Agriculture:
		return city.ZoneAgriculture, true
	case Industrial:
		switch density {
		case Medium:
			return city.ZoneIndustrialMedium, true
		case High:
			return city.ZoneIndustrialHigh, true
		}
	}

	return city.ZoneNone, false
}
