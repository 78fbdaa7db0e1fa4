package growify

import (
	"growify/pkg/game/city"
)

// OccupantFilter includes the buildings whose purpose belongs to one zone category.
// It is built for a single cheat and should not be kept past that cheat's Pass.
type OccupantFilter struct {
	requested ZoneCategory
}

// NewOccupantFilter creates a filter for the requested category
func NewOccupantFilter(requested ZoneCategory) *OccupantFilter {
	return &OccupantFilter{requested: requested}
}

// Requested returns the category the filter was built for
func (f *OccupantFilter) Requested() ZoneCategory {
	return f.requested
}

// IsOccupantIncluded implements city.OccupantFilter
func (f *OccupantFilter) IsOccupantIncluded(o city.Occupant) bool {
	if o == nil || !f.IsOccupantTypeIncluded(o.Type()) {
		return false
	}

	purpose, ok := city.BuildingPurposeOf(o.Properties())
	return IsEligible(o.Type(), purpose, ok, f.requested)
}

// IsOccupantTypeIncluded returns true only for buildings
func (f *OccupantFilter) IsOccupantTypeIncluded(occupantType uint32) bool {
	return occupantType == city.OccupantTypeBuilding
}

// IsEligible decides whether a building can be grown into the requested category.
// hasPurpose is false when the building's purpose property was missing or unreadable.
func IsEligible(occupantType uint32, purpose city.BuildingPurpose, hasPurpose bool, requested ZoneCategory) bool {
	if occupantType != city.OccupantTypeBuilding || !hasPurpose {
		return false
	}

	category, ok := CategoryForPurpose(purpose)
	return ok && category == requested
}

// CategoryForPurpose classifies a building purpose.
// None, Tourism, Other and unknown purposes have no category.
func CategoryForPurpose(purpose city.BuildingPurpose) (ZoneCategory, bool) {
	switch purpose {
	case city.PurposeResidence:
		return Residential, true
	case city.PurposeServices, city.PurposeOffice:
		return Commercial, true
	case city.PurposeAgriculture:
		return Agriculture, true
	case city.PurposeProcessing, city.PurposeManufacturing, city.PurposeHighTech:
		return Industrial, true
	default:
		return CategoryInvalid, false
	}
}
