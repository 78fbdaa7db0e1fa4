package city

import "fmt"

// BuildingPurpose is the purpose property of a building exemplar.
type BuildingPurpose uint8

const (
	PurposeNone BuildingPurpose = iota
	PurposeResidence
	PurposeServices
	PurposeOffice
	PurposeTourism
	PurposeAgriculture
	PurposeProcessing
	PurposeManufacturing
	PurposeHighTech
	PurposeOther
)

var purposeNames = []string{
	"none",
	"residence",
	"services",
	"office",
	"tourism",
	"agriculture",
	"processing",
	"manufacturing",
	"hightech",
	"other",
}

// String returns the purpose's lower-case name
func (p BuildingPurpose) String() string {
	if int(p) < len(purposeNames) {
		return purposeNames[p]
	}
	return fmt.Sprintf("purpose(%d)", uint8(p))
}

// ParseBuildingPurpose looks up a purpose by the name String returns
func ParseBuildingPurpose(name string) (BuildingPurpose, error) {
	for i, n := range purposeNames {
		if n == name {
			return BuildingPurpose(i), nil
		}
	}
	return PurposeNone, fmt.Errorf("unknown building purpose %q", name)
}

// BuildingPurposeOf reads the purpose property from a property holder.
// The property is only honoured when it holds a single Uint8.
func BuildingPurposeOf(props PropertyHolder) (BuildingPurpose, bool) {
	if props == nil {
		return PurposeNone, false
	}

	value, ok := props.Property(PropertyBuildingPurpose)
	if !ok || value == nil || value.Type() != VariantUint8 {
		return PurposeNone, false
	}

	return BuildingPurpose(value.Uint8()), true
}
