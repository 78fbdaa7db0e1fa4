package city

import "fmt"

// ZoneType is the host's internal zone taxonomy, as stored in the zone grid.
type ZoneType uint32

const (
	ZoneNone ZoneType = iota
	ZoneResidentialLow
	ZoneResidentialMedium
	ZoneResidentialHigh
	ZoneCommercialLow
	ZoneCommercialMedium
	ZoneCommercialHigh
	ZoneAgriculture // the low density industrial zone
	ZoneIndustrialMedium
	ZoneIndustrialHigh
	ZoneMilitary
	ZoneAirport
	ZoneSeaport
	ZoneSpaceport
	ZoneLandfill
	ZonePlopped // player-placed, never grown
)

var zoneTypeNames = map[ZoneType]string{
	ZoneNone:              "none",
	ZoneResidentialLow:    "residential-low",
	ZoneResidentialMedium: "residential-medium",
	ZoneResidentialHigh:   "residential-high",
	ZoneCommercialLow:     "commercial-low",
	ZoneCommercialMedium:  "commercial-medium",
	ZoneCommercialHigh:    "commercial-high",
	ZoneAgriculture:       "agriculture",
	ZoneIndustrialMedium:  "industrial-medium",
	ZoneIndustrialHigh:    "industrial-high",
	ZoneMilitary:          "military",
	ZoneAirport:           "airport",
	ZoneSeaport:           "seaport",
	ZoneSpaceport:         "spaceport",
	ZoneLandfill:          "landfill",
	ZonePlopped:           "plopped",
}

// String returns the zone's lower-case name
func (z ZoneType) String() string {
	if name, ok := zoneTypeNames[z]; ok {
		return name
	}
	return fmt.Sprintf("zone(%d)", uint32(z))
}

// IsValid returns true if z is a known zone type
func (z ZoneType) IsValid() bool {
	_, ok := zoneTypeNames[z]
	return ok
}

// IsRCI returns true for the growable residential, commercial and industrial zones
func (z ZoneType) IsRCI() bool {
	return z >= ZoneResidentialLow && z <= ZoneIndustrialHigh
}

// ParseZoneType looks up a zone type by the name String returns
func ParseZoneType(name string) (ZoneType, error) {
	for z, n := range zoneTypeNames {
		if n == name {
			return z, nil
		}
	}
	return ZoneNone, fmt.Errorf("unknown zone type %q", name)
}
