package city

import (
	"growify/pkg/engine/world"
)

// VariantType tags the value held by a Variant.
type VariantType uint16

// Variant types used by the properties this package reads
const (
	VariantNone VariantType = iota
	VariantUint8
	VariantUint32
	VariantUint32Array
	VariantString
)

// Variant is a typed property value.
type Variant interface {
	Type() VariantType
	Uint8() uint8
	Uint32s() []uint32
}

// PropertyHolder exposes an occupant's exemplar properties.
type PropertyHolder interface {
	// Property returns the value of the property, or false if it is absent
	Property(id uint32) (Variant, bool)
}

// Occupant is anything placed in the city: buildings, props, flora, networks.
type Occupant interface {
	// Type returns the occupant type tag (see OccupantTypeBuilding)
	Type() uint32
	Properties() PropertyHolder
}

// Lot is the parcel a building sits on.
type Lot interface {
	// ZoneType returns the lot's cached zone type
	ZoneType() ZoneType
	// BoundingRect returns the tracts covered by the lot, corners inclusive
	BoundingRect() world.Rect
	// UpdateZoneType refreshes the cached zone type from the zone grid
	UpdateZoneType()
	SetHistorical(historical bool)
}

// ZoneGrid holds the zone type of every tract in the city.
type ZoneGrid interface {
	SetTractValue(x, z int, value int8) bool
}

// LotManager resolves occupants to their lots.
type LotManager interface {
	// OccupantLot returns the lot the occupant sits on, or nil
	OccupantLot(o Occupant) Lot
}

// ZoneManager owns the zone grid.
type ZoneManager interface {
	ZoneGrid() ZoneGrid
}

// OccupantFilter decides which occupants an iteration visits.
type OccupantFilter interface {
	IsOccupantIncluded(o Occupant) bool
}

// OccupantManager enumerates the city's occupants.
type OccupantManager interface {
	// IterateOccupants calls fn for every occupant accepted by filter until fn returns false.
	// A nil filter accepts every occupant.
	IterateOccupants(fn func(o Occupant) bool, filter OccupantFilter)
}

// City groups the managers of a loaded city. Any of them may be nil.
type City interface {
	LotManager() LotManager
	OccupantManager() OccupantManager
	ZoneManager() ZoneManager
}

// Message is a notification delivered by the host.
type Message struct {
	Type  uint32
	Data1 uint32 // cheat ID for MessageCheatIssued
	Text  string // full cheat text for MessageCheatIssued
}

// MessageTarget receives host notifications.
type MessageTarget interface {
	DoMessage(msg Message) bool
}

// MessageServer delivers host lifecycle notifications.
type MessageServer interface {
	// AddNotification subscribes target to a message type. Returns false on failure.
	AddNotification(target MessageTarget, messageType uint32) bool
}

// CheatCodeManager routes typed cheats to registered targets.
type CheatCodeManager interface {
	AddNotification(target MessageTarget)
	RemoveNotification(target MessageTarget)
	RegisterCheatCode(id uint32, name string)
	UnregisterCheatCode(id uint32)
}

// App is the running host application. City returns nil when no city is loaded.
type App interface {
	City() City
	CheatCodeManager() CheatCodeManager
}

// Dialog shows a modal message with an OK button.
type Dialog interface {
	ShowDialog(message, caption string)
}

// StringTable resolves localized strings by resource group and instance.
type StringTable interface {
	LocalizedString(group, instance uint32) (string, bool)
}
