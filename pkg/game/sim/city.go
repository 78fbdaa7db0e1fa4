package sim

import (
	"growify/pkg/engine/world"
	"growify/pkg/game/city"
)

// String table resource keys for occupant names
const (
	nameResourceType  uint32 = 0x2026960B
	nameResourceGroup uint32 = 0x6A231EAA
)

// Building is an occupant placed in a City.
type Building struct {
	Name         string
	OccupantType uint32
	Props        Properties

	lot *Lot
}

// Type implements city.Occupant
func (b *Building) Type() uint32 { return b.OccupantType }

// Properties implements city.Occupant
func (b *Building) Properties() city.PropertyHolder {
	if b.Props == nil {
		return nil
	}
	return b.Props
}

// Lot returns the building's lot, or nil
func (b *Building) Lot() *Lot { return b.lot }

// Lot is a parcel on a City's zone grid.
type Lot struct {
	bounds     world.Rect
	zone       city.ZoneType
	historical bool
	grid       *world.Grid
}

// ZoneType implements city.Lot
func (l *Lot) ZoneType() city.ZoneType { return l.zone }

// BoundingRect implements city.Lot
func (l *Lot) BoundingRect() world.Rect { return l.bounds }

// UpdateZoneType reads the zone back from the lot's top-left tract
func (l *Lot) UpdateZoneType() {
	l.zone = city.ZoneType(l.grid.GetTractValue(l.bounds.TopLeftX, l.bounds.TopLeftZ))
}

// SetHistorical implements city.Lot
func (l *Lot) SetHistorical(historical bool) { l.historical = historical }

// Historical returns the lot's historical flag
func (l *Lot) Historical() bool { return l.historical }

// City is an in-memory city. It serves as its own lot, occupant and zone manager.
type City struct {
	Name string

	grid      *world.Grid
	buildings []*Building
	strings   map[[2]uint32]string
}

// NewEmptyCity creates a city with an unzoned grid and no occupants
func NewEmptyCity(width, depth int) *City {
	return &City{
		grid:    world.NewGrid(width, depth),
		strings: make(map[[2]uint32]string),
	}
}

// Grid returns the zone grid
func (c *City) Grid() *world.Grid { return c.grid }

// Buildings returns the occupants in placement order
func (c *City) Buildings() []*Building { return c.buildings }

// AddBuilding places an occupant. A nil lot leaves it without one.
// The lot's tracts are zoned with zone and the name is added to the string table.
func (c *City) AddBuilding(b *Building, lot *world.Rect, zone city.ZoneType) {
	if b.Name != "" {
		instance := uint32(len(c.strings) + 1)
		c.strings[[2]uint32{nameResourceGroup, instance}] = b.Name
		if b.Props == nil {
			b.Props = Properties{}
		}
		b.Props[city.PropertyUserVisibleName] = Uint32ArrayValue(nameResourceType, nameResourceGroup, instance)
	}

	if lot != nil {
		c.grid.Fill(*lot, int8(zone))
		b.lot = &Lot{bounds: *lot, zone: zone, grid: c.grid}
	}

	c.buildings = append(c.buildings, b)
}

// LotManager implements city.City
func (c *City) LotManager() city.LotManager { return c }

// OccupantManager implements city.City
func (c *City) OccupantManager() city.OccupantManager { return c }

// ZoneManager implements city.City
func (c *City) ZoneManager() city.ZoneManager { return c }

// ZoneGrid implements city.ZoneManager
func (c *City) ZoneGrid() city.ZoneGrid { return c.grid }

// OccupantLot implements city.LotManager
func (c *City) OccupantLot(o city.Occupant) city.Lot {
	b, ok := o.(*Building)
	if !ok || b.lot == nil {
		return nil
	}
	return b.lot
}

// IterateOccupants implements city.OccupantManager
func (c *City) IterateOccupants(fn func(o city.Occupant) bool, filter city.OccupantFilter) {
	for _, b := range c.buildings {
		if filter != nil && !filter.IsOccupantIncluded(b) {
			continue
		}
		if !fn(b) {
			return
		}
	}
}

// LocalizedString implements city.StringTable
func (c *City) LocalizedString(group, instance uint32) (string, bool) {
	s, ok := c.strings[[2]uint32{group, instance}]
	return s, ok
}

// CountZone returns how many lots currently cache zone
func (c *City) CountZone(zone city.ZoneType) int {
	count := 0
	for _, b := range c.buildings {
		if b.lot != nil && b.lot.zone == zone {
			count++
		}
	}
	return count
}
