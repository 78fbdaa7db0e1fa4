package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"growify/pkg/game/city"
)

const oldTown = `
name: Old Town
width: 8
depth: 6
occupants:
  - name: Corner Shop
    purpose: services
    lot: {x: 0, z: 0, width: 2, depth: 1}
  - name: Row House
    purpose: Residence
    zone: residential-low
    historical: true
    lot: {x: 3, z: 0, width: 1, depth: 2}
  - name: Oak Tree
    type: "0x74758926"
  - name: Mill
    purpose: processing
    lot: {x: 5, z: 3, width: 3, depth: 3}
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(oldTown))
	if err != nil {
		t.Fatalf("ParseScenario() error = %v", err)
	}
	if s.Name != "Old Town" || s.Width != 8 || s.Depth != 6 {
		t.Errorf("header = %q %dx%d, want Old Town 8x6", s.Name, s.Width, s.Depth)
	}
	if len(s.Occupants) != 4 {
		t.Fatalf("got %d occupants, want 4", len(s.Occupants))
	}
}

func TestNewCity_FromScenario(t *testing.T) {
	s, err := ParseScenario([]byte(oldTown))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCity(s)
	if err != nil {
		t.Fatalf("NewCity() error = %v", err)
	}

	if got := c.Grid().CountValue(int8(city.ZonePlopped)); got != 2+9 {
		t.Errorf("%d plopped tracts, want 11", got)
	}
	if got := c.CountZone(city.ZoneResidentialLow); got != 1 {
		t.Errorf("%d residential-low lots, want 1", got)
	}

	buildings := c.Buildings()
	if buildings[1].Lot() == nil || !buildings[1].Lot().Historical() {
		t.Error("Row House lot not historical")
	}
	if buildings[2].Type() == city.OccupantTypeBuilding {
		t.Error("Oak Tree typed as a building")
	}
	if buildings[2].Lot() != nil {
		t.Error("Oak Tree has a lot")
	}
	if p, ok := city.BuildingPurposeOf(buildings[0].Properties()); !ok || p != city.PurposeServices {
		t.Errorf("Corner Shop purpose = %v, %v, want services", p, ok)
	}
	if name, ok := city.OccupantName(buildings[3], c); !ok || name != "Mill" {
		t.Errorf("OccupantName(Mill) = %q, %v", name, ok)
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "width: [", "parsing scenario YAML"},
		{"no size", "name: x", "width and depth must be positive"},
		{"bad purpose", "width: 4\ndepth: 4\noccupants:\n  - purpose: castle", "unknown building purpose"},
		{"bad zone", "width: 4\ndepth: 4\noccupants:\n  - zone: suburb", "unknown zone type"},
		{"bad type", "width: 4\ndepth: 4\noccupants:\n  - type: tree", "invalid occupant type"},
		{"outside", "width: 4\ndepth: 4\noccupants:\n  - name: Big\n    lot: {x: 3, z: 3, width: 2, depth: 1}", "Big: lot (3,3)-(4,3) lies outside"},
		{"empty lot", "width: 4\ndepth: 4\noccupants:\n  - lot: {x: 0, z: 0, width: 0, depth: 1}", "occupant 1: lot width and depth"},
		{"overlap", "width: 4\ndepth: 4\noccupants:\n  - lot: {x: 0, z: 0, width: 2, depth: 2}\n  - name: B\n    lot: {x: 1, z: 1, width: 1, depth: 1}", "B: lot (1,1)-(1,1) overlaps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScenario() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.yaml")
	if err := os.WriteFile(path, []byte(oldTown), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err != nil {
		t.Errorf("LoadScenario() error = %v", err)
	}

	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading scenario file") {
		t.Errorf("LoadScenario(missing) error = %v, want reading error", err)
	}
}

func TestLot_UpdateZoneTypeReadsGrid(t *testing.T) {
	s, _ := ParseScenario([]byte(oldTown))
	c, _ := NewCity(s)
	lot := c.Buildings()[0].Lot()

	c.Grid().SetTractValue(0, 0, int8(city.ZoneCommercialLow))
	if lot.ZoneType() != city.ZonePlopped {
		t.Error("cached zone changed before UpdateZoneType")
	}
	lot.UpdateZoneType()
	if lot.ZoneType() != city.ZoneCommercialLow {
		t.Errorf("ZoneType() = %v after update, want commercial-low", lot.ZoneType())
	}
}
