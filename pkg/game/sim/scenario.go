package sim

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"growify/pkg/engine/world"
	"growify/pkg/game/city"
)

// Scenario describes a city to load.
type Scenario struct {
	Name      string         `yaml:"name"`
	Width     int            `yaml:"width"`
	Depth     int            `yaml:"depth"`
	Occupants []OccupantSpec `yaml:"occupants"`
}

// OccupantSpec describes one occupant of a Scenario.
type OccupantSpec struct {
	Name string `yaml:"name"`
	// Type is "building" (the default) or a numeric occupant type tag such as 0x74758926.
	Type string `yaml:"type"`
	// Purpose is a building purpose name; empty leaves the property unset.
	Purpose string `yaml:"purpose"`
	// Zone is a zone type name; empty means plopped.
	Zone       string   `yaml:"zone"`
	Lot        *LotSpec `yaml:"lot"`
	Historical bool     `yaml:"historical"`
}

// LotSpec is a lot footprint given by its top-left tract and size.
type LotSpec struct {
	X     int `yaml:"x"`
	Z     int `yaml:"z"`
	Width int `yaml:"width"`
	Depth int `yaml:"depth"`
}

// Rect returns the tracts covered by the lot
func (l LotSpec) Rect() world.Rect {
	return world.Rect{
		TopLeftX:     l.X,
		TopLeftZ:     l.Z,
		BottomRightX: l.X + l.Width - 1,
		BottomRightZ: l.Z + l.Depth - 1,
	}
}

// LoadScenario reads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a YAML scenario
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks grid size, names and lot placement
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Depth <= 0 {
		return errors.New("scenario width and depth must be positive")
	}

	bounds := world.NewGrid(s.Width, s.Depth).Bounds()
	var placed []world.Rect

	for i, o := range s.Occupants {
		label := o.Name
		if label == "" {
			label = fmt.Sprintf("occupant %d", i+1)
		}

		if _, err := o.occupantType(); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if _, _, err := o.purpose(); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if _, err := o.zone(); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}

		if o.Lot == nil {
			continue
		}

		r := o.Lot.Rect()
		if o.Lot.Width <= 0 || o.Lot.Depth <= 0 {
			return fmt.Errorf("%s: lot width and depth must be positive", label)
		}
		if !bounds.Contains(r.TopLeftX, r.TopLeftZ) || !bounds.Contains(r.BottomRightX, r.BottomRightZ) {
			return fmt.Errorf("%s: lot %v lies outside the %dx%d city", label, r, s.Width, s.Depth)
		}
		for _, p := range placed {
			if p.Overlaps(r) {
				return fmt.Errorf("%s: lot %v overlaps lot %v", label, r, p)
			}
		}
		placed = append(placed, r)
	}

	return nil
}

// NewCity builds a City from a validated scenario
func NewCity(s *Scenario) (*City, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := NewEmptyCity(s.Width, s.Depth)
	c.Name = s.Name

	for _, o := range s.Occupants {
		occupantType, _ := o.occupantType()
		purpose, hasPurpose, _ := o.purpose()
		zone, _ := o.zone()

		b := &Building{Name: o.Name, OccupantType: occupantType, Props: Properties{}}
		if hasPurpose {
			b.Props[city.PropertyBuildingPurpose] = Uint8Value(uint8(purpose))
		}

		var lot *world.Rect
		if o.Lot != nil {
			r := o.Lot.Rect()
			lot = &r
		}
		c.AddBuilding(b, lot, zone)

		if b.lot != nil && o.Historical {
			b.lot.SetHistorical(true)
		}
	}

	return c, nil
}

func (o OccupantSpec) occupantType() (uint32, error) {
	if o.Type == "" || strings.EqualFold(o.Type, "building") {
		return city.OccupantTypeBuilding, nil
	}
	v, err := strconv.ParseUint(o.Type, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid occupant type %q", o.Type)
	}
	return uint32(v), nil
}

func (o OccupantSpec) purpose() (city.BuildingPurpose, bool, error) {
	if o.Purpose == "" {
		return city.PurposeNone, false, nil
	}
	p, err := city.ParseBuildingPurpose(strings.ToLower(o.Purpose))
	if err != nil {
		return city.PurposeNone, false, err
	}
	return p, true, nil
}

func (o OccupantSpec) zone() (city.ZoneType, error) {
	if o.Zone == "" {
		return city.ZonePlopped, nil
	}
	return city.ParseZoneType(strings.ToLower(o.Zone))
}
