// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"growify/pkg/game/city"
	"growify/pkg/game/sim"
)

// MapDumpFilename is the default dump file name
const MapDumpFilename = "zonemap.txt"

// tractSymbol returns the two-character symbol for a zone
func tractSymbol(zone city.ZoneType) string {
	switch zone {
	case city.ZoneNone:
		return ".."
	case city.ZoneResidentialLow:
		return "R1"
	case city.ZoneResidentialMedium:
		return "R2"
	case city.ZoneResidentialHigh:
		return "R3"
	case city.ZoneCommercialLow:
		return "C1"
	case city.ZoneCommercialMedium:
		return "C2"
	case city.ZoneCommercialHigh:
		return "C3"
	case city.ZoneAgriculture:
		return "A-"
	case city.ZoneIndustrialMedium:
		return "I2"
	case city.ZoneIndustrialHigh:
		return "I3"
	case city.ZonePlopped:
		return "P#"
	default:
		return "XX"
	}
}

// writeZoneGrid writes one z row per line, tracts separated by spaces
func writeZoneGrid(w *strings.Builder, c *sim.City) {
	grid := c.Grid()
	for z := 0; z < grid.Depth(); z++ {
		for x := 0; x < grid.Width(); x++ {
			if x > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, tractSymbol(city.ZoneType(grid.GetTractValue(x, z))))
		}
		fmt.Fprintln(w)
	}
}

// DumpCity writes a plain-text dump of the city: metadata, legend,
// zone map and every occupant with its lot. The dump is built in memory
// and written to out in one call.
func DumpCity(out io.Writer, c *sim.City) error {
	if c == nil || c.Grid() == nil {
		return fmt.Errorf("no city")
	}
	grid := c.Grid()
	w := &strings.Builder{}

	fmt.Fprintln(w, "=== ZONE MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "name: %q\n", c.Name)
	fmt.Fprintf(w, "width: %d\n", grid.Width())
	fmt.Fprintf(w, "depth: %d\n", grid.Depth())
	fmt.Fprintln(w, "coordinate_system: x,z (0-based, x=horizontal, z=vertical)")
	fmt.Fprintf(w, "occupants: %d\n", len(c.Buildings()))
	fmt.Fprintf(w, "plopped_tracts: %d\n", grid.CountValue(int8(city.ZonePlopped)))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (tract symbols) ---")
	fmt.Fprintln(w, ".. = unzoned  R1-R3 = residential  C1-C3 = commercial  A- = agriculture  I2-I3 = industrial  P# = plopped  XX = other")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeZoneGrid(w, c)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Occupants ---")
	for _, b := range c.Buildings() {
		purpose := "unset"
		if p, ok := city.BuildingPurposeOf(b.Properties()); ok {
			purpose = p.String()
		}
		fmt.Fprintf(w, "  name: %q type: %#08x purpose: %s", b.Name, b.Type(), purpose)

		lot := b.Lot()
		if lot == nil {
			fmt.Fprintln(w, " lot: none")
			continue
		}
		fmt.Fprintf(w, " lot: %v zone: %v historical: %v\n", lot.BoundingRect(), lot.ZoneType(), lot.Historical())
	}

	if _, err := io.WriteString(out, w.String()); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}

// DumpCityToFile writes DumpCity output to path, or MapDumpFilename when
// path is empty. Returns the absolute path written.
func DumpCityToFile(c *sim.City, path string) (_ string, err error) {
	if path == "" {
		path = MapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating dump file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing dump file: %w", cerr)
		}
	}()

	if err := DumpCity(f, c); err != nil {
		return "", err
	}
	return absPath, nil
}
