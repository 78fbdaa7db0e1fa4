package growify

import (
	"errors"
	"fmt"
	"strings"

	"growify/pkg/game/city"
)

// Parse errors. Each maps to its own user-facing message.
var (
	ErrUsage                 = errors.New("usage: Growify <zone type> <zone density> [make historical]")
	ErrInvalidCategory       = errors.New("invalid zone type")
	ErrInvalidDensity        = errors.New("invalid zone density")
	ErrInvalidHistoricalFlag = errors.New("invalid make historical value")
	ErrInvalidCombination    = errors.New("invalid zone type and density combination")
)

// Request is a validated Growify cheat. TargetCode is never city.ZoneNone.
type Request struct {
	Category       ZoneCategory
	Density        ZoneDensity // DensityInvalid when the cheat omitted it
	TargetCode     city.ZoneType
	MakeHistorical bool
}

// Parse validates a cheat line of the form
//
//	Growify <zone type> [<zone density>] [<make historical>]
//
// The first word is the cheat name and is only counted. The density may only
// be left out for Agriculture. Make historical defaults to true. The first
// problem found is returned and no Request is produced.
func Parse(command string) (Request, error) {
	args := strings.Fields(command)

	if len(args) < 2 || len(args) > 4 {
		return Request{}, ErrUsage
	}

	category, ok := ParseZoneCategory(args[1])
	if !ok {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidCategory, args[1])
	}

	req := Request{
		Category:       category,
		MakeHistorical: true,
	}

	if len(args) == 2 {
		// Agriculture only has one density level.
		if category != Agriculture {
			return Request{}, ErrUsage
		}
		req.TargetCode = city.ZoneAgriculture
		return req, nil
	}

	density, ok := ParseZoneDensity(args[2])
	if !ok {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidDensity, args[2])
	}
	req.Density = density

	if len(args) == 4 {
		historical, ok := ParseHistoricalFlag(args[3])
		if !ok {
			return Request{}, fmt.Errorf("%w: %q", ErrInvalidHistoricalFlag, args[3])
		}
		req.MakeHistorical = historical
	}

	code, ok := MapToCode(category, density)
	if !ok || code == city.ZoneNone {
		return Request{}, fmt.Errorf("%w: %v %v", ErrInvalidCombination, category, density)
	}
	req.TargetCode = code

	return req, nil
}
