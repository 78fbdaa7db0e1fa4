package growify

import (
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"growify/pkg/engine/world"
	"growify/pkg/game/city"
)

// Pass rezones the plopped lots of one category. It runs synchronously on the
// host's thread and assumes nothing else touches the city until Run returns.
type Pass struct {
	Lots      city.LotManager
	Occupants city.OccupantManager
	Grid      city.ZoneGrid

	// Names is optional and only used to label log entries.
	Names  city.StringTable
	Logger *zap.Logger
}

// Result summarises a Pass.
type Result struct {
	Category  ZoneCategory
	Converted int
	// Skipped counts matching buildings whose lot was already zoned.
	Skipped int
}

// Run converts every plopped lot under a building that the request's
// OccupantFilter includes. Lots are told apart by their footprint, since
// lots never overlap, and each is counted at most once.
func (p *Pass) Run(req Request) Result {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Result{Category: req.Category}
	visited := mapset.New[world.Rect]()
	filter := NewOccupantFilter(req.Category)

	p.Occupants.IterateOccupants(func(o city.Occupant) bool {
		lot := p.Lots.OccupantLot(o)
		if lot == nil {
			return true
		}
		bounds := lot.BoundingRect()
		if visited.Has(bounds) {
			return true
		}
		visited.Put(bounds)

		if lot.ZoneType() != city.ZonePlopped {
			result.Skipped++
			return true
		}

		bounds.ForEach(func(x, z int) {
			p.Grid.SetTractValue(x, z, int8(req.TargetCode))
		})

		lot.UpdateZoneType()

		if req.MakeHistorical {
			lot.SetHistorical(true)
		}

		result.Converted++

		if ce := logger.Check(zap.DebugLevel, "Growified lot"); ce != nil {
			name, _ := city.OccupantName(o, p.Names)
			ce.Write(
				zap.String("building", name),
				zap.String("category", req.Category.LotName()),
				zap.Stringer("bounds", bounds),
				zap.Stringer("zone", lot.ZoneType()),
				zap.Bool("historical", req.MakeHistorical))
		}

		return true
	}, filter)

	return result
}
