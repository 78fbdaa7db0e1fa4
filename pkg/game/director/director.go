// Package director connects the Growify cheat to the host application.
//
// The host calls PostAppInit once, then DoMessage for every message the
// director subscribed to. Cheats are registered when a city loads and
// unregistered before it closes.
package director

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"growify/pkg/game/city"
	"growify/pkg/game/growify"
	"growify/pkg/game/i18n"
)

// Version of the plugin, shown in the log header
const Version = "1.0.0"

// Host registration IDs
const (
	DirectorID uint32 = 0x8E9901E8
	CheatID    uint32 = 0x6AABEBA1
	CheatName         = "Growify"
)

// Header returns the first line written to the log file
func Header() string {
	return "Growify v" + Version
}

// Config holds the director's collaborators.
type Config struct {
	App    city.App
	Dialog city.Dialog
	Text   *i18n.Catalog
	Logger *zap.Logger
	// Names resolves building names for debug logging. Optional.
	Names city.StringTable
}

// Director handles host messages for the Growify cheat.
type Director struct {
	app    city.App
	dialog city.Dialog
	text   *i18n.Catalog
	logger *zap.Logger
	names  city.StringTable
}

// New creates a director. A nil logger discards output; a nil catalog uses English.
func New(cfg Config) *Director {
	d := &Director{
		app:    cfg.App,
		dialog: cfg.Dialog,
		text:   cfg.Text,
		logger: cfg.Logger,
		names:  cfg.Names,
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.text == nil {
		d.text = i18n.MustLoad(i18n.DefaultLanguage)
	}
	return d
}

// DirectorID returns the host registration ID
func (d *Director) DirectorID() uint32 {
	return DirectorID
}

// PostAppInit subscribes to the city lifecycle messages.
// Returns false if the message server refused a subscription.
func (d *Director) PostAppInit(server city.MessageServer) bool {
	if server == nil {
		d.logger.Error("Failed to subscribe to the required notifications.")
		return false
	}

	for _, messageType := range []uint32{city.MessagePostCityInit, city.MessagePreCityShutdown} {
		if !server.AddNotification(d, messageType) {
			d.logger.Error("Failed to subscribe to the required notifications.",
				zap.Uint32("message", messageType))
			return false
		}
	}

	return true
}

// DoMessage implements city.MessageTarget
func (d *Director) DoMessage(msg city.Message) bool {
	switch msg.Type {
	case city.MessageCheatIssued:
		d.ProcessCheat(msg)
	case city.MessagePostCityInit:
		d.postCityInit()
	case city.MessagePreCityShutdown:
		d.preCityShutdown()
	}

	return true
}

// postCityInit registers the cheat with the host
func (d *Director) postCityInit() {
	if d.app == nil {
		return
	}

	cheats := d.app.CheatCodeManager()
	if cheats == nil {
		d.logger.Error("The cheat manager pointer was null.")
		return
	}

	cheats.AddNotification(d)
	cheats.RegisterCheatCode(CheatID, CheatName)
}

// preCityShutdown unregisters the cheat
func (d *Director) preCityShutdown() {
	if d.app == nil {
		return
	}

	cheats := d.app.CheatCodeManager()
	if cheats == nil {
		return
	}

	cheats.UnregisterCheatCode(CheatID)
	cheats.RemoveNotification(d)
}

// ProcessCheat parses a Growify cheat and converts the matching lots.
// Parse errors are shown to the player and nothing in the city changes.
// Returns the pass result and true if a conversion pass ran.
func (d *Director) ProcessCheat(msg city.Message) (growify.Result, bool) {
	if msg.Data1 != CheatID {
		return growify.Result{}, false
	}

	req, err := growify.Parse(msg.Text)
	if err != nil {
		d.logger.Debug("Rejected cheat", zap.String("cheat", msg.Text), zap.Error(err))
		d.showMessage(d.parseErrorMessage(err))
		return growify.Result{}, false
	}

	if d.app == nil {
		return growify.Result{}, false
	}

	c := d.app.City()
	if c == nil {
		d.logger.Warn("Growify issued with no city loaded")
		return growify.Result{}, false
	}

	lots := c.LotManager()
	occupants := c.OccupantManager()
	zones := c.ZoneManager()
	if lots == nil || occupants == nil || zones == nil {
		d.logger.Error("The city managers are unavailable.",
			zap.Bool("lots", lots != nil),
			zap.Bool("occupants", occupants != nil),
			zap.Bool("zones", zones != nil))
		return growify.Result{}, false
	}

	grid := zones.ZoneGrid()
	if grid == nil {
		d.logger.Error("The zone grid is unavailable.")
		return growify.Result{}, false
	}

	pass := growify.Pass{
		Lots:      lots,
		Occupants: occupants,
		Grid:      grid,
		Names:     d.names,
		Logger:    d.logger,
	}
	result := pass.Run(req)

	d.logger.Info("Growify finished",
		zap.Stringer("category", req.Category),
		zap.Stringer("zone", req.TargetCode),
		zap.Bool("historical", req.MakeHistorical),
		zap.Int("converted", result.Converted),
		zap.Int("skipped", result.Skipped))

	d.showConvertedLotCount(result)

	return result, true
}

// parseErrorMessage returns the translated message for a parse error
func (d *Director) parseErrorMessage(err error) string {
	switch {
	case errors.Is(err, growify.ErrInvalidCategory):
		return d.text.Get("INVALID_ZONE_TYPE")
	case errors.Is(err, growify.ErrInvalidDensity):
		return d.text.Get("INVALID_ZONE_DENSITY")
	case errors.Is(err, growify.ErrInvalidHistoricalFlag):
		return d.text.Get("INVALID_MAKE_HISTORICAL")
	case errors.Is(err, growify.ErrInvalidCombination):
		return d.text.Get("INVALID_COMBINATION")
	default:
		return d.text.Get("USAGE")
	}
}

// categoryName returns the translated lot adjective for a category, or ""
func (d *Director) categoryName(c growify.ZoneCategory) string {
	switch c {
	case growify.Residential:
		return d.text.Get("ZONE_NAME_RESIDENTIAL")
	case growify.Commercial:
		return d.text.Get("ZONE_NAME_COMMERCIAL")
	case growify.Agriculture:
		return d.text.Get("ZONE_NAME_AGRICULTURAL")
	case growify.Industrial:
		return d.text.Get("ZONE_NAME_INDUSTRIAL")
	default:
		return ""
	}
}

// showConvertedLotCount reports the pass result to the player
func (d *Director) showConvertedLotCount(result growify.Result) {
	name := d.categoryName(result.Category)
	if name == "" {
		return
	}
	d.showMessage(fmt.Sprintf(d.text.Get("GROWIFIED_LOTS"), result.Converted, name))
}

func (d *Director) showMessage(message string) {
	if d.dialog == nil {
		d.logger.Warn("No dialog to show message", zap.String("message", message))
		return
	}
	d.dialog.ShowDialog(message, d.text.Get("CAPTION"))
}
