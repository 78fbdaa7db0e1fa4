package director

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"growify/pkg/engine/world"
	"growify/pkg/game/city"
	"growify/pkg/game/growify"
	"growify/pkg/game/sim"
)

type shownDialog struct {
	Message string
	Caption string
}

// recordingDialog keeps every dialog shown
type recordingDialog struct {
	shown []shownDialog
}

func (r *recordingDialog) ShowDialog(message, caption string) {
	r.shown = append(r.shown, shownDialog{Message: message, Caption: caption})
}

// testCity has two plopped shops, one plopped mill and a zoned house
func testCity() *sim.City {
	c := sim.NewEmptyCity(10, 10)
	add := func(name string, purpose city.BuildingPurpose, r world.Rect, zone city.ZoneType) {
		b := &sim.Building{
			Name:         name,
			OccupantType: city.OccupantTypeBuilding,
			Props:        sim.Properties{city.PropertyBuildingPurpose: sim.Uint8Value(uint8(purpose))},
		}
		c.AddBuilding(b, &r, zone)
	}
	add("Shop A", city.PurposeServices, world.NewRect(0, 0, 1, 1), city.ZonePlopped)
	add("Shop B", city.PurposeOffice, world.NewRect(3, 0, 3, 0), city.ZonePlopped)
	add("Mill", city.PurposeProcessing, world.NewRect(5, 5, 7, 7), city.ZonePlopped)
	add("House", city.PurposeResidence, world.NewRect(0, 5, 0, 5), city.ZoneResidentialLow)
	return c
}

func newTestDirector(c *sim.City) (*Director, *sim.App, *recordingDialog, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := sim.NewApp(c)
	dialog := &recordingDialog{}
	d := New(Config{App: app, Dialog: dialog, Logger: zap.New(core), Names: c})
	if !d.PostAppInit(app.MessageServer()) {
		panic("PostAppInit failed")
	}
	app.InitCity()
	return d, app, dialog, logs
}

func TestHeader(t *testing.T) {
	if got := Header(); got != "Growify v1.0.0" {
		t.Errorf("Header() = %q, want %q", got, "Growify v1.0.0")
	}
}

func TestLifecycle(t *testing.T) {
	c := testCity()
	d, app, _, _ := newTestDirector(c)

	if d.DirectorID() != 0x8E9901E8 {
		t.Errorf("DirectorID() = %#x", d.DirectorID())
	}
	if !app.Cheats().IsRegistered(CheatID) {
		t.Fatal("cheat not registered after city init")
	}

	app.ShutdownCity()
	if app.Cheats().IsRegistered(CheatID) {
		t.Error("cheat still registered after city shutdown")
	}
	if app.SubmitCheat("Growify Commercial Low") {
		t.Error("SubmitCheat() = true after shutdown")
	}
}

func TestPostAppInit_NilServer(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	d := New(Config{Logger: zap.New(core)})
	if d.PostAppInit(nil) {
		t.Error("PostAppInit(nil) = true")
	}
	if logs.FilterMessage("Failed to subscribe to the required notifications.").Len() != 1 {
		t.Error("missing subscription error log")
	}
}

func TestSubmitCheat_Commercial(t *testing.T) {
	c := testCity()
	_, app, dialog, _ := newTestDirector(c)

	if !app.SubmitCheat("growify c m") {
		t.Fatal("SubmitCheat() = false")
	}

	want := []shownDialog{{Message: "Growified 2 commercial lot(s).", Caption: "Growify"}}
	if diff := cmp.Diff(want, dialog.shown); diff != "" {
		t.Errorf("dialogs mismatch (-want +got):\n%s", diff)
	}

	shopA := c.Buildings()[0].Lot()
	if shopA.ZoneType() != city.ZoneCommercialMedium {
		t.Errorf("Shop A zone = %v, want commercial-medium", shopA.ZoneType())
	}
	if !shopA.Historical() {
		t.Error("Shop A not historical")
	}
	if got := c.Grid().GetTractValue(1, 1); got != int8(city.ZoneCommercialMedium) {
		t.Errorf("tract (1,1) = %d, want %d", got, city.ZoneCommercialMedium)
	}
	if c.Buildings()[2].Lot().ZoneType() != city.ZonePlopped {
		t.Error("Mill converted by a commercial cheat")
	}
}

func TestSubmitCheat_NotHistorical(t *testing.T) {
	c := testCity()
	_, app, dialog, _ := newTestDirector(c)

	app.SubmitCheat("Growify Industrial High false")

	mill := c.Buildings()[2].Lot()
	if mill.ZoneType() != city.ZoneIndustrialHigh {
		t.Errorf("Mill zone = %v, want industrial-high", mill.ZoneType())
	}
	if mill.Historical() {
		t.Error("Mill marked historical")
	}
	if len(dialog.shown) != 1 || dialog.shown[0].Message != "Growified 1 industrial lot(s)." {
		t.Errorf("dialogs = %+v", dialog.shown)
	}
}

func TestSubmitCheat_NoMatches(t *testing.T) {
	c := testCity()
	_, app, dialog, _ := newTestDirector(c)

	app.SubmitCheat("Growify Agriculture")

	if len(dialog.shown) != 1 || dialog.shown[0].Message != "Growified 0 agricultural lot(s)." {
		t.Errorf("dialogs = %+v", dialog.shown)
	}
}

func TestSubmitCheat_ParseErrors(t *testing.T) {
	tests := []struct {
		cheat string
		want  string
	}{
		{"Growify", "Usage: Growify <zone type> <zone density> [make historical - optional, defaults to true]"},
		{"Growify Residential", "Usage: Growify <zone type> <zone density> [make historical - optional, defaults to true]"},
		{"Growify Xeno Low", "The zone type value must be one of: Residential, Commercial, Agriculture or Industrial."},
		{"Growify Residential Tiny", "The zone density value must be one of: Low, Medium or High."},
		{"Growify Residential Low maybe", "The make historical value must either true or false."},
		{"Growify Industrial Low", "The zone type and density combination was invalid."},
	}
	for _, tt := range tests {
		t.Run(tt.cheat, func(t *testing.T) {
			c := testCity()
			_, app, dialog, _ := newTestDirector(c)

			app.SubmitCheat(tt.cheat)

			want := []shownDialog{{Message: tt.want, Caption: "Growify"}}
			if diff := cmp.Diff(want, dialog.shown); diff != "" {
				t.Errorf("dialogs mismatch (-want +got):\n%s", diff)
			}
			if got := c.Grid().CountValue(int8(city.ZonePlopped)); got != 4+1+9 {
				t.Errorf("%d plopped tracts after rejected cheat, want 14", got)
			}
		})
	}
}

func TestProcessCheat_OtherCheatID(t *testing.T) {
	c := testCity()
	d, _, dialog, _ := newTestDirector(c)

	if _, ran := d.ProcessCheat(city.Message{Type: city.MessageCheatIssued, Data1: 1, Text: "Growify c l"}); ran {
		t.Error("ProcessCheat() ran for another cheat ID")
	}
	if len(dialog.shown) != 0 {
		t.Errorf("dialogs = %+v, want none", dialog.shown)
	}
}

func TestProcessCheat_NoCity(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dialog := &recordingDialog{}
	d := New(Config{App: sim.NewApp(nil), Dialog: dialog, Logger: zap.New(core)})

	_, ran := d.ProcessCheat(city.Message{Type: city.MessageCheatIssued, Data1: CheatID, Text: "Growify c l"})
	if ran {
		t.Error("ProcessCheat() ran without a city")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Error("missing warning for no city")
	}
	if len(dialog.shown) != 0 {
		t.Errorf("dialogs = %+v, want none", dialog.shown)
	}
}

func TestProcessCheat_Result(t *testing.T) {
	c := testCity()
	d, _, _, logs := newTestDirector(c)

	result, ran := d.ProcessCheat(city.Message{Type: city.MessageCheatIssued, Data1: CheatID, Text: "Growify R H"})
	if !ran {
		t.Fatal("ProcessCheat() did not run")
	}
	want := growify.Result{Category: growify.Residential, Converted: 0, Skipped: 1}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if logs.FilterMessage("Growify finished").Len() != 1 {
		t.Error("missing summary log entry")
	}
}

func TestShowMessage_NoDialog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := New(Config{App: sim.NewApp(testCity()), Logger: zap.New(core)})

	d.ProcessCheat(city.Message{Type: city.MessageCheatIssued, Data1: CheatID, Text: "Growify"})
	if logs.FilterMessage("No dialog to show message").Len() != 1 {
		t.Error("message not logged without a dialog")
	}
}
