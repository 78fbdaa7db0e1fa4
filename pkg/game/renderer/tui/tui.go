// Package tui renders dialogs and the zone map to a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"growify/pkg/engine/terminal"
	"growify/pkg/engine/world"
	"growify/pkg/game/city"
	"growify/pkg/game/i18n"
	"growify/pkg/game/renderer"
)

// Zone map icons
const (
	IconUnzoned = "·"
	IconLow     = "░"
	IconMedium  = "▒"
	IconHigh    = "▓"
	IconFarm    = "≈"
	IconPlopped = "■"
	IconSpecial = "#"
)

// Dialog width limits
const (
	DialogMinWidth = 24
	DialogMaxWidth = 72
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	text *i18n.Catalog

	colorCaption     color.Style
	colorMessage     color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorResidential color.Style
	colorCommercial  color.Style
	colorAgriculture color.Style
	colorIndustrial  color.Style
	colorPlopped     color.Style
	colorSpecial     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out, or stdout when out is nil
func New(out io.Writer, text *i18n.Catalog) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, text: text}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCaption = color.Style{color.FgCyan, color.OpBold}
	t.colorMessage = color.Style{color.FgWhite}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorResidential = color.Style{color.FgGreen}
	t.colorCommercial = color.Style{color.FgBlue, color.OpBold}
	t.colorAgriculture = color.Style{color.FgYellow}
	t.colorIndustrial = color.Style{color.FgYellow, color.OpBold}
	t.colorPlopped = color.Style{color.FgGray, color.OpBold}
	t.colorSpecial = color.Style{color.FgRed}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCaption:
		return t.colorCaption.Sprint(text)
	case renderer.StyleMessage:
		return t.colorMessage.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleResidential:
		return t.colorResidential.Sprint(text)
	case renderer.StyleCommercial:
		return t.colorCommercial.Sprint(text)
	case renderer.StyleAgriculture:
		return t.colorAgriculture.Sprint(text)
	case renderer.StyleIndustrial:
		return t.colorIndustrial.Sprint(text)
	case renderer.StylePlopped:
		return t.colorPlopped.Sprint(text)
	case renderer.StyleSpecial:
		return t.colorSpecial.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{KEY} is translated and ACTION{Word} highlights the word's first letter.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = t.translate(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// translate looks up a key found in markup
func (t *TUIRenderer) translate(key string) string {
	if t.text == nil {
		return key
	}
	return t.text.Get(key)
}

// ShowDialog draws a boxed message with its caption
func (t *TUIRenderer) ShowDialog(message, caption string) {
	fmt.Fprint(t.out, t.dialogBox(message, caption, dialogWidth()))
}

// dialogBox lays out a dialog with the given inner width: caption, wrapped
// message and a centred OK button inside a rounded border.
func (t *TUIRenderer) dialogBox(message, caption string, width int) string {
	lines := make([]string, 0, 4)
	lines = append(lines, t.colorCaption.Sprint(caption), "")
	for _, line := range WrapText(message, width) {
		lines = append(lines, t.colorMessage.Sprint(line))
	}
	lines = append(lines, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, t.colorActionShort.Sprint("[ OK ]")))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width + 2)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

// dialogWidth fits the dialog to the terminal
func dialogWidth() int {
	width := terminal.GetWidth() - 4
	if width > DialogMaxWidth {
		width = DialogMaxWidth
	}
	if width < DialogMinWidth {
		width = DialogMinWidth
	}
	return width
}

// WrapText breaks text into lines of at most width cells, splitting on spaces.
// Words longer than width are cut.
func WrapText(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}

// RenderZoneMap draws the grid one z row per line
func (t *TUIRenderer) RenderZoneMap(grid *world.Grid) {
	if grid == nil {
		return
	}

	var b strings.Builder
	for z := 0; z < grid.Depth(); z++ {
		for x := 0; x < grid.Width(); x++ {
			b.WriteString(t.RenderTract(city.ZoneType(grid.GetTractValue(x, z))))
		}
		b.WriteString("\n")
	}
	b.WriteString(t.Legend())
	b.WriteString("\n")

	fmt.Fprint(t.out, b.String())
}

// RenderTract returns the styled icon for a tract's zone
func (t *TUIRenderer) RenderTract(zone city.ZoneType) string {
	switch zone {
	case city.ZoneNone:
		return t.colorSubtle.Sprint(IconUnzoned)
	case city.ZoneResidentialLow:
		return t.colorResidential.Sprint(IconLow)
	case city.ZoneResidentialMedium:
		return t.colorResidential.Sprint(IconMedium)
	case city.ZoneResidentialHigh:
		return t.colorResidential.Sprint(IconHigh)
	case city.ZoneCommercialLow:
		return t.colorCommercial.Sprint(IconLow)
	case city.ZoneCommercialMedium:
		return t.colorCommercial.Sprint(IconMedium)
	case city.ZoneCommercialHigh:
		return t.colorCommercial.Sprint(IconHigh)
	case city.ZoneAgriculture:
		return t.colorAgriculture.Sprint(IconFarm)
	case city.ZoneIndustrialMedium:
		return t.colorIndustrial.Sprint(IconMedium)
	case city.ZoneIndustrialHigh:
		return t.colorIndustrial.Sprint(IconHigh)
	case city.ZonePlopped:
		return t.colorPlopped.Sprint(IconPlopped)
	default:
		return t.colorSpecial.Sprint(IconSpecial)
	}
}

// Legend explains the zone map icons
func (t *TUIRenderer) Legend() string {
	return t.FormatText("GT{MAP_LEGEND}: ") + strings.Join([]string{
		t.colorResidential.Sprint(IconLow+IconMedium+IconHigh) + " " + t.FormatText("ACTION{Residential}"),
		t.colorCommercial.Sprint(IconLow+IconMedium+IconHigh) + " " + t.FormatText("ACTION{Commercial}"),
		t.colorAgriculture.Sprint(IconFarm) + " " + t.FormatText("ACTION{Agriculture}"),
		t.colorIndustrial.Sprint(IconMedium+IconHigh) + " " + t.FormatText("ACTION{Industrial}"),
		t.colorPlopped.Sprint(IconPlopped) + " plopped",
		t.colorSpecial.Sprint(IconSpecial) + " other",
	}, "  ")
}
