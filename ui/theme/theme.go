package theme

// Palette and style setup for the capture window. OSD messages are colored
// by severity; StatusColor is the only place that mapping lives.

import (
	"github.com/soocke/emushot/domain/screenshot"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff"
	ColorPrimary   = "#2563eb"
	ColorWarning   = "#d97706"
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleStateLabel    = "state.TLabel"
)

// StatusColor maps a notification level to its text color.
func StatusColor(level screenshot.Level) string {
	switch level {
	case screenshot.LevelWarning:
		return ColorWarning
	case screenshot.LevelError:
		return ColorDanger
	default:
		return ColorText
	}
}

// InitStyles activates the base theme and configures semantic widget styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
