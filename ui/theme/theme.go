package theme

// Tk styles for the capture window. SetDark activates the azure theme in the
// chosen mode and configures the semantic styles used by the media surface.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb"
	ColorSurface   = "#ffffff"
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb"
	ColorDanger    = "#dc2626"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
	ColorVideoBg   = "#000000"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
	dark = PaletteSnapshot{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// PaletteFor returns the colors of the dark or light mode.
func PaletteFor(on bool) PaletteSnapshot {
	if on {
		return dark
	}
	return light
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot { return PaletteFor(darkMode) }

// style names used with Style("access.TButton") etc.
const (
	StyleAccessButton = "access.TButton"
	StyleErrorLabel   = "error.TLabel"
	StyleLoadingLabel = "loading.TLabel"
	StyleVideoLabel   = "video.TLabel"
	StyleStatsLabel   = "stats.TLabel"
)

var darkMode bool

// themeName maps the mode to the bundled azure variant.
func themeName(on bool) string {
	if on {
		return "azure dark"
	}
	return "azure light"
}

// SetDark switches mode and (re)applies styles. Returns the new mode.
func SetDark(on bool) bool {
	darkMode = on
	applyStyles(themeName(on), CurrentPalette())
	return darkMode
}

func applyStyles(name string, p PaletteSnapshot) {
	_ = ActivateTheme(name)
	App.Configure(Background(p.AppBg))

	StyleConfigure(StyleAccessButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("6p 4p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleErrorLabel,
		Foreground(p.Danger),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleLoadingLabel,
		Foreground(p.TextMuted),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleVideoLabel,
		Background(ColorVideoBg),
		Borderwidth(1),
		Relief("sunken"),
	)
	StyleConfigure(StyleStatsLabel,
		Foreground(p.Text),
		Background(p.Surface),
		Bordercolor(p.Border),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
