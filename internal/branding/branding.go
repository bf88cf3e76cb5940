// Package branding turns a university's configured hex palette into the CSS
// custom properties the web layer injects. Public routes and super-admin
// sessions always get the platform defaults so no institution can restyle
// them.
package branding

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Mode selects which palette of a branding config applies.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// HSL is a color as hue (degrees), saturation and lightness (percent).
type HSL struct {
	H float64
	S float64
	L float64
}

// String renders the space-separated triplet CSS hsl() custom properties use.
func (c HSL) String() string {
	return fmt.Sprintf("%s %s%% %s%%", trimFloat(c.H), trimFloat(c.S), trimFloat(c.L))
}

func trimFloat(f float64) string {
	// one decimal is plenty for a color channel
	return strconv.FormatFloat(round1(f), 'f', -1, 64)
}

func round1(f float64) float64 {
	if f < 0 {
		return 0
	}
	return float64(int(f*10+0.5)) / 10
}

// HexToHSL converts "#RRGGBB" (or short "#RGB") to HSL. The leading hash is
// optional and case does not matter.
func HexToHSL(hex string) (HSL, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return HSL{}, err
	}

	max := maxOf(r, g, b)
	min := minOf(r, g, b)
	l := (max + min) / 2

	// Achromatic: equal channels have no hue and no saturation.
	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}, nil
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}, nil
}

func parseHex(hex string) (r, g, b float64, err error) {
	raw := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}

	value, parseErr := strconv.ParseUint(raw, 16, 32)
	if parseErr != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}

	r = float64(value>>16&0xFF) / 255
	g = float64(value>>8&0xFF) / 255
	b = float64(value&0xFF) / 255
	return r, g, b, nil
}

func maxOf(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minOf(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Platform default palettes, applied wherever institution branding must not.
var (
	defaultLight = models.BrandingPalette{
		Primary:    "#1E40AF",
		Secondary:  "#64748B",
		Accent:     "#F59E0B",
		Background: "#F8FAFC",
		Surface:    "#FFFFFF",
		Text:       "#0F172A",
	}
	defaultDark = models.BrandingPalette{
		Primary:    "#3B82F6",
		Secondary:  "#94A3B8",
		Accent:     "#FBBF24",
		Background: "#0F172A",
		Surface:    "#1E293B",
		Text:       "#F8FAFC",
	}
)

// DefaultPalette returns the platform palette for a mode.
func DefaultPalette(mode Mode) models.BrandingPalette {
	if mode == ModeDark {
		return defaultDark
	}
	return defaultLight
}

// Variables derives the CSS custom-property set from a palette. A color
// that is empty or fails to parse falls back to the platform default for
// that slot, so one bad config value never blanks the theme.
func Variables(palette models.BrandingPalette, mode Mode) map[string]string {
	fallback := DefaultPalette(mode)

	slot := func(hex, fallbackHex string) string {
		if hex != "" {
			if hsl, err := HexToHSL(hex); err == nil {
				return hsl.String()
			}
		}
		hsl, _ := HexToHSL(fallbackHex)
		return hsl.String()
	}

	return map[string]string{
		"--color-primary":    slot(palette.Primary, fallback.Primary),
		"--color-secondary":  slot(palette.Secondary, fallback.Secondary),
		"--color-accent":     slot(palette.Accent, fallback.Accent),
		"--color-background": slot(palette.Background, fallback.Background),
		"--color-surface":    slot(palette.Surface, fallback.Surface),
		"--color-text":       slot(palette.Text, fallback.Text),
	}
}

// DefaultVariables returns the platform theme for a mode.
func DefaultVariables(mode Mode) map[string]string {
	return Variables(DefaultPalette(mode), mode)
}

// Resolve picks the variable set for a page view: the university palette for
// signed-in institution pages, the platform defaults on public routes, for
// super-admin sessions and whenever no branding is configured.
func Resolve(u *models.University, mode Mode, role models.Role, publicRoute bool) map[string]string {
	if publicRoute || role == models.RoleSuperAdmin || u == nil || u.Branding == nil {
		return DefaultVariables(mode)
	}

	palette := u.Branding.Light
	if mode == ModeDark {
		palette = u.Branding.Dark
	}
	return Variables(palette, mode)
}

// Stylesheet renders a deterministic :root block from a variable set.
func Stylesheet(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, k := range keys {
		sb.WriteString("  ")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(vars[k])
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
