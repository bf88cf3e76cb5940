package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
)

func TestHexToHSLPureRed(t *testing.T) {
	hsl, err := HexToHSL("#FF0000")
	require.NoError(t, err)

	assert.Equal(t, 0.0, hsl.H)
	assert.Equal(t, 100.0, hsl.S)
	assert.Equal(t, 50.0, hsl.L)
	assert.Equal(t, "0 100% 50%", hsl.String())
}

func TestHexToHSLKnownColors(t *testing.T) {
	cases := []struct {
		hex     string
		h, s, l float64
	}{
		{"#00FF00", 120, 100, 50},
		{"#0000FF", 240, 100, 50},
		{"#FFFFFF", 0, 0, 100},
		{"#000000", 0, 0, 0},
		{"#808080", 0, 0, 50.2}, // gray: the achromatic guard kicks in
	}

	for _, tc := range cases {
		hsl, err := HexToHSL(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.InDelta(t, tc.h, hsl.H, 0.5, "%s hue", tc.hex)
		assert.InDelta(t, tc.s, hsl.S, 0.5, "%s saturation", tc.hex)
		assert.InDelta(t, tc.l, hsl.L, 0.5, "%s lightness", tc.hex)
	}
}

func TestHexToHSLAcceptsShortAndBareForms(t *testing.T) {
	long, err := HexToHSL("#FF0000")
	require.NoError(t, err)

	short, err := HexToHSL("#F00")
	require.NoError(t, err)
	assert.Equal(t, long, short)

	bare, err := HexToHSL("ff0000")
	require.NoError(t, err)
	assert.Equal(t, long, bare)
}

func TestHexToHSLRejectsGarbage(t *testing.T) {
	for _, hex := range []string{"", "#12", "#12345", "#GGGGGG", "notacolor"} {
		_, err := HexToHSL(hex)
		assert.Error(t, err, hex)
	}
}

func brandedUniversity() *models.University {
	return &models.University{
		ID:   1,
		Name: "Acme University",
		Slug: "acme",
		Branding: &models.BrandingConfig{
			Light: models.BrandingPalette{
				Primary:    "#FF0000",
				Secondary:  "#64748B",
				Accent:     "#F59E0B",
				Background: "#F8FAFC",
				Surface:    "#FFFFFF",
				Text:       "#0F172A",
			},
			Dark: models.BrandingPalette{
				Primary:    "#00FF00",
				Secondary:  "#94A3B8",
				Accent:     "#FBBF24",
				Background: "#0F172A",
				Surface:    "#1E293B",
				Text:       "#F8FAFC",
			},
		},
	}
}

func TestResolveUsesUniversityPalette(t *testing.T) {
	u := brandedUniversity()

	vars := Resolve(u, ModeLight, models.RoleAlumni, false)
	assert.Equal(t, "0 100% 50%", vars["--color-primary"])

	vars = Resolve(u, ModeDark, models.RoleAlumni, false)
	assert.Equal(t, "120 100% 50%", vars["--color-primary"])
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	u := brandedUniversity()
	defaults := DefaultVariables(ModeLight)

	// Public routes never carry institution branding.
	assert.Equal(t, defaults, Resolve(u, ModeLight, models.RoleAlumni, true))

	// Super-admin sessions always see the platform theme.
	assert.Equal(t, defaults, Resolve(u, ModeLight, models.RoleSuperAdmin, false))

	// No configured branding means defaults too.
	plain := &models.University{ID: 2, Name: "Plain U", Slug: "plain"}
	assert.Equal(t, defaults, Resolve(plain, ModeLight, models.RoleAlumni, false))
	assert.Equal(t, defaults, Resolve(nil, ModeLight, models.RoleAlumni, false))
}

func TestVariablesBadColorFallsBackPerSlot(t *testing.T) {
	palette := DefaultPalette(ModeLight)
	palette.Primary = "#NOTHEX"

	vars := Variables(palette, ModeLight)
	defaults := DefaultVariables(ModeLight)

	assert.Equal(t, defaults["--color-primary"], vars["--color-primary"])
	assert.Equal(t, defaults["--color-text"], vars["--color-text"])
}

func TestStylesheetIsDeterministic(t *testing.T) {
	vars := DefaultVariables(ModeLight)

	first := Stylesheet(vars)
	second := Stylesheet(vars)
	assert.Equal(t, first, second)

	assert.Contains(t, first, ":root {")
	assert.Contains(t, first, "--color-primary: ")
	assert.Contains(t, first, ";\n}")

	// Keys come out sorted.
	accent := "--color-accent"
	text := "--color-text"
	assert.Less(t, indexOf(first, accent), indexOf(first, text))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
