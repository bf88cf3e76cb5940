package models

// University mirrors the platform's university resource. Branding carries
// the institution's palette used to derive the web theme.
type University struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	LogoURL  string          `json:"logo_url,omitempty"`
	Branding *BrandingConfig `json:"branding,omitempty"`
}

// BrandingConfig holds a university's light and dark palettes.
type BrandingConfig struct {
	Light BrandingPalette `json:"light"`
	Dark  BrandingPalette `json:"dark"`
}

// BrandingPalette is a set of hex colors, "#RRGGBB" form.
type BrandingPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}
