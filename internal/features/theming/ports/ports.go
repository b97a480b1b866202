package ports

import (
	"banner-buddy/internal/features/theming/domain"
)

// Theme is the fully resolved theme of a configuration.
type Theme struct {
	Mode          domain.Mode             `json:"mode"`
	Tokens        domain.ResolvedTokenSet `json:"tokens"`
	VariantColors domain.VariantColors    `json:"variantColors"`
	CSSVariables  string                  `json:"cssVariables"`
}

// Contrast describes the readable text color for a background.
type Contrast struct {
	Color      string `json:"color"`
	Hex        string `json:"hex,omitempty"`
	TextColor  string `json:"textColor"`
	IsHexColor bool   `json:"isHexColor"`
}

// ThemeService defines the primary port for theme resolution.
type ThemeService interface {
	Resolve(layers domain.Layers) Theme
	Presets() []domain.TokenPreset
	Contrast(color string) Contrast
}
