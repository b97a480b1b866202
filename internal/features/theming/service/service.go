package service

import (
	"maps"

	"banner-buddy/internal/features/theming/domain"
	"banner-buddy/internal/features/theming/ports"
)

// ThemeServiceImpl implements ports.ThemeService.
// Host-level individual values act as defaults below any per-request values.
type ThemeServiceImpl struct {
	individual domain.Config
}

// NewThemeService creates a new ThemeServiceImpl.
func NewThemeService(individual map[string]any) *ThemeServiceImpl {
	return &ThemeServiceImpl{
		individual: domain.Config(individual),
	}
}

// Resolve computes tokens, variant colors and the CSS declaration string.
func (s *ThemeServiceImpl) Resolve(layers domain.Layers) ports.Theme {
	layers.Individual = s.merge(layers.Individual)

	tokens := domain.ComputeTokens(layers)
	colors := domain.ComputeVariantColors(layers)

	return ports.Theme{
		Mode:          domain.ResolveMode(layers),
		Tokens:        tokens,
		VariantColors: colors,
		CSSVariables:  domain.CSSVariables(tokens, colors),
	}
}

func (s *ThemeServiceImpl) merge(values domain.Config) domain.Config {
	if len(s.individual) == 0 {
		return values
	}
	merged := maps.Clone(s.individual)
	maps.Copy(merged, values)
	return merged
}

// Presets returns every registered preset, default first.
func (s *ThemeServiceImpl) Presets() []domain.TokenPreset {
	names := domain.PresetNames()
	out := make([]domain.TokenPreset, 0, len(names))
	for _, name := range names {
		out = append(out, domain.GetPreset(name))
	}
	return out
}

// Contrast picks the readable text color for a background color.
func (s *ThemeServiceImpl) Contrast(color string) ports.Contrast {
	hex := domain.ExpandHex(color)
	return ports.Contrast{
		Color:      color,
		Hex:        hex,
		TextColor:  domain.ReadableTextColor(color),
		IsHexColor: hex != "",
	}
}
