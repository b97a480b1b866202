package service

import (
	"testing"

	"banner-buddy/internal/features/theming/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService_Resolve(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		svc := NewThemeService(nil)

		theme := svc.Resolve(domain.Layers{})

		assert.Equal(t, domain.ModeSticky, theme.Mode)
		assert.Equal(t, domain.DefaultPresetName, theme.Tokens.Preset)
		assert.Equal(t, domain.DefaultInfoColor, theme.VariantColors.Info)
		assert.Contains(t, theme.CSSVariables, "--bannerbuddy-info-bg: "+domain.DefaultInfoColor)
	})

	t.Run("HostValuesAreDefaults", func(t *testing.T) {
		svc := NewThemeService(map[string]any{
			domain.FieldMode:        "ticker",
			domain.FieldInfoColor:   "#ffcc00",
			domain.FieldStickyWidth: "70",
		})

		theme := svc.Resolve(domain.Layers{
			Individual: domain.Config{domain.FieldStickyWidth: "50%"},
		})

		assert.Equal(t, domain.ModeTicker, theme.Mode)
		assert.Equal(t, "#ffcc00", theme.VariantColors.Info)
		assert.Equal(t, "50%", theme.Tokens.StickyWidth)
		assert.Contains(t, theme.CSSVariables, "--bannerbuddy-info-text: "+domain.DarkText)
	})

	t.Run("GroupedWins", func(t *testing.T) {
		svc := NewThemeService(map[string]any{domain.FieldMode: "ticker"})

		theme := svc.Resolve(domain.Layers{
			Grouped:    domain.Config{domain.FieldMode: "Sticky", domain.FieldTokenPreset: "Compact"},
			Individual: domain.Config{domain.FieldTokenPreset: "broadcast"},
		})

		assert.Equal(t, domain.ModeSticky, theme.Mode)
		assert.Equal(t, "compact", theme.Tokens.Preset)
		assert.Equal(t, domain.GetPreset("compact").StickyWidth, theme.Tokens.StickyWidth)
	})

	t.Run("DoesNotMutateHostValues", func(t *testing.T) {
		host := map[string]any{domain.FieldErrorColor: "#000000"}
		svc := NewThemeService(host)

		svc.Resolve(domain.Layers{Individual: domain.Config{domain.FieldErrorColor: "#111111"}})

		assert.Equal(t, "#000000", host[domain.FieldErrorColor])
	})
}

func TestThemeService_Presets(t *testing.T) {
	presets := NewThemeService(nil).Presets()

	require.Len(t, presets, len(domain.PresetNames()))
	assert.Equal(t, domain.DefaultPresetName, presets[0].Name)
}

func TestThemeService_Contrast(t *testing.T) {
	svc := NewThemeService(nil)

	tests := []struct {
		color string
		hex   string
		text  string
	}{
		{color: "#ffcc00", hex: "#ffcc00", text: domain.DarkText},
		{color: "#fff", hex: "#ffffff", text: domain.DarkText},
		{color: "#0f172a", hex: "#0f172a", text: domain.LightText},
		{color: "rgb(255, 255, 255)", hex: "", text: domain.LightText},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			got := svc.Contrast(tt.color)
			assert.Equal(t, tt.hex, got.Hex)
			assert.Equal(t, tt.text, got.TextColor)
			assert.Equal(t, tt.hex != "", got.IsHexColor)
		})
	}
}
