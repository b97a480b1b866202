package domain

import (
	"sort"
	"strings"
)

// DefaultPresetName is used when no preset or an unknown preset is requested.
const DefaultPresetName = "default"

// TokenPreset is a named bundle of default visual tokens.
type TokenPreset struct {
	Name                      string  `json:"name" yaml:"name"`
	StickyTopOffset           string  `json:"stickyTopOffset" yaml:"stickyTopOffset"`
	StickyWidth               string  `json:"stickyWidth" yaml:"stickyWidth"`
	StickyMaxWidth            string  `json:"stickyMaxWidth" yaml:"stickyMaxWidth"`
	StickyBorderRadius        string  `json:"stickyBorderRadius" yaml:"stickyBorderRadius"`
	StickyShadow              string  `json:"stickyShadow" yaml:"stickyShadow"`
	TickerBackgroundColor     string  `json:"tickerBackgroundColor" yaml:"tickerBackgroundColor"`
	TickerTextColor           string  `json:"tickerTextColor" yaml:"tickerTextColor"`
	TickerEdgeFadeColor       string  `json:"tickerEdgeFadeColor" yaml:"tickerEdgeFadeColor"`
	TickerEdgeFadeWidth       string  `json:"tickerEdgeFadeWidth" yaml:"tickerEdgeFadeWidth"`
	TickerItemBackgroundColor string  `json:"tickerItemBackgroundColor" yaml:"tickerItemBackgroundColor"`
	TickerItemBorderRadius    string  `json:"tickerItemBorderRadius" yaml:"tickerItemBorderRadius"`
	TickerItemGap             string  `json:"tickerItemGap" yaml:"tickerItemGap"`
	TickerPaddingY            string  `json:"tickerPaddingY" yaml:"tickerPaddingY"`
	TickerItemPadding         string  `json:"tickerItemPadding" yaml:"tickerItemPadding"`
	TickerShadow              string  `json:"tickerShadow" yaml:"tickerShadow"`
	TickerBorderRadius        string  `json:"tickerBorderRadius" yaml:"tickerBorderRadius"`
	TickerSpeedSeconds        float64 `json:"tickerSpeedSeconds" yaml:"tickerSpeedSeconds"`
}

var presets = map[string]TokenPreset{
	"default": {
		Name:                      "default",
		StickyTopOffset:           "10px",
		StickyWidth:               "90%",
		StickyMaxWidth:            "800px",
		StickyBorderRadius:        "20px",
		StickyShadow:              "0 4px 12px rgba(0, 0, 0, 0.15)",
		TickerBackgroundColor:     "#0f172a",
		TickerTextColor:           "#f8fafc",
		TickerEdgeFadeColor:       "#0f172a",
		TickerEdgeFadeWidth:       "4.5rem",
		TickerItemBackgroundColor: "rgba(255, 255, 255, 0.14)",
		TickerItemBorderRadius:    "999px",
		TickerItemGap:             "1.25rem",
		TickerPaddingY:            "0.65rem",
		TickerItemPadding:         "0.3rem 0.75rem",
		TickerShadow:              "0 8px 24px rgba(0, 0, 0, 0.2)",
		TickerBorderRadius:        "999px",
		TickerSpeedSeconds:        28,
	},
	"compact": {
		Name:                      "compact",
		StickyTopOffset:           "8px",
		StickyWidth:               "96%",
		StickyMaxWidth:            "900px",
		StickyBorderRadius:        "12px",
		StickyShadow:              "0 4px 10px rgba(0, 0, 0, 0.12)",
		TickerBackgroundColor:     "#111827",
		TickerTextColor:           "#e5e7eb",
		TickerEdgeFadeColor:       "#111827",
		TickerEdgeFadeWidth:       "3rem",
		TickerItemBackgroundColor: "rgba(255, 255, 255, 0.1)",
		TickerItemBorderRadius:    "10px",
		TickerItemGap:             "0.75rem",
		TickerPaddingY:            "0.45rem",
		TickerItemPadding:         "0.2rem 0.5rem",
		TickerShadow:              "0 6px 18px rgba(0, 0, 0, 0.16)",
		TickerBorderRadius:        "12px",
		TickerSpeedSeconds:        24,
	},
	"broadcast": {
		Name:                      "broadcast",
		StickyTopOffset:           "14px",
		StickyWidth:               "100%",
		StickyMaxWidth:            "1200px",
		StickyBorderRadius:        "24px",
		StickyShadow:              "0 10px 28px rgba(0, 0, 0, 0.22)",
		TickerBackgroundColor:     "#020617",
		TickerTextColor:           "#ffffff",
		TickerEdgeFadeColor:       "#020617",
		TickerEdgeFadeWidth:       "6rem",
		TickerItemBackgroundColor: "rgba(255, 255, 255, 0.18)",
		TickerItemBorderRadius:    "999px",
		TickerItemGap:             "1.6rem",
		TickerPaddingY:            "0.75rem",
		TickerItemPadding:         "0.35rem 0.9rem",
		TickerShadow:              "0 12px 36px rgba(0, 0, 0, 0.28)",
		TickerBorderRadius:        "999px",
		TickerSpeedSeconds:        34,
	},
}

// GetPreset returns the preset registered under name.
// Lookup is case-insensitive after trimming; unknown names return the default preset.
func GetPreset(name string) TokenPreset {
	if p, ok := presets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return presets[DefaultPresetName]
}

// IsPreset reports whether name (already normalized) is a registered preset.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// PresetNames returns the registered preset names, default first.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		if name != DefaultPresetName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultPresetName}, names...)
}

// Value returns the preset's default for a field name.
func (p TokenPreset) Value(field string) (any, bool) {
	switch field {
	case FieldStickyTopOffset:
		return p.StickyTopOffset, true
	case FieldStickyWidth:
		return p.StickyWidth, true
	case FieldStickyMaxWidth:
		return p.StickyMaxWidth, true
	case FieldStickyBorderRadius:
		return p.StickyBorderRadius, true
	case FieldStickyShadow:
		return p.StickyShadow, true
	case FieldTickerBackgroundColor:
		return p.TickerBackgroundColor, true
	case FieldTickerTextColor:
		return p.TickerTextColor, true
	case FieldTickerEdgeFadeColor:
		return p.TickerEdgeFadeColor, true
	case FieldTickerEdgeFadeWidth:
		return p.TickerEdgeFadeWidth, true
	case FieldTickerItemBackgroundColor:
		return p.TickerItemBackgroundColor, true
	case FieldTickerItemBorderRadius:
		return p.TickerItemBorderRadius, true
	case FieldTickerItemGap:
		return p.TickerItemGap, true
	case FieldTickerPaddingY:
		return p.TickerPaddingY, true
	case FieldTickerItemPadding:
		return p.TickerItemPadding, true
	case FieldTickerShadow:
		return p.TickerShadow, true
	case FieldTickerBorderRadius:
		return p.TickerBorderRadius, true
	case FieldTickerSpeedSeconds:
		return p.TickerSpeedSeconds, true
	}
	return nil, false
}
