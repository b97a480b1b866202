package domain

import "math"

// Hard fallbacks for the variant colors. They are independent of presets.
const (
	DefaultInfoColor    = "#6d5bf6"
	DefaultErrorColor   = "#c23934"
	DefaultWarningColor = "#ff9e2c"
	DefaultSuccessColor = "#08ca4a"
)

// DefaultMode is used when no layer sets a mode.
const DefaultMode = ModeSticky

// secondsPerTickerItem is the minimum scroll time each ticker item gets.
const secondsPerTickerItem = 6

// ResolvedTokenSet holds one concrete value per themeable field.
type ResolvedTokenSet struct {
	Preset                    string  `json:"preset"`
	StickyTopOffset           string  `json:"stickyTopOffset"`
	StickyWidth               string  `json:"stickyWidth"`
	StickyMaxWidth            string  `json:"stickyMaxWidth"`
	StickyBorderRadius        string  `json:"stickyBorderRadius"`
	StickyShadow              string  `json:"stickyShadow"`
	TickerBackgroundColor     string  `json:"tickerBackgroundColor"`
	TickerTextColor           string  `json:"tickerTextColor"`
	TickerEdgeFadeColor       string  `json:"tickerEdgeFadeColor"`
	TickerEdgeFadeWidth       string  `json:"tickerEdgeFadeWidth"`
	TickerItemBackgroundColor string  `json:"tickerItemBackgroundColor"`
	TickerItemBorderRadius    string  `json:"tickerItemBorderRadius"`
	TickerItemGap             string  `json:"tickerItemGap"`
	TickerPaddingY            string  `json:"tickerPaddingY"`
	TickerItemPadding         string  `json:"tickerItemPadding"`
	TickerShadow              string  `json:"tickerShadow"`
	TickerBorderRadius        string  `json:"tickerBorderRadius"`
	TickerSpeedSeconds        float64 `json:"tickerSpeedSeconds"`
}

// VariantColors holds the resolved background color per banner variant.
type VariantColors struct {
	Info    string `json:"info"`
	Error   string `json:"error"`
	Warning string `json:"warning"`
	Success string `json:"success"`
}

// For returns the color of a variant name; unknown variants use Info.
func (v VariantColors) For(variant string) string {
	switch variant {
	case "Error":
		return v.Error
	case "Warning":
		return v.Warning
	case "Success":
		return v.Success
	}
	return v.Info
}

// ResolveMode resolves the display mode through the configuration layers.
func ResolveMode(l Layers) Mode {
	return NormalizeMode(l.Resolve(FieldMode))
}

// ResolvePresetName resolves the active preset name through the configuration layers.
func ResolvePresetName(l Layers) string {
	return NormalizePresetName(l.Resolve(FieldTokenPreset))
}

// ComputeTokens resolves every themeable field: grouped config, then individual value,
// then the active preset. Preset-only fields come straight from the preset.
func ComputeTokens(l Layers) ResolvedTokenSet {
	name := ResolvePresetName(l)
	p := GetPreset(name)

	return ResolvedTokenSet{
		Preset:                    name,
		StickyTopOffset:           NormalizeLength(l.Resolve(FieldStickyTopOffset), p.StickyTopOffset),
		StickyWidth:               NormalizeLength(l.Resolve(FieldStickyWidth), p.StickyWidth),
		StickyMaxWidth:            NormalizeLength(l.Resolve(FieldStickyMaxWidth), p.StickyMaxWidth),
		StickyBorderRadius:        NormalizeLength(l.Resolve(FieldStickyBorderRadius), p.StickyBorderRadius),
		StickyShadow:              NormalizeString(l.Resolve(FieldStickyShadow), p.StickyShadow),
		TickerBackgroundColor:     NormalizeString(l.Resolve(FieldTickerBackgroundColor), p.TickerBackgroundColor),
		TickerTextColor:           NormalizeString(l.Resolve(FieldTickerTextColor), p.TickerTextColor),
		TickerEdgeFadeColor:       NormalizeString(l.Resolve(FieldTickerEdgeFadeColor), p.TickerEdgeFadeColor),
		TickerEdgeFadeWidth:       NormalizeLength(l.Resolve(FieldTickerEdgeFadeWidth), p.TickerEdgeFadeWidth),
		TickerItemBackgroundColor: NormalizeString(l.Resolve(FieldTickerItemBackgroundColor), p.TickerItemBackgroundColor),
		TickerItemBorderRadius:    p.TickerItemBorderRadius,
		TickerItemGap:             p.TickerItemGap,
		TickerPaddingY:            p.TickerPaddingY,
		TickerItemPadding:         p.TickerItemPadding,
		TickerShadow:              p.TickerShadow,
		TickerBorderRadius:        p.TickerBorderRadius,
		TickerSpeedSeconds:        NormalizePositiveNumber(l.Resolve(FieldTickerSpeedSeconds), p.TickerSpeedSeconds),
	}
}

// ComputeVariantColors resolves the four variant backgrounds, falling back to the hard constants.
func ComputeVariantColors(l Layers) VariantColors {
	return VariantColors{
		Info:    NormalizeString(l.Resolve(FieldInfoColor), DefaultInfoColor),
		Error:   NormalizeString(l.Resolve(FieldErrorColor), DefaultErrorColor),
		Warning: NormalizeString(l.Resolve(FieldWarningColor), DefaultWarningColor),
		Success: NormalizeString(l.Resolve(FieldSuccessColor), DefaultSuccessColor),
	}
}

// TickerDuration is the scroll duration in seconds: never below 6 seconds per item.
func TickerDuration(speedSeconds float64, itemCount int) float64 {
	return math.Max(speedSeconds, float64(itemCount*secondsPerTickerItem))
}
