package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const cssPrefix = "--bannerbuddy-"

func declaration(name, value string) string {
	return cssPrefix + name + ": " + value
}

// CSSVariables renders the token set and variant colors as custom-property declarations.
func CSSVariables(t ResolvedTokenSet, colors VariantColors) string {
	decls := []string{
		declaration("sticky-top-offset", t.StickyTopOffset),
		declaration("sticky-width", t.StickyWidth),
		declaration("sticky-max-width", t.StickyMaxWidth),
		declaration("sticky-radius", t.StickyBorderRadius),
		declaration("sticky-shadow", t.StickyShadow),
		declaration("ticker-bg", t.TickerBackgroundColor),
		declaration("ticker-text", t.TickerTextColor),
		declaration("edge-overlay", t.TickerEdgeFadeColor),
		declaration("edge-fade-width", t.TickerEdgeFadeWidth),
		declaration("ticker-item-bg", t.TickerItemBackgroundColor),
		declaration("ticker-item-gap", t.TickerItemGap),
		declaration("ticker-padding-y", t.TickerPaddingY),
		declaration("ticker-shadow", t.TickerShadow),
	}

	variants := []struct {
		name  string
		color string
	}{
		{"info", colors.Info},
		{"error", colors.Error},
		{"warning", colors.Warning},
		{"success", colors.Success},
	}
	for _, v := range variants {
		decls = append(decls,
			declaration(v.name+"-bg", v.color),
			declaration(v.name+"-text", ReadableTextColor(v.color)),
		)
	}

	return strings.Join(decls, "; ")
}

// FormatSeconds renders a number of seconds without trailing zeros.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}

// TickerTrackStyle renders the ticker animation duration declaration.
func TickerTrackStyle(durationSeconds float64) string {
	return declaration("ticker-duration", FormatSeconds(durationSeconds)) + ";"
}

// BannerStyle renders the inline style of a sticky banner on the given background.
func BannerStyle(background string) string {
	return fmt.Sprintf("background-color: %s !important; color: %s !important;", background, ReadableTextColor(background))
}
