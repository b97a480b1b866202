package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Text colors returned by ReadableTextColor.
const (
	DarkText  = "#080707"
	LightText = "#ffffff"
)

// luminanceThreshold is the relative luminance above which dark text is used.
const luminanceThreshold = 0.6

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// parseHex decodes "#rgb" or "#rrggbb". Any other format is rejected.
func parseHex(color string) (colorful.Color, bool) {
	normalized := strings.TrimSpace(color)
	if !hexColor.MatchString(normalized) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ReadableTextColor picks dark or light text for the given background.
// Only 3- and 6-digit hex colors are evaluated; everything else gets light text.
func ReadableTextColor(color string) string {
	c, ok := parseHex(color)
	if !ok {
		return LightText
	}
	luminance := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	if luminance > luminanceThreshold {
		return DarkText
	}
	return LightText
}

// WithAlpha renders a hex color as rgba() with the given alpha.
// Non-hex input is returned trimmed and otherwise untouched.
func WithAlpha(color string, alpha float64) string {
	c, ok := parseHex(color)
	if !ok {
		if trimmed := strings.TrimSpace(color); trimmed != "" {
			return trimmed
		}
		return color
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// ExpandHex returns the 6-digit form of a hex color, or "" if color is not hex.
func ExpandHex(color string) string {
	c, ok := parseHex(color)
	if !ok {
		return ""
	}
	return c.Hex()
}
