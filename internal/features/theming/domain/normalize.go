package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var bareNumber = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Mode is the banner display mode.
type Mode string

const (
	ModeSticky Mode = "sticky"
	ModeTicker Mode = "ticker"
)

// text renders a loosely-typed value as a trimmed string.
// nil, false and numeric zero are blank, like any falsy value in the host runtime.
func text(value any) string {
	if isFalsy(value) {
		return ""
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0 || math.IsNaN(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToFloat64(v) == 0
	}
	return false
}

// NormalizeString trims value and falls back when the result is empty.
func NormalizeString(value any, fallback string) string {
	if s := text(value); s != "" {
		return s
	}
	return fallback
}

// NormalizeLength trims value, falls back when empty and appends "px" to bare numbers.
// Anything else (units, calc(), var()) passes through verbatim.
func NormalizeLength(value any, fallback string) string {
	s := text(value)
	if s == "" {
		return fallback
	}
	if bareNumber.MatchString(s) {
		return s + "px"
	}
	return s
}

// NormalizePositiveNumber coerces value to a number and falls back unless it is finite and > 0.
func NormalizePositiveNumber(value any, fallback float64) float64 {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	n, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return fallback
	}
	return n
}

// NormalizeMode maps any value to a display mode; only "ticker" selects ticker mode.
func NormalizeMode(value any) Mode {
	if strings.ToLower(text(value)) == string(ModeTicker) {
		return ModeTicker
	}
	return ModeSticky
}

// NormalizePresetName maps any value to a registered preset name.
func NormalizePresetName(value any) string {
	name := strings.ToLower(text(value))
	if IsPreset(name) {
		return name
	}
	return DefaultPresetName
}
