package domain

import (
	"errors"
	"math"

	theming "banner-buddy/internal/features/theming/domain"
)

// ErrUnknownField is returned when an editor is asked to change a field it does not manage.
var ErrUnknownField = errors.New("unknown field")

// Data types reported with a value change.
const (
	DataTypeInteger = "Integer"
	DataTypeString  = "String"
)

// Ticker speed bounds accepted by the editors, in seconds.
const (
	MinTickerSpeed     = 5
	MaxTickerSpeed     = 180
	DefaultTickerSpeed = 28
)

// DefaultValues returns the editor defaults for every configurable field.
// Token fields take the default preset's values.
func DefaultValues() map[string]any {
	preset := theming.GetPreset(theming.DefaultPresetName)
	values := map[string]any{
		theming.FieldMode:         string(theming.ModeSticky),
		theming.FieldTokenPreset:  theming.DefaultPresetName,
		theming.FieldInfoColor:    theming.DefaultInfoColor,
		theming.FieldErrorColor:   theming.DefaultErrorColor,
		theming.FieldWarningColor: theming.DefaultWarningColor,
		theming.FieldSuccessColor: theming.DefaultSuccessColor,
	}
	for _, field := range theming.TokenFields() {
		values[field] = presetValue(preset, field)
	}
	return values
}

func isKnownField(name string) bool {
	_, ok := theming.LookupField(name)
	return ok
}

// presetValue is the preset's value for field, as an int for integer fields.
func presetValue(p theming.TokenPreset, field string) any {
	v, _ := p.Value(field)
	if theming.IsIntegerField(field) {
		if n, ok := v.(float64); ok {
			return int(n)
		}
	}
	return v
}

func dataType(field string) string {
	if theming.IsIntegerField(field) {
		return DataTypeInteger
	}
	return DataTypeString
}

// clampSpeed rounds half up and clamps to the accepted speed range.
func clampSpeed(n float64) int {
	rounded := math.Floor(n + 0.5)
	return int(math.Max(MinTickerSpeed, math.Min(MaxTickerSpeed, rounded)))
}
