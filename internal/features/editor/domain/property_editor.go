package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	theming "banner-buddy/internal/features/theming/domain"

	"github.com/spf13/cast"
)

// InputVariable is one value the host passes into the property editor.
type InputVariable struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ChangeEvent is emitted whenever the editor reports a new value to the host.
type ChangeEvent struct {
	Name             string `json:"name"`
	NewValue         any    `json:"newValue"`
	NewValueDataType string `json:"newValueDataType"`
}

// ValidationError describes an invalid field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const speedRangeMessage = "Ticker Base Speed (s) must be between 5 and 180."

// PropertyEditor holds the editable values of one banner configuration.
// A token field the host supplied explicitly is overridden and survives preset switches.
// Values hold the clamped speed; Validate checks the speed as supplied.
type PropertyEditor struct {
	values     map[string]any
	overridden map[string]bool
	rawSpeed   any
}

// NewPropertyEditor loads the editor from the host's input variables.
func NewPropertyEditor(vars []InputVariable) *PropertyEditor {
	e := &PropertyEditor{
		values:     DefaultValues(),
		overridden: make(map[string]bool),
	}

	for _, v := range vars {
		if theming.IsTokenField(v.Name) {
			e.overridden[v.Name] = true
		}
	}
	for _, v := range vars {
		if !isKnownField(v.Name) || v.Value == nil {
			continue
		}
		e.values[v.Name] = normalizeValue(v.Name, v.Value)
		if v.Name == theming.FieldTickerSpeedSeconds {
			e.setRawSpeed(v.Value)
		}
	}

	e.applyPreset(e.presetName())
	return e
}

// Values returns a copy of the current values.
func (e *PropertyEditor) Values() map[string]any {
	out := make(map[string]any, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// OverriddenFields returns the overridden token fields in catalog order.
func (e *PropertyEditor) OverriddenFields() []string {
	out := []string{}
	for _, field := range theming.TokenFields() {
		if e.overridden[field] {
			out = append(out, field)
		}
	}
	return out
}

// Mode is the selected display mode.
func (e *PropertyEditor) Mode() theming.Mode {
	return theming.NormalizeMode(e.values[theming.FieldMode])
}

func (e *PropertyEditor) presetName() string {
	return cast.ToString(e.values[theming.FieldTokenPreset])
}

// Change sets one field and returns the event to report to the host.
func (e *PropertyEditor) Change(field string, value any) (ChangeEvent, error) {
	if !isKnownField(field) {
		return ChangeEvent{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	next := normalizeValue(field, value)
	dispatch := next
	if field == theming.FieldTickerSpeedSeconds {
		e.setRawSpeed(value)
	}

	if field == theming.FieldTokenPreset {
		e.values[field] = next
		e.applyPreset(cast.ToString(next))
		return newChangeEvent(field, next), nil
	}

	if theming.IsTokenField(field) {
		if s, ok := next.(string); ok && s == "" {
			delete(e.overridden, field)
			next = presetValue(theming.GetPreset(e.presetName()), field)
			dispatch = clearedValue(field, next)
		} else {
			e.overridden[field] = true
		}
	}

	e.values[field] = next
	return newChangeEvent(field, dispatch), nil
}

// ResetPresetOverrides reverts every token field to the active preset.
func (e *PropertyEditor) ResetPresetOverrides() []ChangeEvent {
	preset := theming.GetPreset(e.presetName())
	fields := theming.TokenFields()
	events := make([]ChangeEvent, 0, len(fields))

	e.rawSpeed = nil
	for _, field := range fields {
		delete(e.overridden, field)
		v := presetValue(preset, field)
		e.values[field] = v
		events = append(events, newChangeEvent(field, clearedValue(field, v)))
	}
	return events
}

// Validate reports fields the host must not save.
func (e *PropertyEditor) Validate() []ValidationError {
	errs := []ValidationError{}
	speed := e.ResolvedTokens().TickerSpeedSeconds
	if e.rawSpeed != nil && e.overridden[theming.FieldTickerSpeedSeconds] {
		speed = rawNumber(e.rawSpeed)
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < MinTickerSpeed || speed > MaxTickerSpeed {
		errs = append(errs, ValidationError{
			Field:   theming.FieldTickerSpeedSeconds,
			Message: speedRangeMessage,
		})
	}
	return errs
}

// ResolvedTokens resolves the token set from overrides and the active preset.
func (e *PropertyEditor) ResolvedTokens() theming.ResolvedTokenSet {
	name := theming.NormalizePresetName(e.presetName())
	p := theming.GetPreset(name)

	str := func(field, presetValue string) string {
		return cast.ToString(e.resolveField(field, presetValue))
	}

	return theming.ResolvedTokenSet{
		Preset:                    name,
		StickyTopOffset:           str(theming.FieldStickyTopOffset, p.StickyTopOffset),
		StickyWidth:               str(theming.FieldStickyWidth, p.StickyWidth),
		StickyMaxWidth:            str(theming.FieldStickyMaxWidth, p.StickyMaxWidth),
		StickyBorderRadius:        str(theming.FieldStickyBorderRadius, p.StickyBorderRadius),
		StickyShadow:              str(theming.FieldStickyShadow, p.StickyShadow),
		TickerBackgroundColor:     str(theming.FieldTickerBackgroundColor, p.TickerBackgroundColor),
		TickerTextColor:           str(theming.FieldTickerTextColor, p.TickerTextColor),
		TickerEdgeFadeColor:       str(theming.FieldTickerEdgeFadeColor, p.TickerEdgeFadeColor),
		TickerEdgeFadeWidth:       str(theming.FieldTickerEdgeFadeWidth, p.TickerEdgeFadeWidth),
		TickerItemBackgroundColor: str(theming.FieldTickerItemBackgroundColor, p.TickerItemBackgroundColor),
		TickerItemBorderRadius:    p.TickerItemBorderRadius,
		TickerItemGap:             p.TickerItemGap,
		TickerPaddingY:            p.TickerPaddingY,
		TickerItemPadding:         p.TickerItemPadding,
		TickerShadow:              p.TickerShadow,
		TickerBorderRadius:        p.TickerBorderRadius,
		TickerSpeedSeconds:        cast.ToFloat64(e.resolveField(theming.FieldTickerSpeedSeconds, p.TickerSpeedSeconds)),
	}
}

func (e *PropertyEditor) resolveField(field string, presetValue any) any {
	if !e.overridden[field] {
		return presetValue
	}
	v := e.values[field]
	if s, ok := v.(string); v == nil || (ok && s == "") {
		return presetValue
	}
	return v
}

func (e *PropertyEditor) applyPreset(name string) {
	preset := theming.GetPreset(name)
	for _, field := range theming.TokenFields() {
		if !e.overridden[field] {
			e.values[field] = presetValue(preset, field)
		}
	}
}

func newChangeEvent(field string, value any) ChangeEvent {
	return ChangeEvent{
		Name:             field,
		NewValue:         value,
		NewValueDataType: dataType(field),
	}
}

// clearedValue is what the host receives when a token field falls back to its preset.
func clearedValue(field string, presetValue any) any {
	if theming.IsIntegerField(field) {
		return presetValue
	}
	return ""
}

func normalizeValue(field string, value any) any {
	switch {
	case field == theming.FieldMode:
		return string(theming.NormalizeMode(value))
	case field == theming.FieldTokenPreset:
		return theming.NormalizePresetName(value)
	case theming.IsIntegerField(field):
		if s, ok := value.(string); value == nil || (ok && s == "") {
			return ""
		}
		n, ok := toNumber(value)
		if !ok {
			return DefaultTickerSpeed
		}
		return clampSpeed(n)
	case theming.IsTokenField(field):
		return theming.NormalizeString(value, "")
	}
	return theming.NormalizeString(value, cast.ToString(DefaultValues()[field]))
}

// toNumber converts loosely typed input to a finite number.
// Blank strings count as zero.
func toNumber(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		n = f
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// setRawSpeed records the speed as supplied; blank input clears it.
func (e *PropertyEditor) setRawSpeed(value any) {
	if s, ok := value.(string); value == nil || (ok && strings.TrimSpace(s) == "") {
		e.rawSpeed = nil
		return
	}
	e.rawSpeed = value
}

// rawNumber is the numeric value of input, NaN when it is not a number.
func rawNumber(value any) float64 {
	n, ok := toNumber(value)
	if !ok {
		return math.NaN()
	}
	return n
}
