package domain

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"

	theming "banner-buddy/internal/features/theming/domain"

	"github.com/spf13/cast"
)

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// ErrorMessage is one host validation message, keyed for rendering.
type ErrorMessage struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// GroupedConfigEditor edits a grouped configuration object.
// Every update produces a new map; earlier values are never mutated.
type GroupedConfigEditor struct {
	value theming.Config
}

// NewGroupedConfigEditor copies value; nil starts from an empty object.
func NewGroupedConfigEditor(value theming.Config) *GroupedConfigEditor {
	if value == nil {
		return &GroupedConfigEditor{value: theming.Config{}}
	}
	return &GroupedConfigEditor{value: maps.Clone(value)}
}

// Value returns the current grouped configuration.
func (e *GroupedConfigEditor) Value() theming.Config {
	return e.value
}

// CurrentMode is the configured mode, or sticky when unset or blank.
func (e *GroupedConfigEditor) CurrentMode() string {
	if s := cast.ToString(e.value[theming.FieldMode]); s != "" {
		return s
	}
	return string(theming.ModeSticky)
}

// CurrentPreset is the configured preset, or the default preset when unset or blank.
func (e *GroupedConfigEditor) CurrentPreset() string {
	if s := cast.ToString(e.value[theming.FieldTokenPreset]); s != "" {
		return s
	}
	return theming.DefaultPresetName
}

func (e *GroupedConfigEditor) IsStickyMode() bool {
	return e.CurrentMode() == string(theming.ModeSticky)
}

func (e *GroupedConfigEditor) IsTickerMode() bool {
	return e.CurrentMode() == string(theming.ModeTicker)
}

// Field returns the configured value of name, or its default when missing or null.
// Blank strings are kept.
func (e *GroupedConfigEditor) Field(name string) any {
	if v, ok := e.value[name]; ok && v != nil {
		return v
	}
	return DefaultValues()[name]
}

// Fields returns every configurable field with its effective value.
func (e *GroupedConfigEditor) Fields() map[string]any {
	out := make(map[string]any, len(theming.Fields))
	for _, f := range theming.Fields {
		out[f.Name] = e.Field(f.Name)
	}
	out[theming.FieldMode] = e.CurrentMode()
	out[theming.FieldTokenPreset] = e.CurrentPreset()
	return out
}

// UpdateField replaces the value with a copy holding field and returns it.
func (e *GroupedConfigEditor) UpdateField(field string, value any) theming.Config {
	next := maps.Clone(e.value)
	next[field] = value
	e.value = next
	return next
}

// HandleFieldBlur commits a raw text input. The speed field keeps the leading integer
// of raw and falls back to the default speed when there is none.
func (e *GroupedConfigEditor) HandleFieldBlur(field, raw string) (theming.Config, bool) {
	if field == "" {
		return e.value, false
	}
	if field == theming.FieldTickerSpeedSeconds {
		return e.UpdateField(field, parseLeadingInt(raw, DefaultTickerSpeed)), true
	}
	return e.UpdateField(field, raw), true
}

func parseLeadingInt(raw string, fallback int) int {
	m := leadingInt.FindString(raw)
	if m == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return fallback
	}
	return n
}

// ErrorMessages turns host errors into keyed messages.
// An error is either an object with a message or anything printable.
func ErrorMessages(errs []any) []ErrorMessage {
	out := make([]ErrorMessage, 0, len(errs))
	for i, err := range errs {
		msg := ""
		if m, ok := err.(map[string]any); ok {
			msg = cast.ToString(m["message"])
		}
		if msg == "" {
			msg = cast.ToString(err)
		}
		if msg == "" {
			msg = fmt.Sprint(err)
		}
		out = append(out, ErrorMessage{Key: "err-" + strconv.Itoa(i), Message: msg})
	}
	return out
}
