package domain

import (
	"strconv"
	"strings"

	theming "banner-buddy/internal/features/theming/domain"

	"github.com/spf13/cast"
)

const (
	previewCardClass       = "preview-card"
	previewCardActiveClass = "preview-card preview-card_active"
)

// PreviewItem is one sample ticker item in the editor preview.
type PreviewItem struct {
	Key         string `json:"key"`
	Variant     string `json:"variant"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Style       string `json:"style"`
}

// Preview holds the inline styles of the editor's live preview.
type Preview struct {
	StickyCardClass      string        `json:"stickyPreviewCardClass"`
	TickerCardClass      string        `json:"tickerPreviewCardClass"`
	StickyContainerStyle string        `json:"stickyPreviewContainerStyle"`
	StickyBannerStyle    string        `json:"stickyPreviewBannerStyle"`
	TickerShellStyle     string        `json:"tickerPreviewShellStyle"`
	TickerTrackStyle     string        `json:"tickerPreviewTrackStyle"`
	Items                []PreviewItem `json:"tickerPreviewItems"`
	LoopItems            []PreviewItem `json:"tickerPreviewLoopItems"`
}

var previewSamples = []struct {
	variant     string
	title       string
	description string
	colorField  string
}{
	{"Info", "Platform updates available", "Review release notes", theming.FieldInfoColor},
	{"Warning", "Maintenance tonight", "Starts at 11:00 PM", theming.FieldWarningColor},
	{"Success", "Deployment complete", "All checks passed", theming.FieldSuccessColor},
	{"Error", "Service disruption", "Investigating issue", theming.FieldErrorColor},
}

func styles(decls ...string) string {
	return strings.Join(decls, "; ")
}

func cardClass(active bool) string {
	if active {
		return previewCardActiveClass
	}
	return previewCardClass
}

// Preview renders the live preview for the current values.
func (e *PropertyEditor) Preview() Preview {
	tokens := e.ResolvedTokens()
	mode := cast.ToString(e.values[theming.FieldMode])

	items := make([]PreviewItem, 0, len(previewSamples))
	for i, s := range previewSamples {
		color := cast.ToString(e.values[s.colorField])
		items = append(items, PreviewItem{
			Key:         "preview-" + strconv.Itoa(i),
			Variant:     s.variant,
			Title:       s.title,
			Description: s.description,
			Color:       color,
			Style:       previewItemStyle(color),
		})
	}

	loop := make([]PreviewItem, 0, 2*len(items))
	loop = append(loop, items...)
	for i, item := range items {
		item.Key = "preview-dup-" + strconv.Itoa(i)
		loop = append(loop, item)
	}

	info := cast.ToString(e.values[theming.FieldInfoColor])
	duration := theming.TickerDuration(tokens.TickerSpeedSeconds, len(items))

	return Preview{
		StickyCardClass:      cardClass(mode == string(theming.ModeSticky)),
		TickerCardClass:      cardClass(mode == string(theming.ModeTicker)),
		StickyContainerStyle: "width: min(100%, " + tokens.StickyMaxWidth + ");",
		StickyBannerStyle: styles(
			"border-radius: "+tokens.StickyBorderRadius,
			"box-shadow: "+tokens.StickyShadow,
			"background-color: "+info,
			"color: "+theming.ReadableTextColor(info),
		),
		TickerShellStyle: styles(
			"background-color: "+tokens.TickerBackgroundColor,
			"color: "+tokens.TickerTextColor,
			"border-radius: "+tokens.TickerBorderRadius,
			"box-shadow: "+tokens.TickerShadow,
			"--preview-edge-fade-color: "+tokens.TickerEdgeFadeColor,
			"--preview-edge-fade-width: "+tokens.TickerEdgeFadeWidth,
		),
		TickerTrackStyle: styles(
			"--bannerbuddy-preview-duration: "+theming.FormatSeconds(duration),
			"padding: "+tokens.TickerPaddingY+" 0",
		),
		Items:     items,
		LoopItems: loop,
	}
}

func previewItemStyle(color string) string {
	return styles(
		"background-color: "+theming.WithAlpha(color, 0.22),
		"color: "+theming.ReadableTextColor(color),
		"border: 1px solid "+theming.WithAlpha(color, 0.4),
	)
}
