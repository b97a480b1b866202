package service

import (
	"banner-buddy/internal/features/banners/domain"
	theming "banner-buddy/internal/features/theming/domain"
)

// ComposeView builds the view-model of a session from its controller state and configuration layers.
func ComposeView(sessionID string, snap Snapshot, layers theming.Layers) *domain.DisplayView {
	tokens := theming.ComputeTokens(layers)
	colors := theming.ComputeVariantColors(layers)

	items := domain.NewTickerItems(snap.Visible)
	show := len(snap.Visible) > 0

	return &domain.DisplayView{
		SessionID:        sessionID,
		Mode:             snap.Mode,
		ShowBanner:       show,
		ShowStickyBanner: show && snap.Mode == theming.ModeSticky,
		ShowTickerBanner: show && snap.Mode == theming.ModeTicker,
		CurrentBanner:    domain.NewStickyBanner(snap.Current, colors),
		TickerItems:      items,
		TickerTrackStyle: theming.TickerTrackStyle(theming.TickerDuration(tokens.TickerSpeedSeconds, len(items))),
		TokenStyle:       theming.CSSVariables(tokens, colors),
		Tokens:           tokens,
		VariantColors:    colors,
		Dismissed:        snap.Dismissed,
	}
}
