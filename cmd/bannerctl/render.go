package main

import (
	"strings"

	"banner-buddy/internal/features/banners/domain"
	theming "banner-buddy/internal/features/theming/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// swatch renders a short sample of fg text on bg.
func swatch(bg, fg string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render("Aa")
}

func modeLabel(label string, active bool) string {
	if active {
		return styleHeading.Render("> " + label)
	}
	return styleMuted.Render("  " + label)
}

func renderPreview(mode theming.Mode, tokens theming.ResolvedTokenSet, colors theming.VariantColors, banners []domain.Banner, width int) string {
	if width < 20 {
		width = 20
	}

	sections := []string{
		styleMuted.Render("preset " + tokens.Preset + ", ticker " + theming.FormatSeconds(theming.TickerDuration(tokens.TickerSpeedSeconds, len(banners)))),
		modeLabel("Sticky", mode == theming.ModeSticky),
		renderSticky(banners, colors, width),
		modeLabel("Ticker", mode == theming.ModeTicker),
		renderTicker(banners, tokens, colors, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSticky(banners []domain.Banner, colors theming.VariantColors, width int) string {
	if len(banners) == 0 {
		return styleMuted.Render("  (no active banners)")
	}

	b := banners[0]
	bg := colors.For(string(b.VariantOrInfo()))
	fg := theming.ReadableTextColor(bg)

	lines := []string{lipgloss.NewStyle().Bold(true).Render(b.Title)}
	if b.Description != "" {
		lines = append(lines, b.Description)
	}
	if b.Message != "" {
		lines = append(lines, b.Message)
	}
	if b.LinkURL != "" {
		lines = append(lines, lipgloss.NewStyle().Underline(true).Render(b.LinkURL))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(bg)).
		Padding(0, 2).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func renderTicker(banners []domain.Banner, tokens theming.ResolvedTokenSet, colors theming.VariantColors, width int) string {
	shell := lipgloss.NewStyle().
		Background(lipgloss.Color(tokens.TickerBackgroundColor)).
		Foreground(lipgloss.Color(tokens.TickerTextColor)).
		Padding(0, 1).
		MaxWidth(width)

	if len(banners) == 0 {
		return shell.Render("(no active banners)")
	}

	items := make([]string, 0, len(banners))
	for _, b := range banners {
		bg := colors.For(string(b.VariantOrInfo()))
		text := b.Title
		if b.Description != "" {
			text += " - " + b.Description
		}
		items = append(items, lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(theming.ReadableTextColor(bg))).
			Padding(0, 1).
			Render(text))
	}

	return shell.Render(strings.Join(items, "  "))
}
