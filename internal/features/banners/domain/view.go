package domain

import (
	"strconv"

	theming "banner-buddy/internal/features/theming/domain"
)

const tickerItemClass = "ticker-item"

var bannerClasses = map[Variant]string{
	VariantInfo:    "slds-notify slds-notify_alert slds-alert_info",
	VariantError:   "slds-notify slds-notify_alert slds-alert_error",
	VariantWarning: "slds-notify slds-notify_alert slds-alert_warning",
	VariantSuccess: "slds-notify slds-notify_alert slds-theme_success",
}

var iconNames = map[Variant]string{
	VariantInfo:    "utility:info",
	VariantError:   "utility:error",
	VariantWarning: "utility:warning",
	VariantSuccess: "utility:success",
}

// BannerClass returns the CSS classes of a sticky banner for variant.
func BannerClass(v Variant) string {
	if class, ok := bannerClasses[v]; ok {
		return class
	}
	return bannerClasses[VariantInfo]
}

// IconName returns the icon of a sticky banner for variant.
func IconName(v Variant) string {
	if icon, ok := iconNames[v]; ok {
		return icon
	}
	return iconNames[VariantInfo]
}

// StickyBanner is the view-model of the single banner shown in sticky mode.
// A zero Banner is the "nothing to show" placeholder.
type StickyBanner struct {
	Banner
	HasMessage  bool   `json:"hasMessage"`
	ShowLink    bool   `json:"showLink"`
	BannerClass string `json:"bannerClass"`
	BannerStyle string `json:"bannerStyle"`
	IconName    string `json:"iconName"`
}

// NewStickyBanner decorates b with its styling for the given variant colors.
func NewStickyBanner(b Banner, colors theming.VariantColors) StickyBanner {
	variant := b.VariantOrInfo()
	return StickyBanner{
		Banner:      b,
		HasMessage:  b.Message != "",
		ShowLink:    b.LinkURL != "",
		BannerClass: BannerClass(variant),
		BannerStyle: theming.BannerStyle(colors.For(string(variant))),
		IconName:    IconName(variant),
	}
}

// TickerItem is the view-model of one banner in the scrolling ticker.
type TickerItem struct {
	Banner
	Key            string `json:"key"`
	DuplicateKey   string `json:"duplicateKey"`
	VariantClass   string `json:"variantClass"`
	HasDescription bool   `json:"hasDescription"`
	HasLink        bool   `json:"hasLink"`
}

// NewTickerItems builds ticker items with stable keys for the primary and looped copies.
func NewTickerItems(banners []Banner) []TickerItem {
	items := make([]TickerItem, 0, len(banners))
	for i, b := range banners {
		items = append(items, TickerItem{
			Banner:         b,
			Key:            b.ID + "-primary-" + strconv.Itoa(i),
			DuplicateKey:   b.ID + "-duplicate-" + strconv.Itoa(i),
			VariantClass:   tickerItemClass,
			HasDescription: b.Description != "",
			HasLink:        b.LinkURL != "",
		})
	}
	return items
}

// DisplayView is everything the view layer needs to render one display session.
type DisplayView struct {
	SessionID        string                   `json:"sessionId"`
	Mode             theming.Mode             `json:"mode"`
	ShowBanner       bool                     `json:"showBanner"`
	ShowStickyBanner bool                     `json:"showStickyBanner"`
	ShowTickerBanner bool                     `json:"showTickerBanner"`
	CurrentBanner    StickyBanner             `json:"currentBanner"`
	TickerItems      []TickerItem             `json:"tickerItems"`
	TickerTrackStyle string                   `json:"tickerTrackStyle"`
	TokenStyle       string                   `json:"componentTokenStyle"`
	Tokens           theming.ResolvedTokenSet `json:"tokens"`
	VariantColors    theming.VariantColors    `json:"variantColors"`
	Dismissed        []string                 `json:"dismissed"`
	Errors           []ProviderError          `json:"errors,omitempty"`
}
