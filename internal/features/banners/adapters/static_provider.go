package adapters

import (
	"context"
	"fmt"
	"os"
	"sort"

	"banner-buddy/internal/features/banners/domain"

	"gopkg.in/yaml.v3"
)

// StaticProvider implements ports.BannerProvider from a YAML (or JSON) file.
// The file is re-read on every fetch so edits show up on the next refresh.
type StaticProvider struct {
	path string
}

// NewStaticProvider creates a new StaticProvider reading path.
func NewStaticProvider(path string) *StaticProvider {
	return &StaticProvider{path: path}
}

type bannerFile struct {
	Banners []domain.Banner `yaml:"banners"`
}

// FetchActiveBanners returns the active banners of the file, newest start date first.
func (p *StaticProvider) FetchActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("failed to read banner file: %w", err))
	}

	banners, err := ParseBanners(data)
	if err != nil {
		return nil, domain.NewFetchError(err)
	}

	active := domain.FilterActive(banners)
	SortByStartDateDesc(active)
	return active, nil
}

// ParseBanners decodes a banner document: either {banners: [...]} or a bare list.
func ParseBanners(data []byte) ([]domain.Banner, error) {
	var doc bannerFile
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Banners != nil {
		return doc.Banners, nil
	}

	var list []domain.Banner
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode banner file: %w", err)
	}
	return list, nil
}

// SortByStartDateDesc orders banners newest first. Dates are ISO-8601 strings,
// so they order lexically; banners without a start date go last.
func SortByStartDateDesc(banners []domain.Banner) {
	sort.SliceStable(banners, func(i, j int) bool {
		a, b := banners[i].StartDate, banners[j].StartDate
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a > b
	})
}
