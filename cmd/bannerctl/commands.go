package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"banner-buddy/internal/features/banners/adapters"
	"banner-buddy/internal/features/banners/domain"
	editor "banner-buddy/internal/features/editor/domain"
	theming "banner-buddy/internal/features/theming/domain"
	themeservice "banner-buddy/internal/features/theming/service"

	"github.com/spf13/cobra"
)

func newTokensCmd(root *rootOptions) *cobra.Command {
	var cssOnly bool

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Resolve tokens, variant colors and CSS variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadConfigFile(root.configPath)
			if err != nil {
				return err
			}

			theme := themeservice.NewThemeService(nil).Resolve(f.layers())
			if cssOnly {
				fmt.Fprintln(cmd.OutOrStdout(), strings.ReplaceAll(theme.CSSVariables, "; ", ";\n")+";")
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(theme)
		},
	}

	cmd.Flags().BoolVar(&cssOnly, "css", false, "Print only the CSS custom properties.")
	return cmd
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast COLOR...",
		Short: "Pick readable text colors for background colors.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := themeservice.NewThemeService(nil)
			for _, color := range args {
				c := svc.Contrast(color)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s\n", swatch(c.Color, c.TextColor), c.Color, c.TextColor)
			}
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the token presets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range themeservice.NewThemeService(nil).Presets() {
				fmt.Fprintf(out, "%s  %-10s speed=%ss width=%s max=%s radius=%s\n",
					swatch(p.TickerBackgroundColor, p.TickerTextColor),
					p.Name,
					strings.TrimSuffix(theming.FormatSeconds(p.TickerSpeedSeconds), "s"),
					p.StickyWidth, p.StickyMaxWidth, p.StickyBorderRadius,
				)
			}
			return nil
		},
	}
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var bannersPath string
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render banners in the terminal with the resolved theme.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadConfigFile(root.configPath)
			if err != nil {
				return err
			}

			banners := sampleBanners()
			if bannersPath != "" {
				banners, err = adapters.NewStaticProvider(bannersPath).FetchActiveBanners(cmd.Context())
				if err != nil {
					return err
				}
			}

			theme := themeservice.NewThemeService(nil).Resolve(f.layers())
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(theme.Mode, theme.Tokens, theme.VariantColors, banners, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&bannersPath, "banners", "", "YAML or JSON file with banner records.")
	cmd.Flags().IntVar(&width, "width", 72, "Preview width in columns.")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadConfigFile(root.configPath)
			if err != nil {
				return err
			}

			errs := editor.NewPropertyEditor(f.inputVariables()).Validate()
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", e.Field, e.Message)
			}
			if len(errs) > 0 {
				return fmt.Errorf("configuration has %d invalid field(s)", len(errs))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}
}

func sampleBanners() []domain.Banner {
	return []domain.Banner{
		{ID: "sample-1", Status: domain.StatusActive, Variant: domain.VariantInfo, Title: "Platform updates available", Description: "Review release notes"},
		{ID: "sample-2", Status: domain.StatusActive, Variant: domain.VariantWarning, Title: "Maintenance tonight", Description: "Starts at 11:00 PM"},
		{ID: "sample-3", Status: domain.StatusActive, Variant: domain.VariantSuccess, Title: "Deployment complete", Description: "All checks passed"},
		{ID: "sample-4", Status: domain.StatusActive, Variant: domain.VariantError, Title: "Service disruption", Description: "Investigating issue"},
	}
}
