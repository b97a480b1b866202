package main

import (
	"fmt"
	"os"

	"banner-buddy/internal/core/logger"
	editor "banner-buddy/internal/features/editor/domain"
	theming "banner-buddy/internal/features/theming/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk form of a banner configuration.
type configFile struct {
	BannerConfig map[string]any `yaml:"bannerConfig"`
	Values       map[string]any `yaml:"values"`
}

func (f configFile) layers() theming.Layers {
	return theming.Layers{
		Grouped:    theming.Config(f.BannerConfig),
		Individual: theming.Config(f.Values),
	}
}

// inputVariables flattens both layers into editor input, grouped values winning.
func (f configFile) inputVariables() []editor.InputVariable {
	l := f.layers()
	vars := []editor.InputVariable{}
	for _, field := range theming.Fields {
		if v := l.Resolve(field.Name); v != nil {
			vars = append(vars, editor.InputVariable{Name: field.Name, Value: v})
		}
	}
	return vars
}

func loadConfigFile(path string) (configFile, error) {
	var f configFile
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file: %w", err)
	}
	return f, nil
}

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bannerctl",
		Short:         "Inspect banner themes from the command line.",
		Long:          "bannerctl resolves banner tokens, checks color contrast, lists presets and previews banners in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			if err := logger.Init("development", level); err != nil {
				return err
			}
			logger.Get().Debug("bannerctl starting", zap.String("config", opts.configPath))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with bannerConfig and values.")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging.")

	cmd.AddCommand(
		newTokensCmd(opts),
		newContrastCmd(),
		newPresetsCmd(),
		newPreviewCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}
