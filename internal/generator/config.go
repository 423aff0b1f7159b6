package generator

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/SkyMack/appicons/internal/layout"
	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	flagNameBackground  = "background"
	flagNameDebounce    = "debounce"
	flagNameFailOnError = "fail-on-error"
	flagNameLayout      = "layout"
	flagNameOutput      = "output"
	flagNamePlatform    = "platform"
	flagNameSource      = "source"
)

// Config is used to store the options for a generation run
type Config struct {
	background  color.NRGBA
	debounce    time.Duration
	failOnError bool
	layoutPath  string
	outputRoot  string
	platforms   []layout.Platform
	sourcePath  string
}

// envDefaults seeds the flag defaults so a bare invocation can be steered from the environment
type envDefaults struct {
	Background string `env:"APPICONS_BACKGROUND" envDefault:"FFFFFF"`
	Layout     string `env:"APPICONS_LAYOUT"`
	Output     string `env:"APPICONS_OUTPUT" envDefault:"."`
	Source     string `env:"APPICONS_SOURCE" envDefault:"0_2.png"`
}

func loadEnvDefaults() envDefaults {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Warn("unable to parse environment defaults")
	}
	return defaults
}

func addGeneratePersistentFlags(flags *pflag.FlagSet) {
	genFlags := &pflag.FlagSet{}
	defaults := loadEnvDefaults()

	platforms := make([]string, 0, len(layout.Platforms))
	for _, p := range layout.Platforms {
		platforms = append(platforms, string(p))
	}

	genFlags.String(flagNameBackground, defaults.Background, "Background that transparent pixels are flattened onto (6 character RGB hex code)")
	genFlags.Bool(flagNameFailOnError, false, "Exit with an error status when generation fails instead of only reporting it")
	genFlags.String(flagNameLayout, defaults.Layout, "Optional YAML file overriding the built-in icon tables")
	genFlags.String(flagNameOutput, defaults.Output, "Project root the platform directories are written beneath")
	genFlags.StringSlice(flagNamePlatform, platforms, fmt.Sprintf("Platforms to generate icons for (valid values are: %s)", strings.Join(platforms, ", ")))
	genFlags.String(flagNameSource, defaults.Source, "Path to the source image")

	flags.AddFlagSet(genFlags)
}

func addWatchFlags(flags *pflag.FlagSet) {
	watchFlags := &pflag.FlagSet{}
	watchFlags.Duration(flagNameDebounce, 500*time.Millisecond, "How long the source must be quiet before regenerating")

	flags.AddFlagSet(watchFlags)
}

func (c *Config) setConfigFromFlags(flags *pflag.FlagSet) error {
	backgroundStr, err := flags.GetString(flagNameBackground)
	if err != nil {
		return err
	}
	failOnError, err := flags.GetBool(flagNameFailOnError)
	if err != nil {
		return err
	}
	layoutPath, err := flags.GetString(flagNameLayout)
	if err != nil {
		return err
	}
	outputRoot, err := flags.GetString(flagNameOutput)
	if err != nil {
		return err
	}
	platformNames, err := flags.GetStringSlice(flagNamePlatform)
	if err != nil {
		return err
	}
	sourcePath, err := flags.GetString(flagNameSource)
	if err != nil {
		return err
	}

	background, err := parseHexColor(backgroundStr)
	if err != nil {
		return err
	}

	var result error
	platforms := make([]layout.Platform, 0, len(platformNames))
	for _, name := range platformNames {
		p, err := layout.ParsePlatform(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		platforms = append(platforms, p)
	}
	if result != nil {
		return result
	}

	c.background = background
	c.failOnError = failOnError
	c.layoutPath = layoutPath
	c.outputRoot = outputRoot
	c.platforms = platforms
	c.sourcePath = sourcePath

	return nil
}

func (c *Config) setWatchConfigFromFlags(flags *pflag.FlagSet) error {
	debounce, err := flags.GetDuration(flagNameDebounce)
	if err != nil {
		return err
	}

	c.debounce = debounce

	return nil
}

func (c *Config) validate() error {
	var result error

	if c.sourcePath == "" {
		result = multierror.Append(result, fmt.Errorf("no source image path specified"))
	}
	if c.outputRoot == "" {
		result = multierror.Append(result, fmt.Errorf("no output root specified"))
	}
	if len(c.platforms) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one platform must be selected"))
	}
	if c.debounce < 0 {
		result = multierror.Append(result, fmt.Errorf("invalid debounce: must not be negative"))
	}

	return result
}

// parseHexColor reads a 6 character RGB hex code, with or without a leading '#', as an opaque color
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
