// Package layout holds the per-platform icon tables: which pixel sizes are
// rendered and where each file lands relative to the project root.
package layout

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Platform names a packaging convention
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// Platforms lists every supported platform in generation order
var Platforms = []Platform{PlatformIOS, PlatformAndroid, PlatformWeb}

// ParsePlatform converts a case-insensitive name into a Platform.
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", name)
}

// Icon is a single square bitmap to render: its edge length in pixels and its
// destination, relative to the output root.
type Icon struct {
	Size int
	Path string
}

// Layout is the complete set of icon tables.
type Layout struct {
	IOS     IOSLayout     `yaml:"ios"`
	Android AndroidLayout `yaml:"android"`
	Web     WebLayout     `yaml:"web"`
}

// PixelSize converts a nominal point size at a scale factor into whole pixels,
// rounding halves up (83.5 @2x is 167).
func PixelSize(points float64, scale int) int {
	return int(math.Floor(points*float64(scale) + 0.5))
}

// Default returns the conventional iOS, Android and Web tables.
func Default() Layout {
	return Layout{
		IOS:     defaultIOS(),
		Android: defaultAndroid(),
		Web:     defaultWeb(),
	}
}

// LoadFile reads a YAML layout from path. Sections and keys that are absent keep
// their default values; lists that are present replace the default list.
func LoadFile(path string) (Layout, error) {
	l := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("reading layout file: %w", err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("parsing layout file %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return l, fmt.Errorf("invalid layout file %s: %w", path, err)
	}
	return l, nil
}

// Validate reports every problem found across all three tables.
func (l Layout) Validate() error {
	var result error

	if l.IOS.Dir == "" {
		result = multierror.Append(result, fmt.Errorf("ios: dir must not be empty"))
	}
	for i, img := range l.IOS.Images {
		if img.Size <= 0 || img.Scale <= 0 {
			result = multierror.Append(result, fmt.Errorf("ios: image %d: size and scale must be positive", i))
		}
		if img.Filename == "" {
			result = multierror.Append(result, fmt.Errorf("ios: image %d: filename must not be empty", i))
		}
		if img.Idiom == "" {
			result = multierror.Append(result, fmt.Errorf("ios: image %d: idiom must not be empty", i))
		}
	}

	if l.Android.ResDir == "" {
		result = multierror.Append(result, fmt.Errorf("android: res_dir must not be empty"))
	}
	if l.Android.ForegroundScale <= 0 {
		result = multierror.Append(result, fmt.Errorf("android: foreground_scale must be positive"))
	}
	if l.Android.Launcher == "" || l.Android.Foreground == "" {
		result = multierror.Append(result, fmt.Errorf("android: launcher and foreground names must not be empty"))
	}
	for i, d := range l.Android.Densities {
		if d.Qualifier == "" {
			result = multierror.Append(result, fmt.Errorf("android: density %d: qualifier must not be empty", i))
		}
		if d.Size <= 0 {
			result = multierror.Append(result, fmt.Errorf("android: density %q: size must be positive", d.Qualifier))
		}
	}

	for i, icon := range append(append([]WebIcon{}, l.Web.AppIcons...), l.Web.Favicon) {
		if icon.Size <= 0 || icon.Filename == "" {
			result = multierror.Append(result, fmt.Errorf("web: icon %d: size must be positive and filename set", i))
		}
	}

	return result
}

// Icons returns the icons to render for p, in table order.
func (l Layout) Icons(p Platform) ([]Icon, error) {
	switch p {
	case PlatformIOS:
		return l.IOS.Icons(), nil
	case PlatformAndroid:
		return l.Android.Icons(), nil
	case PlatformWeb:
		return l.Web.Icons(), nil
	}
	return nil, fmt.Errorf("unknown platform %q", p)
}

// Dir returns the directory the platform's files are written beneath.
func (l Layout) Dir(p Platform) string {
	switch p {
	case PlatformIOS:
		return l.IOS.Dir
	case PlatformAndroid:
		return filepath.Join(l.Android.ResDir, "mipmap-*")
	case PlatformWeb:
		return l.Web.IconsDir
	}
	return ""
}
