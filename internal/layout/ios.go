package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	manifestFileName = "Contents.json"
	manifestAuthor   = "xcode"
	manifestVersion  = 1
)

// IOSLayout is the AppIcon asset catalog table.
type IOSLayout struct {
	Dir    string         `yaml:"dir"`
	Images []AppIconImage `yaml:"images"`
}

// AppIconImage is one entry of an asset catalog. Several entries may share a
// filename (the iPhone 20pt@2x icon is also the iPad 20pt@2x icon).
type AppIconImage struct {
	Size     float64 `yaml:"size"`
	Scale    int     `yaml:"scale"`
	Idiom    string  `yaml:"idiom"`
	Filename string  `yaml:"filename"`
}

// Pixels is the rendered edge length of the image.
func (a AppIconImage) Pixels() int {
	return PixelSize(a.Size, a.Scale)
}

// AssetCatalog is the Contents.json document Xcode reads from an .appiconset.
type AssetCatalog struct {
	Images []AssetCatalogImage `json:"images"`
	Info   AssetCatalogInfo    `json:"info"`
}

type AssetCatalogImage struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

type AssetCatalogInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

func defaultIOS() IOSLayout {
	img := func(size float64, scale int, idiom string) AppIconImage {
		pt := strconv.FormatFloat(size, 'f', -1, 64)
		return AppIconImage{
			Size:     size,
			Scale:    scale,
			Idiom:    idiom,
			Filename: fmt.Sprintf("Icon-App-%sx%s@%dx.png", pt, pt, scale),
		}
	}

	return IOSLayout{
		Dir: filepath.Join("ios", "Runner", "Assets.xcassets", "AppIcon.appiconset"),
		Images: []AppIconImage{
			img(20, 2, "iphone"),
			img(20, 3, "iphone"),
			img(29, 2, "iphone"),
			img(29, 3, "iphone"),
			img(40, 2, "iphone"),
			img(40, 3, "iphone"),
			img(60, 2, "iphone"),
			img(60, 3, "iphone"),
			img(20, 1, "ipad"),
			img(20, 2, "ipad"),
			img(29, 1, "ipad"),
			img(29, 2, "ipad"),
			img(40, 1, "ipad"),
			img(40, 2, "ipad"),
			img(76, 1, "ipad"),
			img(76, 2, "ipad"),
			img(83.5, 2, "ipad"),
			img(1024, 1, "ios-marketing"),
		},
	}
}

// Icons returns one icon per distinct filename, in table order.
func (l IOSLayout) Icons() []Icon {
	seen := make(map[string]bool, len(l.Images))
	icons := make([]Icon, 0, len(l.Images))
	for _, img := range l.Images {
		if seen[img.Filename] {
			continue
		}
		seen[img.Filename] = true
		icons = append(icons, Icon{
			Size: img.Pixels(),
			Path: filepath.Join(l.Dir, img.Filename),
		})
	}
	return icons
}

// Manifest builds the asset catalog describing every table entry.
func (l IOSLayout) Manifest() AssetCatalog {
	cat := AssetCatalog{
		Images: make([]AssetCatalogImage, 0, len(l.Images)),
		Info: AssetCatalogInfo{
			Version: manifestVersion,
			Author:  manifestAuthor,
		},
	}
	for _, img := range l.Images {
		pt := strconv.FormatFloat(img.Size, 'f', -1, 64)
		cat.Images = append(cat.Images, AssetCatalogImage{
			Size:     pt + "x" + pt,
			Idiom:    img.Idiom,
			Filename: img.Filename,
			Scale:    strconv.Itoa(img.Scale) + "x",
		})
	}
	return cat
}

// ManifestPath is the location of Contents.json relative to the output root.
func (l IOSLayout) ManifestPath() string {
	return filepath.Join(l.Dir, manifestFileName)
}

// WriteManifest writes cat to path as two-space indented JSON.
func WriteManifest(path string, cat AssetCatalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding asset catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
