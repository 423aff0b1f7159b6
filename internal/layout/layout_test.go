package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		points float64
		scale  int
		want   int
	}{
		{20, 2, 40},
		{29, 3, 87},
		{83.5, 2, 167},
		{83.5, 1, 84},
		{1024, 1, 1024},
		{10.25, 2, 21},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PixelSize(tt.points, tt.scale), "%v@%dx", tt.points, tt.scale)
	}
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform(" iOS ")
	require.NoError(t, err)
	assert.Equal(t, PlatformIOS, p)

	_, err = ParsePlatform("windows")
	assert.Error(t, err)
}

func TestDefaultIOS(t *testing.T) {
	l := Default()
	require.NoError(t, l.Validate())

	icons, err := l.Icons(PlatformIOS)
	require.NoError(t, err)
	assert.Len(t, icons, 15)
	assert.Len(t, l.IOS.Images, 18)

	dir := filepath.Join("ios", "Runner", "Assets.xcassets", "AppIcon.appiconset")
	sizes := make(map[string]int, len(icons))
	for _, icon := range icons {
		sizes[icon.Path] = icon.Size
	}
	assert.Equal(t, 167, sizes[filepath.Join(dir, "Icon-App-83.5x83.5@2x.png")])
	assert.Equal(t, 1024, sizes[filepath.Join(dir, "Icon-App-1024x1024@1x.png")])
	assert.Equal(t, 40, sizes[filepath.Join(dir, "Icon-App-20x20@2x.png")])
	assert.Equal(t, 20, sizes[filepath.Join(dir, "Icon-App-20x20@1x.png")])
	assert.Equal(t, 180, sizes[filepath.Join(dir, "Icon-App-60x60@3x.png")])
	assert.Equal(t, filepath.Join(dir, "Icon-App-20x20@2x.png"), icons[0].Path)
}

func TestManifestMatchesIcons(t *testing.T) {
	l := Default().IOS
	cat := l.Manifest()

	assert.Equal(t, AssetCatalogInfo{Version: 1, Author: "xcode"}, cat.Info)
	require.Len(t, cat.Images, 18)
	assert.Equal(t, AssetCatalogImage{
		Size:     "83.5x83.5",
		Idiom:    "ipad",
		Filename: "Icon-App-83.5x83.5@2x.png",
		Scale:    "2x",
	}, cat.Images[16])
	assert.Equal(t, "ios-marketing", cat.Images[17].Idiom)

	manifestFiles := map[string]bool{}
	for _, img := range cat.Images {
		manifestFiles[filepath.Join(l.Dir, img.Filename)] = true
	}
	iconFiles := map[string]bool{}
	for _, icon := range l.Icons() {
		iconFiles[icon.Path] = true
	}
	assert.Equal(t, iconFiles, manifestFiles)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon.appiconset", "Contents.json")
	require.NoError(t, WriteManifest(path, Default().IOS.Manifest()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"images\": [\n")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]interface{}{"version": float64(1), "author": "xcode"}, decoded["info"])
	assert.Len(t, decoded["images"], 18)
}

func TestDefaultAndroid(t *testing.T) {
	icons, err := Default().Icons(PlatformAndroid)
	require.NoError(t, err)
	require.Len(t, icons, 10)

	res := filepath.Join("android", "app", "src", "main", "res")
	assert.Equal(t, Icon{Size: 48, Path: filepath.Join(res, "mipmap-mdpi", "ic_launcher.png")}, icons[0])
	assert.Equal(t, Icon{Size: 192, Path: filepath.Join(res, "mipmap-xxxhdpi", "ic_launcher.png")}, icons[4])
	assert.Equal(t, Icon{Size: 72, Path: filepath.Join(res, "mipmap-mdpi", "ic_launcher_foreground.png")}, icons[5])
	assert.Equal(t, Icon{Size: 288, Path: filepath.Join(res, "mipmap-xxxhdpi", "ic_launcher_foreground.png")}, icons[9])
}

func TestDefaultWeb(t *testing.T) {
	icons, err := Default().Icons(PlatformWeb)
	require.NoError(t, err)
	assert.Equal(t, []Icon{
		{Size: 192, Path: filepath.Join("web", "icons", "Icon-192.png")},
		{Size: 512, Path: filepath.Join("web", "icons", "Icon-512.png")},
		{Size: 192, Path: filepath.Join("web", "icons", "Icon-maskable-192.png")},
		{Size: 512, Path: filepath.Join("web", "icons", "Icon-maskable-512.png")},
		{Size: 16, Path: filepath.Join("web", "favicon.png")},
	}, icons)
}

func TestIconsUnknownPlatform(t *testing.T) {
	_, err := Default().Icons(Platform("tvos"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Partial override keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
web:
  icons_dir: public/icons
  icons:
    - size: 256
      filename: icon-256.png
android:
  foreground_scale: 2
`), 0o644))

		l, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Default().IOS, l.IOS)
		assert.Equal(t, []WebIcon{{Size: 256, Filename: "icon-256.png"}}, l.Web.AppIcons)
		assert.Equal(t, "web", l.Web.Dir)
		assert.Equal(t, filepath.Join("public", "icons", "icon-256.png"), l.Web.Icons()[0].Path)
		assert.Equal(t, 96, l.Android.Icons()[5].Size)
	})

	t.Run("Invalid values are all reported", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
ios:
  images:
    - size: 0
      scale: 2
      idiom: iphone
      filename: ""
android:
  densities:
    - qualifier: mipmap-mdpi
      size: -1
`), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ios: image 0: size and scale must be positive")
		assert.Contains(t, err.Error(), "ios: image 0: filename must not be empty")
		assert.Contains(t, err.Error(), `android: density "mipmap-mdpi": size must be positive`)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ios: [unterminated"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
