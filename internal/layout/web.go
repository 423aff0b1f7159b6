package layout

import "path/filepath"

// WebLayout covers the PWA manifest icons and the favicon.
type WebLayout struct {
	Dir      string    `yaml:"dir"`
	IconsDir string    `yaml:"icons_dir"`
	AppIcons []WebIcon `yaml:"icons"`
	Favicon  WebIcon   `yaml:"favicon"`
}

type WebIcon struct {
	Size     int    `yaml:"size"`
	Filename string `yaml:"filename"`
}

func defaultWeb() WebLayout {
	return WebLayout{
		Dir:      "web",
		IconsDir: filepath.Join("web", "icons"),
		AppIcons: []WebIcon{
			{Size: 192, Filename: "Icon-192.png"},
			{Size: 512, Filename: "Icon-512.png"},
			{Size: 192, Filename: "Icon-maskable-192.png"},
			{Size: 512, Filename: "Icon-maskable-512.png"},
		},
		Favicon: WebIcon{Size: 16, Filename: "favicon.png"},
	}
}

// Icons returns the manifest icons followed by the favicon.
func (l WebLayout) Icons() []Icon {
	icons := make([]Icon, 0, len(l.AppIcons)+1)
	for _, i := range l.AppIcons {
		icons = append(icons, Icon{Size: i.Size, Path: filepath.Join(l.IconsDir, i.Filename)})
	}
	return append(icons, Icon{Size: l.Favicon.Size, Path: filepath.Join(l.Dir, l.Favicon.Filename)})
}
