package layout

import "path/filepath"

// AndroidLayout describes the launcher icons written into density qualified
// mipmap directories. Every density also gets an adaptive icon foreground,
// ForegroundScale times the launcher size.
type AndroidLayout struct {
	ResDir          string    `yaml:"res_dir"`
	Launcher        string    `yaml:"launcher"`
	Foreground      string    `yaml:"foreground"`
	ForegroundScale float64   `yaml:"foreground_scale"`
	Densities       []Density `yaml:"densities"`
}

// Density is a mipmap resource directory and the launcher edge length for it.
type Density struct {
	Qualifier string `yaml:"qualifier"`
	Size      int    `yaml:"size"`
}

func defaultAndroid() AndroidLayout {
	return AndroidLayout{
		ResDir:          filepath.Join("android", "app", "src", "main", "res"),
		Launcher:        "ic_launcher.png",
		Foreground:      "ic_launcher_foreground.png",
		ForegroundScale: 1.5,
		Densities: []Density{
			{Qualifier: "mipmap-mdpi", Size: 48},
			{Qualifier: "mipmap-hdpi", Size: 72},
			{Qualifier: "mipmap-xhdpi", Size: 96},
			{Qualifier: "mipmap-xxhdpi", Size: 144},
			{Qualifier: "mipmap-xxxhdpi", Size: 192},
		},
	}
}

// Icons returns every launcher icon followed by every foreground layer.
func (l AndroidLayout) Icons() []Icon {
	icons := make([]Icon, 0, 2*len(l.Densities))
	for _, d := range l.Densities {
		icons = append(icons, Icon{
			Size: d.Size,
			Path: filepath.Join(l.ResDir, d.Qualifier, l.Launcher),
		})
	}
	for _, d := range l.Densities {
		icons = append(icons, Icon{
			Size: int(float64(d.Size)*l.ForegroundScale + 0.5),
			Path: filepath.Join(l.ResDir, d.Qualifier, l.Foreground),
		})
	}
	return icons
}
