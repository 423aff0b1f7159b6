// Package generator drives a full icon generation run: it checks the source,
// renders every icon of the selected platforms in table order and writes the
// iOS asset catalog.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SkyMack/appicons/internal/layout"
	"github.com/SkyMack/appicons/internal/raster"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrSourceMissing is returned when the source image does not exist; nothing is written in that case
	ErrSourceMissing = errors.New("source image not found")
)

// Generator renders icon sets for one source image
type Generator struct {
	conf       Config
	layout     layout.Layout
	rasterizer *raster.Rasterizer
}

// New validates conf, loads the layout and returns a Generator ready to Run
func New(conf Config) (*Generator, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}

	l := layout.Default()
	if conf.layoutPath != "" {
		var err error
		l, err = layout.LoadFile(conf.layoutPath)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"layout.path": conf.layoutPath,
		}).Debug("loaded layout file")
	}

	return &Generator{
		conf:       conf,
		layout:     l,
		rasterizer: raster.New(conf.background),
	}, nil
}

// Run performs the whole batch. The first failure aborts every icon after it.
func (g *Generator) Run() error {
	log.WithFields(log.Fields{
		"src.path": g.conf.sourcePath,
	}).Info("generating app icons")

	if _, err := os.Stat(g.conf.sourcePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, g.conf.sourcePath)
		}
		return fmt.Errorf("checking source image: %w", err)
	}

	src, err := raster.Open(g.conf.sourcePath)
	if err != nil {
		return err
	}
	src = raster.Flatten(src, g.conf.background)

	for _, p := range g.conf.platforms {
		icons, err := g.layout.Icons(p)
		if err != nil {
			return err
		}

		l := log.WithField("platform", p)
		l.WithField("icon.count", len(icons)).Info("generating platform icons")
		for _, icon := range icons {
			dest := filepath.Join(g.conf.outputRoot, icon.Path)
			if err := g.rasterizer.Rasterize(src, icon.Size, dest); err != nil {
				return fmt.Errorf("%s icon %s: %w", p, icon.Path, err)
			}
		}

		if p == layout.PlatformIOS {
			manifestPath := filepath.Join(g.conf.outputRoot, g.layout.IOS.ManifestPath())
			if err := layout.WriteManifest(manifestPath, g.layout.IOS.Manifest()); err != nil {
				return err
			}
			l.WithField("dst.path", manifestPath).Info("wrote asset catalog")
		}
	}

	fields := log.Fields{}
	for _, p := range g.conf.platforms {
		fields["output."+string(p)] = filepath.Join(g.conf.outputRoot, g.layout.Dir(p))
	}
	log.WithFields(fields).Info("all icons generated successfully")
	return nil
}

// report logs the outcome of a run. The error is only propagated when the
// caller asked for failures to change the exit status.
func (g *Generator) report(err error) error {
	if err == nil {
		return nil
	}

	fields := log.Fields{
		"error":    err.Error(),
		"src.path": g.conf.sourcePath,
	}
	if errors.Is(err, ErrSourceMissing) {
		log.WithFields(fields).Error("source image not found, nothing was generated")
	} else {
		log.WithFields(fields).Error("icon generation failed")
	}

	if g.conf.failOnError {
		return err
	}
	return nil
}
