// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/tagview/tagview/f32"
	"github.com/tagview/tagview/unit"
	"github.com/tagview/tagview/widget"
)

// Fonts resolves chip fonts to faces and measures chip titles. It
// implements widget.Measurer. The zero value measures with the Go
// Regular face at a 1:1 metric.
type Fonts struct {
	Metric unit.Metric
	// Dir is searched for font files named by widget.Font.Name.
	Dir    string
	Logger *zap.Logger

	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
	cache measureCache
}

type faceKey struct {
	name string
	ppem int
}

// NewFonts returns Fonts scaled by metric.
func NewFonts(metric unit.Metric) *Fonts {
	return &Fonts{Metric: metric}
}

// MeasureText returns the pixel advance of s and the line height of
// the face for f.
func (fs *Fonts) MeasureText(s string, f widget.Font) f32.Point {
	k := measureKey{font: f.Name, ppem: fs.ppem(f), str: s}
	if sz, ok := fs.cache.Get(k); ok {
		return sz
	}
	face := fs.Face(f)
	adv := font.MeasureString(face, s)
	h := face.Metrics().Height
	sz := f32.Pt(float32(adv.Ceil()), float32(h.Ceil()))
	fs.cache.Put(k, sz)
	return sz
}

// Face returns the face for f, loading and caching it on first use.
// Fonts that fail to load fall back to Go Regular.
func (fs *Fonts) Face(f widget.Font) font.Face {
	k := faceKey{name: f.Name, ppem: fs.ppem(f)}
	if face, ok := fs.faces[k]; ok {
		return face
	}
	face := fs.newFace(k)
	if fs.faces == nil {
		fs.faces = make(map[faceKey]font.Face)
	}
	fs.faces[k] = face
	return face
}

func (fs *Fonts) ppem(f widget.Font) int {
	size := f.Size
	if size <= 0 {
		size = widget.DefaultStyle().Font.Size
	}
	return fs.Metric.Sp(size)
}

func (fs *Fonts) newFace(k faceKey) font.Face {
	otf, err := fs.font(k.name)
	if err != nil {
		fs.log().Warn("font unavailable, using default", zap.String("font", k.name), zap.Error(err))
		if otf, err = fs.font(""); err != nil {
			return basicfont.Face7x13
		}
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    math.Max(1, float64(k.ppem)),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		fs.log().Warn("font face", zap.String("font", k.name), zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}

// font parses the font file for name. The empty name is Go Regular.
func (fs *Fonts) font(name string) (*opentype.Font, error) {
	if f, ok := fs.fonts[name]; ok {
		return f, nil
	}
	var data []byte
	if name == "" {
		data = goregular.TTF
	} else {
		b, err := os.ReadFile(fs.path(name))
		if err != nil {
			return nil, err
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font %q: %w", name, err)
	}
	if fs.fonts == nil {
		fs.fonts = make(map[string]*opentype.Font)
	}
	fs.fonts[name] = f
	return f, nil
}

func (fs *Fonts) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if ext := strings.ToLower(filepath.Ext(name)); ext != ".ttf" && ext != ".otf" {
		name += ".ttf"
	}
	return filepath.Join(fs.Dir, name)
}

func (fs *Fonts) log() *zap.Logger {
	if fs.Logger == nil {
		return zap.NewNop()
	}
	return fs.Logger
}
