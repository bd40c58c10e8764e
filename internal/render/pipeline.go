package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/gift"
	"github.com/fogleman/gg"

	"github.com/Y4shin/streamdeck-manager/internal/logging"

	"go.uber.org/zap"
)

// labelBand is the height in pixels of the band at the bottom of each
// key reserved for the label text. Icons are fitted into the area above.
const labelBand = 20

// DefaultFontSize is the label font size used when the settings do not
// override it.
const DefaultFontSize = 14

// ErrIconNotFound marks a render failure caused by an icon reference
// that does not resolve to an existing file. A missing asset indicates
// a broken configuration the operator must fix, so this error is fatal
// to the render pass; there is no placeholder image.
var ErrIconNotFound = errors.New("icon file does not exist")

// Pipeline composes key images: a device-sized canvas with the icon
// fitted above the label band and the label centered inside it.
// A pipeline is immutable after construction and safe for concurrent
// use by a single render pass at a time.
type Pipeline struct {
	assetDir string
	width    int
	height   int
	face     fontFace
}

// New creates a pipeline for keys of the given pixel size. Icon
// references are resolved relative to assetDir. fontPath may be empty
// to use the embedded default typeface; fontSize zero or negative
// falls back to DefaultFontSize.
func New(assetDir string, width, height int, fontPath string, fontSize float64) (*Pipeline, error) {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	face, err := loadFace(fontPath, fontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return &Pipeline{
		assetDir: assetDir,
		width:    width,
		height:   height,
		face:     face,
	}, nil
}

// Render produces the image for one key. An empty icon leaves the icon
// area blank, an empty label leaves the band blank; both empty yields a
// plain black key. A non-empty icon that does not resolve to a file is
// fatal (ErrIconNotFound); decode failures propagate unmodified.
func (p *Pipeline) Render(icon string, label string) (image.Image, error) {
	dc := gg.NewContext(p.width, p.height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	if icon != "" {
		path := filepath.Join(p.assetDir, icon)
		if _, err := os.Stat(path); err != nil {
			logging.Error("Icon does not exist, aborting render pass",
				zap.String("icon", icon),
				zap.String("path", path),
			)
			return nil, fmt.Errorf("%w: %s", ErrIconNotFound, path)
		}

		src, err := gg.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
		}

		// Scale-to-fit the area above the label band, preserving aspect
		// ratio, then center horizontally anchored to the top.
		fit := gift.New(gift.ResizeToFit(p.width, p.height-labelBand, gift.LanczosResampling))
		dst := image.NewRGBA(fit.Bounds(src.Bounds()))
		fit.Draw(dst, src)

		dc.DrawImage(dst, (p.width-dst.Bounds().Dx())/2, 0)
	}

	if label != "" {
		dc.SetFontFace(p.face)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(label,
			float64(p.width)/2,
			float64(p.height)-float64(labelBand)/2,
			0.5, 0.5)
	}

	return dc.Image(), nil
}
