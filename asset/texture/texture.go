package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/achilleasa/diorama/asset"
	"github.com/achilleasa/diorama/log"
	"github.com/achilleasa/diorama/scene"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyImage = errors.New("texture: image has zero width or height")
)

var logger = log.New("texture")

// Options control the transformations applied to a texture after decoding.
type Options struct {
	// If non-zero, images larger than MaxSize in either dimension are
	// downscaled (nearest neighbor, aspect ratio preserved) to fit.
	MaxSize uint32

	Rotate180 bool
	FlipH     bool
	FlipV     bool
}

// Load a texture from a resource. The image is decoded with any of the
// registered image decoders (png, jpeg, gif, bmp, tiff, webp) and converted
// to non-premultiplied RGBA8.
func Load(res *asset.Resource, opts Options) (*scene.Texture, error) {
	src, imgFmt, err := image.Decode(res)
	if err != nil {
		return nil, fmt.Errorf("texture: could not decode %s: %v", res.Path(), err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	img := imaging.Clone(src)
	if opts.MaxSize > 0 && (uint32(bounds.Dx()) > opts.MaxSize || uint32(bounds.Dy()) > opts.MaxSize) {
		img = imaging.Clone(resize.Thumbnail(uint(opts.MaxSize), uint(opts.MaxSize), img, resize.NearestNeighbor))
		logger.Debugf("downscaled %s from %dx%d to %dx%d", res.Name(), bounds.Dx(), bounds.Dy(), img.Rect.Dx(), img.Rect.Dy())
	}
	if opts.Rotate180 {
		img = imaging.Rotate180(img)
	}
	if opts.FlipH {
		img = imaging.FlipH(img)
	}
	if opts.FlipV {
		img = imaging.FlipV(img)
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		srcOffset := y * img.Stride
		copy(data[y*w*4:(y+1)*w*4], img.Pix[srcOffset:srcOffset+w*4])
	}

	tex, err := scene.NewTexture(uint32(w), uint32(h), data)
	if err != nil {
		return nil, err
	}

	logger.Infof("loaded %s texture %s (%dx%d)", imgFmt, res.Name(), w, h)
	return tex, nil
}

// Load a texture from a local path or URL.
func LoadFile(pathToFile string, opts Options) (*scene.Texture, error) {
	res, err := asset.NewResource(pathToFile, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return Load(res, opts)
}
