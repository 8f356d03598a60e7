package output

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ToImage converts a packed 0x00RRGGBB buffer of width*height pixels into an
// opaque RGBA image. Row j of the buffer becomes row j of the image.
func ToImage(buf []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(buf) != width*height {
		return nil, fmt.Errorf("buffer of %d pixels does not match %dx%d", len(buf), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			r, g, b := renderer.UnpackColor(buf[j*width+i])
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}

// Scale enlarges img by an integer factor using nearest-neighbour sampling,
// keeping pixel edges crisp. A factor of 1 or less returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// Thumbnail shrinks img to fit within maxSize×maxSize, preserving aspect ratio
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)
}
