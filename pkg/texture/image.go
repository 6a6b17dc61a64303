package texture

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/pkg/errors"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Image samples colors from a 2D raster image.
// Pixels are stored row-major: Pixels[y*Width + x].
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates an image texture from raw pixel data
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// LoadImage decodes a PNG or JPEG file into an image texture
func LoadImage(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening texture image %q", filename)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding texture image %q", filename)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImage(width, height, pixels), nil
}

// Value samples the image at the given UV coordinates using
// nearest-neighbor filtering. U and V wrap; V=0 is the bottom row.
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	// Wrap UV to [0, 1)
	u = u - float64(int(u))
	v = v - float64(int(v))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// Flip V: image origin is top-left
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
