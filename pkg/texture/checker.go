package texture

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Checker alternates between two textures in a 3D checkerboard
// pattern driven by the hit point
type Checker struct {
	Scale float64 // Edge length of one cell
	Even  core.Texture
	Odd   core.Texture
}

// NewChecker creates a checker pattern from two textures
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture based on the integer cell the
// point falls into
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	x := int(math.Floor(p.X * inv))
	y := int(math.Floor(p.Y * inv))
	z := int(math.Floor(p.Z * inv))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
