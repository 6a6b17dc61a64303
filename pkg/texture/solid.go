// Package texture provides the color sources materials sample:
// uniform colors, procedural patterns and image lookups.
package texture

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
