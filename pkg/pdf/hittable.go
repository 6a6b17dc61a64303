package pdf

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// HittablePdf is the distribution of directions from a fixed origin
// toward a target object, typically a light or an aggregate of lights.
// Sampling and density evaluation both delegate to the target.
type HittablePdf struct {
	target core.Hittable
	origin core.Vec3
}

// NewHittablePdf creates a direction distribution toward target as
// seen from origin. The target must support direction sampling
// (PdfValue/RandomDirection); results are undefined otherwise.
func NewHittablePdf(target core.Hittable, origin core.Vec3) *HittablePdf {
	return &HittablePdf{target: target, origin: origin}
}

// Value returns the solid-angle density of hitting the target from
// the origin along direction
func (p *HittablePdf) Value(direction core.Vec3) float64 {
	return p.target.PdfValue(p.origin, direction)
}

// Generate draws a direction from the origin toward the target
func (p *HittablePdf) Generate(s core.Sampler) core.Vec3 {
	return p.target.RandomDirection(p.origin, s)
}
