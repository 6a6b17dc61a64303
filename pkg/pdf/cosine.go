// Package pdf provides the probability-density strategies the
// integrator importance-samples scattered directions from. Pdf values
// are constructed fresh per scattering event and hold no mutable state.
package pdf

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// CosinePdf is the cosine-weighted hemisphere distribution about a
// surface normal: density cos(θ)/π above the surface, zero below.
// Matches the natural scattering distribution of Lambertian surfaces.
type CosinePdf struct {
	basis core.ONB
}

// NewCosinePdf creates a cosine-weighted hemisphere distribution
// around the given normal
func NewCosinePdf(normal core.Vec3) *CosinePdf {
	return &CosinePdf{basis: core.NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, zero below
func (p *CosinePdf) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.basis.W)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere
func (p *CosinePdf) Generate(s core.Sampler) core.Vec3 {
	return p.basis.LocalVec(core.CosineHemisphereLocal(s.Get2D()))
}
